package service

import (
	"context"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Bid interface {
	PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	AcceptBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error)
	RejectBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error)
	ConfirmBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error)
	AbandonBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error)
	WithdrawBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error)
	CompleteBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error)

	GetUserBids(ctx context.Context, buyerId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
	GetProductBids(ctx context.Context, productId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
}

type Sweeper interface {
	SweepExpired(ctx context.Context) (*entity.SweepSummary, error)
	ResolveExpiredAuctions(ctx context.Context) (*entity.ResolutionSummary, error)
}

type Penalty interface {
	// RecordAbandonment runs the suspension policy after a bid of the
	// given user reached the abandoned state; it reports whether a new
	// suspension was applied.
	RecordAbandonment(ctx context.Context, userId string) (bool, error)

	ApplyPenalty(ctx context.Context, adminId string, input *entity.CreatePenaltyInput) (*entity.PenaltyOutputModel, error)
	GetUserPenalties(ctx context.Context, adminId string, userId string, pg *entity.PaginationInput) ([]entity.PenaltyOutputModel, error)
	ResolvePenalty(ctx context.Context, adminId string, penaltyId string, resolution string) (*entity.PenaltyOutputModel, error)
}

type Product interface {
	CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.ProductOutputModel, error)
	GetProductById(ctx context.Context, productId string) (*entity.ProductOutputModel, error)
	GetLatestProducts(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.ProductOutputModel, error)
	GetSellerProducts(ctx context.Context, sellerId string, pg *entity.PaginationInput) ([]entity.ProductOutputModel, error)
}

type Notification interface {
	GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) (*entity.NotificationFeed, error)
	MarkRead(ctx context.Context, notificationId string, userId string) error
	MarkAllRead(ctx context.Context, userId string) (int, error)
}

type User interface {
	GetUserById(ctx context.Context, userId string) (*entity.UserOutputModel, error)
}

// EventPublisher pushes lifecycle events to the realtime feed. Publishing
// is best-effort; implementations must never fail a transition.
type EventPublisher interface {
	PublishBidEvent(ctx context.Context, event entity.BidEvent)
}

// Config carries policy knobs resolved from the environment.
type Config struct {
	// SuspensionResetOnApply zeroes the abandonment counter whenever a
	// suspension is applied, so each suspension requires a fresh streak.
	// When false the counter accumulates forever and every third
	// abandonment while unsuspended opens a new window.
	SuspensionResetOnApply bool
}

type Services struct {
	Diagnostics  Diagnostics
	Bid          Bid
	Sweeper      Sweeper
	Penalty      Penalty
	Product      Product
	Notification Notification
	User         User
}

func NewServices(repos *repo.Repositories, publisher EventPublisher, cfg Config) *Services {
	penalty := NewPenaltyService(repos, cfg)

	return &Services{
		Diagnostics:  NewDiagnosticsService(repos),
		Bid:          NewBidService(repos, penalty, publisher),
		Sweeper:      NewSweeperService(repos, penalty, publisher),
		Penalty:      penalty,
		Product:      NewProductService(repos),
		Notification: NewNotificationService(repos),
		User:         NewUserService(repos),
	}
}
