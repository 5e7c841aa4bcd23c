package repo

import (
	"context"
	"time"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo/pgdb"
	"agromarket-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	// IncrementAbandonCount atomically bumps the abandonment counter and
	// returns the new value.
	IncrementAbandonCount(ctx context.Context, id string) (int, error)
	// ApplySuspension conditionally sets bid_suspension_until; it writes
	// only when the user has no active suspension and reports whether a
	// row was updated. resetCount additionally zeroes abandon_count in
	// the same statement.
	ApplySuspension(ctx context.Context, id string, until time.Time, resetCount bool) (bool, error)
}

type Product interface {
	CreateProduct(ctx context.Context, input *entity.CreateProductInput) (uuid.UUID, error)
	GetProductById(ctx context.Context, id string) (*entity.Product, error)
	GetLatestProducts(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Product, error)
	GetSellerProducts(ctx context.Context, sellerId string, pg *entity.PaginationInput) ([]entity.Product, error)
	// GetProductsWithExpiredBidding returns products whose bidding
	// deadline has elapsed and which still hold pending bids.
	GetProductsWithExpiredBidding(ctx context.Context, now time.Time) ([]entity.Product, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetUserBids(ctx context.Context, buyerId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetProductBids(ctx context.Context, productId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetPendingProductBids(ctx context.Context, productId string) ([]entity.Bid, error)
	// GetExpiredAcceptedBids returns accepted bids whose confirmation
	// deadline lies strictly before now.
	GetExpiredAcceptedBids(ctx context.Context, now time.Time) ([]entity.Bid, error)
	// UpdateBidStatusIfCurrent transitions the bid from fromStatus to
	// toStatus in a single conditional UPDATE and reports whether the row
	// was actually moved. A false result means the bid no longer carried
	// fromStatus (lost race or stale caller), never an error.
	UpdateBidStatusIfCurrent(ctx context.Context, id string, fromStatus, toStatus string, patch *entity.BidStatusPatch) (bool, error)
}

type Penalty interface {
	CreatePenalty(ctx context.Context, input *entity.CreatePenaltyInput) (uuid.UUID, error)
	GetPenaltyById(ctx context.Context, id string) (*entity.Penalty, error)
	GetUserPenalties(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Penalty, error)
	// ResolvePenalty moves an active penalty to paid or waived and
	// reports whether the row was still active.
	ResolvePenalty(ctx context.Context, id string, resolution string, resolvedAt time.Time) (bool, error)
}

type Notification interface {
	CreateNotification(ctx context.Context, input *entity.CreateNotificationInput) (uuid.UUID, error)
	GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Notification, error)
	CountUnread(ctx context.Context, userId string) (int, error)
	// MarkRead flips is_read for a single notification owned by userId
	// and reports whether a row matched.
	MarkRead(ctx context.Context, id string, userId string) (bool, error)
	MarkAllRead(ctx context.Context, userId string) (int, error)
}

type Repositories struct {
	Diagnostics
	User
	Product
	Bid
	Penalty
	Notification
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		User:         pgdb.NewUserRepo(p),
		Product:      pgdb.NewProductRepo(p),
		Bid:          pgdb.NewBidRepo(p),
		Penalty:      pgdb.NewPenaltyRepo(p),
		Notification: pgdb.NewNotificationRepo(p),
	}
}
