package service

import (
	"context"
	"errors"
	"time"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// ConfirmationWindow is how long a buyer has to confirm an accepted bid
// before the sweeper abandons it. Surfaced to users as "গৃহীত বিড ৬
// ঘন্টার মধ্যে নিশ্চিত করতে হবে".
const ConfirmationWindow = 6 * time.Hour

type BidService struct {
	bidRepo     repo.Bid
	productRepo repo.Product
	userRepo    repo.User
	penalty     Penalty
	publisher   EventPublisher
	notifier    notifier
}

func NewBidService(repos *repo.Repositories, penalty Penalty, publisher EventPublisher) *BidService {
	return &BidService{
		bidRepo:     repos.Bid,
		productRepo: repos.Product,
		userRepo:    repos.User,
		penalty:     penalty,
		publisher:   publisher,
		notifier:    notifier{repos.Notification},
	}
}

func (s *BidService) publishTransition(ctx context.Context, bid *entity.Bid, status string) {
	s.publisher.PublishBidEvent(ctx, entity.BidEvent{
		EventId:    uuid.New().String(),
		BidId:      bid.Id.String(),
		ProductId:  bid.ProductId.String(),
		BuyerId:    bid.BuyerId.String(),
		Amount:     bid.Amount,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *BidService) PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidBidAmount
	}

	buyer, err := s.userRepo.GetUserById(ctx, input.BuyerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	now := time.Now().UTC()
	if buyer.Suspended(now) {
		return nil, ErrUserSuspended
	}

	product, err := s.productRepo.GetProductById(ctx, input.ProductId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	if product.SellerId == buyer.Id {
		return nil, ErrOwnProductBid
	}

	if !product.BiddingWindowOpen(now) {
		return nil, ErrBiddingWindowClosed
	}

	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidPending)

	return mapBid(bid), nil
}

// loadBidForSeller fetches the bid and verifies the acting user owns the
// bid's product.
func (s *BidService) loadBidForSeller(ctx context.Context, bidId string, sellerId string) (*entity.Bid, *entity.Product, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrBidNotFound
		}

		return nil, nil, err
	}

	product, err := s.productRepo.GetProductById(ctx, bid.ProductId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrProductNotFound
		}

		return nil, nil, err
	}

	if product.SellerId.String() != sellerId {
		return nil, nil, ErrNotProductOwner
	}

	return bid, product, nil
}

// loadBidForBuyer fetches the bid and verifies the acting user placed it.
func (s *BidService) loadBidForBuyer(ctx context.Context, bidId string, buyerId string) (*entity.Bid, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if bid.BuyerId.String() != buyerId {
		return nil, ErrNotBidOwner
	}

	return bid, nil
}

func (s *BidService) AcceptBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error) {
	bid, product, err := s.loadBidForSeller(ctx, bidId, sellerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidPending {
		return nil, ErrWrongBidState
	}

	deadline := time.Now().UTC().Add(ConfirmationWindow)
	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidPending, common.BidAccepted,
		&entity.BidStatusPatch{ConfirmationDeadline: &deadline})
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	s.notifier.notify(ctx, bid.BuyerId.String(), common.NotificationBid,
		"বিড গৃহীত হয়েছে",
		"\""+product.Title+"\" পণ্যে আপনার বিড গৃহীত হয়েছে। ৬ ঘন্টার মধ্যে নিশ্চিত করুন, অন্যথায় বিড স্বয়ংক্রিয়ভাবে বাতিল হবে।",
		map[string]any{"bid_id": bidId, "product_id": bid.ProductId.String(), "action": common.BidAccepted})

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidAccepted)

	return mapBid(bid), nil
}

func (s *BidService) RejectBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error) {
	bid, product, err := s.loadBidForSeller(ctx, bidId, sellerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidPending {
		return nil, ErrWrongBidState
	}

	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidPending, common.BidRejected, nil)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	s.notifier.notify(ctx, bid.BuyerId.String(), common.NotificationBid,
		"বিড প্রত্যাখ্যান করা হয়েছে",
		"\""+product.Title+"\" পণ্যে আপনার বিড বিক্রেতা প্রত্যাখ্যান করেছেন।",
		map[string]any{"bid_id": bidId, "product_id": bid.ProductId.String(), "action": common.BidRejected})

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidRejected)

	return mapBid(bid), nil
}

func (s *BidService) ConfirmBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error) {
	bid, err := s.loadBidForBuyer(ctx, bidId, buyerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidAccepted {
		return nil, ErrWrongBidState
	}

	now := time.Now().UTC()
	if bid.ConfirmationDeadline != nil && now.After(*bid.ConfirmationDeadline) {
		// An expired bid belongs to the sweeper, never to the buyer.
		return nil, ErrConfirmationExpired
	}

	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidAccepted, common.BidConfirmed,
		&entity.BidStatusPatch{ConfirmedAt: &now})
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	product, err := s.productRepo.GetProductById(ctx, bid.ProductId.String())
	if err == nil {
		s.notifier.notify(ctx, product.SellerId.String(), common.NotificationBid,
			"বিড নিশ্চিত হয়েছে",
			"\""+product.Title+"\" পণ্যে ক্রেতা বিড নিশ্চিত করেছেন।",
			map[string]any{"bid_id": bidId, "product_id": bid.ProductId.String(), "action": common.BidConfirmed})
	}

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidConfirmed)

	return mapBid(bid), nil
}

func (s *BidService) AbandonBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error) {
	bid, err := s.loadBidForBuyer(ctx, bidId, buyerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidAccepted {
		return nil, ErrWrongBidState
	}

	now := time.Now().UTC()
	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidAccepted, common.BidAbandoned,
		&entity.BidStatusPatch{AbandonedAt: &now})
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	// Suspension bookkeeping must not undo the abandonment itself.
	if _, err := s.penalty.RecordAbandonment(ctx, buyerId); err != nil {
		logAbandonmentPolicyFailure(buyerId, bidId, err)
	}

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidAbandoned)

	return mapBid(bid), nil
}

func (s *BidService) WithdrawBid(ctx context.Context, bidId string, buyerId string) (*entity.BidOutputModel, error) {
	bid, err := s.loadBidForBuyer(ctx, bidId, buyerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidPending {
		return nil, ErrWrongBidState
	}

	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidPending, common.BidWithdrawn, nil)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidWithdrawn)

	return mapBid(bid), nil
}

func (s *BidService) CompleteBid(ctx context.Context, bidId string, sellerId string) (*entity.BidOutputModel, error) {
	bid, product, err := s.loadBidForSeller(ctx, bidId, sellerId)
	if err != nil {
		return nil, err
	}

	if bid.Status != common.BidConfirmed {
		return nil, ErrWrongBidState
	}

	moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bidId, common.BidConfirmed, common.BidCompleted, nil)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrWrongBidState
	}

	s.notifier.notify(ctx, bid.BuyerId.String(), common.NotificationOrder,
		"লেনদেন সম্পন্ন হয়েছে",
		"\""+product.Title+"\" পণ্যের লেনদেন সম্পন্ন হয়েছে।",
		map[string]any{"bid_id": bidId, "product_id": bid.ProductId.String(), "action": common.BidCompleted})

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, bid, common.BidCompleted)

	return mapBid(bid), nil
}

func (s *BidService) GetUserBids(ctx context.Context, buyerId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	if _, err := s.userRepo.GetUserById(ctx, buyerId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	bids, err := s.bidRepo.GetUserBids(ctx, buyerId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

func (s *BidService) GetProductBids(ctx context.Context, productId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	product, err := s.productRepo.GetProductById(ctx, productId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	requester, err := s.userRepo.GetUserById(ctx, requesterId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if product.SellerId != requester.Id && requester.Role != common.RoleAdmin {
		return nil, ErrNoAccessToBids
	}

	bids, err := s.bidRepo.GetProductBids(ctx, productId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}
