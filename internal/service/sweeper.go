package service

import (
	"context"
	"time"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/pkg/logger"

	"github.com/google/uuid"
)

// SweeperService forces transitions on bids and auctions whose deadlines
// have elapsed. Every transition is a conditional status update, so two
// overlapping sweeps never process the same bid twice.
type SweeperService struct {
	bidRepo     repo.Bid
	productRepo repo.Product
	penalty     Penalty
	publisher   EventPublisher
	notifier    notifier
}

func NewSweeperService(repos *repo.Repositories, penalty Penalty, publisher EventPublisher) *SweeperService {
	return &SweeperService{
		bidRepo:     repos.Bid,
		productRepo: repos.Product,
		penalty:     penalty,
		publisher:   publisher,
		notifier:    notifier{repos.Notification},
	}
}

func (s *SweeperService) publishTransition(ctx context.Context, bid *entity.Bid, status string) {
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

// SweepExpired abandons every accepted bid whose confirmation deadline
// has passed. Failures on one bid are logged and never block the rest of
// the pass.
func (s *SweeperService) SweepExpired(ctx context.Context) (*entity.SweepSummary, error) {
	now := time.Now().UTC()

	expired, err := s.bidRepo.GetExpiredAcceptedBids(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := &entity.SweepSummary{}
	for i := range expired {
		bid := expired[i]

		abandonedAt := time.Now().UTC()
		moved, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, bid.Id.String(),
			common.BidAccepted, common.BidAbandoned,
			&entity.BidStatusPatch{AbandonedAt: &abandonedAt})
		if err != nil {
			logger.Error("sweep: failed to abandon bid", map[string]any{
				"bid_id": bid.Id.String(),
				"error":  err.Error(),
			})
			continue
		}
		if !moved {
			// Another sweep or the buyer got there first.
			continue
		}

		summary.BidsAbandoned++

		title := ""
		if product, err := s.productRepo.GetProductById(ctx, bid.ProductId.String()); err == nil {
			title = product.Title
		}
		s.notifier.notify(ctx, bid.BuyerId.String(), common.NotificationBid,
			"বিডের সময়সীমা শেষ",
			"\""+title+"\" পণ্যে আপনার গৃহীত বিড সময়মতো নিশ্চিত না করায় বাতিল করা হয়েছে।",
			map[string]any{"bid_id": bid.Id.String(), "product_id": bid.ProductId.String(), "action": common.BidAbandoned})

		suspended, err := s.penalty.RecordAbandonment(ctx, bid.BuyerId.String())
		if err != nil {
			logAbandonmentPolicyFailure(bid.BuyerId.String(), bid.Id.String(), err)
		} else if suspended {
			summary.UsersSuspended++
		}

		s.publishTransition(ctx, &bid, common.BidAbandoned)
	}

	logger.Info("sweep pass finished", map[string]any{
		"bids_abandoned":  summary.BidsAbandoned,
		"users_suspended": summary.UsersSuspended,
	})

	return summary, nil
}

// ResolveExpiredAuctions closes the bidding of every product whose
// deadline has elapsed: the highest pending bid (earliest on equal
// amounts) is accepted with a fresh confirmation deadline, the rest are
// rejected.
func (s *SweeperService) ResolveExpiredAuctions(ctx context.Context) (*entity.ResolutionSummary, error) {
	now := time.Now().UTC()

	products, err := s.productRepo.GetProductsWithExpiredBidding(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := &entity.ResolutionSummary{}
	for i := range products {
		product := products[i]

		pending, err := s.bidRepo.GetPendingProductBids(ctx, product.Id.String())
		if err != nil {
			logger.Error("resolve: failed to list pending bids", map[string]any{
				"product_id": product.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		if len(pending) == 0 {
			continue
		}

		winner := pending[0]
		deadline := time.Now().UTC().Add(ConfirmationWindow)
		won, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, winner.Id.String(),
			common.BidPending, common.BidAccepted,
			&entity.BidStatusPatch{ConfirmationDeadline: &deadline})
		if err != nil {
			logger.Error("resolve: failed to accept winning bid", map[string]any{
				"bid_id": winner.Id.String(),
				"error":  err.Error(),
			})
			continue
		}

		if won {
			s.notifier.notify(ctx, winner.BuyerId.String(), common.NotificationBid,
				"আপনি নিলামে জিতেছেন",
				"\""+product.Title+"\" পণ্যের নিলামে আপনার বিড জয়ী হয়েছে। ৬ ঘন্টার মধ্যে নিশ্চিত করুন।",
				map[string]any{"bid_id": winner.Id.String(), "product_id": product.Id.String(), "action": common.BidAccepted})
			s.publishTransition(ctx, &winner, common.BidAccepted)
		}

		for j := 1; j < len(pending); j++ {
			loser := pending[j]
			rejected, err := s.bidRepo.UpdateBidStatusIfCurrent(ctx, loser.Id.String(),
				common.BidPending, common.BidRejected, nil)
			if err != nil {
				logger.Error("resolve: failed to reject losing bid", map[string]any{
					"bid_id": loser.Id.String(),
					"error":  err.Error(),
				})
				continue
			}
			if !rejected {
				continue
			}

			summary.BidsRejected++
			s.notifier.notify(ctx, loser.BuyerId.String(), common.NotificationBid,
				"নিলাম শেষ হয়েছে",
				"\""+product.Title+"\" পণ্যের নিলাম শেষ হয়েছে। আপনার বিড জয়ী হয়নি।",
				map[string]any{"bid_id": loser.Id.String(), "product_id": product.Id.String(), "action": common.BidRejected})
			s.publishTransition(ctx, &loser, common.BidRejected)
		}

		summary.ProductsResolved++
	}

	logger.Info("auction resolution pass finished", map[string]any{
		"products_resolved": summary.ProductsResolved,
		"bids_rejected":     summary.BidsRejected,
	})

	return summary, nil
}
