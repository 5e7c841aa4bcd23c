package service

import (
	"context"
	"errors"
	"time"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"
	"agromarket-api/pkg/logger"
)

const (
	// Third abandonment triggers a suspension.
	abandonThreshold = 3
	// Suspension length once the threshold is crossed.
	suspensionPeriod = 7 * 24 * time.Hour
)

type PenaltyService struct {
	penaltyRepo repo.Penalty
	userRepo    repo.User
	bidRepo     repo.Bid
	productRepo repo.Product
	notifier    notifier
	cfg         Config
}

func NewPenaltyService(repos *repo.Repositories, cfg Config) *PenaltyService {
	return &PenaltyService{
		penaltyRepo: repos.Penalty,
		userRepo:    repos.User,
		bidRepo:     repos.Bid,
		productRepo: repos.Product,
		notifier:    notifier{repos.Notification},
		cfg:         cfg,
	}
}

func logAbandonmentPolicyFailure(userId string, bidId string, err error) {
	logger.Error("abandonment policy failed", map[string]any{
		"user_id": userId,
		"bid_id":  bidId,
		"error":   err.Error(),
	})
}

// RecordAbandonment bumps the user's abandonment counter and applies a
// suspension when the threshold is crossed. The counter update and the
// conditional suspension write are both single atomic statements, so
// concurrent sweeps cannot lose increments or double-suspend.
func (s *PenaltyService) RecordAbandonment(ctx context.Context, userId string) (bool, error) {
	count, err := s.userRepo.IncrementAbandonCount(ctx, userId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return false, ErrUserNotFound
		}

		return false, err
	}

	if !s.thresholdCrossed(count) {
		return false, nil
	}

	until := time.Now().UTC().Add(suspensionPeriod)
	applied, err := s.userRepo.ApplySuspension(ctx, userId, until, s.cfg.SuspensionResetOnApply)
	if err != nil {
		return false, err
	}
	if !applied {
		// Already under an active suspension; the window is never
		// extended by further abandonments.
		return false, nil
	}

	s.notifier.notify(ctx, userId, common.NotificationSystem,
		"বিড স্থগিতাদেশ",
		"পরপর তিনটি বিড পরিত্যাগের কারণে ৭ দিনের জন্য আপনার বিড করার ক্ষমতা স্থগিত করা হয়েছে।",
		map[string]any{"action": "bid_suspension", "until": until.Format(time.RFC3339)})

	return true, nil
}

// thresholdCrossed decides whether the new counter value opens a
// suspension window. Under the reset policy the counter starts over after
// each suspension, so any value at or past the threshold counts. Under
// the cumulative policy only every third abandonment does.
func (s *PenaltyService) thresholdCrossed(count int) bool {
	if count < abandonThreshold {
		return false
	}

	if s.cfg.SuspensionResetOnApply {
		return true
	}

	return count%abandonThreshold == 0
}

// requireAdmin loads the acting user and checks the admin role.
func (s *PenaltyService) requireAdmin(ctx context.Context, adminId string) error {
	admin, err := s.userRepo.GetUserById(ctx, adminId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrUserNotFound
		}

		return err
	}

	if admin.Role != common.RoleAdmin {
		return ErrUserIsNotAdmin
	}

	return nil
}

func (s *PenaltyService) ApplyPenalty(ctx context.Context, adminId string, input *entity.CreatePenaltyInput) (*entity.PenaltyOutputModel, error) {
	if err := s.requireAdmin(ctx, adminId); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserById(ctx, input.UserId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if _, err := s.bidRepo.GetBidById(ctx, input.BidId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if _, err := s.productRepo.GetProductById(ctx, input.ProductId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	id, err := s.penaltyRepo.CreatePenalty(ctx, input)
	if err != nil {
		return nil, err
	}

	penalty, err := s.penaltyRepo.GetPenaltyById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	s.notifier.notify(ctx, input.UserId, common.NotificationSystem,
		"জরিমানা আরোপ করা হয়েছে",
		input.Description,
		map[string]any{"penalty_id": id.String(), "bid_id": input.BidId, "product_id": input.ProductId, "action": "penalty_applied"})

	return mapPenalty(penalty), nil
}

func (s *PenaltyService) GetUserPenalties(ctx context.Context, adminId string, userId string, pg *entity.PaginationInput) ([]entity.PenaltyOutputModel, error) {
	if err := s.requireAdmin(ctx, adminId); err != nil {
		return nil, err
	}

	penalties, err := s.penaltyRepo.GetUserPenalties(ctx, userId, pg)
	if err != nil {
		return nil, err
	}

	return mapPenalties(penalties), nil
}

func (s *PenaltyService) ResolvePenalty(ctx context.Context, adminId string, penaltyId string, resolution string) (*entity.PenaltyOutputModel, error) {
	if err := s.requireAdmin(ctx, adminId); err != nil {
		return nil, err
	}

	if _, err := common.ParsePenaltyResolution(resolution); err != nil {
		return nil, err
	}

	if _, err := s.penaltyRepo.GetPenaltyById(ctx, penaltyId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPenaltyNotFound
		}

		return nil, err
	}

	resolved, err := s.penaltyRepo.ResolvePenalty(ctx, penaltyId, resolution, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !resolved {
		return nil, ErrPenaltyAlreadyResolved
	}

	penalty, err := s.penaltyRepo.GetPenaltyById(ctx, penaltyId)
	if err != nil {
		return nil, err
	}

	return mapPenalty(penalty), nil
}
