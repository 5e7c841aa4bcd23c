package service

import (
	"context"
	"errors"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"
)

type NotificationService struct {
	notificationRepo repo.Notification
	userRepo         repo.User
}

func NewNotificationService(repos *repo.Repositories) *NotificationService {
	return &NotificationService{
		notificationRepo: repos.Notification,
		userRepo:         repos.User,
	}
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) (*entity.NotificationFeed, error) {
	if _, err := s.userRepo.GetUserById(ctx, userId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	notifications, err := s.notificationRepo.GetUserNotifications(ctx, userId, pg)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &entity.NotificationFeed{
		Notifications: mapNotifications(notifications),
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationId string, userId string) error {
	marked, err := s.notificationRepo.MarkRead(ctx, notificationId, userId)
	if err != nil {
		return err
	}
	if !marked {
		// Either no such row or it belongs to someone else; the recipient
		// check and existence collapse into one answer on purpose.
		return ErrNotificationNotFound
	}

	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userId string) (int, error) {
	if _, err := s.userRepo.GetUserById(ctx, userId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return 0, ErrUserNotFound
		}

		return 0, err
	}

	return s.notificationRepo.MarkAllRead(ctx, userId)
}
