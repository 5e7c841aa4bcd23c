package service

import (
	"context"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/pkg/logger"
)

// notifier writes notification rows as a side effect of lifecycle
// transitions. Delivery is best-effort: a failed write is logged and
// never rolls back the transition that caused it.
type notifier struct {
	notificationRepo repo.Notification
}

func (n *notifier) notify(ctx context.Context, userId string, notifType string, title string, message string, metadata map[string]any) {
	input := &entity.CreateNotificationInput{
		UserId:   userId,
		Type:     notifType,
		Title:    title,
		Message:  message,
		Metadata: metadata,
	}

	if _, err := n.notificationRepo.CreateNotification(ctx, input); err != nil {
		logger.Error("failed to create notification", map[string]any{
			"user_id": userId,
			"type":    notifType,
			"error":   err.Error(),
		})
	}
}
