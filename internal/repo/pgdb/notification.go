package pgdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo/repo_errors"
	"agromarket-api/pkg/postgres"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	*postgres.Postgres
}

func NewNotificationRepo(pgdb *postgres.Postgres) *NotificationRepo {
	return &NotificationRepo{pgdb}
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, input *entity.CreateNotificationInput) (uuid.UUID, error) {
	userUuid, err := uuid.Parse(input.UserId)
	if err != nil {
		return uuid.Nil, err
	}

	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	metadataJson, err := json.Marshal(metadata)
	if err != nil {
		return uuid.Nil, err
	}

	createNotificationSql, args, _ := r.SqlBuilder.
		Insert("notifications").
		Columns("user_id", "type", "title", "message", "metadata").
		Values(userUuid, input.Type, input.Title, input.Message, metadataJson).
		Suffix("RETURNING id").
		ToSql()

	var notificationId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createNotificationSql, args...).Scan(&notificationId); err != nil {
		return uuid.Nil, err
	}

	return notificationId, nil
}

func (r *NotificationRepo) GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Notification, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return nil, err
	}

	getNotificationsSql, args, _ := r.SqlBuilder.
		Select("id, user_id, type, title, message, is_read, metadata, created_at").
		From("notifications").
		Where("user_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getNotificationsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]entity.Notification, 0)
	for rows.Next() {
		var notification entity.Notification
		var metadataJson []byte
		if err := rows.Scan(&notification.Id, &notification.UserId, &notification.Type,
			&notification.Title, &notification.Message, &notification.IsRead,
			&metadataJson, &notification.CreatedAt); err != nil {
			return notifications, err
		}
		if len(metadataJson) > 0 {
			if err := json.Unmarshal(metadataJson, &notification.Metadata); err != nil {
				return notifications, err
			}
		}
		notifications = append(notifications, notification)
	}
	if err = rows.Err(); err != nil {
		return notifications, err
	}

	return notifications, nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userId string) (int, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return 0, err
	}

	countSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("notifications").
		Where("user_id = ?", uuidForm).
		Where("is_read = false").
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repo_errors.ErrNotFound
		}

		return 0, err
	}

	return count, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string, userId string) (bool, error) {
	notificationUuid, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	userUuid, err := uuid.Parse(userId)
	if err != nil {
		return false, err
	}

	markReadSql, args, _ := r.SqlBuilder.
		Update("notifications").
		Set("is_read", true).
		Where("id = ?", notificationUuid).
		Where("user_id = ?", userUuid).
		ToSql()

	result, err := r.Database.ExecContext(ctx, markReadSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userId string) (int, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return 0, err
	}

	markAllSql, args, _ := r.SqlBuilder.
		Update("notifications").
		Set("is_read", true).
		Where("user_id = ?", uuidForm).
		Where("is_read = false").
		ToSql()

	result, err := r.Database.ExecContext(ctx, markAllSql, args...)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}
