package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo/repo_errors"
	"agromarket-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getUserSql, args, _ := r.SqlBuilder.
		Select("id, name, email, role, phone, address, avatar_url, rating, review_count, abandon_count, bid_suspension_until, created_at").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	var user entity.User
	row := r.Database.QueryRowContext(ctx, getUserSql, args...)
	err = row.Scan(&user.Id, &user.Name, &user.Email, &user.Role, &user.Phone, &user.Address,
		&user.AvatarUrl, &user.Rating, &user.ReviewCount, &user.AbandonCount,
		&user.BidSuspensionUntil, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	if _, err := common.ParseRole(user.Role); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) IncrementAbandonCount(ctx context.Context, id string) (int, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return 0, err
	}

	incrementSql, args, _ := r.SqlBuilder.
		Update("users").
		Set("abandon_count", squirrel.Expr("abandon_count + ?", 1)).
		Where("id = ?", uuidForm).
		Suffix("RETURNING abandon_count").
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, incrementSql, args...).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repo_errors.ErrNotFound
		}

		return 0, err
	}

	return count, nil
}

func (r *UserRepo) ApplySuspension(ctx context.Context, id string, until time.Time, resetCount bool) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	update := r.SqlBuilder.
		Update("users").
		Set("bid_suspension_until", until).
		Where("id = ?", uuidForm).
		Where("bid_suspension_until IS NULL OR bid_suspension_until < ?", time.Now().UTC())

	if resetCount {
		update = update.Set("abandon_count", 0)
	}

	applySql, args, _ := update.ToSql()

	result, err := r.Database.ExecContext(ctx, applySql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
