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

	"github.com/google/uuid"
)

const penaltyColumns = "id, user_id, bid_id, product_id, type, amount, description, status, applied_at, resolved_at"

type PenaltyRepo struct {
	*postgres.Postgres
}

func NewPenaltyRepo(pgdb *postgres.Postgres) *PenaltyRepo {
	return &PenaltyRepo{pgdb}
}

func scanPenalty(row interface{ Scan(...any) error }) (*entity.Penalty, error) {
	var penalty entity.Penalty
	err := row.Scan(&penalty.Id, &penalty.UserId, &penalty.BidId, &penalty.ProductId,
		&penalty.Type, &penalty.Amount, &penalty.Description, &penalty.Status,
		&penalty.AppliedAt, &penalty.ResolvedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &penalty, nil
}

func (r *PenaltyRepo) CreatePenalty(ctx context.Context, input *entity.CreatePenaltyInput) (uuid.UUID, error) {
	userUuid, err := uuid.Parse(input.UserId)
	if err != nil {
		return uuid.Nil, err
	}

	bidUuid, err := uuid.Parse(input.BidId)
	if err != nil {
		return uuid.Nil, err
	}

	productUuid, err := uuid.Parse(input.ProductId)
	if err != nil {
		return uuid.Nil, err
	}

	createPenaltySql, args, _ := r.SqlBuilder.
		Insert("penalties").
		Columns("user_id", "bid_id", "product_id", "type", "amount", "description", "status").
		Values(userUuid, bidUuid, productUuid, input.Type, input.Amount, input.Description, common.PenaltyActive).
		Suffix("RETURNING id").
		ToSql()

	var penaltyId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createPenaltySql, args...).Scan(&penaltyId); err != nil {
		return uuid.Nil, err
	}

	return penaltyId, nil
}

func (r *PenaltyRepo) GetPenaltyById(ctx context.Context, id string) (*entity.Penalty, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getPenaltySql, args, _ := r.SqlBuilder.
		Select(penaltyColumns).
		From("penalties").
		Where("id = ?", uuidForm).
		ToSql()

	return scanPenalty(r.Database.QueryRowContext(ctx, getPenaltySql, args...))
}

func (r *PenaltyRepo) GetUserPenalties(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Penalty, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return nil, err
	}

	getUserPenaltiesSql, args, _ := r.SqlBuilder.
		Select(penaltyColumns).
		From("penalties").
		Where("user_id = ?", uuidForm).
		OrderBy("applied_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getUserPenaltiesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	penalties := make([]entity.Penalty, 0)
	for rows.Next() {
		penalty, err := scanPenalty(rows)
		if err != nil {
			return penalties, err
		}
		penalties = append(penalties, *penalty)
	}
	if err = rows.Err(); err != nil {
		return penalties, err
	}

	return penalties, nil
}

func (r *PenaltyRepo) ResolvePenalty(ctx context.Context, id string, resolution string, resolvedAt time.Time) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	resolveSql, args, _ := r.SqlBuilder.
		Update("penalties").
		Set("status", resolution).
		Set("resolved_at", resolvedAt).
		Where("id = ?", uuidForm).
		Where("status = ?", common.PenaltyActive).
		ToSql()

	result, err := r.Database.ExecContext(ctx, resolveSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
