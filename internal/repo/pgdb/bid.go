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

const bidColumns = "id, product_id, buyer_id, amount, status, created_at, confirmation_deadline, confirmed_at, abandoned_at"

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func scanBid(row interface{ Scan(...any) error }) (*entity.Bid, error) {
	var bid entity.Bid
	err := row.Scan(&bid.Id, &bid.ProductId, &bid.BuyerId, &bid.Amount, &bid.Status,
		&bid.CreatedAt, &bid.ConfirmationDeadline, &bid.ConfirmedAt, &bid.AbandonedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	if _, err := common.ParseBidStatus(bid.Status); err != nil {
		return nil, err
	}

	return &bid, nil
}

func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	productUuid, err := uuid.Parse(input.ProductId)
	if err != nil {
		return uuid.Nil, err
	}

	buyerUuid, err := uuid.Parse(input.BuyerId)
	if err != nil {
		return uuid.Nil, err
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bids").
		Columns("product_id", "buyer_id", "amount", "status").
		Values(productUuid, buyerUuid, input.Amount, common.BidPending).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createBidSql, args...).Scan(&bidId); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bids").
		Where("id = ?", uuidForm).
		ToSql()

	return scanBid(r.Database.QueryRowContext(ctx, getBidSql, args...))
}

func (r *BidRepo) queryBids(ctx context.Context, query string, args []any) ([]entity.Bid, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return bids, err
		}
		bids = append(bids, *bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) GetUserBids(ctx context.Context, buyerId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(buyerId)
	if err != nil {
		return nil, err
	}

	getUserBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bids").
		Where("buyer_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getUserBidsSql, args)
}

func (r *BidRepo) GetProductBids(ctx context.Context, productId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(productId)
	if err != nil {
		return nil, err
	}

	getProductBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bids").
		Where("product_id = ?", uuidForm).
		OrderBy("amount DESC, created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getProductBidsSql, args)
}

func (r *BidRepo) GetPendingProductBids(ctx context.Context, productId string) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(productId)
	if err != nil {
		return nil, err
	}

	// Ordered so the first row is the auction winner: highest amount,
	// earliest bid on equal amounts.
	getPendingSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bids").
		Where("product_id = ?", uuidForm).
		Where("status = ?", common.BidPending).
		OrderBy("amount DESC, created_at ASC").
		ToSql()

	return r.queryBids(ctx, getPendingSql, args)
}

func (r *BidRepo) GetExpiredAcceptedBids(ctx context.Context, now time.Time) ([]entity.Bid, error) {
	getExpiredSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bids").
		Where("status = ?", common.BidAccepted).
		Where("confirmation_deadline < ?", now).
		ToSql()

	return r.queryBids(ctx, getExpiredSql, args)
}

func (r *BidRepo) UpdateBidStatusIfCurrent(ctx context.Context, id string, fromStatus, toStatus string, patch *entity.BidStatusPatch) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	update := r.SqlBuilder.
		Update("bids").
		Set("status", toStatus).
		Where("id = ?", uuidForm).
		Where("status = ?", fromStatus)

	if patch != nil {
		if patch.ConfirmationDeadline != nil {
			update = update.Set("confirmation_deadline", *patch.ConfirmationDeadline)
		}
		if patch.ConfirmedAt != nil {
			update = update.Set("confirmed_at", *patch.ConfirmedAt)
		}
		if patch.AbandonedAt != nil {
			update = update.Set("abandoned_at", *patch.AbandonedAt)
		}
	}

	updateStatusSql, args, _ := update.ToSql()

	result, err := r.Database.ExecContext(ctx, updateStatusSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
