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
	"github.com/lib/pq"
)

const productColumns = "id, seller_id, title, description, price, quantity, unit, location, category, image_urls, video_url, bidding_start, bidding_deadline, created_at"

type ProductRepo struct {
	*postgres.Postgres
}

func NewProductRepo(pgdb *postgres.Postgres) *ProductRepo {
	return &ProductRepo{pgdb}
}

func scanProduct(row interface{ Scan(...any) error }) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(&product.Id, &product.SellerId, &product.Title, &product.Description,
		&product.Price, &product.Quantity, &product.Unit, &product.Location, &product.Category,
		pq.Array(&product.ImageUrls), &product.VideoUrl, &product.BiddingStart,
		&product.BiddingDeadline, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &product, nil
}

func (r *ProductRepo) CreateProduct(ctx context.Context, input *entity.CreateProductInput) (uuid.UUID, error) {
	sellerUuid, err := uuid.Parse(input.SellerId)
	if err != nil {
		return uuid.Nil, err
	}

	createProductSql, args, _ := r.SqlBuilder.
		Insert("products").
		Columns("seller_id", "title", "description", "price", "quantity", "unit",
			"location", "category", "image_urls", "video_url", "bidding_start", "bidding_deadline").
		Values(sellerUuid, input.Title, input.Description, input.Price, input.Quantity, input.Unit,
			input.Location, input.Category, pq.Array(input.ImageUrls), input.VideoUrl,
			input.BiddingStart, input.BiddingDeadline).
		Suffix("RETURNING id").
		ToSql()

	var productId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createProductSql, args...).Scan(&productId); err != nil {
		return uuid.Nil, err
	}

	return productId, nil
}

func (r *ProductRepo) GetProductById(ctx context.Context, id string) (*entity.Product, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getProductSql, args, _ := r.SqlBuilder.
		Select(productColumns).
		From("products").
		Where("id = ?", uuidForm).
		ToSql()

	return scanProduct(r.Database.QueryRowContext(ctx, getProductSql, args...))
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args []any) ([]entity.Product, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return products, err
		}
		products = append(products, *product)
	}
	if err = rows.Err(); err != nil {
		return products, err
	}

	return products, nil
}

func (r *ProductRepo) GetLatestProducts(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Product, error) {
	query := r.SqlBuilder.
		Select(productColumns).
		From("products").
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit))

	if category != "" {
		query = query.Where("category = ?", category)
	}

	getLatestSql, args, _ := query.ToSql()

	return r.queryProducts(ctx, getLatestSql, args)
}

func (r *ProductRepo) GetSellerProducts(ctx context.Context, sellerId string, pg *entity.PaginationInput) ([]entity.Product, error) {
	uuidForm, err := uuid.Parse(sellerId)
	if err != nil {
		return nil, err
	}

	getSellerProductsSql, args, _ := r.SqlBuilder.
		Select(productColumns).
		From("products").
		Where("seller_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryProducts(ctx, getSellerProductsSql, args)
}

func (r *ProductRepo) GetProductsWithExpiredBidding(ctx context.Context, now time.Time) ([]entity.Product, error) {
	getExpiredSql, args, _ := r.SqlBuilder.
		Select(productColumns).
		From("products").
		Where("products.bidding_deadline IS NOT NULL").
		Where("products.bidding_deadline < ?", now).
		Where("EXISTS (SELECT 1 FROM bids WHERE bids.product_id = products.id AND bids.status = ?)", common.BidPending).
		ToSql()

	return r.queryProducts(ctx, getExpiredSql, args)
}
