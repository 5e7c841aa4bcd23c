package service

import (
	"context"
	"errors"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"
)

type ProductService struct {
	productRepo repo.Product
	userRepo    repo.User
}

func NewProductService(repos *repo.Repositories) *ProductService {
	return &ProductService{
		productRepo: repos.Product,
		userRepo:    repos.User,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.ProductOutputModel, error) {
	seller, err := s.userRepo.GetUserById(ctx, input.SellerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if seller.Role != common.RoleSeller {
		return nil, ErrUserIsNotSeller
	}

	if input.BiddingStart != nil && input.BiddingDeadline != nil &&
		!input.BiddingStart.Before(*input.BiddingDeadline) {
		return nil, ErrInvalidBiddingWindow
	}

	id, err := s.productRepo.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapProduct(product), nil
}

func (s *ProductService) GetProductById(ctx context.Context, productId string) (*entity.ProductOutputModel, error) {
	product, err := s.productRepo.GetProductById(ctx, productId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return mapProduct(product), nil
}

func (s *ProductService) GetLatestProducts(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.ProductOutputModel, error) {
	products, err := s.productRepo.GetLatestProducts(ctx, category, pg)
	if err != nil {
		return nil, err
	}

	return mapProducts(products), nil
}

func (s *ProductService) GetSellerProducts(ctx context.Context, sellerId string, pg *entity.PaginationInput) ([]entity.ProductOutputModel, error) {
	if _, err := s.userRepo.GetUserById(ctx, sellerId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	products, err := s.productRepo.GetSellerProducts(ctx, sellerId, pg)
	if err != nil {
		return nil, err
	}

	return mapProducts(products), nil
}
