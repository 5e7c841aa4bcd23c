package service

import (
	"context"
	"errors"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"
)

type UserService struct {
	userRepo repo.User
}

func NewUserService(repos *repo.Repositories) *UserService {
	return &UserService{userRepo: repos.User}
}

func (s *UserService) GetUserById(ctx context.Context, userId string) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return mapUser(user), nil
}
