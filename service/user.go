package service

import (
	"context"
	"luxefurnish/domain"
)

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) domain.UserUseCase {
	return &userService{repo: repo}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if !isValidID(id) {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if !isValidID(id) {
		return domain.ErrUserNotFound
	}
	return s.repo.DeleteUser(ctx, id)
}
