package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, data Record) (model.User, error) {
	return s.repo.Create(ctx, data)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, data Record) (model.User, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
