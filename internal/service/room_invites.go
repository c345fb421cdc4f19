package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type RoomInviteService struct {
	repo RoomInviteRepository
}

func NewRoomInviteService(repo RoomInviteRepository) *RoomInviteService {
	return &RoomInviteService{repo: repo}
}

func (s *RoomInviteService) GetInviteByID(ctx context.Context, id string) (model.RoomInvite, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomInviteService) GetInviteByCode(ctx context.Context, code string) (model.RoomInvite, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *RoomInviteService) GetInvitesByRoomID(ctx context.Context, roomID string) ([]model.RoomInvite, error) {
	return s.repo.FindByRoomID(ctx, roomID)
}

func (s *RoomInviteService) CreateInvite(ctx context.Context, data Record) (model.RoomInvite, error) {
	return s.repo.Create(ctx, data)
}

func (s *RoomInviteService) UpdateInvite(ctx context.Context, id string, data Record) (model.RoomInvite, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *RoomInviteService) DeleteInvite(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UseInvite counts one use. An invite past max_uses can still be used.
func (s *RoomInviteService) UseInvite(ctx context.Context, id string) (model.RoomInvite, error) {
	return s.repo.IncrementUses(ctx, id)
}
