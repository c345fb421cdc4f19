package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type RoomService struct {
	repo RoomRepository
}

func NewRoomService(repo RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) GetRoomByID(ctx context.Context, id string) (model.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) GetRoomByCode(ctx context.Context, code string) (model.Room, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *RoomService) GetAllRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) CreateRoom(ctx context.Context, data Record) (model.Room, error) {
	return s.repo.Create(ctx, data)
}

// UpdateRoom does not enforce status transitions; any enum value is accepted.
func (s *RoomService) UpdateRoom(ctx context.Context, id string, data Record) (model.Room, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
