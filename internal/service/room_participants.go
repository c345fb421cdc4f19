package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type RoomParticipantService struct {
	repo RoomParticipantRepository
}

func NewRoomParticipantService(repo RoomParticipantRepository) *RoomParticipantService {
	return &RoomParticipantService{repo: repo}
}

func (s *RoomParticipantService) GetParticipantByID(ctx context.Context, id string) (model.RoomParticipant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomParticipantService) GetParticipantsByRoomID(ctx context.Context, roomID string) ([]model.RoomParticipant, error) {
	return s.repo.FindByRoomID(ctx, roomID)
}

func (s *RoomParticipantService) GetParticipantsByUserID(ctx context.Context, userID string) ([]model.RoomParticipant, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// AddParticipant allows the same user to join a room more than once.
func (s *RoomParticipantService) AddParticipant(ctx context.Context, data Record) (model.RoomParticipant, error) {
	return s.repo.Create(ctx, data)
}

func (s *RoomParticipantService) RemoveParticipant(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *RoomParticipantService) RemoveParticipantByRoomAndUser(ctx context.Context, roomID, userID string) error {
	return s.repo.DeleteByRoomAndUser(ctx, roomID, userID)
}
