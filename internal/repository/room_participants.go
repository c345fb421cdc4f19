package repository

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

// RoomParticipantRepository has no Update: membership rows are immutable.
type RoomParticipantRepository struct {
	participants *table[model.RoomParticipant]
}

func NewRoomParticipantRepository(db DBTX) *RoomParticipantRepository {
	return &RoomParticipantRepository{participants: &table[model.RoomParticipant]{
		db:       db,
		name:     "room_participants",
		notFound: "Participant not found",
	}}
}

func (r *RoomParticipantRepository) FindByID(ctx context.Context, id string) (model.RoomParticipant, error) {
	return r.participants.findOne(ctx, eq("id", id))
}

func (r *RoomParticipantRepository) FindByRoomID(ctx context.Context, roomID string) ([]model.RoomParticipant, error) {
	return r.participants.findMany(ctx, eq("room_id", roomID))
}

func (r *RoomParticipantRepository) FindByUserID(ctx context.Context, userID string) ([]model.RoomParticipant, error) {
	return r.participants.findMany(ctx, eq("user_id", userID))
}

func (r *RoomParticipantRepository) Create(ctx context.Context, record map[string]any) (model.RoomParticipant, error) {
	return r.participants.insert(ctx, record)
}

func (r *RoomParticipantRepository) Delete(ctx context.Context, id string) error {
	return r.participants.delete(ctx, eq("id", id))
}

// DeleteByRoomAndUser removes every membership row of the user in the room.
func (r *RoomParticipantRepository) DeleteByRoomAndUser(ctx context.Context, roomID, userID string) error {
	return r.participants.delete(ctx, eq("room_id", roomID), eq("user_id", userID))
}
