package repository

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type RoomRepository struct {
	rooms *table[model.Room]
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{rooms: &table[model.Room]{
		db:       db,
		name:     "rooms",
		notFound: "Room not found",
		defaults: map[string]any{"status": string(model.RoomStatusLobby)},
	}}
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (model.Room, error) {
	return r.rooms.findOne(ctx, eq("id", id))
}

func (r *RoomRepository) FindByCode(ctx context.Context, code string) (model.Room, error) {
	return r.rooms.findOne(ctx, eq("code", code))
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]model.Room, error) {
	return r.rooms.findMany(ctx)
}

// Create inserts a room; status defaults to lobby.
func (r *RoomRepository) Create(ctx context.Context, record map[string]any) (model.Room, error) {
	return r.rooms.insert(ctx, record)
}

func (r *RoomRepository) Update(ctx context.Context, id string, record map[string]any) (model.Room, error) {
	return r.rooms.update(ctx, id, record)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.rooms.delete(ctx, eq("id", id))
}
