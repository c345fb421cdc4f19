package repository

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type RoomInviteRepository struct {
	invites *table[model.RoomInvite]
}

func NewRoomInviteRepository(db DBTX) *RoomInviteRepository {
	return &RoomInviteRepository{invites: &table[model.RoomInvite]{
		db:       db,
		name:     "room_invites",
		notFound: "Invite not found",
		defaults: map[string]any{
			"max_uses": int64(model.DefaultInviteMaxUses),
			"uses":     int64(0),
		},
	}}
}

func (r *RoomInviteRepository) FindByID(ctx context.Context, id string) (model.RoomInvite, error) {
	return r.invites.findOne(ctx, eq("id", id))
}

func (r *RoomInviteRepository) FindByCode(ctx context.Context, code string) (model.RoomInvite, error) {
	return r.invites.findOne(ctx, eq("code", code))
}

func (r *RoomInviteRepository) FindByRoomID(ctx context.Context, roomID string) ([]model.RoomInvite, error) {
	return r.invites.findMany(ctx, eq("room_id", roomID))
}

func (r *RoomInviteRepository) Create(ctx context.Context, record map[string]any) (model.RoomInvite, error) {
	return r.invites.insert(ctx, record)
}

func (r *RoomInviteRepository) Update(ctx context.Context, id string, record map[string]any) (model.RoomInvite, error) {
	return r.invites.update(ctx, id, record)
}

func (r *RoomInviteRepository) Delete(ctx context.Context, id string) error {
	return r.invites.delete(ctx, eq("id", id))
}

// IncrementUses adds one to uses. It does not check max_uses.
func (r *RoomInviteRepository) IncrementUses(ctx context.Context, id string) (model.RoomInvite, error) {
	return r.invites.increment(ctx, id, "uses")
}
