// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each service
// forwards one call to its repository; the layer is where rules on
// rooms, invites and votes would live.
package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

// Record is a validated body, column name to value.
type Record = map[string]any

type UserRepository interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, record Record) (model.User, error)
	Update(ctx context.Context, id string, record Record) (model.User, error)
	Delete(ctx context.Context, id string) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id string) (model.Room, error)
	FindByCode(ctx context.Context, code string) (model.Room, error)
	FindAll(ctx context.Context) ([]model.Room, error)
	Create(ctx context.Context, record Record) (model.Room, error)
	Update(ctx context.Context, id string, record Record) (model.Room, error)
	Delete(ctx context.Context, id string) error
}

type RoomParticipantRepository interface {
	FindByID(ctx context.Context, id string) (model.RoomParticipant, error)
	FindByRoomID(ctx context.Context, roomID string) ([]model.RoomParticipant, error)
	FindByUserID(ctx context.Context, userID string) ([]model.RoomParticipant, error)
	Create(ctx context.Context, record Record) (model.RoomParticipant, error)
	Delete(ctx context.Context, id string) error
	DeleteByRoomAndUser(ctx context.Context, roomID, userID string) error
}

type RoomInviteRepository interface {
	FindByID(ctx context.Context, id string) (model.RoomInvite, error)
	FindByCode(ctx context.Context, code string) (model.RoomInvite, error)
	FindByRoomID(ctx context.Context, roomID string) ([]model.RoomInvite, error)
	Create(ctx context.Context, record Record) (model.RoomInvite, error)
	Update(ctx context.Context, id string, record Record) (model.RoomInvite, error)
	Delete(ctx context.Context, id string) error
	IncrementUses(ctx context.Context, id string) (model.RoomInvite, error)
}

type ChoiceRepository interface {
	FindByID(ctx context.Context, id string) (model.Choice, error)
	FindByRoomID(ctx context.Context, roomID string) ([]model.Choice, error)
	Create(ctx context.Context, record Record) (model.Choice, error)
	Update(ctx context.Context, id string, record Record) (model.Choice, error)
	Delete(ctx context.Context, id string) error
	IncrementHits(ctx context.Context, id string) (model.Choice, error)
}
