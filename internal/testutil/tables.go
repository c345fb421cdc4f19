package testutil

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type Users struct{ *table[model.User] }

func (u *Users) FindByID(_ context.Context, id string) (model.User, error) {
	return u.find("id", id)
}

func (u *Users) FindAll(context.Context) ([]model.User, error) {
	return u.all()
}

func (u *Users) Create(_ context.Context, record map[string]any) (model.User, error) {
	return u.insert(record)
}

func (u *Users) Update(_ context.Context, id string, record map[string]any) (model.User, error) {
	return u.update(id, record)
}

func (u *Users) Delete(_ context.Context, id string) error {
	return u.delete(byID(id))
}

type Rooms struct{ *table[model.Room] }

func (r *Rooms) FindByID(_ context.Context, id string) (model.Room, error) {
	return r.find("id", id)
}

func (r *Rooms) FindByCode(_ context.Context, code string) (model.Room, error) {
	return r.find("code", code)
}

func (r *Rooms) FindAll(context.Context) ([]model.Room, error) {
	return r.all()
}

func (r *Rooms) Create(_ context.Context, record map[string]any) (model.Room, error) {
	return r.insert(record)
}

func (r *Rooms) Update(_ context.Context, id string, record map[string]any) (model.Room, error) {
	return r.update(id, record)
}

func (r *Rooms) Delete(_ context.Context, id string) error {
	return r.delete(byID(id))
}

type RoomParticipants struct{ *table[model.RoomParticipant] }

func (p *RoomParticipants) FindByID(_ context.Context, id string) (model.RoomParticipant, error) {
	return p.find("id", id)
}

func (p *RoomParticipants) FindByRoomID(_ context.Context, roomID string) ([]model.RoomParticipant, error) {
	return p.where("room_id", roomID)
}

func (p *RoomParticipants) FindByUserID(_ context.Context, userID string) ([]model.RoomParticipant, error) {
	return p.where("user_id", userID)
}

func (p *RoomParticipants) Create(_ context.Context, record map[string]any) (model.RoomParticipant, error) {
	return p.insert(record)
}

func (p *RoomParticipants) Delete(_ context.Context, id string) error {
	return p.delete(byID(id))
}

func (p *RoomParticipants) DeleteByRoomAndUser(_ context.Context, roomID, userID string) error {
	return p.delete(func(r map[string]any) bool {
		return r["room_id"] == roomID && r["user_id"] == userID
	})
}

type RoomInvites struct{ *table[model.RoomInvite] }

func (i *RoomInvites) FindByID(_ context.Context, id string) (model.RoomInvite, error) {
	return i.find("id", id)
}

func (i *RoomInvites) FindByCode(_ context.Context, code string) (model.RoomInvite, error) {
	return i.find("code", code)
}

func (i *RoomInvites) FindByRoomID(_ context.Context, roomID string) ([]model.RoomInvite, error) {
	return i.where("room_id", roomID)
}

func (i *RoomInvites) Create(_ context.Context, record map[string]any) (model.RoomInvite, error) {
	return i.insert(record)
}

func (i *RoomInvites) Update(_ context.Context, id string, record map[string]any) (model.RoomInvite, error) {
	return i.update(id, record)
}

func (i *RoomInvites) Delete(_ context.Context, id string) error {
	return i.delete(byID(id))
}

func (i *RoomInvites) IncrementUses(_ context.Context, id string) (model.RoomInvite, error) {
	return i.increment(id, "uses")
}

type Choices struct{ *table[model.Choice] }

func (c *Choices) FindByID(_ context.Context, id string) (model.Choice, error) {
	return c.find("id", id)
}

func (c *Choices) FindByRoomID(_ context.Context, roomID string) ([]model.Choice, error) {
	return c.where("room_id", roomID)
}

func (c *Choices) Create(_ context.Context, record map[string]any) (model.Choice, error) {
	return c.insert(record)
}

func (c *Choices) Update(_ context.Context, id string, record map[string]any) (model.Choice, error) {
	return c.update(id, record)
}

func (c *Choices) Delete(_ context.Context, id string) error {
	return c.delete(byID(id))
}

func (c *Choices) IncrementHits(_ context.Context, id string) (model.Choice, error) {
	return c.increment(id, "hits")
}
