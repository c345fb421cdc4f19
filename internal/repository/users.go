package repository

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type UserRepository struct {
	users *table[model.User]
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{users: &table[model.User]{
		db:       db,
		name:     "users",
		notFound: "User not found",
	}}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	return r.users.findOne(ctx, eq("id", id))
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	return r.users.findMany(ctx)
}

func (r *UserRepository) Create(ctx context.Context, record map[string]any) (model.User, error) {
	return r.users.insert(ctx, record)
}

func (r *UserRepository) Update(ctx context.Context, id string, record map[string]any) (model.User, error) {
	return r.users.update(ctx, id, record)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.users.delete(ctx, eq("id", id))
}
