package repository

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type ChoiceRepository struct {
	choices *table[model.Choice]
}

func NewChoiceRepository(db DBTX) *ChoiceRepository {
	return &ChoiceRepository{choices: &table[model.Choice]{
		db:       db,
		name:     "choices",
		notFound: "Choice not found",
		defaults: map[string]any{"hits": int64(0)},
	}}
}

func (r *ChoiceRepository) FindByID(ctx context.Context, id string) (model.Choice, error) {
	return r.choices.findOne(ctx, eq("id", id))
}

func (r *ChoiceRepository) FindByRoomID(ctx context.Context, roomID string) ([]model.Choice, error) {
	return r.choices.findMany(ctx, eq("room_id", roomID))
}

func (r *ChoiceRepository) Create(ctx context.Context, record map[string]any) (model.Choice, error) {
	return r.choices.insert(ctx, record)
}

func (r *ChoiceRepository) Update(ctx context.Context, id string, record map[string]any) (model.Choice, error) {
	return r.choices.update(ctx, id, record)
}

func (r *ChoiceRepository) Delete(ctx context.Context, id string) error {
	return r.choices.delete(ctx, eq("id", id))
}

// IncrementHits records one vote. Concurrent votes never lose an update.
func (r *ChoiceRepository) IncrementHits(ctx context.Context, id string) (model.Choice, error) {
	return r.choices.increment(ctx, id, "hits")
}
