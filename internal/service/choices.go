package service

import (
	"context"

	"github.com/choice-battle/backend/internal/model"
)

type ChoiceService struct {
	repo ChoiceRepository
}

func NewChoiceService(repo ChoiceRepository) *ChoiceService {
	return &ChoiceService{repo: repo}
}

func (s *ChoiceService) GetChoiceByID(ctx context.Context, id string) (model.Choice, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ChoiceService) GetChoicesByRoomID(ctx context.Context, roomID string) ([]model.Choice, error) {
	return s.repo.FindByRoomID(ctx, roomID)
}

func (s *ChoiceService) CreateChoice(ctx context.Context, data Record) (model.Choice, error) {
	return s.repo.Create(ctx, data)
}

func (s *ChoiceService) UpdateChoice(ctx context.Context, id string, data Record) (model.Choice, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *ChoiceService) DeleteChoice(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ChoiceService) VoteForChoice(ctx context.Context, id string) (model.Choice, error) {
	return s.repo.IncrementHits(ctx, id)
}
