package services

import (
	"context"
	"time"

	apperrors "famfin/internal/errors"
	"famfin/internal/models"
	"famfin/internal/validator"
)

// AddGoal validates the draft and creates a savings goal. Goals carry no
// cross-entity references, so there is nothing further to resolve.
func (s *financeService) AddGoal(ctx context.Context, draft GoalDraft) (*models.Goal, error) {
	fields := make(map[string]string)
	if verr := validator.Check(draft); verr != nil {
		fields = verr.Fields
	}
	if !draft.TargetAmount.IsPositive() {
		fields["target_amount"] = "must be greater than zero"
	}
	if draft.CurrentAmount.IsNegative() {
		fields["current_amount"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	now := time.Now()
	goal := models.Goal{
		Base:          models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:        s.ownerID,
		Name:          draft.Name,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: draft.CurrentAmount,
		Deadline:      draft.Deadline,
		Icon:          draft.Icon,
		Color:         draft.Color,
	}

	stored := s.store.InsertGoal(goal)
	if err := s.loader.InsertGoal(ctx, &stored); err != nil {
		s.store.RemoveGoal(stored.ID)
		s.log.Errorw("goal write failed, rolled back", "id", stored.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	return &stored, nil
}

// UpdateGoal merges a partial patch into an existing goal. Progress past the
// target is allowed; only structurally invalid values are rejected.
func (s *financeService) UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) (*models.Goal, error) {
	current, ok := s.store.Goal(id)
	if !ok {
		return nil, apperrors.ErrGoalNotFound
	}

	fields := make(map[string]string)
	if patch.Name != nil && *patch.Name == "" {
		fields["name"] = "is required"
	}
	if patch.TargetAmount != nil && !patch.TargetAmount.IsPositive() {
		fields["target_amount"] = "must be greater than zero"
	}
	if patch.CurrentAmount != nil && patch.CurrentAmount.IsNegative() {
		fields["current_amount"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	updated := current
	patch.Apply(&updated)

	if err := s.loader.UpdateGoal(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateGoal(id, patch)
	return &updated, nil
}

// DeleteGoal removes a goal by id.
func (s *financeService) DeleteGoal(ctx context.Context, id string) error {
	if _, ok := s.store.Goal(id); !ok {
		return apperrors.ErrGoalNotFound
	}
	if err := s.loader.DeleteGoal(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.RemoveGoal(id)
	return nil
}
