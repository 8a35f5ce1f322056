package services

import (
	"context"
	"time"

	apperrors "famfin/internal/errors"
	"famfin/internal/models"
	"famfin/internal/validator"
)

// AddCategory validates the draft and creates a category.
func (s *financeService) AddCategory(ctx context.Context, draft CategoryDraft) (*models.Category, error) {
	if verr := validator.Check(draft); verr != nil {
		return nil, verr
	}

	now := time.Now()
	category := models.Category{
		Base:     models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:   s.ownerID,
		Name:     draft.Name,
		Type:     draft.Type,
		Icon:     draft.Icon,
		Color:    draft.Color,
		IsActive: true,
	}

	stored := s.store.InsertCategory(category)
	if err := s.loader.InsertCategory(ctx, &stored); err != nil {
		s.store.RemoveCategory(stored.ID)
		s.log.Errorw("category write failed, rolled back", "id", stored.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	return &stored, nil
}

// UpdateCategory merges a partial patch into an existing category.
func (s *financeService) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error) {
	current, ok := s.store.Category(id)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}

	if patch.Name != nil && *patch.Name == "" {
		return nil, apperrors.Validation(map[string]string{"name": "is required"})
	}

	updated := current
	patch.Apply(&updated)

	if err := s.loader.UpdateCategory(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateCategory(id, patch)
	return &updated, nil
}

// DeleteCategory removes a category by id. Transactions keep the dangling
// reference; aggregation resolves them to the uncategorized label.
func (s *financeService) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := s.store.Category(id); !ok {
		return apperrors.ErrCategoryNotFound
	}
	if err := s.loader.DeleteCategory(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.RemoveCategory(id)
	return nil
}
