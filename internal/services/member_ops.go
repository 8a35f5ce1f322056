package services

import (
	"context"
	"net/url"
	"time"

	apperrors "famfin/internal/errors"
	"famfin/internal/models"
	"famfin/internal/validator"
)

// AddMember validates the draft and creates a family member, synthesizing a
// default avatar reference when none is provided.
func (s *financeService) AddMember(ctx context.Context, draft MemberDraft) (*models.FamilyMember, error) {
	fields := make(map[string]string)
	if verr := validator.Check(draft); verr != nil {
		fields = verr.Fields
	}
	if draft.MonthlyIncome.IsNegative() {
		fields["monthly_income"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	avatar := draft.AvatarURL
	if avatar == "" {
		avatar = "https://ui-avatars.com/api/?name=" + url.QueryEscape(draft.Name)
	}

	now := time.Now()
	member := models.FamilyMember{
		Base:          models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:        s.ownerID,
		Name:          draft.Name,
		Role:          draft.Role,
		AvatarURL:     avatar,
		MonthlyIncome: draft.MonthlyIncome,
		Color:         draft.Color,
		IsActive:      true,
	}

	stored := s.store.InsertMember(member)
	if err := s.loader.InsertMember(ctx, &stored); err != nil {
		s.store.RemoveMember(stored.ID)
		s.log.Errorw("member write failed, rolled back", "id", stored.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	return &stored, nil
}

// UpdateMember merges a partial patch into an existing family member.
func (s *financeService) UpdateMember(ctx context.Context, id string, patch models.MemberPatch) (*models.FamilyMember, error) {
	current, ok := s.store.Member(id)
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}

	fields := make(map[string]string)
	if patch.Name != nil && *patch.Name == "" {
		fields["name"] = "is required"
	}
	if patch.MonthlyIncome != nil && patch.MonthlyIncome.IsNegative() {
		fields["monthly_income"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	updated := current
	patch.Apply(&updated)

	if err := s.loader.UpdateMember(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateMember(id, patch)
	return &updated, nil
}

// DeleteMember removes a family member by id. Accounts and transactions
// referencing the member keep their reference.
func (s *financeService) DeleteMember(ctx context.Context, id string) error {
	if _, ok := s.store.Member(id); !ok {
		return apperrors.ErrMemberNotFound
	}
	if err := s.loader.DeleteMember(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.RemoveMember(id)
	return nil
}
