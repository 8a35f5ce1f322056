package services

import (
	"context"
	"time"

	apperrors "famfin/internal/errors"
	"famfin/internal/models"
	"famfin/internal/validator"
)

// AddAccount validates the draft and creates a bank account or credit card.
// Credit cards require a limit and closing/due days; checking and savings
// accounts require a bank and use the balance, leaving the card fields nil.
func (s *financeService) AddAccount(ctx context.Context, draft AccountDraft) (*models.Account, error) {
	fields := make(map[string]string)
	if verr := validator.Check(draft); verr != nil {
		fields = verr.Fields
	}

	if draft.HolderID != "" {
		if _, ok := s.store.Member(draft.HolderID); !ok {
			fields["holder_id"] = "family member not found"
		}
	}

	if draft.Type == models.AccountTypeCreditCard {
		if draft.CreditLimit == nil || !draft.CreditLimit.IsPositive() {
			fields["credit_limit"] = "must be greater than zero"
		}
		if draft.ClosingDay == nil || *draft.ClosingDay < 1 || *draft.ClosingDay > 31 {
			fields["closing_day"] = "must be a day between 1 and 31"
		}
		if draft.DueDay == nil || *draft.DueDay < 1 || *draft.DueDay > 31 {
			fields["due_day"] = "must be a day between 1 and 31"
		}
	} else {
		if draft.Bank == "" {
			fields["bank"] = "is required"
		}
		if draft.Balance.IsNegative() {
			fields["balance"] = "must not be negative"
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	now := time.Now()
	account := models.Account{
		Base:     models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:   s.ownerID,
		Type:     draft.Type,
		Name:     draft.Name,
		Bank:     draft.Bank,
		HolderID: draft.HolderID,
		Color:    draft.Color,
		Theme:    optional(draft.Theme),
		IsActive: true,
	}

	if draft.Type == models.AccountTypeCreditCard {
		account.CreditLimit = draft.CreditLimit
		account.ClosingDay = draft.ClosingDay
		account.DueDay = draft.DueDay
		last := draft.LastDigits
		if last == "" {
			last = s.digits()
		}
		account.LastDigits = &last
	} else {
		account.Balance = draft.Balance
	}

	stored := s.store.InsertAccount(account)
	if err := s.loader.InsertAccount(ctx, &stored); err != nil {
		s.store.RemoveAccount(stored.ID)
		s.log.Errorw("account write failed, rolled back", "id", stored.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	return &stored, nil
}

// AddCard creates a credit card account regardless of the draft's type field.
func (s *financeService) AddCard(ctx context.Context, draft AccountDraft) (*models.Account, error) {
	draft.Type = models.AccountTypeCreditCard
	return s.AddAccount(ctx, draft)
}

// UpdateAccount merges a partial patch into an existing account.
func (s *financeService) UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	current, ok := s.store.Account(id)
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}

	fields := make(map[string]string)
	if patch.Name != nil && *patch.Name == "" {
		fields["name"] = "is required"
	}
	if patch.HolderID != nil {
		if _, ok := s.store.Member(*patch.HolderID); !ok {
			fields["holder_id"] = "family member not found"
		}
	}
	if current.IsCreditCard() {
		if patch.ClosingDay != nil && (*patch.ClosingDay < 1 || *patch.ClosingDay > 31) {
			fields["closing_day"] = "must be a day between 1 and 31"
		}
		if patch.DueDay != nil && (*patch.DueDay < 1 || *patch.DueDay > 31) {
			fields["due_day"] = "must be a day between 1 and 31"
		}
		if patch.CreditLimit != nil && !patch.CreditLimit.IsPositive() {
			fields["credit_limit"] = "must be greater than zero"
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	updated := current
	patch.Apply(&updated)

	if err := s.loader.UpdateAccount(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateAccount(id, patch)
	return &updated, nil
}

// DeleteAccount removes an account by id. Transactions referencing it are
// kept; their account reference simply stops resolving.
func (s *financeService) DeleteAccount(ctx context.Context, id string) error {
	if _, ok := s.store.Account(id); !ok {
		return apperrors.ErrAccountNotFound
	}
	if err := s.loader.DeleteAccount(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.RemoveAccount(id)
	return nil
}
