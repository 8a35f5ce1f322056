package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	apperrors "famfin/internal/errors"
	"famfin/internal/models"
	"famfin/internal/validator"
)

// AddTransaction validates the draft and creates a new transaction. The
// entry is inserted optimistically and rolled back if the remote write
// fails. When the target account is a credit card, installments apply and
// the recurring flag is forced off; on regular accounts it is the reverse.
func (s *financeService) AddTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error) {
	fields := make(map[string]string)
	if verr := validator.Check(draft); verr != nil {
		fields = verr.Fields
	}

	if !draft.Amount.IsPositive() {
		fields["amount"] = "must be greater than zero"
	}

	var account models.Account
	if draft.AccountID != "" {
		var ok bool
		account, ok = s.store.Account(draft.AccountID)
		if !ok {
			fields["account_id"] = "account or card not found"
		}
	}

	if draft.MemberID != "" {
		if _, ok := s.store.Member(draft.MemberID); !ok {
			fields["member_id"] = "family member not found"
		}
	}

	if draft.Status != "" &&
		draft.Status != models.TransactionStatusPending &&
		draft.Status != models.TransactionStatusCompleted {
		fields["status"] = "must be PENDING or COMPLETED"
	}

	// The category must resolve, or be an explicit custom name.
	var categoryID *string
	switch {
	case draft.CustomCategory != "":
		// created below, once validation has passed
	case draft.CategoryID == "":
		fields["category_id"] = "select a category or enter a custom one"
	default:
		if _, ok := s.store.Category(draft.CategoryID); !ok {
			fields["category_id"] = "category not found"
		} else {
			id := draft.CategoryID
			categoryID = &id
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	now := time.Now()

	if draft.CustomCategory != "" {
		cat := s.store.InsertCategory(models.Category{
			Base:     models.Base{CreatedAt: now, UpdatedAt: now},
			UserID:   s.ownerID,
			Name:     draft.CustomCategory,
			Type:     draft.Type,
			IsActive: true,
		})
		if err := s.loader.InsertCategory(ctx, &cat); err != nil {
			s.store.RemoveCategory(cat.ID)
			s.log.Errorw("custom category write failed, rolled back", "error", err)
			return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
		}
		categoryID = &cat.ID
	}

	totalInstallments := 1
	var installmentNumber *int
	isRecurring := false
	if draft.Type == models.TransactionTypeExpense {
		if account.IsCreditCard() {
			totalInstallments = parseInstallments(draft.Installments)
			first := 1
			installmentNumber = &first
		} else {
			isRecurring = draft.IsRecurring
		}
	}

	status := draft.Status
	if status == "" {
		status = models.TransactionStatusCompleted
	}
	date := draft.Date
	if date.IsZero() {
		date = now
	}

	accountID := draft.AccountID
	tx := models.Transaction{
		Base:              models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:            s.ownerID,
		Type:              draft.Type,
		Amount:            draft.Amount,
		Description:       draft.Description,
		Date:              date,
		CategoryID:        categoryID,
		AccountID:         &accountID,
		MemberID:          optional(draft.MemberID),
		InstallmentNumber: installmentNumber,
		TotalInstallments: totalInstallments,
		IsRecurring:       isRecurring,
		Status:            status,
		Notes:             optional(draft.Notes),
	}

	stored := s.store.InsertTransaction(tx)
	if err := s.loader.InsertTransaction(ctx, &stored); err != nil {
		s.store.RemoveTransaction(stored.ID)
		s.log.Errorw("transaction write failed, rolled back", "id", stored.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	return &stored, nil
}

// UpdateTransaction merges a partial patch into an existing transaction.
// The remote write happens first so a failure leaves local state untouched.
func (s *financeService) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	current, ok := s.store.Transaction(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}

	fields := make(map[string]string)
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		fields["amount"] = "must be greater than zero"
	}
	if patch.Description != nil && *patch.Description == "" {
		fields["description"] = "is required"
	}
	if patch.Status != nil && *patch.Status == models.TransactionStatusPending &&
		current.Status == models.TransactionStatusCompleted {
		// COMPLETED is terminal
		fields["status"] = "completed transactions cannot be reopened"
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	updated := current
	patch.Apply(&updated)

	if err := s.loader.UpdateTransaction(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateTransaction(id, patch)
	return &updated, nil
}

// DeleteTransaction removes a transaction by id. Dependent entities are not
// cascaded.
func (s *financeService) DeleteTransaction(ctx context.Context, id string) error {
	if _, ok := s.store.Transaction(id); !ok {
		return apperrors.ErrTransactionNotFound
	}
	if err := s.loader.DeleteTransaction(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.RemoveTransaction(id)
	return nil
}

// MarkAsPaid settles a pending transaction. Marking an already settled
// transaction is a no-op; the call is idempotent.
func (s *financeService) MarkAsPaid(ctx context.Context, id string) (*models.Transaction, error) {
	current, ok := s.store.Transaction(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	if current.Status == models.TransactionStatusCompleted {
		return &current, nil
	}

	completed := models.TransactionStatusCompleted
	patch := models.TransactionPatch{Status: &completed}

	updated := current
	patch.Apply(&updated)
	if err := s.loader.UpdateTransaction(ctx, &updated); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
	}
	s.store.UpdateTransaction(id, patch)
	return &updated, nil
}

// parseInstallments reads a count like "3" or "3x". Empty or malformed input
// falls back to a single installment.
func parseInstallments(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "x")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// optional converts an empty string to a nil reference.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
