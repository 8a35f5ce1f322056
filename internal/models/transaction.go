package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// TransactionStatus represents the settlement state of a transaction.
// PENDING transactions are committed-but-unpaid obligations; they are
// excluded from realized totals and feed the upcoming-payments queue.
// COMPLETED is terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction represents a single income or expense entry
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
	CategoryID  *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	AccountID   *string         `gorm:"type:uuid" json:"account_id,omitempty"`
	MemberID    *string         `gorm:"type:uuid" json:"member_id,omitempty"`

	// Installment bookkeeping (credit-card purchases)
	InstallmentNumber   *int    `json:"installment_number,omitempty"`
	TotalInstallments   int     `gorm:"not null;default:1" json:"total_installments"`
	ParentTransactionID *string `gorm:"type:uuid" json:"parent_transaction_id,omitempty"`

	// Recurrence (non-card expenses only, mutually exclusive with installments)
	IsRecurring            bool    `gorm:"default:false" json:"is_recurring"`
	RecurringTransactionID *string `gorm:"type:uuid" json:"recurring_transaction_id,omitempty"`

	Status TransactionStatus `gorm:"not null;default:'COMPLETED'" json:"status"`
	Notes  *string           `json:"notes,omitempty"`
}

// IsPending reports whether the transaction has not settled yet.
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// TransactionPatch describes a partial-field update. Nil fields are left
// untouched by Apply.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	CategoryID  *string
	AccountID   *string
	MemberID    *string
	Status      *TransactionStatus
	Notes       *string
}

// Apply merges the set fields of the patch into the transaction.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.CategoryID != nil {
		t.CategoryID = p.CategoryID
	}
	if p.AccountID != nil {
		t.AccountID = p.AccountID
	}
	if p.MemberID != nil {
		t.MemberID = p.MemberID
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Notes != nil {
		t.Notes = p.Notes
	}
	t.UpdatedAt = time.Now()
}
