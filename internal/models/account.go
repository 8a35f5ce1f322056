package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
)

// Account represents a payment instrument: a bank account or a credit card.
// CHECKING and SAVINGS accounts carry a balance and leave the card fields
// nil; CREDIT_CARD accounts require CreditLimit, ClosingDay and DueDay and
// track the current bill instead of a balance.
type Account struct {
	Base
	UserID     string      `gorm:"type:uuid;not null" json:"user_id"`
	Type       AccountType `gorm:"not null" json:"type"`
	Name       string      `gorm:"not null" json:"name"`
	Bank       string      `json:"bank"`
	LastDigits *string     `json:"last_digits,omitempty"`
	HolderID   string      `gorm:"type:uuid;not null" json:"holder_id"`

	// Checking/savings
	Balance decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`

	// Credit card
	CreditLimit *decimal.Decimal `gorm:"type:numeric" json:"credit_limit,omitempty"`
	CurrentBill decimal.Decimal  `gorm:"type:numeric;not null" json:"current_bill"`
	ClosingDay  *int             `json:"closing_day,omitempty"`
	DueDay      *int             `json:"due_day,omitempty"`

	Color    string  `json:"color"`
	Theme    *string `json:"theme,omitempty"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
}

// IsCreditCard reports whether the account is a credit card.
func (a *Account) IsCreditCard() bool {
	return a.Type == AccountTypeCreditCard
}

// AvailableLimit returns the remaining credit on a card, or zero for
// non-card accounts.
func (a *Account) AvailableLimit() decimal.Decimal {
	if !a.IsCreditCard() || a.CreditLimit == nil {
		return decimal.Zero
	}
	return a.CreditLimit.Sub(a.CurrentBill)
}

// AccountPatch describes a partial-field update to an account.
type AccountPatch struct {
	Name        *string
	Bank        *string
	LastDigits  *string
	HolderID    *string
	Balance     *decimal.Decimal
	CreditLimit *decimal.Decimal
	CurrentBill *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	Color       *string
	Theme       *string
	IsActive    *bool
}

// Apply merges the set fields of the patch into the account.
func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Bank != nil {
		a.Bank = *p.Bank
	}
	if p.LastDigits != nil {
		a.LastDigits = p.LastDigits
	}
	if p.HolderID != nil {
		a.HolderID = *p.HolderID
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.CreditLimit != nil {
		a.CreditLimit = p.CreditLimit
	}
	if p.CurrentBill != nil {
		a.CurrentBill = *p.CurrentBill
	}
	if p.ClosingDay != nil {
		a.ClosingDay = p.ClosingDay
	}
	if p.DueDay != nil {
		a.DueDay = p.DueDay
	}
	if p.Color != nil {
		a.Color = *p.Color
	}
	if p.Theme != nil {
		a.Theme = p.Theme
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	a.UpdatedAt = time.Now()
}
