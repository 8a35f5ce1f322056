package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"famfin/internal/metrics"
	"famfin/internal/models"
)

// TransactionDraft is the user input for a new transaction.
type TransactionDraft struct {
	Type        models.TransactionType `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description" validate:"required"`
	Date        time.Time              `json:"date"`

	// Either an existing category id or an explicit custom category name.
	CategoryID     string `json:"category_id"`
	CustomCategory string `json:"custom_category"`

	AccountID string `json:"account_id" validate:"required"`
	MemberID  string `json:"member_id"`

	// Installments is a credit-card installment count, "3" or "3x".
	// Ignored for non-card accounts.
	Installments string `json:"installments" validate:"installments"`
	// IsRecurring applies to non-card expenses only; it is forced false
	// when the target account is a credit card.
	IsRecurring bool `json:"is_recurring"`

	Status models.TransactionStatus `json:"status"`
	Notes  string                   `json:"notes"`
}

// AccountDraft is the user input for a new account or card.
type AccountDraft struct {
	Type     models.AccountType `json:"type" validate:"required,account_type"`
	Name     string             `json:"name" validate:"required"`
	Bank     string             `json:"bank"`
	HolderID string             `json:"holder_id" validate:"required"`

	// Checking/savings
	Balance decimal.Decimal `json:"balance"`

	// Credit card
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	ClosingDay  *int             `json:"closing_day"`
	DueDay      *int             `json:"due_day"`
	LastDigits  string           `json:"last_digits"`

	Color string `json:"color" validate:"omitempty,hex_color"`
	Theme string `json:"theme"`
}

// MemberDraft is the user input for a new family member.
type MemberDraft struct {
	Name          string          `json:"name" validate:"required"`
	Role          string          `json:"role"`
	AvatarURL     string          `json:"avatar_url"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Color         string          `json:"color" validate:"omitempty,hex_color"`
}

// CategoryDraft is the user input for a new category.
type CategoryDraft struct {
	Name  string                 `json:"name" validate:"required"`
	Type  models.TransactionType `json:"type" validate:"required,transaction_type"`
	Icon  string                 `json:"icon"`
	Color string                 `json:"color" validate:"omitempty,hex_color"`
}

// GoalDraft is the user input for a new savings goal.
type GoalDraft struct {
	Name          string          `json:"name" validate:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      time.Time       `json:"deadline"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color" validate:"omitempty,hex_color"`
}

// FinanceServicer is the contract the view layer consumes: validated
// mutations on one side, raw collections and derived metrics on the other.
type FinanceServicer interface {
	// Reload fetches a fresh snapshot from the loader and replaces the
	// store. Concurrent reloads are coalesced; on failure the last-known
	// good state is preserved.
	Reload(ctx context.Context) error

	// Mutations
	AddTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	MarkAsPaid(ctx context.Context, id string) (*models.Transaction, error)

	AddAccount(ctx context.Context, draft AccountDraft) (*models.Account, error)
	AddCard(ctx context.Context, draft AccountDraft) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	AddMember(ctx context.Context, draft MemberDraft) (*models.FamilyMember, error)
	UpdateMember(ctx context.Context, id string, patch models.MemberPatch) (*models.FamilyMember, error)
	DeleteMember(ctx context.Context, id string) error

	AddCategory(ctx context.Context, draft CategoryDraft) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	AddGoal(ctx context.Context, draft GoalDraft) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	// Filter state
	Filters() metrics.Criteria
	SetFilters(c metrics.Criteria)

	// Raw collections
	Transactions() []models.Transaction
	Members() []models.FamilyMember
	Accounts() []models.Account
	Categories() []models.Category
	Goals() []models.Goal

	// Derived metrics, each computed from one consistent snapshot
	FilteredTransactions() []models.Transaction
	TotalIncome() decimal.Decimal
	TotalExpenses() decimal.Decimal
	NetBalance() decimal.Decimal
	ExpensesByCategory() []metrics.CategorySummary
	UpcomingExpenses() []models.Transaction

	// MemberName resolves a member id to a display name, "Unknown" when
	// the reference does not resolve.
	MemberName(id string) string
}
