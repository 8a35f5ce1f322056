package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"famfin/internal/models"
	"famfin/internal/uuid"
)

// TestOwner is the owner id used by all fixtures.
const TestOwner = "owner-1"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestMember builds a family member with a unique name.
func NewTestMember() models.FamilyMember {
	now := time.Now()
	return models.FamilyMember{
		Base:          models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:        TestOwner,
		Name:          fmt.Sprintf("Member %d", nextID()),
		Role:          "member",
		AvatarURL:     "https://ui-avatars.com/api/?name=Test",
		MonthlyIncome: decimal.NewFromInt(3000),
		IsActive:      true,
	}
}

// NewTestAccount builds a checking account held by the given member.
func NewTestAccount(holderID string) models.Account {
	now := time.Now()
	return models.Account{
		Base:     models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:   TestOwner,
		Type:     models.AccountTypeChecking,
		Name:     fmt.Sprintf("Account %d", nextID()),
		Bank:     "Testbank",
		HolderID: holderID,
		Balance:  decimal.NewFromInt(1000),
		IsActive: true,
	}
}

// NewTestCreditCard builds a credit card account held by the given member.
func NewTestCreditCard(holderID string) models.Account {
	now := time.Now()
	limit := decimal.NewFromInt(5000)
	closing := 3
	due := 10
	last := "4242"
	return models.Account{
		Base:        models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      TestOwner,
		Type:        models.AccountTypeCreditCard,
		Name:        fmt.Sprintf("Card %d", nextID()),
		Bank:        "Testbank",
		HolderID:    holderID,
		CreditLimit: &limit,
		ClosingDay:  &closing,
		DueDay:      &due,
		LastDigits:  &last,
		IsActive:    true,
	}
}

// NewTestCategory builds a category of the given type.
func NewTestCategory(categoryType models.TransactionType) models.Category {
	now := time.Now()
	return models.Category{
		Base:     models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:   TestOwner,
		Name:     fmt.Sprintf("Category %d", nextID()),
		Type:     categoryType,
		IsActive: true,
	}
}

// NewTestTransaction builds a completed transaction of the given type and
// amount.
func NewTestTransaction(txType models.TransactionType, amount string) models.Transaction {
	now := time.Now()
	return models.Transaction{
		Base:              models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:            TestOwner,
		Type:              txType,
		Amount:            decimal.RequireFromString(amount),
		Description:       fmt.Sprintf("Transaction %d", nextID()),
		Date:              now,
		TotalInstallments: 1,
		Status:            models.TransactionStatusCompleted,
	}
}

// NewTestGoal builds a savings goal.
func NewTestGoal() models.Goal {
	now := time.Now()
	return models.Goal{
		Base:          models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:        TestOwner,
		Name:          fmt.Sprintf("Goal %d", nextID()),
		TargetAmount:  decimal.NewFromInt(20000),
		CurrentAmount: decimal.NewFromInt(5000),
		Deadline:      now.AddDate(1, 0, 0),
	}
}
