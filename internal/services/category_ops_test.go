package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"famfin/internal/metrics"
	"famfin/internal/models"
	"famfin/internal/store"
	"famfin/internal/testutil"
)

func TestAddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		category, err := f.service.AddCategory(ctx, CategoryDraft{
			Name:  "Transport",
			Type:  models.TransactionTypeExpense,
			Icon:  "car",
			Color: "#CCFF00",
		})
		testutil.AssertNoError(t, err)

		if !category.IsActive {
			t.Error("new categories start active")
		}
		if _, ok := f.store.Category(category.ID); !ok {
			t.Error("expected category in the store")
		}
	})

	t.Run("validation_failures", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddCategory(ctx, CategoryDraft{Type: models.TransactionTypeExpense})
		testutil.AssertFieldError(t, err, "name")

		_, err = f.service.AddCategory(ctx, CategoryDraft{Name: "Misc", Type: "OTHER"})
		testutil.AssertFieldError(t, err, "type")
	})

	t.Run("loader_failure_rolls_back", func(t *testing.T) {
		f := newFixture(t)
		f.loader.FailWith(errors.New("offline"))

		_, err := f.service.AddCategory(ctx, CategoryDraft{
			Name: "Health",
			Type: models.TransactionTypeExpense,
		})
		testutil.AssertAppError(t, err, "LOADER_FAILURE")
		if len(f.store.Categories()) != 1 {
			t.Error("expected optimistic insert rolled back")
		}
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	name := "Dining out"
	updated, err := f.service.UpdateCategory(ctx, f.category.ID, models.CategoryPatch{Name: &name})
	testutil.AssertNoError(t, err)
	if updated.Name != "Dining out" {
		t.Errorf("expected renamed category, got %q", updated.Name)
	}

	empty := ""
	_, err = f.service.UpdateCategory(ctx, f.category.ID, models.CategoryPatch{Name: &empty})
	testutil.AssertFieldError(t, err, "name")

	_, err = f.service.UpdateCategory(ctx, "missing", models.CategoryPatch{})
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// A transaction referencing the category survives its deletion and
	// shows up as uncategorized afterwards.
	tx := testutil.NewTestTransaction(models.TransactionTypeExpense, "30")
	tx.CategoryID = &f.category.ID
	f.loader.Seed(store.Snapshot{
		Categories:   []models.Category{f.category},
		Transactions: []models.Transaction{tx},
	})
	testutil.AssertNoError(t, f.service.Reload(ctx))

	testutil.AssertNoError(t, f.service.DeleteCategory(ctx, f.category.ID))
	if _, ok := f.store.Category(f.category.ID); ok {
		t.Fatal("expected category removed")
	}
	if len(f.service.Transactions()) != 1 {
		t.Fatal("expected transaction kept after category removal")
	}

	byCat := f.service.ExpensesByCategory()
	if len(byCat) != 1 || byCat[0].Category != metrics.Uncategorized {
		t.Errorf("expected uncategorized fallback, got %+v", byCat)
	}
	if !byCat[0].Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected amount 30, got %s", byCat[0].Amount)
	}

	err := f.service.DeleteCategory(ctx, f.category.ID)
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}
