package store

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"famfin/internal/models"
	"famfin/internal/testutil"
)

// sequentialIDs returns a deterministic id generator for tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestLoad(t *testing.T) {
	s := New()

	member := testutil.NewTestMember()
	tx := testutil.NewTestTransaction(models.TransactionTypeIncome, "100")

	s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "5"))

	s.Load(Snapshot{
		Transactions: []models.Transaction{tx},
		Members:      []models.FamilyMember{member},
	})

	if got := s.Transactions(); len(got) != 1 || got[0].ID != tx.ID {
		t.Fatalf("expected load to replace transactions, got %d", len(got))
	}
	if got := s.Members(); len(got) != 1 || got[0].ID != member.ID {
		t.Fatalf("expected load to replace members, got %d", len(got))
	}
	if got := s.Accounts(); len(got) != 0 {
		t.Errorf("expected empty accounts after load, got %d", len(got))
	}
}

func TestLoadNotifiesOnce(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(func() { calls++ })

	s.Load(Snapshot{
		Transactions: []models.Transaction{
			testutil.NewTestTransaction(models.TransactionTypeIncome, "1"),
			testutil.NewTestTransaction(models.TransactionTypeIncome, "2"),
		},
		Goals: []models.Goal{testutil.NewTestGoal()},
	})

	if calls != 1 {
		t.Errorf("expected a single notification per load, got %d", calls)
	}
}

func TestInsertTransaction(t *testing.T) {
	t.Run("assigns_id_when_absent", func(t *testing.T) {
		s := New(sequentialIDs())

		tx := testutil.NewTestTransaction(models.TransactionTypeIncome, "10")
		tx.ID = ""

		stored := s.InsertTransaction(tx)
		if stored.ID != "id-1" {
			t.Errorf("expected generated id, got %q", stored.ID)
		}
		if _, ok := s.Transaction("id-1"); !ok {
			t.Error("expected stored transaction to be retrievable")
		}
	})

	t.Run("keeps_existing_id", func(t *testing.T) {
		s := New(sequentialIDs())

		tx := testutil.NewTestTransaction(models.TransactionTypeIncome, "10")
		stored := s.InsertTransaction(tx)
		if stored.ID != tx.ID {
			t.Errorf("expected id %q preserved, got %q", tx.ID, stored.ID)
		}
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		s := New()

		var ids []string
		for i := 0; i < 5; i++ {
			tx := s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "1"))
			ids = append(ids, tx.ID)
		}

		got := s.Transactions()
		for i, tx := range got {
			if tx.ID != ids[i] {
				t.Fatalf("expected insertion order at %d, got %q want %q", i, tx.ID, ids[i])
			}
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	s := New()
	tx := s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "50"))

	t.Run("applies_patch_fields", func(t *testing.T) {
		desc := "groceries"
		amount := decimal.NewFromInt(75)
		if !s.UpdateTransaction(tx.ID, models.TransactionPatch{Description: &desc, Amount: &amount}) {
			t.Fatal("expected update to find the transaction")
		}

		got, _ := s.Transaction(tx.ID)
		if got.Description != "groceries" || !got.Amount.Equal(amount) {
			t.Errorf("patch not applied: %+v", got)
		}
		if got.Type != models.TransactionTypeExpense {
			t.Error("untouched fields must keep their value")
		}
	})

	t.Run("unknown_id_reports_false", func(t *testing.T) {
		calls := 0
		cancel := s.Subscribe(func() { calls++ })
		defer cancel()

		if s.UpdateTransaction("missing", models.TransactionPatch{}) {
			t.Error("expected false for unknown id")
		}
		if calls != 0 {
			t.Error("failed update must not notify")
		}
	})
}

func TestRemoveTransaction(t *testing.T) {
	s := New()
	first := s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "1"))
	second := s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "2"))
	third := s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, "3"))

	if !s.RemoveTransaction(second.ID) {
		t.Fatal("expected removal to succeed")
	}
	if s.RemoveTransaction(second.ID) {
		t.Error("expected second removal to report false")
	}

	got := s.Transactions()
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != third.ID {
		t.Fatalf("expected remaining order [first, third], got %d items", len(got))
	}
	// Index must survive the splice.
	if _, ok := s.Transaction(third.ID); !ok {
		t.Error("expected lookup to work after removal")
	}
}

func TestSubscribe(t *testing.T) {
	s := New()

	t.Run("notified_after_commit", func(t *testing.T) {
		var seen int
		cancel := s.Subscribe(func() {
			seen = len(s.Transactions())
		})
		defer cancel()

		s.InsertTransaction(testutil.NewTestTransaction(models.TransactionTypeIncome, "10"))
		if seen != 1 {
			t.Errorf("subscriber must observe committed state, saw %d transactions", seen)
		}
	})

	t.Run("cancel_stops_notifications", func(t *testing.T) {
		calls := 0
		cancel := s.Subscribe(func() { calls++ })

		s.InsertGoal(testutil.NewTestGoal())
		cancel()
		s.InsertGoal(testutil.NewTestGoal())

		if calls != 1 {
			t.Errorf("expected one call before cancel, got %d", calls)
		}
	})
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.InsertMember(testutil.NewTestMember())
	s.InsertCategory(testutil.NewTestCategory(models.TransactionTypeExpense))

	snap := s.Snapshot()
	snap.Members[0].Name = "mutated"
	snap.Categories = nil

	if got := s.Members(); got[0].Name == "mutated" {
		t.Error("snapshot mutation must not leak into the store")
	}
	if got := s.Categories(); len(got) != 1 {
		t.Error("snapshot mutation must not affect collections")
	}
}

func TestEntityCollections(t *testing.T) {
	s := New()
	member := s.InsertMember(testutil.NewTestMember())
	account := s.InsertAccount(testutil.NewTestAccount(member.ID))
	category := s.InsertCategory(testutil.NewTestCategory(models.TransactionTypeExpense))
	goal := s.InsertGoal(testutil.NewTestGoal())

	name := "renamed"
	if !s.UpdateMember(member.ID, models.MemberPatch{Name: &name}) {
		t.Fatal("expected member update to succeed")
	}
	if got, _ := s.Member(member.ID); got.Name != "renamed" {
		t.Error("member patch not applied")
	}

	if !s.RemoveAccount(account.ID) {
		t.Fatal("expected account removal to succeed")
	}
	if _, ok := s.Account(account.ID); ok {
		t.Error("removed account still retrievable")
	}

	target := decimal.NewFromInt(9000)
	if !s.UpdateGoal(goal.ID, models.GoalPatch{TargetAmount: &target}) {
		t.Fatal("expected goal update to succeed")
	}
	if got, _ := s.Goal(goal.ID); !got.TargetAmount.Equal(target) {
		t.Error("goal patch not applied")
	}

	if !s.RemoveCategory(category.ID) {
		t.Fatal("expected category removal to succeed")
	}
	if len(s.Categories()) != 0 {
		t.Error("expected empty category collection")
	}
}
