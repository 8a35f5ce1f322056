package metrics

import (
	"testing"
	"time"

	"famfin/internal/models"
	"famfin/internal/testutil"
)

func TestMatches(t *testing.T) {
	member := "m1"
	tx := testutil.NewTestTransaction(models.TransactionTypeExpense, "40")
	tx.Description = "Grocery shopping"
	tx.MemberID = &member

	t.Run("zero_criteria_matches_everything", func(t *testing.T) {
		if !Matches(tx, Criteria{}) {
			t.Error("expected zero criteria to match")
		}
	})

	t.Run("wildcards_match", func(t *testing.T) {
		if !Matches(tx, Criteria{MemberID: All, Type: All}) {
			t.Error("expected wildcard criteria to match")
		}
	})

	t.Run("member_and_type_are_conjunctive", func(t *testing.T) {
		if !Matches(tx, Criteria{MemberID: "m1", Type: "EXPENSE"}) {
			t.Error("expected matching member and type to pass")
		}
		if Matches(tx, Criteria{MemberID: "m2", Type: "EXPENSE"}) {
			t.Error("expected wrong member to fail despite matching type")
		}
		if Matches(tx, Criteria{MemberID: "m1", Type: "INCOME"}) {
			t.Error("expected wrong type to fail despite matching member")
		}
	})

	t.Run("member_filter_excludes_nil_reference", func(t *testing.T) {
		unassigned := testutil.NewTestTransaction(models.TransactionTypeExpense, "10")
		if Matches(unassigned, Criteria{MemberID: "m1"}) {
			t.Error("expected transaction without member to fail member filter")
		}
	})

	t.Run("search_is_case_insensitive_substring", func(t *testing.T) {
		if !Matches(tx, Criteria{Search: "GROCERY"}) {
			t.Error("expected case-insensitive match")
		}
		if !Matches(tx, Criteria{Search: "shop"}) {
			t.Error("expected substring match")
		}
		if Matches(tx, Criteria{Search: "rent"}) {
			t.Error("expected non-matching search to fail")
		}
	})

	t.Run("empty_search_matches_everything", func(t *testing.T) {
		if !Matches(tx, Criteria{Search: ""}) {
			t.Error("expected empty search to match")
		}
	})

	t.Run("date_bounds_are_inclusive", func(t *testing.T) {
		day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		dated := testutil.NewTestTransaction(models.TransactionTypeExpense, "10")
		dated.Date = day

		if !Matches(dated, Criteria{DateFrom: &day, DateTo: &day}) {
			t.Error("expected transaction on the boundary to match")
		}

		after := day.Add(time.Second)
		if Matches(dated, Criteria{DateFrom: &after}) {
			t.Error("expected transaction before the lower bound to fail")
		}
		before := day.Add(-time.Second)
		if Matches(dated, Criteria{DateTo: &before}) {
			t.Error("expected transaction after the upper bound to fail")
		}
	})
}

func TestFilter(t *testing.T) {
	m1, m2 := "m1", "m2"

	a := testutil.NewTestTransaction(models.TransactionTypeExpense, "10")
	a.MemberID = &m1
	b := testutil.NewTestTransaction(models.TransactionTypeIncome, "20")
	b.MemberID = &m1
	c := testutil.NewTestTransaction(models.TransactionTypeExpense, "30")
	c.MemberID = &m2

	txs := []models.Transaction{a, b, c}

	got := Filter(txs, Criteria{MemberID: "m1", Type: "EXPENSE"})
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only the first transaction, got %d", len(got))
	}

	if got := Filter(txs, Criteria{}); len(got) != 3 {
		t.Fatalf("expected all transactions, got %d", len(got))
	}

	if got := Filter(nil, Criteria{}); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d", len(got))
	}
}
