// Package metrics computes the derived financial state of the dashboard:
// transaction visibility, realized totals, category breakdowns and the
// upcoming-payments queue. Everything here is pure; the same functions back
// the dashboard filter and the transactions-page local filter.
package metrics

import (
	"strings"
	"time"

	"famfin/internal/models"
)

// All is the wildcard value for the member and type criteria.
const All = "all"

// Criteria holds the current filter state. The zero value matches every
// transaction.
type Criteria struct {
	// MemberID is All (or empty) or a specific family member id.
	MemberID string
	// Type is All (or empty), "INCOME" or "EXPENSE".
	Type string
	// Search is a case-insensitive substring match against the description.
	Search string
	// DateFrom/DateTo bound the transaction date inclusively; nil means
	// unbounded on that side.
	DateFrom *time.Time
	DateTo   *time.Time
}

// Matches reports whether the transaction passes every criterion. All
// criteria are conjunctive.
func Matches(tx models.Transaction, c Criteria) bool {
	if c.MemberID != "" && c.MemberID != All {
		if tx.MemberID == nil || *tx.MemberID != c.MemberID {
			return false
		}
	}

	if c.Type != "" && c.Type != All && string(tx.Type) != c.Type {
		return false
	}

	if c.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(c.Search)) {
		return false
	}

	if c.DateFrom != nil && tx.Date.Before(*c.DateFrom) {
		return false
	}
	if c.DateTo != nil && tx.Date.After(*c.DateTo) {
		return false
	}

	return true
}

// Filter returns the transactions matching the criteria, preserving order.
func Filter(txs []models.Transaction, c Criteria) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if Matches(tx, c) {
			out = append(out, tx)
		}
	}
	return out
}
