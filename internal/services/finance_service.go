package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apperrors "famfin/internal/errors"
	"famfin/internal/loader"
	"famfin/internal/logger"
	"famfin/internal/metrics"
	"famfin/internal/models"
	"famfin/internal/store"
)

// financeService is the mutation gateway and read surface over the entity
// store and the loader.
type financeService struct {
	store   *store.Store
	loader  loader.Loader
	ownerID string
	log     *zap.SugaredLogger

	// digits generates the last-4-digits placeholder for new cards.
	digits func() string

	// reload coalesces concurrent full reloads so a stale response can
	// never overwrite a fresher one.
	reload singleflight.Group

	mu      sync.RWMutex
	filters metrics.Criteria
}

// Option configures the finance service.
type Option func(*financeService)

// WithDigitGenerator overrides the random card-digit generator, so tests
// can supply deterministic values.
func WithDigitGenerator(fn func() string) Option {
	return func(s *financeService) { s.digits = fn }
}

// NewFinanceService creates a new FinanceServicer over the given store and
// loader, scoped to one owner's collections.
func NewFinanceService(st *store.Store, ld loader.Loader, ownerID string, opts ...Option) FinanceServicer {
	s := &financeService{
		store:   st,
		loader:  ld,
		ownerID: ownerID,
		log:     logger.Get(),
		digits:  randomDigits,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// randomDigits returns a 4-digit card placeholder.
func randomDigits() string {
	return fmt.Sprintf("%04d", 1000+rand.IntN(9000))
}

// Reload fetches all collections and replaces the store atomically.
// Concurrent callers share a single in-flight fetch; on failure the store
// keeps its last-known-good contents.
func (s *financeService) Reload(ctx context.Context) error {
	_, err, _ := s.reload.Do("reload", func() (interface{}, error) {
		snap, err := s.loader.FetchAll(ctx, s.ownerID)
		if err != nil {
			s.log.Errorw("reload failed, keeping local state", "error", err)
			return nil, apperrors.Wrap(apperrors.ErrLoaderFailure, err)
		}
		s.store.Load(*snap)
		return nil, nil
	})
	return err
}

// Filters returns the current filter criteria.
func (s *financeService) Filters() metrics.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the filter criteria.
func (s *financeService) SetFilters(c metrics.Criteria) {
	s.mu.Lock()
	s.filters = c
	s.mu.Unlock()
}

func (s *financeService) Transactions() []models.Transaction { return s.store.Transactions() }
func (s *financeService) Members() []models.FamilyMember     { return s.store.Members() }
func (s *financeService) Accounts() []models.Account         { return s.store.Accounts() }
func (s *financeService) Categories() []models.Category      { return s.store.Categories() }
func (s *financeService) Goals() []models.Goal               { return s.store.Goals() }

// FilteredTransactions narrows the transaction collection by the current
// filter criteria.
func (s *financeService) FilteredTransactions() []models.Transaction {
	return metrics.Filter(s.store.Transactions(), s.Filters())
}

// TotalIncome is the realized income over the filtered set.
func (s *financeService) TotalIncome() decimal.Decimal {
	return metrics.TotalIncome(s.FilteredTransactions())
}

// TotalExpenses is the realized spend over the filtered set.
func (s *financeService) TotalExpenses() decimal.Decimal {
	return metrics.TotalExpenses(s.FilteredTransactions())
}

// NetBalance is income minus expenses over the filtered period.
func (s *financeService) NetBalance() decimal.Decimal {
	return metrics.NetBalance(s.FilteredTransactions())
}

// ExpensesByCategory breaks realized expenses down by category name, reading
// transactions and categories from one consistent snapshot.
func (s *financeService) ExpensesByCategory() []metrics.CategorySummary {
	snap := s.store.Snapshot()

	names := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[c.ID] = c.Name
	}
	resolve := func(id string) (string, bool) {
		name, ok := names[id]
		return name, ok
	}

	filtered := metrics.Filter(snap.Transactions, s.Filters())
	return metrics.ExpensesByCategory(filtered, resolve)
}

// UpcomingExpenses is the queue of pending payments across the whole
// collection, unaffected by the dashboard filters.
func (s *financeService) UpcomingExpenses() []models.Transaction {
	return metrics.UpcomingExpenses(s.store.Transactions())
}

// MemberName resolves a member id to its display name.
func (s *financeService) MemberName(id string) string {
	if m, ok := s.store.Member(id); ok {
		return m.Name
	}
	return "Unknown"
}
