// Package inmemory is an in-memory implementation of loader.Loader.
// Data is lost on restart; it backs tests and offline use. Failures can be
// injected to exercise the gateway's rollback paths.
package inmemory

import (
	"context"
	"sync"

	"famfin/internal/models"
	"famfin/internal/store"
)

// Loader stores all entities in memory and is safe for concurrent use.
type Loader struct {
	mu   sync.Mutex
	data store.Snapshot

	// failErr, when set, is returned by every write until cleared.
	failErr error
}

// New creates an empty in-memory loader.
func New() *Loader {
	return &Loader{}
}

// Seed replaces the stored snapshot wholesale.
func (l *Loader) Seed(snap store.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data = snap
}

// FailWith makes every subsequent write fail with err. Pass nil to restore
// normal operation.
func (l *Loader) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failErr = err
}

// FetchAll returns a copy of the stored snapshot.
func (l *Loader) FetchAll(ctx context.Context, ownerID string) (*store.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return nil, l.failErr
	}
	snap := store.Snapshot{
		Transactions: append([]models.Transaction(nil), l.data.Transactions...),
		Members:      append([]models.FamilyMember(nil), l.data.Members...),
		Accounts:     append([]models.Account(nil), l.data.Accounts...),
		Categories:   append([]models.Category(nil), l.data.Categories...),
		Goals:        append([]models.Goal(nil), l.data.Goals...),
	}
	return &snap, nil
}

func (l *Loader) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.data.Transactions = append(l.data.Transactions, *tx)
	return nil
}

func (l *Loader) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Transactions {
		if l.data.Transactions[i].ID == tx.ID {
			l.data.Transactions[i] = *tx
			break
		}
	}
	return nil
}

func (l *Loader) DeleteTransaction(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Transactions {
		if l.data.Transactions[i].ID == id {
			l.data.Transactions = append(l.data.Transactions[:i], l.data.Transactions[i+1:]...)
			break
		}
	}
	return nil
}

func (l *Loader) InsertAccount(ctx context.Context, a *models.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.data.Accounts = append(l.data.Accounts, *a)
	return nil
}

func (l *Loader) UpdateAccount(ctx context.Context, a *models.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Accounts {
		if l.data.Accounts[i].ID == a.ID {
			l.data.Accounts[i] = *a
			break
		}
	}
	return nil
}

func (l *Loader) DeleteAccount(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Accounts {
		if l.data.Accounts[i].ID == id {
			l.data.Accounts = append(l.data.Accounts[:i], l.data.Accounts[i+1:]...)
			break
		}
	}
	return nil
}

func (l *Loader) InsertMember(ctx context.Context, m *models.FamilyMember) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.data.Members = append(l.data.Members, *m)
	return nil
}

func (l *Loader) UpdateMember(ctx context.Context, m *models.FamilyMember) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Members {
		if l.data.Members[i].ID == m.ID {
			l.data.Members[i] = *m
			break
		}
	}
	return nil
}

func (l *Loader) DeleteMember(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Members {
		if l.data.Members[i].ID == id {
			l.data.Members = append(l.data.Members[:i], l.data.Members[i+1:]...)
			break
		}
	}
	return nil
}

func (l *Loader) InsertCategory(ctx context.Context, c *models.Category) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.data.Categories = append(l.data.Categories, *c)
	return nil
}

func (l *Loader) UpdateCategory(ctx context.Context, c *models.Category) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Categories {
		if l.data.Categories[i].ID == c.ID {
			l.data.Categories[i] = *c
			break
		}
	}
	return nil
}

func (l *Loader) DeleteCategory(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Categories {
		if l.data.Categories[i].ID == id {
			l.data.Categories = append(l.data.Categories[:i], l.data.Categories[i+1:]...)
			break
		}
	}
	return nil
}

func (l *Loader) InsertGoal(ctx context.Context, g *models.Goal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	l.data.Goals = append(l.data.Goals, *g)
	return nil
}

func (l *Loader) UpdateGoal(ctx context.Context, g *models.Goal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Goals {
		if l.data.Goals[i].ID == g.ID {
			l.data.Goals[i] = *g
			break
		}
	}
	return nil
}

func (l *Loader) DeleteGoal(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	for i := range l.data.Goals {
		if l.data.Goals[i].ID == id {
			l.data.Goals = append(l.data.Goals[:i], l.data.Goals[i+1:]...)
			break
		}
	}
	return nil
}
