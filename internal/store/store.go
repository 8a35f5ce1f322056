// Package store holds the five canonical collections (transactions, members,
// accounts, categories, goals) as the single source of truth. It is safe for
// concurrent use; readers always see a consistent snapshot, and subscribers
// are notified synchronously after every mutation.
package store

import (
	"sync"

	"famfin/internal/models"
	"famfin/internal/uuid"
)

// Snapshot is a full copy of the five collections, as produced by a loader
// fetch or by Store.Snapshot.
type Snapshot struct {
	Transactions []models.Transaction  `json:"transactions"`
	Members      []models.FamilyMember `json:"members"`
	Accounts     []models.Account      `json:"accounts"`
	Categories   []models.Category     `json:"categories"`
	Goals        []models.Goal         `json:"goals"`
}

// Store is an observable in-memory entity store.
type Store struct {
	mu sync.RWMutex

	transactions *collection[models.Transaction]
	members      *collection[models.FamilyMember]
	accounts     *collection[models.Account]
	categories   *collection[models.Category]
	goals        *collection[models.Goal]

	idGen uuid.Generator

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// New creates an empty store. A custom id generator may be supplied for
// deterministic tests; it defaults to UUIDv7.
func New(idGen ...uuid.Generator) *Store {
	gen := uuid.Generator(uuid.New)
	if len(idGen) > 0 && idGen[0] != nil {
		gen = idGen[0]
	}
	return &Store{
		transactions: newCollection(func(t *models.Transaction) string { return t.ID }),
		members:      newCollection(func(m *models.FamilyMember) string { return m.ID }),
		accounts:     newCollection(func(a *models.Account) string { return a.ID }),
		categories:   newCollection(func(c *models.Category) string { return c.ID }),
		goals:        newCollection(func(g *models.Goal) string { return g.ID }),
		idGen:        gen,
		subscribers:  make(map[int]func()),
	}
}

// Load replaces all five collections atomically, then notifies subscribers
// once. Used after a remote fetch.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	s.transactions.replace(snap.Transactions)
	s.members.replace(snap.Members)
	s.accounts.replace(snap.Accounts)
	s.categories.replace(snap.Categories)
	s.goals.replace(snap.Goals)
	s.mu.Unlock()

	s.notify()
}

// Snapshot returns a consistent copy of all five collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Transactions: s.transactions.all(),
		Members:      s.members.all(),
		Accounts:     s.accounts.all(),
		Categories:   s.categories.all(),
		Goals:        s.goals.all(),
	}
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned function cancels the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// notify runs after the mutation has committed, so subscribers reading the
// store observe the new state.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Transactions returns the transaction collection in insertion order.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.all()
}

// Transaction looks up a transaction by id.
func (s *Store) Transaction(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.get(id)
}

// InsertTransaction appends a transaction, assigning a fresh id if absent,
// and returns the stored entity.
func (s *Store) InsertTransaction(tx models.Transaction) models.Transaction {
	s.mu.Lock()
	if tx.ID == "" {
		tx.ID = s.idGen()
	}
	stored := s.transactions.insert(tx)
	s.mu.Unlock()

	s.notify()
	return stored
}

// UpdateTransaction merges the patch into the matching transaction.
// It reports whether the id was found.
func (s *Store) UpdateTransaction(id string, patch models.TransactionPatch) bool {
	s.mu.Lock()
	ok := s.transactions.update(id, patch.Apply)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// RemoveTransaction removes a transaction by id. Dependent entities are not
// cascaded.
func (s *Store) RemoveTransaction(id string) bool {
	s.mu.Lock()
	ok := s.transactions.remove(id)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// Members returns the family member collection in insertion order.
func (s *Store) Members() []models.FamilyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.all()
}

// Member looks up a family member by id.
func (s *Store) Member(id string) (models.FamilyMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.get(id)
}

// InsertMember appends a family member and returns the stored entity.
func (s *Store) InsertMember(m models.FamilyMember) models.FamilyMember {
	s.mu.Lock()
	if m.ID == "" {
		m.ID = s.idGen()
	}
	stored := s.members.insert(m)
	s.mu.Unlock()

	s.notify()
	return stored
}

// UpdateMember merges the patch into the matching member.
func (s *Store) UpdateMember(id string, patch models.MemberPatch) bool {
	s.mu.Lock()
	ok := s.members.update(id, patch.Apply)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// RemoveMember removes a family member by id.
func (s *Store) RemoveMember(id string) bool {
	s.mu.Lock()
	ok := s.members.remove(id)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// Accounts returns the account collection in insertion order.
func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.all()
}

// Account looks up an account by id.
func (s *Store) Account(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.get(id)
}

// InsertAccount appends an account and returns the stored entity.
func (s *Store) InsertAccount(a models.Account) models.Account {
	s.mu.Lock()
	if a.ID == "" {
		a.ID = s.idGen()
	}
	stored := s.accounts.insert(a)
	s.mu.Unlock()

	s.notify()
	return stored
}

// UpdateAccount merges the patch into the matching account.
func (s *Store) UpdateAccount(id string, patch models.AccountPatch) bool {
	s.mu.Lock()
	ok := s.accounts.update(id, patch.Apply)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// RemoveAccount removes an account by id.
func (s *Store) RemoveAccount(id string) bool {
	s.mu.Lock()
	ok := s.accounts.remove(id)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// Categories returns the category collection in insertion order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.all()
}

// Category looks up a category by id.
func (s *Store) Category(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.get(id)
}

// InsertCategory appends a category and returns the stored entity.
func (s *Store) InsertCategory(c models.Category) models.Category {
	s.mu.Lock()
	if c.ID == "" {
		c.ID = s.idGen()
	}
	stored := s.categories.insert(c)
	s.mu.Unlock()

	s.notify()
	return stored
}

// UpdateCategory merges the patch into the matching category.
func (s *Store) UpdateCategory(id string, patch models.CategoryPatch) bool {
	s.mu.Lock()
	ok := s.categories.update(id, patch.Apply)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// RemoveCategory removes a category by id. Transactions keep their category
// reference; resolution falls back to the uncategorized label.
func (s *Store) RemoveCategory(id string) bool {
	s.mu.Lock()
	ok := s.categories.remove(id)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// Goals returns the goal collection in insertion order.
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals.all()
}

// Goal looks up a goal by id.
func (s *Store) Goal(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals.get(id)
}

// InsertGoal appends a goal and returns the stored entity.
func (s *Store) InsertGoal(g models.Goal) models.Goal {
	s.mu.Lock()
	if g.ID == "" {
		g.ID = s.idGen()
	}
	stored := s.goals.insert(g)
	s.mu.Unlock()

	s.notify()
	return stored
}

// UpdateGoal merges the patch into the matching goal.
func (s *Store) UpdateGoal(id string, patch models.GoalPatch) bool {
	s.mu.Lock()
	ok := s.goals.update(id, patch.Apply)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// RemoveGoal removes a goal by id.
func (s *Store) RemoveGoal(id string) bool {
	s.mu.Lock()
	ok := s.goals.remove(id)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}
