package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"famfin/internal/models"
	"famfin/internal/store"
)

// Loader implements loader.Loader on top of the sqlite database.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a loader bound to the manager's database.
func NewLoader(m *Manager) *Loader {
	return &Loader{db: m.DB()}
}

// FetchAll loads all five collections for the owner, each in creation order.
func (l *Loader) FetchAll(ctx context.Context, ownerID string) (*store.Snapshot, error) {
	db := l.db.WithContext(ctx)
	snap := &store.Snapshot{}

	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&snap.Transactions).Error; err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&snap.Members).Error; err != nil {
		return nil, fmt.Errorf("fetch members: %w", err)
	}
	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&snap.Accounts).Error; err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&snap.Categories).Error; err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&snap.Goals).Error; err != nil {
		return nil, fmt.Errorf("fetch goals: %w", err)
	}

	return snap, nil
}

func (l *Loader) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	return l.db.WithContext(ctx).Create(tx).Error
}

func (l *Loader) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	return l.db.WithContext(ctx).Save(tx).Error
}

func (l *Loader) DeleteTransaction(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id).Error
}

func (l *Loader) InsertAccount(ctx context.Context, a *models.Account) error {
	return l.db.WithContext(ctx).Create(a).Error
}

func (l *Loader) UpdateAccount(ctx context.Context, a *models.Account) error {
	return l.db.WithContext(ctx).Save(a).Error
}

func (l *Loader) DeleteAccount(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&models.Account{}, "id = ?", id).Error
}

func (l *Loader) InsertMember(ctx context.Context, m *models.FamilyMember) error {
	return l.db.WithContext(ctx).Create(m).Error
}

func (l *Loader) UpdateMember(ctx context.Context, m *models.FamilyMember) error {
	return l.db.WithContext(ctx).Save(m).Error
}

func (l *Loader) DeleteMember(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&models.FamilyMember{}, "id = ?", id).Error
}

func (l *Loader) InsertCategory(ctx context.Context, c *models.Category) error {
	return l.db.WithContext(ctx).Create(c).Error
}

func (l *Loader) UpdateCategory(ctx context.Context, c *models.Category) error {
	return l.db.WithContext(ctx).Save(c).Error
}

func (l *Loader) DeleteCategory(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (l *Loader) InsertGoal(ctx context.Context, g *models.Goal) error {
	return l.db.WithContext(ctx).Create(g).Error
}

func (l *Loader) UpdateGoal(ctx context.Context, g *models.Goal) error {
	return l.db.WithContext(ctx).Save(g).Error
}

func (l *Loader) DeleteGoal(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&models.Goal{}, "id = ?", id).Error
}
