// Package loader defines the persistence contract the finance core depends
// on. The core only needs this shape; the transport behind it (local sqlite,
// in-memory mock) is substitutable.
package loader

import (
	"context"

	"famfin/internal/models"
	"famfin/internal/store"
)

// Loader fetches and persists the household's entities. FetchAll returns a
// full snapshot of the five collections; the per-entity writers mirror the
// gateway's mutations. Implementations must be safe for concurrent use.
type Loader interface {
	FetchAll(ctx context.Context, ownerID string) (*store.Snapshot, error)

	InsertTransaction(ctx context.Context, tx *models.Transaction) error
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	InsertAccount(ctx context.Context, a *models.Account) error
	UpdateAccount(ctx context.Context, a *models.Account) error
	DeleteAccount(ctx context.Context, id string) error

	InsertMember(ctx context.Context, m *models.FamilyMember) error
	UpdateMember(ctx context.Context, m *models.FamilyMember) error
	DeleteMember(ctx context.Context, id string) error

	InsertCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	InsertGoal(ctx context.Context, g *models.Goal) error
	UpdateGoal(ctx context.Context, g *models.Goal) error
	DeleteGoal(ctx context.Context, id string) error
}
