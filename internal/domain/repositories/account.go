// Package repositories defines the repository interfaces for account data.
// These repositories abstract the data persistence details, ensuring the core
// engine is clean and decoupled from the database.
package repositories

import (
	"context"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
)

// AccountFactsProvider exposes the four independent reads the engines
// depend on. Each read is idempotent; an error means the category is
// unavailable, which is distinct from an empty result. The engines never
// write through this interface.
type AccountFactsProvider interface {
	GetOwnedProducts(ctx context.Context, userID string) (map[catalog.ProductID]bool, error)
	GetProgress(ctx context.Context, userID string) (map[catalog.ProductID]*account.ProgressRecord, error)
	GetGoals(ctx context.Context, userID string) ([]account.Goal, error)
	GetRecentActivity(ctx context.Context, userID string) ([]time.Time, error)
}

// ProgressRepository covers dashboard-side progress writes, which live
// outside the engine's read-only contract.
type ProgressRepository interface {
	Get(ctx context.Context, userID string, productID catalog.ProductID) (*account.ProgressRecord, error)
	Upsert(ctx context.Context, userID string, record *account.ProgressRecord) error
}

// GoalRepository covers dashboard-side goal writes.
type GoalRepository interface {
	List(ctx context.Context, userID string) ([]account.Goal, error)
	Set(ctx context.Context, userID string, goal account.Goal) error
}

// PurchaseRepository records ownership after a completed checkout.
type PurchaseRepository interface {
	Add(ctx context.Context, userID string, productID catalog.ProductID, price float64) error
}
