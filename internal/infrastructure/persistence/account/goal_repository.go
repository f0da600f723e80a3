package account

import (
	"context"
	"fmt"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
)

// SQLGoalRepository implements repositories.GoalRepository.
type SQLGoalRepository struct {
	db *database.DB
}

// NewSQLGoalRepository creates a new instance of the repository.
func NewSQLGoalRepository(db *database.DB) *SQLGoalRepository {
	return &SQLGoalRepository{db: db}
}

// List returns all goals for the user.
func (r *SQLGoalRepository) List(ctx context.Context, userID string) ([]account.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, status FROM goals WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []account.Goal
	for rows.Next() {
		var category, status string
		if err := rows.Scan(&category, &status); err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, account.Goal{
			Category: account.GoalCategory(category),
			Status:   account.GoalStatus(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal rows iteration failed: %w", err)
	}

	return goals, nil
}

// Set stores or updates one goal for the user, keyed by category.
func (r *SQLGoalRepository) Set(ctx context.Context, userID string, goal account.Goal) error {
	const query = `
		INSERT INTO goals (user_id, category, status, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, category) DO UPDATE SET status = excluded.status`

	_, err := r.db.ExecContext(ctx, query, userID, string(goal.Category), string(goal.Status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}
	return nil
}

// SQLPurchaseRepository implements repositories.PurchaseRepository.
type SQLPurchaseRepository struct {
	db *database.DB
}

// NewSQLPurchaseRepository creates a new instance of the repository.
func NewSQLPurchaseRepository(db *database.DB) *SQLPurchaseRepository {
	return &SQLPurchaseRepository{db: db}
}

// Add records ownership of a product. Re-recording an owned product is a
// no-op.
func (r *SQLPurchaseRepository) Add(ctx context.Context, userID string, productID catalog.ProductID, price float64) error {
	const query = `
		INSERT INTO purchases (user_id, product_id, price, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, product_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID, string(productID), price, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}
	return nil
}
