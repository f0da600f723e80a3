// Package account provides the concrete SQL-based implementations for
// account fact reads and dashboard-side writes.
//
// PURPOSE: serve the four independent fact reads the engines fan out to
// - ownership      → purchases table
// - progress       → progress table
// - goals          → goals table
// - activity       → actions table
//
// A query error means the category is unavailable; an empty result set is a
// valid empty category.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// SQLFactsRepository implements repositories.AccountFactsProvider against
// the shared database.
type SQLFactsRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLFactsRepository creates a new instance of the repository.
func NewSQLFactsRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLFactsRepository {
	return &SQLFactsRepository{
		db:     db,
		logger: logger,
	}
}

// GetOwnedProducts returns the set of product IDs the user has purchased.
func (r *SQLFactsRepository) GetOwnedProducts(ctx context.Context, userID string) (map[catalog.ProductID]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT product_id FROM purchases WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	owned := make(map[catalog.ProductID]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		owned[catalog.ProductID(id)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase rows iteration failed: %w", err)
	}

	return owned, nil
}

// GetProgress returns per-product reading progress for the user.
func (r *SQLFactsRepository) GetProgress(ctx context.Context, userID string) (map[catalog.ProductID]*account.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, current_chapter, completed_chapters, total_chapters FROM progress WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[catalog.ProductID]*account.ProgressRecord)
	for rows.Next() {
		var (
			productID     string
			current       int
			completedJSON string
			total         int
		)
		if err := rows.Scan(&productID, &current, &completedJSON, &total); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}

		var completed []int
		if err := json.Unmarshal([]byte(completedJSON), &completed); err != nil {
			r.logger.Database().Warn("Malformed completed_chapters payload, treating as empty",
				"userId", userID, "productId", productID, "error", err.Error())
			completed = nil
		}

		progress[catalog.ProductID(productID)] = &account.ProgressRecord{
			ProductID:           catalog.ProductID(productID),
			CompletedChapters:   completed,
			TotalChapters:       total,
			CurrentChapterIndex: current,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress rows iteration failed: %w", err)
	}

	return progress, nil
}

// GetGoals returns the user's goals, active and completed.
func (r *SQLFactsRepository) GetGoals(ctx context.Context, userID string) ([]account.Goal, error) {
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

// GetRecentActivity returns action timestamps inside the re-engagement
// window, newest first.
func (r *SQLFactsRepository) GetRecentActivity(ctx context.Context, userID string) ([]time.Time, error) {
	cutoff := time.Now().UTC().Add(-config.ReEngagementWindow)
	rows, err := r.db.QueryContext(ctx,
		`SELECT created_at FROM actions WHERE user_id = ? AND created_at >= ? ORDER BY created_at DESC LIMIT 50`,
		userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		timestamps = append(timestamps, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity rows iteration failed: %w", err)
	}

	return timestamps, nil
}
