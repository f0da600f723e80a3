package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
)

// SQLProgressRepository implements repositories.ProgressRepository.
type SQLProgressRepository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLProgressRepository creates a new instance of the repository.
func NewSQLProgressRepository(db *database.DB, logger *logging.ChanneledLogger) *SQLProgressRepository {
	return &SQLProgressRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the progress record for one owned product, or nil when no
// reading has been recorded yet.
func (r *SQLProgressRepository) Get(ctx context.Context, userID string, productID catalog.ProductID) (*account.ProgressRecord, error) {
	var (
		current       int
		completedJSON string
		total         int
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT current_chapter, completed_chapters, total_chapters FROM progress WHERE user_id = ? AND product_id = ?`,
		userID, string(productID)).Scan(&current, &completedJSON, &total)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query progress record: %w", err)
	}

	var completed []int
	if err := json.Unmarshal([]byte(completedJSON), &completed); err != nil {
		r.logger.Database().Warn("Malformed completed_chapters payload, treating as empty",
			"userId", userID, "productId", string(productID), "error", err.Error())
		completed = nil
	}

	return &account.ProgressRecord{
		ProductID:           productID,
		CompletedChapters:   completed,
		TotalChapters:       total,
		CurrentChapterIndex: current,
	}, nil
}

// Upsert stores the progress record for one product.
func (r *SQLProgressRepository) Upsert(ctx context.Context, userID string, record *account.ProgressRecord) error {
	completedJSON, err := json.Marshal(record.CompletedChapters)
	if err != nil {
		return fmt.Errorf("failed to encode completed chapters: %w", err)
	}

	const query = `
		INSERT INTO progress (user_id, product_id, current_chapter, completed_chapters, total_chapters, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, product_id) DO UPDATE SET
			current_chapter = excluded.current_chapter,
			completed_chapters = excluded.completed_chapters,
			total_chapters = excluded.total_chapters,
			updated_at = excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		userID, string(record.ProductID), record.CurrentChapterIndex,
		string(completedJSON), record.TotalChapters, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	return nil
}
