// Package services provides dashboard-side reading progress tracking
package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	"github.com/shelfwise/shelfwise-go/internal/domain/repositories"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
)

// ProgressService records and reads per-guide reading progress. Writes sit
// on the provider side of the engine's read-only contract: recording
// progress also records an activity action, which feeds the re-engagement
// signal on later requests.
type ProgressService struct {
	progress repositories.ProgressRepository
	catalog  *catalogstore.Store
	sink     events.Sink
	logger   *logging.ChanneledLogger
}

// NewProgressService creates a new progress service with its dependencies.
func NewProgressService(
	progress repositories.ProgressRepository,
	catalog *catalogstore.Store,
	sink events.Sink,
	logger *logging.ChanneledLogger,
) *ProgressService {
	return &ProgressService{
		progress: progress,
		catalog:  catalog,
		sink:     sink,
		logger:   logger,
	}
}

// GetProgress returns the stored record for one guide, or a fresh
// zero-progress record when none exists yet.
func (s *ProgressService) GetProgress(ctx context.Context, userID string, productID catalog.ProductID) (*account.ProgressRecord, error) {
	total := s.catalog.ChapterCount(productID)
	if total == 0 {
		return nil, fmt.Errorf("product %q has no chapters", productID)
	}

	record, err := s.progress.Get(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &account.ProgressRecord{
			ProductID:     productID,
			TotalChapters: total,
		}
	}
	return record, nil
}

// ProgressUpdate is one dashboard-side progress write.
type ProgressUpdate struct {
	CurrentChapterIndex int  `json:"currentChapterIndex"`
	CompletedChapter    *int `json:"completedChapter,omitempty"`
}

// RecordProgress validates and stores a progress update, then records the
// reading action fire-and-forget.
func (s *ProgressService) RecordProgress(ctx context.Context, userID string, productID catalog.ProductID, update ProgressUpdate) (*account.ProgressRecord, error) {
	total := s.catalog.ChapterCount(productID)
	if total == 0 {
		return nil, fmt.Errorf("product %q has no chapters", productID)
	}
	if update.CurrentChapterIndex < 0 || update.CurrentChapterIndex >= total {
		return nil, fmt.Errorf("chapter index %d out of range for product %q", update.CurrentChapterIndex, productID)
	}
	if update.CompletedChapter != nil && (*update.CompletedChapter < 0 || *update.CompletedChapter >= total) {
		return nil, fmt.Errorf("completed chapter %d out of range for product %q", *update.CompletedChapter, productID)
	}

	record, err := s.GetProgress(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	record.CurrentChapterIndex = update.CurrentChapterIndex
	record.TotalChapters = total
	if update.CompletedChapter != nil && !slices.Contains(record.CompletedChapters, *update.CompletedChapter) {
		record.CompletedChapters = append(record.CompletedChapters, *update.CompletedChapter)
		slices.Sort(record.CompletedChapters)
	}

	if err := s.progress.Upsert(ctx, userID, record); err != nil {
		return nil, err
	}

	verb := "CHAPTER_VIEWED"
	if update.CompletedChapter != nil {
		verb = "CHAPTER_COMPLETED"
	}
	s.sink.Record(events.InteractionEvent{
		UserID:     userID,
		ObjectID:   string(productID),
		ObjectType: "guide",
		Verb:       verb,
		CreatedAt:  time.Now().UTC(),
	})

	s.logger.Engine().Debug("Progress recorded",
		"userId", userID,
		"productId", string(productID),
		"currentChapter", record.CurrentChapterIndex,
		"completion", record.CompletionPercentage())

	return record, nil
}
