package services

import (
	"context"
	"testing"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProgressRepo struct {
	records map[catalog.ProductID]*account.ProgressRecord
}

func newMemoryProgressRepo() *memoryProgressRepo {
	return &memoryProgressRepo{records: make(map[catalog.ProductID]*account.ProgressRecord)}
}

func (m *memoryProgressRepo) Get(ctx context.Context, userID string, productID catalog.ProductID) (*account.ProgressRecord, error) {
	return m.records[productID], nil
}

func (m *memoryProgressRepo) Upsert(ctx context.Context, userID string, record *account.ProgressRecord) error {
	m.records[record.ProductID] = record
	return nil
}

type captureSink struct {
	events []events.InteractionEvent
}

func (c *captureSink) Record(event events.InteractionEvent) {
	c.events = append(c.events, event)
}

func newProgressService(t *testing.T) (*ProgressService, *memoryProgressRepo, *captureSink) {
	t.Helper()
	repo := newMemoryProgressRepo()
	sink := &captureSink{}
	return NewProgressService(repo, newTestStore(t), sink, newTestLogger(t)), repo, sink
}

func TestGetProgressReturnsZeroRecordWhenUnset(t *testing.T) {
	svc, _, _ := newProgressService(t)

	record, err := svc.GetProgress(context.Background(), "user-1", "ai-job-search")
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductID("ai-job-search"), record.ProductID)
	assert.Equal(t, 7, record.TotalChapters)
	assert.Zero(t, record.CompletionPercentage())
}

func TestGetProgressRejectsChapterlessProducts(t *testing.T) {
	svc, _, _ := newProgressService(t)

	_, err := svc.GetProgress(context.Background(), "user-1", "complete-collection")
	assert.Error(t, err)

	_, err = svc.GetProgress(context.Background(), "user-1", "no-such-guide")
	assert.Error(t, err)
}

func TestRecordProgressStoresAndEmitsEvent(t *testing.T) {
	svc, repo, sink := newProgressService(t)

	record, err := svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: 2,
		CompletedChapter:    intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, record.CurrentChapterIndex)
	assert.Equal(t, []int{1}, record.CompletedChapters)

	stored := repo.records["ai-job-search"]
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.CurrentChapterIndex)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "CHAPTER_COMPLETED", sink.events[0].Verb)
	assert.Equal(t, "ai-job-search", sink.events[0].ObjectID)
	assert.Equal(t, "user-1", sink.events[0].UserID)
}

func TestRecordProgressDeduplicatesCompletedChapters(t *testing.T) {
	svc, _, _ := newProgressService(t)

	_, err := svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: 1,
		CompletedChapter:    intPtr(0),
	})
	require.NoError(t, err)

	record, err := svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: 2,
		CompletedChapter:    intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, record.CompletedChapters)
}

func TestRecordProgressValidatesChapterBounds(t *testing.T) {
	svc, _, sink := newProgressService(t)

	_, err := svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: 7,
	})
	assert.Error(t, err)

	_, err = svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: -1,
	})
	assert.Error(t, err)

	_, err = svc.RecordProgress(context.Background(), "user-1", "ai-job-search", ProgressUpdate{
		CurrentChapterIndex: 0,
		CompletedChapter:    intPtr(9),
	})
	assert.Error(t, err)

	assert.Empty(t, sink.events)
}
