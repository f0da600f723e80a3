package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

func newTestStore(t *testing.T) *catalogstore.Store {
	t.Helper()
	store, err := catalogstore.NewStore(newTestLogger(t))
	require.NoError(t, err)
	return store
}

func intPtr(i int) *int { return &i }

// fakeFactsProvider lets each fact category succeed or fail independently.
type fakeFactsProvider struct {
	owned    map[catalog.ProductID]bool
	progress map[catalog.ProductID]*account.ProgressRecord
	goals    []account.Goal
	activity []time.Time

	ownedErr    error
	progressErr error
	goalsErr    error
	activityErr error
}

func (f *fakeFactsProvider) GetOwnedProducts(ctx context.Context, userID string) (map[catalog.ProductID]bool, error) {
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	return f.owned, nil
}

func (f *fakeFactsProvider) GetProgress(ctx context.Context, userID string) (map[catalog.ProductID]*account.ProgressRecord, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return f.progress, nil
}

func (f *fakeFactsProvider) GetGoals(ctx context.Context, userID string) ([]account.Goal, error) {
	if f.goalsErr != nil {
		return nil, f.goalsErr
	}
	return f.goals, nil
}

func (f *fakeFactsProvider) GetRecentActivity(ctx context.Context, userID string) ([]time.Time, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	return f.activity, nil
}
