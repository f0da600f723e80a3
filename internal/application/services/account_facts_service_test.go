package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFactsAssemblesAllCategories(t *testing.T) {
	provider := &fakeFactsProvider{
		owned: map[catalog.ProductID]bool{"ai-job-search": true},
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7},
		},
		goals:    []account.Goal{{Category: account.GoalCareer, Status: account.GoalActive}},
		activity: []time.Time{time.Now()},
	}
	svc := NewAccountFactsService(provider, newTestLogger(t))

	facts, availability := svc.GetFacts(context.Background(), "user-1")

	assert.True(t, availability.Ownership)
	assert.True(t, availability.Progress)
	assert.True(t, availability.Goals)
	assert.True(t, availability.Activity)
	assert.False(t, availability.AllUnavailable())

	assert.True(t, facts.Owns("ai-job-search"))
	require.Contains(t, facts.Progress, catalog.ProductID("ai-job-search"))
	assert.Len(t, facts.Goals, 1)
	assert.Len(t, facts.RecentActivity, 1)
}

func TestGetFactsDegradesPerCategory(t *testing.T) {
	provider := &fakeFactsProvider{
		owned:    map[catalog.ProductID]bool{"ai-job-search": true},
		goalsErr: errors.New("goals table locked"),
	}
	svc := NewAccountFactsService(provider, newTestLogger(t))

	facts, availability := svc.GetFacts(context.Background(), "user-1")

	assert.True(t, availability.Ownership)
	assert.False(t, availability.Goals)
	assert.False(t, availability.AllUnavailable())

	// The failed category is empty, the others intact.
	assert.Empty(t, facts.Goals)
	assert.True(t, facts.Owns("ai-job-search"))
}

func TestGetFactsReportsTotalUnavailability(t *testing.T) {
	dbDown := errors.New("connection refused")
	provider := &fakeFactsProvider{
		ownedErr:    dbDown,
		progressErr: dbDown,
		goalsErr:    dbDown,
		activityErr: dbDown,
	}
	svc := NewAccountFactsService(provider, newTestLogger(t))

	facts, availability := svc.GetFacts(context.Background(), "user-1")

	assert.True(t, availability.AllUnavailable())
	assert.False(t, facts.Owns("ai-job-search"))
	assert.Empty(t, facts.Goals)
}
