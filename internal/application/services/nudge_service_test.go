package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/shelfwise/shelfwise-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinnedClock returns a clock fixed at the given hour on a weekday.
func pinnedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.March, 12, hour, 30, 0, 0, time.UTC)
	}
}

func newNudgeService(t *testing.T, provider *fakeFactsProvider, hour int) *NudgeService {
	t.Helper()
	logger := newTestLogger(t)
	return NewNudgeService(NewAccountFactsService(provider, logger), logger).WithClock(pinnedClock(hour))
}

func TestGetNudgesGuestPair(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{}, 10)

	nudges := svc.GetNudges(context.Background(), "", "")
	require.Len(t, nudges, 2)
	assert.Equal(t, engage.NudgeGeneral, nudges[0].Category)
	assert.Equal(t, engage.NudgeGeneral, nudges[1].Category)
	assert.Equal(t, config.NudgePriorityGuestExplore, nudges[0].Priority)
	assert.Equal(t, config.NudgePriorityGuestProfile, nudges[1].Priority)
	assert.Greater(t, nudges[0].Priority, nudges[1].Priority)
}

func TestGetNudgesFallsBackToGuestWhenProviderDown(t *testing.T) {
	dbDown := errors.New("connection refused")
	svc := newNudgeService(t, &fakeFactsProvider{
		ownedErr:    dbDown,
		progressErr: dbDown,
		goalsErr:    dbDown,
		activityErr: dbDown,
	}, 10)

	nudges := svc.GetNudges(context.Background(), "user-1", "")
	require.Len(t, nudges, 2)
	assert.Equal(t, engage.NudgeGeneral, nudges[0].Category)
}

func TestGetNudgesDaytimeBreakRead(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		activity: []time.Time{pinnedClock(10)().Add(-time.Hour)},
	}, 10)

	nudges := svc.GetNudges(context.Background(), "user-1", "")
	require.Len(t, nudges, 1)
	assert.Equal(t, engage.NudgeTimeBased, nudges[0].Category)
	assert.Equal(t, config.NudgePriorityBreakRead, nudges[0].Priority)
}

func TestGetNudgesEveningSession(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		activity: []time.Time{pinnedClock(19)().Add(-time.Hour)},
	}, 19)

	nudges := svc.GetNudges(context.Background(), "user-1", "")
	require.Len(t, nudges, 1)
	assert.Equal(t, config.NudgePriorityEveningSession, nudges[0].Priority)
}

func TestGetNudgesNoTimeRuleOutsideWindows(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	assert.Empty(t, svc.GetNudges(context.Background(), "user-1", ""))
}

func TestGetNudgesNearFinish(t *testing.T) {
	// 4 of 5 chapters complete is 80%, past the near-finish threshold.
	svc := newNudgeService(t, &fakeFactsProvider{
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"interview-mastery": {
				ProductID:         "interview-mastery",
				TotalChapters:     5,
				CompletedChapters: []int{0, 1, 2, 3},
			},
		},
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	nudges := svc.GetNudges(context.Background(), "user-1", "interview-mastery")
	require.Len(t, nudges, 1)
	assert.Equal(t, engage.NudgeProgress, nudges[0].Category)
	assert.Equal(t, config.NudgePriorityNearFinish, nudges[0].Priority)
}

func TestGetNudgesLowProgressMomentum(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {
				ProductID:         "ai-job-search",
				TotalChapters:     7,
				CompletedChapters: []int{0},
			},
		},
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	nudges := svc.GetNudges(context.Background(), "user-1", "ai-job-search")
	require.Len(t, nudges, 1)
	assert.Equal(t, config.NudgePriorityMomentum, nudges[0].Priority)
}

func TestGetNudgesProgressNeedsViewingContext(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CompletedChapters: []int{0}},
		},
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	assert.Empty(t, svc.GetNudges(context.Background(), "user-1", ""))
}

func TestGetNudgesGoalReminder(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		goals:    []account.Goal{{Category: account.GoalFinancial, Status: account.GoalActive}},
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	nudges := svc.GetNudges(context.Background(), "user-1", "")
	require.Len(t, nudges, 1)
	assert.Equal(t, engage.NudgeGoalBased, nudges[0].Category)
	assert.Contains(t, nudges[0].Description, "financial")
}

func TestGetNudgesWelcomeBackAfterInactivity(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		activity: []time.Time{pinnedClock(23)().Add(-config.ReEngagementWindow - 24*time.Hour)},
	}, 23)

	nudges := svc.GetNudges(context.Background(), "user-1", "")
	require.Len(t, nudges, 1)
	assert.Equal(t, engage.NudgeEngagement, nudges[0].Category)
	assert.Equal(t, config.NudgePriorityWelcomeBack, nudges[0].Priority)
}

func TestGetNudgesRecentActivitySuppressesWelcomeBack(t *testing.T) {
	svc := newNudgeService(t, &fakeFactsProvider{
		activity: []time.Time{pinnedClock(23)().Add(-time.Hour)},
	}, 23)

	assert.Empty(t, svc.GetNudges(context.Background(), "user-1", ""))
}

func TestGetNudgesTopThreeByPriority(t *testing.T) {
	// Daytime window + low progress + active goal + long inactivity fires
	// four rules; only the top three survive.
	svc := newNudgeService(t, &fakeFactsProvider{
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CompletedChapters: []int{0}},
		},
		goals: []account.Goal{{Category: account.GoalCareer, Status: account.GoalActive}},
	}, 10)

	nudges := svc.GetNudges(context.Background(), "user-1", "ai-job-search")
	require.Len(t, nudges, config.NudgeLimit)

	// Momentum 0.9 > goal 0.85 > welcome back 0.8; break-read 0.7 is cut.
	assert.Equal(t, config.NudgePriorityMomentum, nudges[0].Priority)
	assert.Equal(t, config.NudgePriorityGoal, nudges[1].Priority)
	assert.Equal(t, config.NudgePriorityWelcomeBack, nudges[2].Priority)
	for i := 1; i < len(nudges); i++ {
		assert.GreaterOrEqual(t, nudges[i-1].Priority, nudges[i].Priority)
	}
}
