package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/shelfwise/shelfwise-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationService(t *testing.T, provider *fakeFactsProvider) *RecommendationService {
	t.Helper()
	logger := newTestLogger(t)
	return NewRecommendationService(
		NewAccountFactsService(provider, logger),
		NewSignalGeneratorService(newTestStore(t), DefaultSignalWeights()),
		NewAggregationService(),
		NewRankingService(),
		logger,
	)
}

func TestGetRecommendationsGuestPipeline(t *testing.T) {
	svc := newRecommendationService(t, &fakeFactsProvider{})

	ranked := svc.GetRecommendations(context.Background(), "", "ai-job-search", 0)
	require.Len(t, ranked, 5)
	for _, r := range ranked {
		assert.NotEqual(t, catalog.ProductID("ai-job-search"), r.ProductID)
		assert.Equal(t, config.ConfidenceGuestFallback, r.Confidence)
	}
}

func TestGetRecommendationsFallsBackToGuestWhenProviderDown(t *testing.T) {
	dbDown := errors.New("connection refused")
	svc := newRecommendationService(t, &fakeFactsProvider{
		ownedErr:    dbDown,
		progressErr: dbDown,
		goalsErr:    dbDown,
		activityErr: dbDown,
	})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "", 0)
	require.NotEmpty(t, ranked)
	for _, r := range ranked {
		assert.Equal(t, config.ConfidenceGuestFallback, r.Confidence)
	}
}

func TestGetRecommendationsDegradesWhenGoalsUnavailable(t *testing.T) {
	// Only the goal lookup fails: the other categories still feed the
	// pipeline, so results flow without any goal-match entries.
	svc := newRecommendationService(t, &fakeFactsProvider{
		owned: map[catalog.ProductID]bool{"ai-job-search": true},
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CurrentChapterIndex: 2},
		},
		goalsErr: errors.New("connection refused"),
	})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "", 0)
	require.NotEmpty(t, ranked)
	assert.Equal(t, engage.TargetChapter, ranked[0].TargetType)
	for _, r := range ranked {
		assert.NotEqual(t, engage.SignalGoalMatch, r.Source)
		assert.NotEqual(t, config.ConfidenceGuestFallback, r.Confidence)
	}
}

func TestGetRecommendationsContinuationRanksFirst(t *testing.T) {
	svc := newRecommendationService(t, &fakeFactsProvider{
		owned: map[catalog.ProductID]bool{"ai-job-search": true},
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CurrentChapterIndex: 1},
		},
		goals: []account.Goal{{Category: account.GoalBusiness, Status: account.GoalActive}},
	})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "", 0)
	require.NotEmpty(t, ranked)

	first := ranked[0]
	assert.Equal(t, engage.TargetChapter, first.TargetType)
	assert.Equal(t, catalog.ProductID("ai-job-search"), first.ProductID)
	require.NotNil(t, first.ChapterIndex)
	assert.Equal(t, 2, *first.ChapterIndex)
	assert.Equal(t, 1, first.Rank)

	// The goal-aligned guide outranks everything but the continuation.
	assert.Equal(t, catalog.ProductID("side-hustle-blueprint"), ranked[1].ProductID)
	assert.Equal(t, engage.SignalGoalMatch, ranked[1].Source)
}

func TestGetRecommendationsNeverSuggestOwnedProducts(t *testing.T) {
	svc := newRecommendationService(t, &fakeFactsProvider{
		owned: map[catalog.ProductID]bool{
			"ai-job-search":     true,
			"interview-mastery": true,
		},
		goals: []account.Goal{{Category: account.GoalCareer, Status: account.GoalActive}},
	})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "ai-job-search", 0)
	for _, r := range ranked {
		if r.TargetType == engage.TargetChapter {
			continue
		}
		assert.False(t, r.ProductID == "ai-job-search" || r.ProductID == "interview-mastery",
			"owned product %q surfaced as a recommendation", r.ProductID)
	}
}

func TestGetRecommendationsRespectsLimit(t *testing.T) {
	svc := newRecommendationService(t, &fakeFactsProvider{})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "", 2)
	assert.Len(t, ranked, 2)

	ranked = svc.GetRecommendations(context.Background(), "user-1", "", 0)
	assert.LessOrEqual(t, len(ranked), config.RecommendationLimit)
}

func TestGetRecommendationsDeduplicatesAcrossSignals(t *testing.T) {
	// Viewing ai-job-search with an active career goal: personal-brand is
	// both a graph neighbor and a popularity candidate, and ai-job-search is
	// both goal-aligned and a popularity candidate. Every guide must appear
	// at most once.
	svc := newRecommendationService(t, &fakeFactsProvider{
		goals: []account.Goal{{Category: account.GoalCareer, Status: account.GoalActive}},
	})

	ranked := svc.GetRecommendations(context.Background(), "user-1", "ai-job-search", 10)
	seen := make(map[engage.CandidateKey]bool)
	for _, r := range ranked {
		key := r.Key()
		assert.False(t, seen[key], "duplicate recommendation for %v", key)
		seen[key] = true
	}

	// The goal-match confidence wins over popularity for the aligned guide.
	for _, r := range ranked {
		if r.ProductID == "ai-job-search" {
			assert.Equal(t, engage.SignalGoalMatch, r.Source)
		}
	}
}

func TestGetRecommendationsIsDeterministic(t *testing.T) {
	provider := &fakeFactsProvider{
		owned: map[catalog.ProductID]bool{"financial-freedom": true},
		progress: map[catalog.ProductID]*account.ProgressRecord{
			"financial-freedom": {ProductID: "financial-freedom", TotalChapters: 6, CurrentChapterIndex: 0},
		},
	}
	svc := newRecommendationService(t, provider)

	first := svc.GetRecommendations(context.Background(), "user-1", "side-hustle-blueprint", 0)
	second := svc.GetRecommendations(context.Background(), "user-1", "side-hustle-blueprint", 0)
	assert.Equal(t, first, second)
}
