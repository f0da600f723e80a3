package services

import (
	"testing"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerators(t *testing.T) *SignalGeneratorService {
	t.Helper()
	return NewSignalGeneratorService(newTestStore(t), DefaultSignalWeights())
}

func TestGenerateContinuation(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true},
		Progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CurrentChapterIndex: 2},
		},
	}

	candidates := gen.GenerateContinuation(facts)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, engage.TargetChapter, c.TargetType)
	assert.Equal(t, catalog.ProductID("ai-job-search"), c.ProductID)
	require.NotNil(t, c.ChapterIndex)
	assert.Equal(t, 3, *c.ChapterIndex)
	assert.Equal(t, engage.SignalContinuation, c.Source)
	assert.True(t, c.Valid())
}

func TestGenerateContinuationSkipsFinishedGuides(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"interview-mastery": true},
		Progress: map[catalog.ProductID]*account.ProgressRecord{
			// On the last chapter (index 4 of 5): nothing left to continue to.
			"interview-mastery": {ProductID: "interview-mastery", TotalChapters: 5, CurrentChapterIndex: 4},
		},
	}

	assert.Empty(t, gen.GenerateContinuation(facts))
}

func TestGenerateContinuationSkipsNegativeStoredIndex(t *testing.T) {
	gen := newTestGenerators(t)

	// Nothing validates current_chapter on the way out of the database, so
	// the generator must drop a corrupt record instead of panicking.
	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true},
		Progress: map[catalog.ProductID]*account.ProgressRecord{
			"ai-job-search": {ProductID: "ai-job-search", TotalChapters: 7, CurrentChapterIndex: -3},
		},
	}

	assert.Empty(t, gen.GenerateContinuation(facts))
}

func TestGenerateContinuationSkipsUnownedAndNoProgress(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true},
		Progress: map[catalog.ProductID]*account.ProgressRecord{
			// Progress on an unowned guide never produces a continuation.
			"interview-mastery": {ProductID: "interview-mastery", TotalChapters: 5, CurrentChapterIndex: 1},
		},
	}

	assert.Empty(t, gen.GenerateContinuation(facts))
}

func TestGenerateGoalMatch(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		Goals: []account.Goal{
			{Category: account.GoalCareer, Status: account.GoalActive},
			{Category: account.GoalFinancial, Status: account.GoalCompleted},
		},
	}

	candidates := gen.GenerateGoalMatch(facts)
	require.Len(t, candidates, 1)
	assert.Equal(t, catalog.ProductID("ai-job-search"), candidates[0].ProductID)
	assert.Equal(t, engage.SignalGoalMatch, candidates[0].Source)
}

func TestGenerateGoalMatchSkipsOwnedAndUnalignedCategories(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true},
		Goals: []account.Goal{
			{Category: account.GoalCareer, Status: account.GoalActive},
			{Category: account.GoalPersonal, Status: account.GoalActive},
		},
	}

	assert.Empty(t, gen.GenerateGoalMatch(facts))
}

func TestGenerateCompletionMomentum(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{
			"ai-job-search":     true,
			"interview-mastery": true,
		},
		Progress: map[catalog.ProductID]*account.ProgressRecord{
			"interview-mastery": {
				ProductID:         "interview-mastery",
				TotalChapters:     5,
				CompletedChapters: []int{0, 1, 2, 3},
			},
		},
	}

	candidates := gen.GenerateCompletionMomentum(facts)
	require.Len(t, candidates, 1)
	assert.Equal(t, catalog.ProductID("complete-collection"), candidates[0].ProductID)
	assert.Equal(t, engage.SignalCompletionMomentum, candidates[0].Source)
}

func TestGenerateCompletionMomentumRequiresDepthAndBreadth(t *testing.T) {
	gen := newTestGenerators(t)

	t.Run("one owned guide is not enough", func(t *testing.T) {
		facts := &account.Facts{
			OwnedProducts: map[catalog.ProductID]bool{"interview-mastery": true},
			Progress: map[catalog.ProductID]*account.ProgressRecord{
				"interview-mastery": {ProductID: "interview-mastery", TotalChapters: 5, CompletedChapters: []int{0, 1, 2, 3}},
			},
		}
		assert.Empty(t, gen.GenerateCompletionMomentum(facts))
	})

	t.Run("shallow progress is not enough", func(t *testing.T) {
		facts := &account.Facts{
			OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true, "interview-mastery": true},
			Progress: map[catalog.ProductID]*account.ProgressRecord{
				"interview-mastery": {ProductID: "interview-mastery", TotalChapters: 5, CompletedChapters: []int{0}},
			},
		}
		assert.Empty(t, gen.GenerateCompletionMomentum(facts))
	})

	t.Run("bundle owners are never pitched the bundle", func(t *testing.T) {
		facts := &account.Facts{
			OwnedProducts: map[catalog.ProductID]bool{
				"ai-job-search":       true,
				"interview-mastery":   true,
				"complete-collection": true,
			},
			Progress: map[catalog.ProductID]*account.ProgressRecord{
				"interview-mastery": {ProductID: "interview-mastery", TotalChapters: 5, CompletedChapters: []int{0, 1, 2, 3}},
			},
		}
		assert.Empty(t, gen.GenerateCompletionMomentum(facts))
	})
}

func TestGenerateRelationshipGraph(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"interview-mastery": true},
	}

	candidates := gen.GenerateRelationshipGraph(facts, "ai-job-search")
	require.Len(t, candidates, 1)
	assert.Equal(t, catalog.ProductID("personal-brand"), candidates[0].ProductID)
	assert.Equal(t, engage.SignalRelationshipGraph, candidates[0].Source)
}

func TestGenerateRelationshipGraphWithoutViewingContext(t *testing.T) {
	gen := newTestGenerators(t)
	assert.Empty(t, gen.GenerateRelationshipGraph(&account.Facts{}, ""))
}

func TestGeneratePopularityFallbackCoversUnownedCatalog(t *testing.T) {
	gen := newTestGenerators(t)

	facts := &account.Facts{
		OwnedProducts: map[catalog.ProductID]bool{"ai-job-search": true},
	}

	candidates := gen.GeneratePopularityFallback(facts)
	assert.Len(t, candidates, 5)
	for _, c := range candidates {
		assert.NotEqual(t, catalog.ProductID("ai-job-search"), c.ProductID)
		assert.Equal(t, engage.SignalPopularityFallback, c.Source)
	}
}

func TestGenerateGuestFallbackExcludesViewedGuide(t *testing.T) {
	gen := newTestGenerators(t)

	candidates := gen.GenerateGuestFallback("financial-freedom")
	assert.Len(t, candidates, 5)
	for _, c := range candidates {
		assert.NotEqual(t, catalog.ProductID("financial-freedom"), c.ProductID)
		assert.Equal(t, DefaultSignalWeights().GuestFallback, c.Confidence)
	}
}

func TestGeneratorsTolerateNilFacts(t *testing.T) {
	gen := newTestGenerators(t)

	assert.Empty(t, gen.GenerateContinuation(nil))
	assert.Empty(t, gen.GenerateGoalMatch(nil))
	assert.Empty(t, gen.GenerateCompletionMomentum(nil))
	assert.NotEmpty(t, gen.GeneratePopularityFallback(nil))
}
