package engage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestCandidateValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      bool
	}{
		{"valid product", Candidate{TargetType: TargetProduct, ProductID: "x", Confidence: 0.5}, true},
		{"valid chapter", Candidate{TargetType: TargetChapter, ProductID: "x", ChapterIndex: intPtr(0), Confidence: 0.5}, true},
		{"zero confidence", Candidate{TargetType: TargetProduct, ProductID: "x", Confidence: 0}, false},
		{"confidence above one", Candidate{TargetType: TargetProduct, ProductID: "x", Confidence: 1.1}, false},
		{"empty product id", Candidate{TargetType: TargetProduct, Confidence: 0.5}, false},
		{"chapter without index", Candidate{TargetType: TargetChapter, ProductID: "x", Confidence: 0.5}, false},
		{"chapter with negative index", Candidate{TargetType: TargetChapter, ProductID: "x", ChapterIndex: intPtr(-1), Confidence: 0.5}, false},
		{"product with index", Candidate{TargetType: TargetProduct, ProductID: "x", ChapterIndex: intPtr(0), Confidence: 0.5}, false},
		{"unknown target type", Candidate{TargetType: "bundle", ProductID: "x", Confidence: 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Valid())
		})
	}
}

func TestCandidateKey(t *testing.T) {
	product := Candidate{TargetType: TargetProduct, ProductID: "x", Confidence: 0.5}
	assert.Equal(t, CandidateKey{TargetType: TargetProduct, ProductID: "x", ChapterIndex: -1}, product.Key())

	chapter := Candidate{TargetType: TargetChapter, ProductID: "x", ChapterIndex: intPtr(2), Confidence: 0.5}
	assert.Equal(t, CandidateKey{TargetType: TargetChapter, ProductID: "x", ChapterIndex: 2}, chapter.Key())

	assert.NotEqual(t, product.Key(), chapter.Key())
}

func TestSignalPriorityOrdering(t *testing.T) {
	ordered := []SignalKind{
		SignalContinuation,
		SignalGoalMatch,
		SignalCompletionMomentum,
		SignalRelationshipGraph,
		SignalPopularityFallback,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i-1].Priority(), ordered[i].Priority(),
			"%s should outrank %s", ordered[i-1], ordered[i])
	}

	assert.Equal(t, 0, SignalKind("unknown").Priority())
}
