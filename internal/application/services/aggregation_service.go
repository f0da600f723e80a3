package services

import (
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
)

// AggregationService merges raw generator output into one deduplicated
// candidate set. This is a pure domain service with no infrastructure
// dependencies.
type AggregationService struct{}

// NewAggregationService creates a new aggregation engine.
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// Aggregate collapses duplicates targeting the same (targetType, productId,
// chapterIndex) key to the highest-confidence entry, with ties broken by
// signal priority. Candidates violating the generator contract are dropped
// silently, as are product-type candidates targeting owned guides; the
// chapter channel is the sole owned-target exception. First-appearance
// order of surviving keys is preserved so downstream ranking is
// deterministic.
func (s *AggregationService) Aggregate(candidates []engage.Candidate, facts *account.Facts) []engage.Candidate {
	var result []engage.Candidate
	byKey := make(map[engage.CandidateKey]int)

	for _, candidate := range candidates {
		if !candidate.Valid() {
			continue
		}
		if candidate.TargetType != engage.TargetChapter && facts.Owns(candidate.ProductID) {
			continue
		}

		key := candidate.Key()
		idx, seen := byKey[key]
		if !seen {
			byKey[key] = len(result)
			result = append(result, candidate)
			continue
		}

		if s.beats(candidate, result[idx]) {
			result[idx] = candidate
		}
	}

	return result
}

// beats reports whether challenger should replace incumbent within a dedup
// group.
func (s *AggregationService) beats(challenger, incumbent engage.Candidate) bool {
	if challenger.Confidence != incumbent.Confidence {
		return challenger.Confidence > incumbent.Confidence
	}
	return challenger.Source.Priority() > incumbent.Source.Priority()
}
