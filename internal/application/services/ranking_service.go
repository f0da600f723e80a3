package services

import (
	"sort"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// RankingService orders aggregated candidates into the final
// recommendation list. Pure domain service, no infrastructure
// dependencies.
type RankingService struct{}

// NewRankingService creates a new ranking engine.
func NewRankingService() *RankingService {
	return &RankingService{}
}

// Rank sorts candidates by confidence descending and truncates to limit.
// The sort is stable, so equal-confidence candidates keep their
// aggregation order and identical input always yields identical output.
// A non-positive limit falls back to the configured default.
func (s *RankingService) Rank(candidates []engage.Candidate, limit int) []engage.RankedRecommendation {
	if limit <= 0 {
		limit = config.RecommendationLimit
	}

	ordered := make([]engage.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Confidence > ordered[j].Confidence
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	ranked := make([]engage.RankedRecommendation, 0, len(ordered))
	for i, candidate := range ordered {
		ranked = append(ranked, engage.RankedRecommendation{
			Candidate: candidate,
			Rank:      i + 1,
		})
	}
	return ranked
}
