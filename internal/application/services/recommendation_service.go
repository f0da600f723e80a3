// Package services provides recommendation orchestration
package services

import (
	"context"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
)

// RecommendationService is the single entry point for content
// recommendations. It fans out the account-fact reads, runs the applicable
// signal generators, and pushes the combined candidates through
// aggregation and ranking. The whole pipeline is request-scoped and
// side-effect-free; an empty result is a valid answer, never an error.
type RecommendationService struct {
	facts      *AccountFactsService
	generators *SignalGeneratorService
	aggregator *AggregationService
	ranker     *RankingService
	logger     *logging.ChanneledLogger
}

// NewRecommendationService creates a new recommendation orchestrator with its dependencies.
func NewRecommendationService(
	facts *AccountFactsService,
	generators *SignalGeneratorService,
	aggregator *AggregationService,
	ranker *RankingService,
	logger *logging.ChanneledLogger,
) *RecommendationService {
	return &RecommendationService{
		facts:      facts,
		generators: generators,
		aggregator: aggregator,
		ranker:     ranker,
		logger:     logger,
	}
}

// GetRecommendations computes the ranked recommendation list for a viewing
// context. An empty userID selects the guest pipeline, as does total
// provider unavailability. limit <= 0 selects the configured default.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID string, currentProductID catalog.ProductID, limit int) []engage.RankedRecommendation {
	start := time.Now()

	if userID == "" {
		return s.guestRecommendations(currentProductID, limit)
	}

	facts, availability := s.facts.GetFacts(ctx, userID)
	if availability.AllUnavailable() {
		s.logger.Engine().Warn("Account facts provider unreachable, serving guest pipeline", "userId", userID)
		return s.guestRecommendations(currentProductID, limit)
	}

	candidates := s.generators.GenerateAll(facts, currentProductID)
	aggregated := s.aggregator.Aggregate(candidates, facts)
	ranked := s.ranker.Rank(aggregated, limit)

	s.logger.Engine().Debug("Recommendations computed",
		"userId", userID,
		"currentProduct", string(currentProductID),
		"rawCandidates", len(candidates),
		"aggregated", len(aggregated),
		"returned", len(ranked),
		"duration", time.Since(start))

	return ranked
}

func (s *RecommendationService) guestRecommendations(viewedProductID catalog.ProductID, limit int) []engage.RankedRecommendation {
	candidates := s.generators.GenerateGuestFallback(viewedProductID)
	aggregated := s.aggregator.Aggregate(candidates, nil)
	return s.ranker.Rank(aggregated, limit)
}
