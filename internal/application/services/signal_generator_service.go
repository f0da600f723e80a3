// Package services provides pure domain services for business logic
package services

import (
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// SignalWeights holds the per-signal confidence constants. The relative
// ordering must be preserved: Continuation > GoalMatch > CompletionMomentum
// > RelationshipGraph > PopularityFallback.
type SignalWeights struct {
	Continuation       float64
	GoalMatch          float64
	CompletionMomentum float64
	RelationshipGraph  float64
	PopularityFallback float64
	GuestFallback      float64
}

// DefaultSignalWeights returns the configured confidence constants.
func DefaultSignalWeights() SignalWeights {
	return SignalWeights{
		Continuation:       config.ConfidenceContinuation,
		GoalMatch:          config.ConfidenceGoalMatch,
		CompletionMomentum: config.ConfidenceCompletionMomentum,
		RelationshipGraph:  config.ConfidenceRelationshipGraph,
		PopularityFallback: config.ConfidencePopularityFallback,
		GuestFallback:      config.ConfidenceGuestFallback,
	}
}

// SignalGeneratorService hosts one pure generator per signal kind. Each
// generator consumes account facts plus the catalog and emits zero or more
// scored candidates. Generators perform no I/O, tolerate empty facts, and
// never fail.
type SignalGeneratorService struct {
	catalog *catalogstore.Store
	weights SignalWeights
}

// NewSignalGeneratorService creates a new signal generator engine.
func NewSignalGeneratorService(catalog *catalogstore.Store, weights SignalWeights) *SignalGeneratorService {
	return &SignalGeneratorService{
		catalog: catalog,
		weights: weights,
	}
}

// GenerateAll runs every authenticated-path generator and concatenates the
// candidates in fixed generator order, keeping output deterministic.
func (s *SignalGeneratorService) GenerateAll(facts *account.Facts, currentProductID catalog.ProductID) []engage.Candidate {
	var candidates []engage.Candidate
	candidates = append(candidates, s.GenerateContinuation(facts)...)
	candidates = append(candidates, s.GenerateGoalMatch(facts)...)
	candidates = append(candidates, s.GenerateCompletionMomentum(facts)...)
	candidates = append(candidates, s.GenerateRelationshipGraph(facts, currentProductID)...)
	candidates = append(candidates, s.GeneratePopularityFallback(facts)...)
	return candidates
}

// GenerateContinuation proposes the next unread chapter of every owned
// guide the reader has not finished. This is the only signal allowed to
// target owned products, and it carries the highest confidence of all
// signals.
func (s *SignalGeneratorService) GenerateContinuation(facts *account.Facts) []engage.Candidate {
	if facts == nil {
		return nil
	}

	var candidates []engage.Candidate
	for _, item := range s.catalog.Products() {
		if !facts.Owns(item.ID) {
			continue
		}
		record, ok := facts.Progress[item.ID]
		if !ok || record == nil {
			continue
		}
		lastIndex := s.catalog.ChapterCount(item.ID) - 1
		if lastIndex < 0 || record.CurrentChapterIndex < 0 || record.CurrentChapterIndex >= lastIndex {
			continue
		}

		next := record.CurrentChapterIndex + 1
		chapters := s.catalog.Chapters(item.ID)
		candidates = append(candidates, engage.Candidate{
			TargetType:   engage.TargetChapter,
			ProductID:    item.ID,
			ChapterIndex: &next,
			Reason:       fmt.Sprintf("Pick up where you left off: %q", chapters[next].Title),
			Confidence:   s.weights.Continuation,
			Source:       engage.SignalContinuation,
		})
	}
	return candidates
}

// GenerateGoalMatch proposes the guide aligned to each active goal the
// reader does not already own.
func (s *SignalGeneratorService) GenerateGoalMatch(facts *account.Facts) []engage.Candidate {
	if facts == nil {
		return nil
	}

	var candidates []engage.Candidate
	for _, goal := range facts.ActiveGoals() {
		productID, ok := s.catalog.GoalProduct(goal.Category)
		if !ok || facts.Owns(productID) {
			continue
		}
		item, ok := s.catalog.Product(productID)
		if !ok {
			continue
		}
		candidates = append(candidates, engage.Candidate{
			TargetType: engage.TargetProduct,
			ProductID:  productID,
			Reason:     fmt.Sprintf("Matches your %s goal: %s", goal.Category, item.Title),
			Confidence: s.weights.GoalMatch,
			Source:     engage.SignalGoalMatch,
		})
	}
	return candidates
}

// GenerateCompletionMomentum proposes the complete-collection bundle to
// readers deep into at least one guide who own enough individual guides to
// benefit from the bundle.
func (s *SignalGeneratorService) GenerateCompletionMomentum(facts *account.Facts) []engage.Candidate {
	if facts == nil {
		return nil
	}

	bundleID := s.catalog.BundleID()
	if bundleID == "" || facts.Owns(bundleID) {
		return nil
	}

	ownedIndividual := 0
	for id := range facts.OwnedProducts {
		if facts.OwnedProducts[id] && id != bundleID {
			ownedIndividual++
		}
	}
	if ownedIndividual < config.MomentumMinOwnedProducts {
		return nil
	}

	hasMomentum := false
	for id, record := range facts.Progress {
		if facts.Owns(id) && record.CompletionPercentage() >= config.MomentumCompletionThreshold {
			hasMomentum = true
			break
		}
	}
	if !hasMomentum {
		return nil
	}

	bundle, ok := s.catalog.Product(bundleID)
	if !ok {
		return nil
	}
	return []engage.Candidate{{
		TargetType: engage.TargetProduct,
		ProductID:  bundleID,
		Reason:     fmt.Sprintf("You're nearly done. Unlock everything with %s", bundle.Title),
		Confidence: s.weights.CompletionMomentum,
		Source:     engage.SignalCompletionMomentum,
	}}
}

// GenerateRelationshipGraph proposes unowned neighbors of the guide being
// viewed, per the catalog's relationship graph.
func (s *SignalGeneratorService) GenerateRelationshipGraph(facts *account.Facts, currentProductID catalog.ProductID) []engage.Candidate {
	if currentProductID == "" {
		return nil
	}

	var candidates []engage.Candidate
	for _, relatedID := range s.catalog.Related(currentProductID) {
		if facts.Owns(relatedID) {
			continue
		}
		item, ok := s.catalog.Product(relatedID)
		if !ok {
			continue
		}
		candidates = append(candidates, engage.Candidate{
			TargetType: engage.TargetProduct,
			ProductID:  relatedID,
			Reason:     fmt.Sprintf("Readers of this guide also picked up %s", item.Title),
			Confidence: s.weights.RelationshipGraph,
			Source:     engage.SignalRelationshipGraph,
		})
	}
	return candidates
}

// GeneratePopularityFallback proposes every unowned guide at baseline
// confidence. Higher-confidence signals targeting the same guide win at
// aggregation, so this only surfaces guides nothing else suggested.
func (s *SignalGeneratorService) GeneratePopularityFallback(facts *account.Facts) []engage.Candidate {
	var candidates []engage.Candidate
	for _, item := range s.catalog.Products() {
		if facts.Owns(item.ID) {
			continue
		}
		candidates = append(candidates, engage.Candidate{
			TargetType: engage.TargetProduct,
			ProductID:  item.ID,
			Reason:     fmt.Sprintf("Popular with Shelfwise readers: %s", item.Title),
			Confidence: s.weights.PopularityFallback,
			Source:     engage.SignalPopularityFallback,
		})
	}
	return candidates
}

// GenerateGuestFallback is the unauthenticated pipeline: every catalog
// guide except the one being viewed, at a flat guest confidence.
func (s *SignalGeneratorService) GenerateGuestFallback(viewedProductID catalog.ProductID) []engage.Candidate {
	var candidates []engage.Candidate
	for _, item := range s.catalog.Products() {
		if item.ID == viewedProductID {
			continue
		}
		candidates = append(candidates, engage.Candidate{
			TargetType: engage.TargetProduct,
			ProductID:  item.ID,
			Reason:     fmt.Sprintf("Popular with Shelfwise readers: %s", item.Title),
			Confidence: s.weights.GuestFallback,
			Source:     engage.SignalPopularityFallback,
		})
	}
	return candidates
}
