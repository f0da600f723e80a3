// Package engage defines the candidate, recommendation, and nudge types
// produced by the engagement engine.
package engage

import "github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"

// TargetType distinguishes product-level from chapter-level suggestions.
type TargetType string

const (
	TargetProduct TargetType = "product"
	TargetChapter TargetType = "chapter"
)

// SignalKind identifies which heuristic produced a candidate.
type SignalKind string

const (
	SignalContinuation       SignalKind = "continuation"
	SignalGoalMatch          SignalKind = "goal_match"
	SignalCompletionMomentum SignalKind = "completion_momentum"
	SignalRelationshipGraph  SignalKind = "relationship_graph"
	SignalPopularityFallback SignalKind = "popularity_fallback"
)

// Priority returns the tie-break rank for equal-confidence candidates.
// Higher wins.
func (k SignalKind) Priority() int {
	switch k {
	case SignalContinuation:
		return 5
	case SignalGoalMatch:
		return 4
	case SignalCompletionMomentum:
		return 3
	case SignalRelationshipGraph:
		return 2
	case SignalPopularityFallback:
		return 1
	default:
		return 0
	}
}

// Candidate is one unranked, scored suggestion emitted by a signal
// generator. Chapter-type candidates must carry a chapter index;
// product-type candidates must not.
type Candidate struct {
	TargetType   TargetType        `json:"targetType"`
	ProductID    catalog.ProductID `json:"productId"`
	ChapterIndex *int              `json:"chapterIndex,omitempty"`
	Reason       string            `json:"reason"`
	Confidence   float64           `json:"confidence"`
	Source       SignalKind        `json:"source"`
}

// Valid reports whether the candidate honors the generator contract.
// Invalid candidates are dropped by the aggregator, never surfaced.
func (c Candidate) Valid() bool {
	if c.Confidence <= 0 || c.Confidence > 1 {
		return false
	}
	if c.ProductID == "" {
		return false
	}
	switch c.TargetType {
	case TargetChapter:
		return c.ChapterIndex != nil && *c.ChapterIndex >= 0
	case TargetProduct:
		return c.ChapterIndex == nil
	default:
		return false
	}
}

// Key returns the dedup identity of the candidate.
func (c Candidate) Key() CandidateKey {
	key := CandidateKey{TargetType: c.TargetType, ProductID: c.ProductID, ChapterIndex: -1}
	if c.ChapterIndex != nil {
		key.ChapterIndex = *c.ChapterIndex
	}
	return key
}

// CandidateKey is the (targetType, productId, chapterIndex) dedup identity.
// ChapterIndex is -1 for product-type candidates.
type CandidateKey struct {
	TargetType   TargetType
	ProductID    catalog.ProductID
	ChapterIndex int
}

// RankedRecommendation is a candidate with its finalized rank position.
// Output-only; never persisted.
type RankedRecommendation struct {
	Candidate
	Rank int `json:"rank"`
}

// NudgeCategory classifies the behavioral prompt a nudge carries.
type NudgeCategory string

const (
	NudgeTimeBased  NudgeCategory = "time_based"
	NudgeProgress   NudgeCategory = "progress"
	NudgeGoalBased  NudgeCategory = "goal_based"
	NudgeEngagement NudgeCategory = "engagement"
	NudgeGeneral    NudgeCategory = "general"
)

// Nudge is a short behavioral prompt, distinct from a content
// recommendation. Nudges carry no content pointer.
type Nudge struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	CallToAction string        `json:"callToAction"`
	Priority     float64       `json:"priority"`
	Category     NudgeCategory `json:"category"`
}
