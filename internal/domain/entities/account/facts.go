// Package account defines per-user account facts consumed by the
// recommendation and nudge engines. Facts are derived fresh per request and
// never cached across requests.
package account

import (
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
)

// GoalCategory classifies what a purchaser is working toward.
type GoalCategory string

const (
	GoalCareer    GoalCategory = "career"
	GoalBusiness  GoalCategory = "business"
	GoalFinancial GoalCategory = "financial"
	GoalPersonal  GoalCategory = "personal"
)

// GoalStatus tracks whether a goal is still being pursued.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// Goal represents one purchaser goal.
type Goal struct {
	Category GoalCategory `json:"category"`
	Status   GoalStatus   `json:"status"`
}

// ProgressRecord tracks reading progress through one owned guide.
type ProgressRecord struct {
	ProductID           catalog.ProductID `json:"productId"`
	CompletedChapters   []int             `json:"completedChapters"`
	TotalChapters       int               `json:"totalChapters"`
	CurrentChapterIndex int               `json:"currentChapterIndex"`
}

// CompletionPercentage returns completed chapters as a percentage in [0,100].
func (p *ProgressRecord) CompletionPercentage() float64 {
	if p == nil || p.TotalChapters <= 0 {
		return 0
	}
	pct := float64(len(p.CompletedChapters)) / float64(p.TotalChapters) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Facts is the per-request snapshot of everything the engines know about a
// purchaser. A zero-value Facts is a valid empty snapshot.
type Facts struct {
	OwnedProducts  map[catalog.ProductID]bool            `json:"ownedProducts"`
	Progress       map[catalog.ProductID]*ProgressRecord `json:"progress"`
	Goals          []Goal                                `json:"goals"`
	RecentActivity []time.Time                           `json:"recentActivity"`
}

// Owns reports whether the purchaser owns the given product.
func (f *Facts) Owns(id catalog.ProductID) bool {
	if f == nil {
		return false
	}
	return f.OwnedProducts[id]
}

// ActiveGoals returns the goals still being pursued.
func (f *Facts) ActiveGoals() []Goal {
	if f == nil {
		return nil
	}
	var active []Goal
	for _, g := range f.Goals {
		if g.Status == GoalActive {
			active = append(active, g)
		}
	}
	return active
}
