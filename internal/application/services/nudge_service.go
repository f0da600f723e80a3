// Package services provides nudge computation
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/engage"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// NudgeService produces short behavioral prompts from the same account
// facts the recommendation pipeline reads. Rules are independent and all
// may fire; the fired set is sorted by priority and truncated.
type NudgeService struct {
	facts  *AccountFactsService
	logger *logging.ChanneledLogger
	now    func() time.Time
}

// NewNudgeService creates a new nudge engine.
func NewNudgeService(facts *AccountFactsService, logger *logging.ChanneledLogger) *NudgeService {
	return &NudgeService{
		facts:  facts,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin time-of-day
// rules.
func (s *NudgeService) WithClock(now func() time.Time) *NudgeService {
	s.now = now
	return s
}

// GetNudges evaluates every nudge rule and returns the top fired prompts
// by priority. Guests and fully-unavailable providers get the fixed
// general-purpose pair.
func (s *NudgeService) GetNudges(ctx context.Context, userID string, currentProductID catalog.ProductID) []engage.Nudge {
	if userID == "" {
		return s.guestNudges()
	}

	facts, availability := s.facts.GetFacts(ctx, userID)
	if availability.AllUnavailable() {
		s.logger.Engine().Warn("Account facts provider unreachable, serving general nudges", "userId", userID)
		return s.guestNudges()
	}

	var fired []engage.Nudge
	fired = append(fired, s.timeOfDayNudges()...)
	fired = append(fired, s.progressNudges(facts, currentProductID)...)
	fired = append(fired, s.goalNudges(facts)...)
	fired = append(fired, s.reEngagementNudges(facts)...)

	sort.SliceStable(fired, func(i, j int) bool {
		return fired[i].Priority > fired[j].Priority
	})
	if len(fired) > config.NudgeLimit {
		fired = fired[:config.NudgeLimit]
	}

	return fired
}

func (s *NudgeService) timeOfDayNudges() []engage.Nudge {
	hour := s.now().Hour()

	switch {
	case hour >= 9 && hour < 17:
		return []engage.Nudge{{
			Title:        "Take a reading break",
			Description:  "A 15-minute chapter fits neatly into a work break.",
			CallToAction: "Read a chapter",
			Priority:     config.NudgePriorityBreakRead,
			Category:     engage.NudgeTimeBased,
		}}
	case hour >= 18 && hour < 22:
		return []engage.Nudge{{
			Title:        "Evening reading session",
			Description:  "Evenings are when most readers make their best progress.",
			CallToAction: "Start tonight's session",
			Priority:     config.NudgePriorityEveningSession,
			Category:     engage.NudgeTimeBased,
		}}
	default:
		return nil
	}
}

// progressNudges fires on the guide currently being viewed. It needs a
// progress record for that guide; without one there is nothing to nudge
// about.
func (s *NudgeService) progressNudges(facts *account.Facts, currentProductID catalog.ProductID) []engage.Nudge {
	if currentProductID == "" || facts == nil {
		return nil
	}
	record, ok := facts.Progress[currentProductID]
	if !ok || record == nil {
		return nil
	}

	completion := record.CompletionPercentage()
	var nudges []engage.Nudge

	if completion < config.NudgeLowProgressThreshold {
		nudges = append(nudges, engage.Nudge{
			Title:        "Build momentum",
			Description:  "The first few chapters are where habits form. One more today keeps you moving.",
			CallToAction: "Continue reading",
			Priority:     config.NudgePriorityMomentum,
			Category:     engage.NudgeProgress,
		})
	}
	if completion >= config.NudgeNearFinishThreshold {
		nudges = append(nudges, engage.Nudge{
			Title:        "You're almost there",
			Description:  fmt.Sprintf("Only %.0f%% left in this guide. Finish strong.", 100-completion),
			CallToAction: "Finish the guide",
			Priority:     config.NudgePriorityNearFinish,
			Category:     engage.NudgeProgress,
		})
	}

	return nudges
}

func (s *NudgeService) goalNudges(facts *account.Facts) []engage.Nudge {
	active := facts.ActiveGoals()
	if len(active) == 0 {
		return nil
	}

	goal := active[0]
	return []engage.Nudge{{
		Title:        "Keep your goal in sight",
		Description:  fmt.Sprintf("You set a %s goal. Ten focused minutes today moves it forward.", goal.Category),
		CallToAction: "Work toward your goal",
		Priority:     config.NudgePriorityGoal,
		Category:     engage.NudgeGoalBased,
	}}
}

func (s *NudgeService) reEngagementNudges(facts *account.Facts) []engage.Nudge {
	cutoff := s.now().Add(-config.ReEngagementWindow)
	for _, ts := range facts.RecentActivity {
		if ts.After(cutoff) {
			return nil
		}
	}

	return []engage.Nudge{{
		Title:        "Welcome back",
		Description:  "It's been a little while. Your guides kept your place for you.",
		CallToAction: "Pick up where you left off",
		Priority:     config.NudgePriorityWelcomeBack,
		Category:     engage.NudgeEngagement,
	}}
}

func (s *NudgeService) guestNudges() []engage.Nudge {
	return []engage.Nudge{
		{
			Title:        "Find your next step",
			Description:  "Browse practical guides written for what you're working toward.",
			CallToAction: "Explore the guides",
			Priority:     config.NudgePriorityGuestExplore,
			Category:     engage.NudgeGeneral,
		},
		{
			Title:        "Readers make progress",
			Description:  "Create a free profile to track chapters and get suggestions that fit.",
			CallToAction: "Create a profile",
			Priority:     config.NudgePriorityGuestProfile,
			Category:     engage.NudgeGeneral,
		},
	}
}
