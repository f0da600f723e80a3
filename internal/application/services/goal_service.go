// Package services provides reader goal management
package services

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/repositories"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
)

// GoalService reads and writes the reader goals consumed by the
// goal-match signal.
type GoalService struct {
	goals  repositories.GoalRepository
	logger *logging.ChanneledLogger
}

// NewGoalService creates a new goal service.
func NewGoalService(goals repositories.GoalRepository, logger *logging.ChanneledLogger) *GoalService {
	return &GoalService{
		goals:  goals,
		logger: logger,
	}
}

// ListGoals returns all goals stored for a user.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]account.Goal, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// SetGoal stores or updates one goal. Category and status are validated
// against the known enumerations before the write.
func (s *GoalService) SetGoal(ctx context.Context, userID string, goal account.Goal) error {
	switch goal.Category {
	case account.GoalCareer, account.GoalBusiness, account.GoalFinancial, account.GoalPersonal:
	default:
		return fmt.Errorf("unknown goal category %q", goal.Category)
	}
	switch goal.Status {
	case account.GoalActive, account.GoalCompleted:
	default:
		return fmt.Errorf("unknown goal status %q", goal.Status)
	}

	if err := s.goals.Set(ctx, userID, goal); err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}

	s.logger.Engine().Debug("Goal stored", "userId", userID, "category", string(goal.Category), "status", string(goal.Status))
	return nil
}
