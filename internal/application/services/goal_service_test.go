package services

import (
	"context"
	"testing"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryGoalRepo struct {
	goals map[account.GoalCategory]account.Goal
}

func newMemoryGoalRepo() *memoryGoalRepo {
	return &memoryGoalRepo{goals: make(map[account.GoalCategory]account.Goal)}
}

func (m *memoryGoalRepo) List(ctx context.Context, userID string) ([]account.Goal, error) {
	var out []account.Goal
	for _, g := range m.goals {
		out = append(out, g)
	}
	return out, nil
}

func (m *memoryGoalRepo) Set(ctx context.Context, userID string, goal account.Goal) error {
	m.goals[goal.Category] = goal
	return nil
}

func TestSetGoalValidatesEnumerations(t *testing.T) {
	repo := newMemoryGoalRepo()
	svc := NewGoalService(repo, newTestLogger(t))

	err := svc.SetGoal(context.Background(), "user-1", account.Goal{Category: "hobby", Status: account.GoalActive})
	assert.Error(t, err)

	err = svc.SetGoal(context.Background(), "user-1", account.Goal{Category: account.GoalCareer, Status: "paused"})
	assert.Error(t, err)

	assert.Empty(t, repo.goals)
}

func TestSetAndListGoals(t *testing.T) {
	repo := newMemoryGoalRepo()
	svc := NewGoalService(repo, newTestLogger(t))

	require.NoError(t, svc.SetGoal(context.Background(), "user-1", account.Goal{Category: account.GoalCareer, Status: account.GoalActive}))
	require.NoError(t, svc.SetGoal(context.Background(), "user-1", account.Goal{Category: account.GoalFinancial, Status: account.GoalCompleted}))

	goals, err := svc.ListGoals(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}
