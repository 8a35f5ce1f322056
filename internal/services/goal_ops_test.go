package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"famfin/internal/models"
	"famfin/internal/testutil"
)

func validGoalDraft() GoalDraft {
	return GoalDraft{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(20000),
		CurrentAmount: decimal.NewFromInt(5000),
		Deadline:      time.Now().AddDate(1, 0, 0),
	}
}

func TestAddGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		goal, err := f.service.AddGoal(ctx, validGoalDraft())
		testutil.AssertNoError(t, err)

		if goal.Progress() != 25 {
			t.Errorf("expected 25%% progress, got %v", goal.Progress())
		}
		if _, ok := f.store.Goal(goal.ID); !ok {
			t.Error("expected goal in the store")
		}
	})

	t.Run("validation_failures", func(t *testing.T) {
		f := newFixture(t)

		draft := validGoalDraft()
		draft.Name = ""
		_, err := f.service.AddGoal(ctx, draft)
		testutil.AssertFieldError(t, err, "name")

		draft = validGoalDraft()
		draft.TargetAmount = decimal.Zero
		_, err = f.service.AddGoal(ctx, draft)
		testutil.AssertFieldError(t, err, "target_amount")

		draft = validGoalDraft()
		draft.CurrentAmount = decimal.NewFromInt(-10)
		_, err = f.service.AddGoal(ctx, draft)
		testutil.AssertFieldError(t, err, "current_amount")
	})

	t.Run("loader_failure_rolls_back", func(t *testing.T) {
		f := newFixture(t)
		f.loader.FailWith(errors.New("offline"))

		_, err := f.service.AddGoal(ctx, validGoalDraft())
		testutil.AssertAppError(t, err, "LOADER_FAILURE")
		if len(f.store.Goals()) != 0 {
			t.Error("expected optimistic insert rolled back")
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	goal, err := f.service.AddGoal(ctx, validGoalDraft())
	testutil.AssertNoError(t, err)

	// Overshooting the target is allowed.
	over := decimal.NewFromInt(25000)
	updated, err := f.service.UpdateGoal(ctx, goal.ID, models.GoalPatch{CurrentAmount: &over})
	testutil.AssertNoError(t, err)
	if updated.Progress() != 125 {
		t.Errorf("expected 125%% progress, got %v", updated.Progress())
	}

	zero := decimal.Zero
	_, err = f.service.UpdateGoal(ctx, goal.ID, models.GoalPatch{TargetAmount: &zero})
	testutil.AssertFieldError(t, err, "target_amount")

	_, err = f.service.UpdateGoal(ctx, "missing", models.GoalPatch{})
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	goal, err := f.service.AddGoal(ctx, validGoalDraft())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, f.service.DeleteGoal(ctx, goal.ID))
	if _, ok := f.store.Goal(goal.ID); ok {
		t.Error("expected goal removed")
	}

	err = f.service.DeleteGoal(ctx, goal.ID)
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}
