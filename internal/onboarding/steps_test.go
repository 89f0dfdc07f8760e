package onboarding

import "testing"

func TestStepOrderAndPositions(t *testing.T) {
	order := []Step{
		StepWelcome,
		StepAccount,
		StepPersonalInfo,
		StepFitnessLevel,
		StepGoals,
		StepGymType,
		StepComplete,
	}
	for i, step := range order {
		pos, total := step.Position()
		if pos != i+1 {
			t.Errorf("%s: position = %d, want %d", step, pos, i+1)
		}
		if total != TotalSteps {
			t.Errorf("%s: total = %d, want %d", step, total, TotalSteps)
		}
	}
}

func TestNextFollowsTheFixedOrder(t *testing.T) {
	if got := StepPersonalInfo.Next(); got != StepFitnessLevel {
		t.Fatalf("after personal info comes %s, want fitness level", got)
	}
	if got := StepGymType.Next(); got != StepComplete {
		t.Fatalf("after gym type comes %s, want complete", got)
	}
	if got := StepComplete.Next(); got != StepComplete {
		t.Fatalf("the last step has no successor, got %s", got)
	}
}

func TestPrevClampsAtFirstStep(t *testing.T) {
	if got := StepFitnessLevel.Prev(); got != StepPersonalInfo {
		t.Fatalf("Prev from fitness level = %s, want personal info", got)
	}
	// Going back any number of times from step K lands on max(1, K-1).
	s := StepWelcome
	for i := 0; i < 5; i++ {
		s = s.Prev()
	}
	if s != StepWelcome {
		t.Fatalf("Prev must clamp at the first step, got %s", s)
	}
}

func TestSelectionOptionSetsAreFixed(t *testing.T) {
	if got := len(FitnessLevelOptions()); got != 3 {
		t.Errorf("fitness levels = %d, want 3", got)
	}
	if got := len(GoalOptions()); got != 4 {
		t.Errorf("goals = %d, want 4", got)
	}
	if got := len(GymTypeOptions()); got != 3 {
		t.Errorf("gym types = %d, want 3", got)
	}
}
