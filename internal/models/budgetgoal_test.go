package models

import (
	"errors"
	"testing"
)

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name    string
		target  float64
		current float64
		want    int
	}{
		{"zero spend", 200, 0, 0},
		{"negative spend clamps to zero", 200, -10, 0},
		{"partial", 200, 150, 75},
		{"rounds to nearest", 300, 100, 33},
		{"rounds up", 300, 200, 67},
		{"exact target", 200, 200, 100},
		{"overspend clamps to 100", 200, 450, 100},
		{"fractional amounts", 99.99, 49.99, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GoalProgress(tc.target, tc.current)
			if err != nil {
				t.Fatalf("GoalProgress(%v, %v) error = %v", tc.target, tc.current, err)
			}
			if got != tc.want {
				t.Errorf("GoalProgress(%v, %v) = %d, want %d", tc.target, tc.current, got, tc.want)
			}
		})
	}
}

func TestGoalProgress_InvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -1, -200} {
		_, err := GoalProgress(target, 50)
		if !errors.Is(err, ErrInvalidGoalState) {
			t.Errorf("GoalProgress(%v, 50) error = %v, want ErrInvalidGoalState", target, err)
		}
	}
}

func TestCurrentAmount(t *testing.T) {
	g := &BudgetGoal{Amount: 200, Progress: 75}
	if got := g.CurrentAmount(); got != 150 {
		t.Errorf("CurrentAmount() = %v, want 150", got)
	}

	g = &BudgetGoal{Amount: 0, Progress: 50}
	if got := g.CurrentAmount(); got != 0 {
		t.Errorf("CurrentAmount() with zero target = %v, want 0", got)
	}
}

func TestValidGoalEnums(t *testing.T) {
	for _, s := range []string{GoalStatusActive, GoalStatusAchieved, GoalStatusFailed, GoalStatusTerminated, GoalStatusOther} {
		if !ValidGoalStatus(s) {
			t.Errorf("ValidGoalStatus(%q) = false, want true", s)
		}
	}
	if ValidGoalStatus("paused") {
		t.Error(`ValidGoalStatus("paused") = true, want false`)
	}

	for _, d := range []string{GoalDurationDaily, GoalDurationWeekly, GoalDurationMonthly, GoalDurationYearly} {
		if !ValidGoalDuration(d) {
			t.Errorf("ValidGoalDuration(%q) = false, want true", d)
		}
	}
	if ValidGoalDuration("quarterly") {
		t.Error(`ValidGoalDuration("quarterly") = true, want false`)
	}
}
