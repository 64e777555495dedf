package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Budget goal statuses.
const (
	GoalStatusActive     = "active"
	GoalStatusAchieved   = "achieved"
	GoalStatusFailed     = "failed"
	GoalStatusTerminated = "terminated"
	GoalStatusOther      = "other"
)

// Budget goal durations.
const (
	GoalDurationDaily   = "daily"
	GoalDurationWeekly  = "weekly"
	GoalDurationMonthly = "monthly"
	GoalDurationYearly  = "yearly"
)

// ErrInvalidGoalState reports a goal whose target amount is not positive.
// Such a goal cannot have a meaningful progress percentage.
var ErrInvalidGoalState = errors.New("budget goal target amount must be positive")

// BudgetGoal is a spending target for a category over a duration. Progress
// is a derived 0-100 percentage and is recomputed whenever spending in the
// goal's category changes; it is never trusted as stale input.
type BudgetGoal struct {
	ID         string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID     string    `gorm:"size:36;index;not null" json:"user_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	CategoryID string    `gorm:"size:36;index" json:"category_id"`
	Category   string    `gorm:"size:64" json:"category"`
	Duration   string    `gorm:"size:16;not null;default:monthly" json:"duration"`
	Status     string    `gorm:"size:16;index;not null;default:active" json:"status"`
	Progress   int       `gorm:"not null;default:0" json:"progress"`
	Detail     string    `gorm:"size:500" json:"detail"`
	IsDeleted  bool      `gorm:"index;not null;default:false" json:"is_deleted"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidGoalStatus reports whether s is one of the recognised statuses.
func ValidGoalStatus(s string) bool {
	switch s {
	case GoalStatusActive, GoalStatusAchieved, GoalStatusFailed, GoalStatusTerminated, GoalStatusOther:
		return true
	}
	return false
}

// ValidGoalDuration reports whether d is one of the recognised durations.
func ValidGoalDuration(d string) bool {
	switch d {
	case GoalDurationDaily, GoalDurationWeekly, GoalDurationMonthly, GoalDurationYearly:
		return true
	}
	return false
}

// GoalProgress converts spending against a target amount into a progress
// percentage clamped to [0,100]. A non-positive target is an invariant
// violation and yields ErrInvalidGoalState instead of infinity.
func GoalProgress(targetAmount, currentAmount float64) (int, error) {
	if targetAmount <= 0 {
		return 0, ErrInvalidGoalState
	}
	if currentAmount <= 0 {
		return 0, nil
	}
	pct := decimal.NewFromFloat(currentAmount).
		Div(decimal.NewFromFloat(targetAmount)).
		Mul(decimal.NewFromInt(100)).
		Round(0).IntPart()
	if pct > 100 {
		pct = 100
	}
	return int(pct), nil
}

// CurrentAmount back-computes the spend a progress percentage represents.
func (g *BudgetGoal) CurrentAmount() float64 {
	v, _ := decimal.NewFromInt(int64(g.Progress)).
		Mul(decimal.NewFromFloat(g.Amount)).
		Div(decimal.NewFromInt(100)).
		Round(2).Float64()
	return v
}
