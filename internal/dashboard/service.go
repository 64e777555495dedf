// Package dashboard computes the aggregated reports behind the dashboard
// UI: weekly income/expense rollups, per-category breakdowns, budget goal
// progress and the multi-period activity feed.
package dashboard

import (
	"context"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"

	"github.com/shopspring/decimal"
)

// Store is the slice of the data access layer the dashboard reports read
// from. *store.Store satisfies it; tests use fakes.
type Store interface {
	SumPayments(ctx context.Context, userID string, from, to time.Time) (float64, error)
	ExpenseTotalsByDay(ctx context.Context, userID string, from, to time.Time) ([]store.DayTotal, error)
	ExpenseTotalsByCategoryDay(ctx context.Context, userID string, from, to time.Time) ([]store.CategoryDayTotal, error)
	SumExpensesByCategoryID(ctx context.Context, userID string, categoryIDs []string, from, to time.Time) (map[string]float64, error)
	SumExpensesForCategories(ctx context.Context, userID string, categoryIDs []string, from, to time.Time) (float64, error)
	ActiveGoalsPage(ctx context.Context, userID string, skip, limit int) ([]store.GoalRow, error)
	CountGoals(ctx context.Context, userID string) (store.GoalCounts, error)
	MonthlyGoals(ctx context.Context, userID string) ([]models.BudgetGoal, error)
	ExpensesCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Expense, error)
	PaymentsCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Payment, error)
	GoalsCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.BudgetGoal, error)
}

// Service runs the dashboard aggregations. It holds no per-request state.
type Service struct {
	store Store
}

// NewService creates a dashboard service over a store.
func NewService(st Store) *Service {
	return &Service{store: st}
}

// round2 rounds a monetary figure to 2 decimal places.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
