package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
)

// fakeStore satisfies Store with canned results.
type fakeStore struct {
	paymentSum      float64
	dayTotals       []store.DayTotal
	categoryDays    []store.CategoryDayTotal
	categorySums    map[string]float64
	categoriesTotal float64
	goalRows        []store.GoalRow
	goalCounts      store.GoalCounts
	monthlyGoals    []models.BudgetGoal
	expenses        []models.Expense
	payments        []models.Payment
	goals           []models.BudgetGoal
	err             error
}

func (f *fakeStore) SumPayments(context.Context, string, time.Time, time.Time) (float64, error) {
	return f.paymentSum, f.err
}

func (f *fakeStore) ExpenseTotalsByDay(context.Context, string, time.Time, time.Time) ([]store.DayTotal, error) {
	return f.dayTotals, f.err
}

func (f *fakeStore) ExpenseTotalsByCategoryDay(context.Context, string, time.Time, time.Time) ([]store.CategoryDayTotal, error) {
	return f.categoryDays, f.err
}

func (f *fakeStore) SumExpensesByCategoryID(context.Context, string, []string, time.Time, time.Time) (map[string]float64, error) {
	return f.categorySums, f.err
}

func (f *fakeStore) SumExpensesForCategories(context.Context, string, []string, time.Time, time.Time) (float64, error) {
	return f.categoriesTotal, f.err
}

func (f *fakeStore) ActiveGoalsPage(_ context.Context, _ string, skip, limit int) ([]store.GoalRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	if skip >= len(f.goalRows) {
		return nil, nil
	}
	end := skip + limit
	if end > len(f.goalRows) {
		end = len(f.goalRows)
	}
	return f.goalRows[skip:end], nil
}

func (f *fakeStore) CountGoals(context.Context, string) (store.GoalCounts, error) {
	return f.goalCounts, f.err
}

func (f *fakeStore) MonthlyGoals(context.Context, string) ([]models.BudgetGoal, error) {
	return f.monthlyGoals, f.err
}

func (f *fakeStore) ExpensesCreatedBetween(context.Context, string, time.Time, time.Time) ([]models.Expense, error) {
	return f.expenses, f.err
}

func (f *fakeStore) PaymentsCreatedBetween(context.Context, string, time.Time, time.Time) ([]models.Payment, error) {
	return f.payments, f.err
}

func (f *fakeStore) GoalsCreatedBetween(context.Context, string, time.Time, time.Time) ([]models.BudgetGoal, error) {
	return f.goals, f.err
}

var errStore = errors.New("store unreachable")

// ref is a fixed Friday; its trailing week runs Jan 4 through Jan 10.
var ref = time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)
