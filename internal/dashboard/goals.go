package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"

	"github.com/shopspring/decimal"
)

// DefaultGoalsPageSize is the page size of the dashboard goals report.
const DefaultGoalsPageSize = 3

// GoalSpending is one budget goal with its current-month spending.
type GoalSpending struct {
	ID              string  `json:"_id"`
	Category        string  `json:"category"`
	SetBudget       float64 `json:"setBudget"`
	CurrentSpending float64 `json:"currentSpending"`
}

// Pagination describes the page of a goals report.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalGoals  int64 `json:"totalGoals"`
}

// GoalsPageStats are user-global goal counts, identical on every page.
type GoalsPageStats struct {
	TotalGoals    int64   `json:"totalGoals"`
	ActiveGoals   int64   `json:"activeGoals"`
	AchievedGoals int64   `json:"achievedGoals"`
	TotalBudgeted float64 `json:"totalBudgeted"`
}

// GoalsPage is one page of active goals with spending plus global stats.
type GoalsPage struct {
	Goals      []GoalSpending `json:"goals"`
	Pagination Pagination     `json:"pagination"`
	Stats      GoalsPageStats `json:"stats"`
}

// GoalsWithSpending returns one page of the user's active goals joined with
// their current-month category spending. The stats block always reflects
// the user's global goal counts, even when the requested page is empty.
func (s *Service) GoalsWithSpending(ctx context.Context, userID string, page, limit int, ref time.Time) (*GoalsPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultGoalsPageSize
	}

	counts, err := s.store.CountGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goals with spending: %w", err)
	}

	activeTotal := counts.Active
	totalPages := int((activeTotal + int64(limit) - 1) / int64(limit))

	rows, err := s.store.ActiveGoalsPage(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("goals with spending: %w", err)
	}

	goals := make([]GoalSpending, 0, len(rows))
	if len(rows) > 0 {
		b := period.At(ref)
		categoryIDs := make([]string, 0, len(rows))
		for _, r := range rows {
			if r.CategoryID != "" {
				categoryIDs = append(categoryIDs, r.CategoryID)
			}
		}

		spending, err := s.store.SumExpensesByCategoryID(ctx, userID, categoryIDs, b.StartOfMonth, b.EndOfMonth)
		if err != nil {
			return nil, fmt.Errorf("goals with spending: %w", err)
		}

		for _, r := range rows {
			goals = append(goals, GoalSpending{
				ID:              r.ID,
				Category:        r.CategoryName,
				SetBudget:       round2(r.Amount),
				CurrentSpending: round2(spending[r.CategoryID]),
			})
		}
	}

	return &GoalsPage{
		Goals: goals,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalGoals:  activeTotal,
		},
		Stats: GoalsPageStats{
			TotalGoals:    counts.Total,
			ActiveGoals:   counts.Active,
			AchievedGoals: counts.Achieved,
			TotalBudgeted: round2(counts.TotalBudgeted),
		},
	}, nil
}

// GoalStats is the aggregate progress report over monthly goals.
type GoalStats struct {
	TotalGoals      int     `json:"totalGoals"`
	ActiveGoals     int     `json:"activeGoals"`
	AchievedGoals   int     `json:"achievedGoals"`
	TotalBudgeted   float64 `json:"totalBudgeted"`
	TotalSpending   float64 `json:"totalSpending"`
	OverallProgress string  `json:"overallProgress"`
}

// GoalStats aggregates the user's monthly-duration goals against
// current-month spending in their categories. Daily, weekly and yearly
// goals never enter this report.
func (s *Service) GoalStats(ctx context.Context, userID string, ref time.Time) (*GoalStats, error) {
	goals, err := s.store.MonthlyGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal stats: %w", err)
	}
	if len(goals) == 0 {
		return &GoalStats{OverallProgress: "0.0"}, nil
	}

	stats := GoalStats{TotalGoals: len(goals)}
	var totalBudgeted float64
	categoryIDs := make([]string, 0, len(goals))
	for _, g := range goals {
		totalBudgeted += g.Amount
		if g.CategoryID != "" {
			categoryIDs = append(categoryIDs, g.CategoryID)
		}
		switch g.Status {
		case models.GoalStatusActive:
			stats.ActiveGoals++
		case models.GoalStatusAchieved:
			stats.AchievedGoals++
		}
	}

	b := period.At(ref)
	totalSpending, err := s.store.SumExpensesForCategories(ctx, userID, categoryIDs, b.StartOfMonth, b.EndOfMonth)
	if err != nil {
		return nil, fmt.Errorf("goal stats: %w", err)
	}

	stats.TotalBudgeted = round2(totalBudgeted)
	stats.TotalSpending = round2(totalSpending)
	stats.OverallProgress = overallProgress(totalSpending, totalBudgeted)
	return &stats, nil
}

// overallProgress formats spending over budget as a percentage string with
// one decimal place, capped at "100.0".
func overallProgress(spending, budgeted float64) string {
	if budgeted <= 0 {
		return "0.0"
	}
	pct := decimal.NewFromFloat(spending).
		Div(decimal.NewFromFloat(budgeted)).
		Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}
	return pct.StringFixed(1)
}
