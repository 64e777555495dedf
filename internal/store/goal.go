package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"

	"gorm.io/gorm"
)

// GoalRow is a budget goal with its category name resolved through the
// reference, never read from the cached column.
type GoalRow struct {
	models.BudgetGoal `gorm:"embedded"`
	CategoryName      string
}

// ActiveGoalsPage returns one page of the user's active goals, newest
// first, with resolved category names.
func (s *Store) ActiveGoalsPage(ctx context.Context, userID string, skip, limit int) ([]GoalRow, error) {
	var rows []GoalRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT g.*, COALESCE(c.name, 'Uncategorized') AS category_name
		FROM budget_goals g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.user_id = ? AND g.is_deleted = ? AND g.status = ?
		ORDER BY g.created_at DESC
		LIMIT ? OFFSET ?`,
		userID, false, models.GoalStatusActive, limit, skip,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("active goals page: %w", err)
	}
	return rows, nil
}

// GoalCounts are the user-global goal statistics attached to every page of
// the dashboard goals report.
type GoalCounts struct {
	Total         int64
	Active        int64
	Achieved      int64
	TotalBudgeted float64
}

// CountGoals computes the user's global goal counts and the summed target
// amount of active goals.
func (s *Store) CountGoals(ctx context.Context, userID string) (GoalCounts, error) {
	var gc GoalCounts
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COUNT(*) AS total,
		       COUNT(CASE WHEN status = 'active' THEN 1 END) AS active,
		       COUNT(CASE WHEN status = 'achieved' THEN 1 END) AS achieved,
		       COALESCE(SUM(CASE WHEN status = 'active' THEN %s ELSE 0 END), 0) AS total_budgeted
		FROM budget_goals
		WHERE user_id = ? AND is_deleted = ?`, coerced("amount")),
		userID, false,
	).Scan(&gc).Error
	if err != nil {
		return GoalCounts{}, fmt.Errorf("count goals: %w", err)
	}
	return gc, nil
}

// MonthlyGoals returns the user's live goals with monthly duration,
// regardless of status. Only these participate in the goal stats report.
func (s *Store) MonthlyGoals(ctx context.Context, userID string) ([]models.BudgetGoal, error) {
	return FindPage[models.BudgetGoal](ctx, s, userID, Query{
		Filter: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("duration = ?", models.GoalDurationMonthly)
		},
	})
}

// goalNameSep separates concatenated goal names; char(31) in SQL. Goal
// names may contain commas, so GROUP_CONCAT's default separator is unsafe.
const goalNameSep = "\x1f"

// GoalMonthlySummaryRow is one category's goal rollup for a month.
type GoalMonthlySummaryRow struct {
	Category        string   `json:"category"`
	TotalAmount     float64  `json:"totalAmount"`
	AverageProgress float64  `json:"averageProgress"`
	GoalNames       string   `gorm:"column:goals" json:"-"`
	Goals           []string `gorm:"-" json:"goals"`
}

// GoalMonthlySummary groups the user's goals dated in [from, to] by
// resolved category name with target sums and average progress.
func (s *Store) GoalMonthlySummary(ctx context.Context, userID string, from, to time.Time) ([]GoalMonthlySummaryRow, error) {
	var rows []GoalMonthlySummaryRow
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COALESCE(c.name, 'Uncategorized') AS category,
		       ROUND(%s, 2) AS total_amount,
		       ROUND(AVG(g.progress), 1) AS average_progress,
		       GROUP_CONCAT(g.name, char(31)) AS goals
		FROM budget_goals g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.user_id = ? AND g.is_deleted = ? AND g.date >= ? AND g.date <= ?
		GROUP BY category`, coercedSum("g.amount")),
		userID, false, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("goal monthly summary: %w", err)
	}
	for i := range rows {
		rows[i].Goals = []string{}
		if rows[i].GoalNames != "" {
			rows[i].Goals = strings.Split(rows[i].GoalNames, goalNameSep)
		}
	}
	return rows, nil
}

// UpdateGoalProgress recomputes and persists a goal's progress for the
// given spend. Progress and the achieved-status transition land in a
// single UPDATE so readers never observe one without the other.
func (s *Store) UpdateGoalProgress(ctx context.Context, goal *models.BudgetGoal, currentAmount float64) error {
	progress, err := models.GoalProgress(goal.Amount, currentAmount)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"progress": progress}
	if progress >= 100 {
		updates["status"] = models.GoalStatusAchieved
	}

	res := s.db.WithContext(ctx).Model(&models.BudgetGoal{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", goal.ID, goal.UserID, false).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update goal progress: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	goal.Progress = progress
	if progress >= 100 {
		goal.Status = models.GoalStatusAchieved
	}
	return nil
}

// RecomputeGoalProgress refreshes progress for the user's active goals in
// a category after spending in that category changed. Spend is measured
// over the current UTC month.
func (s *Store) RecomputeGoalProgress(ctx context.Context, userID, categoryID string, ref time.Time) error {
	if categoryID == "" {
		return nil
	}

	goals, err := FindPage[models.BudgetGoal](ctx, s, userID, Query{
		Filter: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("category_id = ? AND status = ?", categoryID, models.GoalStatusActive)
		},
	})
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		return nil
	}

	b := period.At(ref)
	spend, err := s.SumExpensesForCategories(ctx, userID, []string{categoryID}, b.StartOfMonth, b.EndOfMonth)
	if err != nil {
		return err
	}

	for i := range goals {
		if err := s.UpdateGoalProgress(ctx, &goals[i], spend); err != nil {
			if errors.Is(err, models.ErrInvalidGoalState) {
				continue // invariant violated upstream; skip rather than poison the batch
			}
			return err
		}
	}
	return nil
}
