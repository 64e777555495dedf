package store

import (
	"context"
	"fmt"
	"time"
)

// coerced yields an amount expression that treats non-numeric stored
// values as 0 so a single bad record cannot poison an aggregate.
func coerced(col string) string {
	return fmt.Sprintf("CASE WHEN typeof(%s) IN ('integer','real') THEN %s ELSE 0 END", col, col)
}

// coercedSum sums an amount column with coercion applied per row.
func coercedSum(col string) string {
	return "SUM(" + coerced(col) + ")"
}

// DayTotal is one calendar day's expense total.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ExpenseTotalsByDay groups the user's expenses in [from, to] by UTC
// calendar day, totals rounded to 2 decimals, ascending by date. Days
// without expenses are absent; the aggregation engine gap-fills them.
func (s *Store) ExpenseTotalsByDay(ctx context.Context, userID string, from, to time.Time) ([]DayTotal, error) {
	var rows []DayTotal
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT strftime('%%Y-%%m-%%d', date) AS date,
		       ROUND(%s, 2) AS total
		FROM expenses
		WHERE user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?
		GROUP BY strftime('%%Y-%%m-%%d', date)
		ORDER BY date ASC`, coercedSum("amount")),
		userID, false, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expense totals by day: %w", err)
	}
	return rows, nil
}

// CategoryDayTotal is one (category, day) cell of the weekly breakdown.
type CategoryDayTotal struct {
	Category string
	Date     string
	Total    float64
}

// ExpenseTotalsByCategoryDay groups the user's expenses in [from, to] by
// category name and UTC calendar day. The name resolves through the
// category reference; a dangling reference degrades to "Uncategorized".
func (s *Store) ExpenseTotalsByCategoryDay(ctx context.Context, userID string, from, to time.Time) ([]CategoryDayTotal, error) {
	var rows []CategoryDayTotal
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COALESCE(c.name, 'Uncategorized') AS category,
		       strftime('%%Y-%%m-%%d', e.date) AS date,
		       ROUND(%s, 2) AS total
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = ? AND e.is_deleted = ? AND e.date >= ? AND e.date <= ?
		GROUP BY category, strftime('%%Y-%%m-%%d', e.date)
		ORDER BY category ASC, date ASC`, coercedSum("e.amount")),
		userID, false, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expense totals by category and day: %w", err)
	}
	return rows, nil
}

// SumPayments totals the user's payments dated in [from, to]; 0 when none.
func (s *Store) SumPayments(ctx context.Context, userID string, from, to time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COALESCE(%s, 0)
		FROM payments
		WHERE user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?`, coercedSum("amount")),
		userID, false, from, to,
	).Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// SumExpensesByCategoryID totals the user's expenses in [from, to] per
// category id, restricted to the given category set. Categories without
// spending are absent from the map.
func (s *Store) SumExpensesByCategoryID(ctx context.Context, userID string, categoryIDs []string, from, to time.Time) (map[string]float64, error) {
	if len(categoryIDs) == 0 {
		return map[string]float64{}, nil
	}

	var rows []struct {
		CategoryID string
		Total      float64
	}
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT category_id, %s AS total
		FROM expenses
		WHERE user_id = ? AND is_deleted = ? AND category_id IN ? AND date >= ? AND date <= ?
		GROUP BY category_id`, coercedSum("amount")),
		userID, false, categoryIDs, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.CategoryID] = r.Total
	}
	return out, nil
}

// SumExpensesForCategories totals the user's expenses in [from, to] across
// the given category set; 0 when the set is empty or nothing matches.
func (s *Store) SumExpensesForCategories(ctx context.Context, userID string, categoryIDs []string, from, to time.Time) (float64, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}
	var total float64
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COALESCE(%s, 0)
		FROM expenses
		WHERE user_id = ? AND is_deleted = ? AND category_id IN ? AND date >= ? AND date <= ?`, coercedSum("amount")),
		userID, false, categoryIDs, from, to,
	).Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum expenses for categories: %w", err)
	}
	return total, nil
}

// CategoryMonthlySummary is one category's rollup for a month.
type CategoryMonthlySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// ExpenseMonthlySummary groups the user's expenses in [from, to] by
// resolved category name.
func (s *Store) ExpenseMonthlySummary(ctx context.Context, userID string, from, to time.Time) ([]CategoryMonthlySummary, error) {
	var rows []CategoryMonthlySummary
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COALESCE(c.name, 'Uncategorized') AS category,
		       ROUND(%s, 2) AS total,
		       COUNT(*) AS count
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = ? AND e.is_deleted = ? AND e.date >= ? AND e.date <= ?
		GROUP BY category
		ORDER BY total DESC`, coercedSum("e.amount")),
		userID, false, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("expense monthly summary: %w", err)
	}
	return rows, nil
}

// MonthTotal is one month's payment rollup within a year.
type MonthTotal struct {
	Month int     `json:"month"`
	Total float64 `json:"totalAmount"`
	Count int64   `json:"count"`
}

// PaymentMonthlyTotals groups the user's payments of one year by month.
func (s *Store) PaymentMonthlyTotals(ctx context.Context, userID string, year int) ([]MonthTotal, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

	var rows []MonthTotal
	err := s.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT CAST(strftime('%%m', date) AS INTEGER) AS month,
		       ROUND(%s, 2) AS total,
		       COUNT(*) AS count
		FROM payments
		WHERE user_id = ? AND is_deleted = ? AND date >= ? AND date <= ?
		GROUP BY month
		ORDER BY month ASC`, coercedSum("amount")),
		userID, false, from, to,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("payment monthly totals: %w", err)
	}
	return rows, nil
}
