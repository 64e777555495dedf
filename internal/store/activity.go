package store

import (
	"context"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
)

// ExpensesCreatedBetween lists the user's expenses created in [from, to].
func (s *Store) ExpensesCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Expense, error) {
	return FindPage[models.Expense](ctx, s, userID, Query{
		Filter: CreatedBetween(from, to),
	})
}

// PaymentsCreatedBetween lists the user's payments created in [from, to].
func (s *Store) PaymentsCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Payment, error) {
	return FindPage[models.Payment](ctx, s, userID, Query{
		Filter: CreatedBetween(from, to),
	})
}

// GoalsCreatedBetween lists the user's budget goals created in [from, to].
func (s *Store) GoalsCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.BudgetGoal, error) {
	return FindPage[models.BudgetGoal](ctx, s, userID, Query{
		Filter: CreatedBetween(from, to),
	})
}
