package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"

	"golang.org/x/sync/errgroup"
)

// PeriodActivity is the raw records created within one period.
type PeriodActivity struct {
	Expenses []models.Expense    `json:"expenses"`
	Payments []models.Payment    `json:"payments"`
	Budgets  []models.BudgetGoal `json:"budgets"`
}

// ActivityReport groups the user's recent records by creation period.
type ActivityReport struct {
	Daily   PeriodActivity `json:"daily"`
	Weekly  PeriodActivity `json:"weekly"`
	Monthly PeriodActivity `json:"monthly"`
}

// Activity fetches the user's expenses, payments and budget goals created
// today, in the trailing week, and this month. The nine queries are
// independent and run concurrently; any single failure fails the report.
func (s *Service) Activity(ctx context.Context, userID string, ref time.Time) (*ActivityReport, error) {
	b := period.At(ref)

	type window struct {
		from, to time.Time
		dst      *PeriodActivity
	}
	var report ActivityReport
	windows := []window{
		{b.StartOfToday, b.EndOfToday, &report.Daily},
		{b.StartOfWeek, b.EndOfToday, &report.Weekly},
		{b.StartOfMonth, b.EndOfMonth, &report.Monthly},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range windows {
		w := w
		g.Go(func() error {
			recs, err := s.store.ExpensesCreatedBetween(ctx, userID, w.from, w.to)
			if err != nil {
				return err
			}
			w.dst.Expenses = recs
			return nil
		})
		g.Go(func() error {
			recs, err := s.store.PaymentsCreatedBetween(ctx, userID, w.from, w.to)
			if err != nil {
				return err
			}
			w.dst.Payments = recs
			return nil
		})
		g.Go(func() error {
			recs, err := s.store.GoalsCreatedBetween(ctx, userID, w.from, w.to)
			if err != nil {
				return err
			}
			w.dst.Budgets = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("activity report: %w", err)
	}

	for _, w := range windows {
		w.dst.normalize()
	}
	return &report, nil
}

// normalize replaces nil slices so empty periods serialize as [].
func (p *PeriodActivity) normalize() {
	if p.Expenses == nil {
		p.Expenses = []models.Expense{}
	}
	if p.Payments == nil {
		p.Payments = []models.Payment{}
	}
	if p.Budgets == nil {
		p.Budgets = []models.BudgetGoal{}
	}
}
