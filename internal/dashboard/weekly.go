package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"
)

// DayEntry is one day of the weekly expense series.
type DayEntry struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DayRef points at the highest or lowest spending day. Date is null when
// the whole week is zero.
type DayRef struct {
	Total float64 `json:"total"`
	Date  *string `json:"date"`
}

// WeeklyStats is the trailing-week income/expense summary.
type WeeklyStats struct {
	Days           []DayEntry `json:"days"`
	DailyBreakdown []DayEntry `json:"dailyBreakdown"`
	WeekTotal      float64    `json:"weekTotal"`
	BalanceLeft    float64    `json:"balanceLeft"`
	WeeklyBudget   float64    `json:"weeklyBudget"`
	DailyAverage   float64    `json:"dailyAverage"`
	HighestDay     DayRef     `json:"highestDay"`
	LowestDay      DayRef     `json:"lowestDay"`
}

// WeeklyStats aggregates the user's trailing week ending at ref: payments
// in range become the weekly budget, expenses are grouped per calendar day
// and gap-filled to exactly seven entries in ascending date order.
func (s *Service) WeeklyStats(ctx context.Context, userID string, ref time.Time) (*WeeklyStats, error) {
	b := period.At(ref)

	weeklyBudget, err := s.store.SumPayments(ctx, userID, b.StartOfWeek, b.EndOfToday)
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}

	grouped, err := s.store.ExpenseTotalsByDay(ctx, userID, b.StartOfWeek, b.EndOfToday)
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}
	totals := make(map[string]float64, len(grouped))
	for _, g := range grouped {
		totals[g.Date] = g.Total
	}

	// Exactly 7 entries, ascending; missing days become 0.
	days := make([]DayEntry, 0, 7)
	for _, day := range b.WeekDays() {
		days = append(days, DayEntry{Date: day, Total: totals[day]})
	}

	var weekTotal float64
	for _, d := range days {
		weekTotal += d.Total
	}
	weekTotal = round2(weekTotal)

	highest := DayRef{}
	lowest := DayRef{}
	for i := range days {
		d := days[i]
		if d.Total <= 0 {
			continue
		}
		if highest.Date == nil || d.Total > highest.Total {
			highest = DayRef{Total: d.Total, Date: &days[i].Date}
		}
		if lowest.Date == nil || d.Total < lowest.Total {
			lowest = DayRef{Total: d.Total, Date: &days[i].Date}
		}
	}

	return &WeeklyStats{
		Days:           days,
		DailyBreakdown: days,
		WeekTotal:      weekTotal,
		BalanceLeft:    round2(weeklyBudget - weekTotal),
		WeeklyBudget:   round2(weeklyBudget),
		DailyAverage:   round2(weekTotal / 7),
		HighestDay:     highest,
		LowestDay:      lowest,
	}, nil
}
