package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"
)

var (
	shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	fullDayNames  = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// SeriesEntry is one day of a category's weekly spending series.
type SeriesEntry struct {
	Day     string  `json:"day"`
	FullDay string  `json:"fullDay"`
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
}

// CategoryBreakdown maps every category with spending this week to its
// gap-filled 7-day series.
type CategoryBreakdown struct {
	Categories []string                 `json:"categories"`
	Data       map[string][]SeriesEntry `json:"data"`
}

// WeeklyCategoryBreakdown groups the user's trailing-week expenses by
// category and calendar day. Every observed category gets exactly seven
// entries in canonical day order; days without spending carry 0.
func (s *Service) WeeklyCategoryBreakdown(ctx context.Context, userID string, ref time.Time) (*CategoryBreakdown, error) {
	b := period.At(ref)

	grouped, err := s.store.ExpenseTotalsByCategoryDay(ctx, userID, b.StartOfWeek, b.EndOfToday)
	if err != nil {
		return nil, fmt.Errorf("weekly category breakdown: %w", err)
	}

	type cell struct{ category, date string }
	values := make(map[cell]float64, len(grouped))
	categories := make([]string, 0)
	seen := make(map[string]bool)
	for _, g := range grouped {
		values[cell{g.Category, g.Date}] = g.Total
		if !seen[g.Category] {
			seen[g.Category] = true
			categories = append(categories, g.Category)
		}
	}

	// Canonical trailing week with weekday names.
	type dayInfo struct{ date, day, fullDay string }
	week := make([]dayInfo, 0, 7)
	for d := b.StartOfWeek; !d.After(b.StartOfToday); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		week = append(week, dayInfo{
			date:    d.Format("2006-01-02"),
			day:     shortDayNames[wd],
			fullDay: fullDayNames[wd],
		})
	}

	data := make(map[string][]SeriesEntry, len(categories))
	for _, cat := range categories {
		series := make([]SeriesEntry, 0, 7)
		for _, di := range week {
			series = append(series, SeriesEntry{
				Day:     di.day,
				FullDay: di.fullDay,
				Date:    di.date,
				Value:   values[cell{cat, di.date}],
			})
		}
		data[cat] = series
	}

	return &CategoryBreakdown{Categories: categories, Data: data}, nil
}
