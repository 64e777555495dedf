package dashboard

import (
	"context"
	"testing"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
)

func TestWeeklyCategoryBreakdown(t *testing.T) {
	svc := NewService(&fakeStore{
		categoryDays: []store.CategoryDayTotal{
			{Category: "Food", Date: "2025-01-06", Total: 25.5},
			{Category: "Food", Date: "2025-01-09", Total: 10},
			{Category: "Transport", Date: "2025-01-06", Total: 8},
		},
	})

	got, err := svc.WeeklyCategoryBreakdown(context.Background(), "u1", ref)
	if err != nil {
		t.Fatalf("WeeklyCategoryBreakdown() error = %v", err)
	}

	if len(got.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(got.Categories))
	}
	for _, cat := range got.Categories {
		series, ok := got.Data[cat]
		if !ok {
			t.Fatalf("Data missing series for %q", cat)
		}
		if len(series) != 7 {
			t.Errorf("len(Data[%q]) = %d, want 7", cat, len(series))
		}
	}

	// Values land on the right dates and everything else is zero.
	var foodSum float64
	for _, e := range got.Data["Food"] {
		foodSum += e.Value
		switch e.Date {
		case "2025-01-06":
			if e.Value != 25.5 {
				t.Errorf("Food on %s = %v, want 25.5", e.Date, e.Value)
			}
		case "2025-01-09":
			if e.Value != 10 {
				t.Errorf("Food on %s = %v, want 10", e.Date, e.Value)
			}
		default:
			if e.Value != 0 {
				t.Errorf("Food on %s = %v, want 0", e.Date, e.Value)
			}
		}
	}
	if foodSum != 35.5 {
		t.Errorf("Food series sum = %v, want 35.5", foodSum)
	}
}

func TestWeeklyCategoryBreakdownDayNames(t *testing.T) {
	svc := NewService(&fakeStore{
		categoryDays: []store.CategoryDayTotal{
			{Category: "Food", Date: "2025-01-04", Total: 1},
		},
	})

	got, err := svc.WeeklyCategoryBreakdown(context.Background(), "u1", ref)
	if err != nil {
		t.Fatalf("WeeklyCategoryBreakdown() error = %v", err)
	}

	series := got.Data["Food"]
	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	// Jan 4 2025 is a Saturday; the trailing week runs Sat through Fri.
	wantShort := []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}
	wantFull := []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for i, e := range series {
		if e.Day != wantShort[i] || e.FullDay != wantFull[i] {
			t.Errorf("series[%d] = %s/%s, want %s/%s",
				i, e.Day, e.FullDay, wantShort[i], wantFull[i])
		}
	}
}

func TestWeeklyCategoryBreakdownEmpty(t *testing.T) {
	svc := NewService(&fakeStore{})

	got, err := svc.WeeklyCategoryBreakdown(context.Background(), "u1", ref)
	if err != nil {
		t.Fatalf("WeeklyCategoryBreakdown() error = %v", err)
	}
	if len(got.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", got.Categories)
	}
	if len(got.Data) != 0 {
		t.Errorf("Data = %v, want empty", got.Data)
	}
}
