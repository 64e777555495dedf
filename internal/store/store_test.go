package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
		&models.Payment{},
		&models.BudgetGoal{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func seed(t *testing.T, s *Store, recs ...interface{}) {
	t.Helper()
	for _, rec := range recs {
		if err := s.db.Create(rec).Error; err != nil {
			t.Fatalf("seed %T: %v", rec, err)
		}
	}
}

func expenseOn(id, userID, categoryID string, amount float64, day int) *models.Expense {
	return &models.Expense{
		ID:         id,
		UserID:     userID,
		Name:       "expense " + id,
		Amount:     amount,
		Date:       time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC),
		CategoryID: categoryID,
	}
}

func goalWith(id, userID, categoryID, status string, amount float64, created time.Time) *models.BudgetGoal {
	return &models.BudgetGoal{
		ID:         id,
		UserID:     userID,
		Name:       "goal " + id,
		Amount:     amount,
		Date:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		CategoryID: categoryID,
		Duration:   models.GoalDurationMonthly,
		Status:     status,
		CreatedAt:  created,
	}
}

var (
	weekFrom = time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	weekTo   = time.Date(2025, 1, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)
)

func TestExpenseTotalsByDayScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	deleted := expenseOn("e-del", "u1", "c-food", 99, 7)
	deleted.IsDeleted = true
	seed(t, s,
		&models.Category{ID: "c-food", Name: "Food"},
		expenseOn("e1", "u1", "c-food", 40, 6),
		expenseOn("e2", "u1", "", 10, 8),
		expenseOn("e3", "u1", "c-food", 5, 9),
		deleted,
		expenseOn("e-other", "u2", "c-food", 77, 7),
	)

	got, err := s.ExpenseTotalsByDay(ctx, "u1", weekFrom, weekTo)
	if err != nil {
		t.Fatalf("ExpenseTotalsByDay() error = %v", err)
	}

	want := []DayTotal{
		{Date: "2025-01-06", Total: 40},
		{Date: "2025-01-08", Total: 10},
		{Date: "2025-01-09", Total: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExpenseTotalsByCategoryDayDanglingReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed(t, s,
		&models.Category{ID: "c-food", Name: "Food"},
		expenseOn("e1", "u1", "c-food", 40, 6),
		expenseOn("e2", "u1", "c-gone", 10, 8),
	)

	got, err := s.ExpenseTotalsByCategoryDay(ctx, "u1", weekFrom, weekTo)
	if err != nil {
		t.Fatalf("ExpenseTotalsByCategoryDay() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows %v, want 2", len(got), got)
	}

	byCategory := make(map[string]CategoryDayTotal, len(got))
	for _, row := range got {
		byCategory[row.Category] = row
	}
	if row := byCategory["Food"]; row.Date != "2025-01-06" || row.Total != 40 {
		t.Errorf("Food row = %+v, want 40 on 2025-01-06", row)
	}
	row, ok := byCategory[models.UncategorizedName]
	if !ok {
		t.Fatalf("dangling reference rows = %v, want %q entry", got, models.UncategorizedName)
	}
	if row.Date != "2025-01-08" || row.Total != 10 {
		t.Errorf("Uncategorized row = %+v, want 10 on 2025-01-08", row)
	}
}

func TestActiveGoalsPageScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deleted := goalWith("g-del", "u1", "c-food", models.GoalStatusActive, 50, t0)
	deleted.IsDeleted = true
	seed(t, s,
		&models.Category{ID: "c-food", Name: "Food"},
		goalWith("g1", "u1", "c-food", models.GoalStatusActive, 300, t0.Add(2*time.Hour)),
		goalWith("g2", "u1", "c-gone", models.GoalStatusActive, 120, t0.Add(time.Hour)),
		goalWith("g-done", "u1", "c-food", models.GoalStatusAchieved, 80, t0),
		goalWith("g-other", "u2", "c-food", models.GoalStatusActive, 60, t0),
		deleted,
	)

	got, err := s.ActiveGoalsPage(ctx, "u1", 0, 10)
	if err != nil {
		t.Fatalf("ActiveGoalsPage() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows %v, want 2", len(got), got)
	}

	// Newest first; embedded goal fields and the joined name both scan.
	if got[0].ID != "g1" || got[0].Amount != 300 || got[0].CategoryName != "Food" {
		t.Errorf("row 0 = id %q amount %v category %q, want g1/300/Food",
			got[0].ID, got[0].Amount, got[0].CategoryName)
	}
	if got[1].ID != "g2" || got[1].CategoryName != models.UncategorizedName {
		t.Errorf("row 1 = id %q category %q, want g2/%s",
			got[1].ID, got[1].CategoryName, models.UncategorizedName)
	}

	page, err := s.ActiveGoalsPage(ctx, "u1", 1, 1)
	if err != nil {
		t.Fatalf("ActiveGoalsPage(skip=1) error = %v", err)
	}
	if len(page) != 1 || page[0].ID != "g2" {
		t.Errorf("second page = %v, want single g2", page)
	}
}

func TestCountGoalsScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deleted := goalWith("g-del", "u1", "", models.GoalStatusActive, 999, t0)
	deleted.IsDeleted = true
	seed(t, s,
		goalWith("g1", "u1", "", models.GoalStatusActive, 300, t0),
		goalWith("g2", "u1", "", models.GoalStatusAchieved, 100, t0),
		goalWith("g-other", "u2", "", models.GoalStatusActive, 60, t0),
		deleted,
	)

	got, err := s.CountGoals(ctx, "u1")
	if err != nil {
		t.Fatalf("CountGoals() error = %v", err)
	}
	want := GoalCounts{Total: 2, Active: 1, Achieved: 1, TotalBudgeted: 300}
	if got != want {
		t.Errorf("CountGoals() = %+v, want %+v", got, want)
	}
}

func TestUpdateGoalProgressPersists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	goal := goalWith("g1", "u1", "c-food", models.GoalStatusActive, 300, t0)
	seed(t, s, goal)

	if err := s.UpdateGoalProgress(ctx, goal, 150); err != nil {
		t.Fatalf("UpdateGoalProgress(150) error = %v", err)
	}
	if goal.Progress != 50 || goal.Status != models.GoalStatusActive {
		t.Errorf("after 150: progress %d status %q, want 50/active", goal.Progress, goal.Status)
	}

	if err := s.UpdateGoalProgress(ctx, goal, 450); err != nil {
		t.Fatalf("UpdateGoalProgress(450) error = %v", err)
	}
	reloaded, err := FindByID[models.BudgetGoal](ctx, s, "u1", "g1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if reloaded.Progress != 100 || reloaded.Status != models.GoalStatusAchieved {
		t.Errorf("persisted progress %d status %q, want 100/achieved",
			reloaded.Progress, reloaded.Status)
	}
}

func TestSoftDeleteExcludesRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed(t, s, expenseOn("e1", "u1", "c-food", 40, 6))

	if err := SoftDelete[models.Expense](ctx, s, "u1", "e1"); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	if _, err := FindByID[models.Expense](ctx, s, "u1", "e1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
	page, err := FindPage[models.Expense](ctx, s, "u1", Query{})
	if err != nil {
		t.Fatalf("FindPage() error = %v", err)
	}
	if len(page) != 0 {
		t.Errorf("FindPage() = %v, want empty", page)
	}
	total, err := s.SumExpensesForCategories(ctx, "u1", []string{"c-food"}, weekFrom, weekTo)
	if err != nil {
		t.Fatalf("SumExpensesForCategories() error = %v", err)
	}
	if total != 0 {
		t.Errorf("SumExpensesForCategories() = %v, want 0", total)
	}

	// A second delete finds nothing left to flip.
	if err := SoftDelete[models.Expense](ctx, s, "u1", "e1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second SoftDelete() error = %v, want ErrNotFound", err)
	}
}

func TestGoalMonthlySummaryNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	g1 := goalWith("g1", "u1", "c-food", models.GoalStatusActive, 200, t0)
	g1.Name = "Dining cap"
	g1.Progress = 40
	g2 := goalWith("g2", "u1", "c-food", models.GoalStatusActive, 100, t0)
	g2.Name = "Groceries cap"
	g2.Progress = 60
	seed(t, s, &models.Category{ID: "c-food", Name: "Food"}, g1, g2)

	monthFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	monthTo := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

	rows, err := s.GoalMonthlySummary(ctx, "u1", monthFrom, monthTo)
	if err != nil {
		t.Fatalf("GoalMonthlySummary() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows %v, want 1", len(rows), rows)
	}

	row := rows[0]
	if row.Category != "Food" || row.TotalAmount != 300 || row.AverageProgress != 50 {
		t.Errorf("row = %+v, want Food/300/50", row)
	}
	if len(row.Goals) != 2 {
		t.Fatalf("Goals = %v, want 2 names", row.Goals)
	}
	names := map[string]bool{row.Goals[0]: true, row.Goals[1]: true}
	if !names["Dining cap"] || !names["Groceries cap"] {
		t.Errorf("Goals = %v, want both goal names", row.Goals)
	}
}
