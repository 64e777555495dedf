package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/period"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BudgetGoalHandler serves the budget goal CRUD surface plus the progress
// and date-range reads.
type BudgetGoalHandler struct {
	Store    *store.Store
	PageSize int
}

func NewBudgetGoalHandler(st *store.Store, pageSize int) *BudgetGoalHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &BudgetGoalHandler{Store: st, PageSize: pageSize}
}

type budgetGoalReq struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	CategoryID string  `json:"category_id"`
	Duration   string  `json:"duration"`
	Status     string  `json:"status"`
	Detail     string  `json:"detail" binding:"max=500"`
}

func (r *budgetGoalReq) validate(c *gin.Context) (time.Time, bool) {
	r.Name = strings.TrimSpace(r.Name)
	if err := util.ValidateName(r.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return time.Time{}, false
	}
	if err := util.ValidateAmount(r.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return time.Time{}, false
	}
	date, err := util.ParseDate(r.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return time.Time{}, false
	}

	if r.Duration == "" {
		r.Duration = models.GoalDurationMonthly
	}
	if !models.ValidGoalDuration(r.Duration) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid duration")
		return time.Time{}, false
	}
	if r.Status == "" {
		r.Status = models.GoalStatusActive
	}
	if !models.ValidGoalStatus(r.Status) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid status")
		return time.Time{}, false
	}
	return date, true
}

func (h *BudgetGoalHandler) checkCategory(c *gin.Context, categoryID string) (string, bool) {
	if categoryID == "" {
		return "", true
	}
	cat, err := h.Store.CategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		if err == store.ErrNotFound {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category does not exist")
		} else {
			fail(c, err, "category")
		}
		return "", false
	}
	return cat.Name, true
}

func (h *BudgetGoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req budgetGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, ok := req.validate(c)
	if !ok {
		return
	}
	categoryName, ok := h.checkCategory(c, req.CategoryID)
	if !ok {
		return
	}

	goal := models.BudgetGoal{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Name:       req.Name,
		Amount:     req.Amount,
		Date:       date,
		CategoryID: req.CategoryID,
		Category:   categoryName,
		Duration:   req.Duration,
		Status:     req.Status,
		Detail:     req.Detail,
	}
	ctx := c.Request.Context()
	if err := h.Store.Create(ctx, &goal); err != nil {
		fail(c, err, "budget goal")
		return
	}

	// A fresh goal starts from the month's existing spend.
	if err := h.Store.RecomputeGoalProgress(ctx, user.ID, goal.CategoryID, time.Now().UTC()); err != nil {
		fail(c, err, "goal progress")
		return
	}
	if refreshed, err := store.FindByID[models.BudgetGoal](ctx, h.Store, user.ID, goal.ID); err == nil {
		goal = *refreshed
	}

	util.Created(c, util.Response{"budget_goal": goal})
}

func (h *BudgetGoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, limit := pageParams(c, h.PageSize)
	categoryID := c.Query("category_id")
	status := c.Query("status")
	if status != "" && !models.ValidGoalStatus(status) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid status")
		return
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		if categoryID != "" {
			tx = tx.Where("category_id = ?", categoryID)
		}
		if status != "" {
			tx = tx.Where("status = ?", status)
		}
		return tx
	}

	ctx := c.Request.Context()
	total, err := store.Count[models.BudgetGoal](ctx, h.Store, user.ID, store.Query{Filter: filter})
	if err != nil {
		fail(c, err, "budget goals")
		return
	}
	goals, err := store.FindPage[models.BudgetGoal](ctx, h.Store, user.ID, store.Query{
		Filter: filter,
		Skip:   (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		fail(c, err, "budget goals")
		return
	}

	util.Success(c, util.Response{
		"budget_goals": goals,
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
			"total":       total,
		},
	})
}

// DateRange lists goals dated within explicit bounds. Unlike List's
// optional filter, both bounds are required here.
func (h *BudgetGoalHandler) DateRange(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "both from and to are required")
		return
	}
	from, err := util.ParseDate(fromStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	to, err := util.ParseDate(toStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	goals, err := store.FindPage[models.BudgetGoal](c.Request.Context(), h.Store, user.ID, store.Query{
		Filter: store.DateBetween(from, to),
		Sort:   "date ASC",
	})
	if err != nil {
		fail(c, err, "budget goals")
		return
	}
	util.Success(c, util.Response{"budget_goals": goals})
}

func (h *BudgetGoalHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	goal, err := store.FindByID[models.BudgetGoal](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "budget goal")
		return
	}
	if goal.CategoryID != "" {
		goal.Category = h.Store.CategoryName(ctx, goal.CategoryID)
	}
	util.Success(c, util.Response{"budget_goal": goal})
}

// Progress reports a goal's derived progress against current-month spend.
func (h *BudgetGoalHandler) Progress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	goal, err := store.FindByID[models.BudgetGoal](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "budget goal")
		return
	}

	b := period.Now()
	currentAmount, err := h.Store.SumExpensesForCategories(ctx, user.ID,
		[]string{goal.CategoryID}, b.StartOfMonth, b.EndOfMonth)
	if err != nil {
		fail(c, err, "budget goal")
		return
	}
	if goal.Status == models.GoalStatusActive {
		if err := h.Store.UpdateGoalProgress(ctx, goal, currentAmount); err != nil {
			fail(c, err, "budget goal")
			return
		}
	}

	util.Success(c, util.Response{
		"progress":       goal.Progress,
		"status":         goal.Status,
		"amount":         goal.Amount,
		"current_amount": currentAmount,
	})
}

func (h *BudgetGoalHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req budgetGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, ok := req.validate(c)
	if !ok {
		return
	}
	categoryName, ok := h.checkCategory(c, req.CategoryID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	goal, err := store.FindByID[models.BudgetGoal](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "budget goal")
		return
	}

	goal.Name = req.Name
	goal.Amount = req.Amount
	goal.Date = date
	goal.CategoryID = req.CategoryID
	goal.Category = categoryName
	goal.Duration = req.Duration
	goal.Status = req.Status
	goal.Detail = req.Detail

	if err := h.Store.Save(ctx, goal); err != nil {
		fail(c, err, "budget goal")
		return
	}
	// Target or category may have moved; progress follows.
	if err := h.Store.RecomputeGoalProgress(ctx, user.ID, goal.CategoryID, time.Now().UTC()); err != nil {
		fail(c, err, "goal progress")
		return
	}
	if refreshed, err := store.FindByID[models.BudgetGoal](ctx, h.Store, user.ID, goal.ID); err == nil {
		goal = refreshed
	}

	util.Success(c, util.Response{"budget_goal": goal})
}

func (h *BudgetGoalHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := store.SoftDelete[models.BudgetGoal](c.Request.Context(), h.Store, user.ID, c.Param("id")); err != nil {
		fail(c, err, "budget goal")
		return
	}
	util.Success(c, util.Response{"deleted": c.Param("id")})
}

// MonthlySummary groups one month's goals by category with average
// progress.
func (h *BudgetGoalHandler) MonthlySummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be 1-12")
		return
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Millisecond)

	rows, err := h.Store.GoalMonthlySummary(c.Request.Context(), user.ID, from, to)
	if err != nil {
		fail(c, err, "goal summary")
		return
	}
	if rows == nil {
		rows = []store.GoalMonthlySummaryRow{}
	}
	util.Success(c, util.Response{
		"year":       year,
		"month":      month,
		"categories": rows,
	})
}
