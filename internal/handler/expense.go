package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseHandler serves the expense CRUD surface.
type ExpenseHandler struct {
	Store    *store.Store
	PageSize int
}

func NewExpenseHandler(st *store.Store, pageSize int) *ExpenseHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ExpenseHandler{Store: st, PageSize: pageSize}
}

type expenseReq struct {
	Name          string  `json:"name" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	CategoryID    string  `json:"category_id"`
	PaymentMethod string  `json:"payment_method" binding:"max=32"`
	Detail        string  `json:"detail" binding:"max=500"`
}

// validate checks the request fields and resolves the transaction date.
func (r *expenseReq) validate(c *gin.Context) (time.Time, bool) {
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
	return date, true
}

// checkCategory validates the category reference before any write. An
// empty reference is allowed and aggregates as Uncategorized.
func (h *ExpenseHandler) checkCategory(c *gin.Context, categoryID string) (string, bool) {
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

func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req expenseReq
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

	expense := models.Expense{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Name:          req.Name,
		Amount:        req.Amount,
		Date:          date,
		CategoryID:    req.CategoryID,
		Category:      categoryName,
		PaymentMethod: req.PaymentMethod,
		Detail:        req.Detail,
	}
	ctx := c.Request.Context()
	if err := h.Store.Create(ctx, &expense); err != nil {
		fail(c, err, "expense")
		return
	}

	// Spending in this category changed; goal progress follows.
	if err := h.Store.RecomputeGoalProgress(ctx, user.ID, expense.CategoryID, time.Now().UTC()); err != nil {
		fail(c, err, "goal progress")
		return
	}

	util.Created(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, limit := pageParams(c, h.PageSize)
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	q := store.Query{Filter: filter, Skip: (page - 1) * limit, Limit: limit}

	ctx := c.Request.Context()
	total, err := store.Count[models.Expense](ctx, h.Store, user.ID, store.Query{Filter: filter})
	if err != nil {
		fail(c, err, "expenses")
		return
	}
	expenses, err := store.FindPage[models.Expense](ctx, h.Store, user.ID, q)
	if err != nil {
		fail(c, err, "expenses")
		return
	}
	h.resolveCategoryNames(c, expenses)

	util.Success(c, util.Response{
		"expenses": expenses,
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
			"total":       total,
		},
	})
}

// listFilter builds the optional date-range/category/payment-method filter.
func (h *ExpenseHandler) listFilter(c *gin.Context) (func(*gorm.DB) *gorm.DB, bool) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	categoryID := c.Query("category_id")
	paymentMethod := c.Query("payment_method")

	var from, to time.Time
	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "both from and to are required for a date range")
			return nil, false
		}
		var err error
		if from, err = util.ParseDate(fromStr); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return nil, false
		}
		if to, err = util.ParseDate(toStr); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return nil, false
		}
	}

	return func(tx *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			tx = tx.Where("date >= ? AND date <= ?", from, to)
		}
		if categoryID != "" {
			tx = tx.Where("category_id = ?", categoryID)
		}
		if paymentMethod != "" {
			tx = tx.Where("payment_method = ?", paymentMethod)
		}
		return tx
	}, true
}

// resolveCategoryNames recomputes the cached category names on read.
func (h *ExpenseHandler) resolveCategoryNames(c *gin.Context, expenses []models.Expense) {
	cats, err := h.Store.Categories(c.Request.Context())
	if err != nil {
		return // cached names still serve
	}
	names := make(map[string]string, len(cats))
	for _, cat := range cats {
		names[cat.ID] = cat.Name
	}
	for i := range expenses {
		if expenses[i].CategoryID == "" {
			continue
		}
		if name, ok := names[expenses[i].CategoryID]; ok {
			expenses[i].Category = name
		} else {
			expenses[i].Category = models.UncategorizedName
		}
	}
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	expense, err := store.FindByID[models.Expense](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "expense")
		return
	}
	if expense.CategoryID != "" {
		expense.Category = h.Store.CategoryName(ctx, expense.CategoryID)
	}
	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req expenseReq
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
	expense, err := store.FindByID[models.Expense](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "expense")
		return
	}

	previousCategoryID := expense.CategoryID
	expense.Name = req.Name
	expense.Amount = req.Amount
	expense.Date = date
	expense.CategoryID = req.CategoryID
	expense.Category = categoryName
	expense.PaymentMethod = req.PaymentMethod
	expense.Detail = req.Detail

	if err := h.Store.Save(ctx, expense); err != nil {
		fail(c, err, "expense")
		return
	}

	now := time.Now().UTC()
	if previousCategoryID != expense.CategoryID {
		if err := h.Store.RecomputeGoalProgress(ctx, user.ID, previousCategoryID, now); err != nil {
			fail(c, err, "goal progress")
			return
		}
	}
	if err := h.Store.RecomputeGoalProgress(ctx, user.ID, expense.CategoryID, now); err != nil {
		fail(c, err, "goal progress")
		return
	}

	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	expense, err := store.FindByID[models.Expense](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "expense")
		return
	}
	if err := store.SoftDelete[models.Expense](ctx, h.Store, user.ID, expense.ID); err != nil {
		fail(c, err, "expense")
		return
	}
	if err := h.Store.RecomputeGoalProgress(ctx, user.ID, expense.CategoryID, time.Now().UTC()); err != nil {
		fail(c, err, "goal progress")
		return
	}

	util.Success(c, util.Response{"deleted": expense.ID})
}

// MonthlySummary groups one month's expenses by category.
func (h *ExpenseHandler) MonthlySummary(c *gin.Context) {
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

	rows, err := h.Store.ExpenseMonthlySummary(c.Request.Context(), user.ID, from, to)
	if err != nil {
		fail(c, err, "expense summary")
		return
	}
	if rows == nil {
		rows = []store.CategoryMonthlySummary{}
	}
	util.Success(c, util.Response{
		"year":       year,
		"month":      month,
		"categories": rows,
	})
}
