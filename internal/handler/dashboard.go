package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/dashboard"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the aggregated reports. Unlike the CRUD
// surface these endpoints return bare payloads without the code/data
// envelope; the frontend consumes the shapes directly.
type DashboardHandler struct {
	Service       *dashboard.Service
	GoalsPageSize int
}

func NewDashboardHandler(svc *dashboard.Service, goalsPageSize int) *DashboardHandler {
	if goalsPageSize <= 0 {
		goalsPageSize = dashboard.DefaultGoalsPageSize
	}
	return &DashboardHandler{Service: svc, GoalsPageSize: goalsPageSize}
}

// dashboardFail logs the cause and hides it behind a generic 500.
func dashboardFail(c *gin.Context, err error, what string) {
	slog.Error("dashboard report failed", "what", what, "error", err)
	util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
}

func (h *DashboardHandler) WeeklyStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.Service.WeeklyStats(c.Request.Context(), user.ID, time.Now().UTC())
	if err != nil {
		dashboardFail(c, err, "weekly stats")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) ExpenseAnalytics(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.Service.WeeklyCategoryBreakdown(c.Request.Context(), user.ID, time.Now().UTC())
	if err != nil {
		dashboardFail(c, err, "expense analytics")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) BudgetGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", h.GoalsPageSize)

	view, err := h.Service.GoalsWithSpending(c.Request.Context(), user.ID, page, limit, time.Now().UTC())
	if err != nil {
		dashboardFail(c, err, "budget goals")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) BudgetGoalStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.Service.GoalStats(c.Request.Context(), user.ID, time.Now().UTC())
	if err != nil {
		dashboardFail(c, err, "budget goal stats")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Activity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.Service.Activity(c.Request.Context(), user.ID, time.Now().UTC())
	if err != nil {
		dashboardFail(c, err, "activity")
		return
	}
	c.JSON(http.StatusOK, view)
}
