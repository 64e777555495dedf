package router

import (
	"log/slog"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/config"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/dashboard"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/handler"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/logging"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/middleware"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the gin engine and mounts the API.
func SetupRouter(cfg *config.Config, st *store.Store, logger *slog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(logging.RequestLogger(logger), gin.Recovery())

	api := r.Group("/api")

	db := st.DB()
	jwtSecret := cfg.JWT.Secret

	// Open endpoints.
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Everything below requires a valid token.
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.GET("/me", authHandler.Me)

	expenseHandler := handler.NewExpenseHandler(st, cfg.App.PageSize)
	protected.POST("/expenses", expenseHandler.Create)
	protected.GET("/expenses", expenseHandler.List)
	protected.GET("/expenses/summary/monthly", expenseHandler.MonthlySummary)
	protected.GET("/expenses/:id", expenseHandler.Get)
	protected.PUT("/expenses/:id", expenseHandler.Update)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)

	paymentHandler := handler.NewPaymentHandler(st, cfg.App.PageSize)
	protected.POST("/payments", paymentHandler.Create)
	protected.GET("/payments", paymentHandler.List)
	protected.GET("/payments/summary/monthly", paymentHandler.MonthlySummary)
	protected.GET("/payments/:id", paymentHandler.Get)
	protected.PUT("/payments/:id", paymentHandler.Update)
	protected.DELETE("/payments/:id", paymentHandler.Delete)

	goalHandler := handler.NewBudgetGoalHandler(st, cfg.App.PageSize)
	protected.POST("/budget-goals", goalHandler.Create)
	protected.GET("/budget-goals", goalHandler.List)
	protected.GET("/budget-goals/range", goalHandler.DateRange)
	protected.GET("/budget-goals/summary/monthly", goalHandler.MonthlySummary)
	protected.GET("/budget-goals/:id", goalHandler.Get)
	protected.GET("/budget-goals/:id/progress", goalHandler.Progress)
	protected.PUT("/budget-goals/:id", goalHandler.Update)
	protected.DELETE("/budget-goals/:id", goalHandler.Delete)

	categoryHandler := handler.NewCategoryHandler(st)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)

	dashboardHandler := handler.NewDashboardHandler(
		dashboard.NewService(st), cfg.App.GoalsPageSize)
	protected.GET("/dashboard/weekly-stats", dashboardHandler.WeeklyStats)
	protected.GET("/dashboard/expense-analytics", dashboardHandler.ExpenseAnalytics)
	protected.GET("/dashboard/budget-goals", dashboardHandler.BudgetGoals)
	protected.GET("/dashboard/budget-goals/stats", dashboardHandler.BudgetGoalStats)
	protected.GET("/dashboard/activity", dashboardHandler.Activity)

	exportHandler := handler.NewExportHandler(st)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
