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

// PaymentHandler serves the incoming-payment CRUD surface.
type PaymentHandler struct {
	Store    *store.Store
	PageSize int
}

func NewPaymentHandler(st *store.Store, pageSize int) *PaymentHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PaymentHandler{Store: st, PageSize: pageSize}
}

type paymentReq struct {
	Name              string  `json:"name" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	Date              string  `json:"date" binding:"required"`
	Payer             string  `json:"payer" binding:"max=100"`
	PaymentType       string  `json:"payment_type" binding:"max=32"`
	CustomPaymentType string  `json:"custom_payment_type" binding:"max=64"`
	Notes             string  `json:"notes" binding:"max=500"`
}

func (r *paymentReq) validate(c *gin.Context) (time.Time, bool) {
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

func (h *PaymentHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, ok := req.validate(c)
	if !ok {
		return
	}

	payment := models.Payment{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		Name:              req.Name,
		Amount:            req.Amount,
		Date:              date,
		Payer:             req.Payer,
		PaymentType:       req.PaymentType,
		CustomPaymentType: req.CustomPaymentType,
		Notes:             req.Notes,
	}
	if err := h.Store.Create(c.Request.Context(), &payment); err != nil {
		fail(c, err, "payment")
		return
	}

	util.Created(c, util.Response{"payment": payment})
}

func (h *PaymentHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, limit := pageParams(c, h.PageSize)
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	total, err := store.Count[models.Payment](ctx, h.Store, user.ID, store.Query{Filter: filter})
	if err != nil {
		fail(c, err, "payments")
		return
	}
	payments, err := store.FindPage[models.Payment](ctx, h.Store, user.ID, store.Query{
		Filter: filter,
		Skip:   (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		fail(c, err, "payments")
		return
	}

	util.Success(c, util.Response{
		"payments": payments,
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
			"total":       total,
		},
	})
}

func (h *PaymentHandler) listFilter(c *gin.Context) (func(*gorm.DB) *gorm.DB, bool) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	paymentType := c.Query("payment_type")

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
		if paymentType != "" {
			tx = tx.Where("payment_type = ?", paymentType)
		}
		return tx
	}, true
}

func (h *PaymentHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	payment, err := store.FindByID[models.Payment](c.Request.Context(), h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "payment")
		return
	}
	util.Success(c, util.Response{"payment": payment})
}

func (h *PaymentHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	date, ok := req.validate(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	payment, err := store.FindByID[models.Payment](ctx, h.Store, user.ID, c.Param("id"))
	if err != nil {
		fail(c, err, "payment")
		return
	}

	payment.Name = req.Name
	payment.Amount = req.Amount
	payment.Date = date
	payment.Payer = req.Payer
	payment.PaymentType = req.PaymentType
	payment.CustomPaymentType = req.CustomPaymentType
	payment.Notes = req.Notes

	if err := h.Store.Save(ctx, payment); err != nil {
		fail(c, err, "payment")
		return
	}
	util.Success(c, util.Response{"payment": payment})
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := store.SoftDelete[models.Payment](c.Request.Context(), h.Store, user.ID, c.Param("id")); err != nil {
		fail(c, err, "payment")
		return
	}
	util.Success(c, util.Response{"deleted": c.Param("id")})
}

// MonthlySummary returns per-month payment totals for one year.
func (h *PaymentHandler) MonthlySummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	year := queryInt(c, "year", time.Now().UTC().Year())
	rows, err := h.Store.PaymentMonthlyTotals(c.Request.Context(), user.ID, year)
	if err != nil {
		fail(c, err, "payment summary")
		return
	}
	if rows == nil {
		rows = []store.MonthTotal{}
	}
	util.Success(c, util.Response{
		"year":   year,
		"months": rows,
	})
}
