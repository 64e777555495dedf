package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the user's expenses as CSV or XLSX downloads.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{Store: st}
}

var exportHeaders = []string{"Name", "Category", "Amount", "Payment Method", "Date", "Detail"}

// exportRows loads the user's live expenses newest-first with resolved
// category names.
func (h *ExportHandler) exportRows(c *gin.Context, userID string) ([][]string, bool) {
	ctx := c.Request.Context()
	expenses, err := store.FindPage[models.Expense](ctx, h.Store, userID, store.Query{Sort: "date DESC"})
	if err != nil {
		fail(c, err, "export")
		return nil, false
	}

	names := map[string]string{}
	if cats, err := h.Store.Categories(ctx); err == nil {
		for _, cat := range cats {
			names[cat.ID] = cat.Name
		}
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		category := models.UncategorizedName
		if name, ok := names[e.CategoryID]; ok {
			category = name
		}
		rows = append(rows, []string{
			e.Name,
			category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.PaymentMethod,
			e.Date.Format("2006-01-02"),
			e.Detail,
		})
	}
	return rows, true
}

// ExportCSV writes the expense table as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	rows, ok := h.exportRows(c, user.ID)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().UTC().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding.
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}
}

// ExportXLSX writes the expense table as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	rows, ok := h.exportRows(c, user.ID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	const sheetName = "Expenses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build workbook")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for r, row := range rows {
		for col, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+col, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().UTC().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
