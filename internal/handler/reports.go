package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/export"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/report"
)

type ReportHandler struct {
	Store *ledger.Store
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ReportHandler) dailyDate(c *gin.Context) string {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return date
}

// parseMonth splits a YYYY-MM query value into calendar year and 1-indexed
// month.
func parseMonth(v string) (int, int, error) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	return year, month, nil
}

func (h *ReportHandler) Daily(c *gin.Context) {
	date := h.dailyDate(c)
	sum := report.Daily(h.Store.Sales(""), date)
	c.JSON(http.StatusOK, gin.H{"date": date, "report": sum})
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, err := parseMonth(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sum := report.Monthly(h.Store.Sales(""), year, month)
	c.JSON(http.StatusOK, gin.H{"month": c.Query("month"), "report": sum})
}

func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}
	sum := report.ProfitLoss(h.Store.Sales(""), from, to)
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "report": sum})
}

func (h *ReportHandler) serveXLSX(c *gin.Context, sheet, filename string, sum report.Summary) {
	if len(sum.Rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sales for the selected period"})
		return
	}
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.ReportXLSX(c.Writer, sheet, sum.Rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
	}
}

func (h *ReportHandler) DailyXLSX(c *gin.Context) {
	date := h.dailyDate(c)
	sum := report.Daily(h.Store.Sales(""), date)
	h.serveXLSX(c, "Daily-"+date, fmt.Sprintf("daily-report-%s.xlsx", date), sum)
}

func (h *ReportHandler) MonthlyXLSX(c *gin.Context) {
	v := c.Query("month")
	year, month, err := parseMonth(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sum := report.Monthly(h.Store.Sales(""), year, month)
	h.serveXLSX(c, "Monthly-"+v, fmt.Sprintf("monthly-report-%s.xlsx", v), sum)
}

func (h *ReportHandler) ProfitLossXLSX(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}
	sum := report.ProfitLoss(h.Store.Sales(""), from, to)
	sheet := fmt.Sprintf("PL-%s-to-%s", from, to)
	h.serveXLSX(c, sheet, fmt.Sprintf("pl-report-%s-to-%s.xlsx", from, to), sum)
}
