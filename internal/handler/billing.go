package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/export"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

type BillingHandler struct {
	Store *ledger.Store
}

type RecordSaleRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	CustomerID string  `json:"customer_id"`
	Qty        float64 `json:"qty" binding:"required"`
	Paid       string  `json:"paid" binding:"required"`
	Date       string  `json:"date"`
}

// RecordSale returns the created sale so the caller can print a receipt.
func (h *BillingHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.Store.RecordSale(req.ProductID, req.CustomerID, req.Qty, req.Paid, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// ListSales serves the sales table: optional name search, newest first.
// The reversal lives here because it is display order, not ledger order.
func (h *BillingHandler) ListSales(c *gin.Context) {
	sales := h.Store.Sales(c.Query("q"))
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	c.JSON(http.StatusOK, sales)
}

func (h *BillingHandler) ExportSalesCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="sales.csv"`)
	if err := export.SalesCSV(c.Writer, h.Store.Sales("")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export sales"})
	}
}

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone string  `json:"phone"`
	Due   float64 `json:"due"`
}

func (h *BillingHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.AddCustomer(models.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Due:   req.Due,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *BillingHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Customers())
}

func (h *BillingHandler) UpdateCustomer(c *gin.Context) {
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.UpdateCustomer(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

type ReceivePaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *BillingHandler) ReceivePayment(c *gin.Context) {
	var req ReceivePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.ReceivePayment(c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
