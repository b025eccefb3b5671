package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/export"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

type InventoryHandler struct {
	Store *ledger.Store
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

func (h *InventoryHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, models.Companies)
}

type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	Company   string  `json:"company"`
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	Stock     float64 `json:"stock"`
	Threshold float64 `json:"threshold"`
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.AddProduct(models.Product{
		Name:      req.Name,
		Company:   req.Company,
		Cost:      req.Cost,
		Price:     req.Price,
		Stock:     req.Stock,
		Threshold: req.Threshold,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.UpdateProduct(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

type AddStockRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *InventoryHandler) AddStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.AddStock(c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *InventoryHandler) LowStockItems(c *gin.Context) {
	lows := h.Store.LowStock()
	if lows == nil {
		lows = []models.Product{}
	}
	c.JSON(http.StatusOK, lows)
}

func (h *InventoryHandler) ExportProductsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	if err := export.ProductsCSV(c.Writer, h.Store.Products()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export products"})
	}
}
