package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/export"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

type AdminHandler struct {
	Store *ledger.Store
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.DashboardStats(c.Query("date")))
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Settings())
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Store.UpdateSettings(patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) SeedSampleData(c *gin.Context) {
	if err := h.Store.SeedSampleData(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sample data added"})
}

func (h *AdminHandler) ExportBackup(c *gin.Context) {
	doc := export.NewDocument(h.Store.Snapshot())
	c.Header("Content-Disposition", `attachment; filename="feedshop-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

func (h *AdminHandler) ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}

	doc, err := export.ParseDocument(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Merge(doc.Ledger()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Import complete"})
}

func (h *AdminHandler) SampleBackup(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="feedshop-sample.json"`)
	c.JSON(http.StatusOK, export.SampleDocument(h.Store.Settings()))
}
