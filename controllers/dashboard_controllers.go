package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/documents"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

type DashboardController struct {
	*Workshop
}

func NewDashboardController(w *Workshop) *DashboardController {
	return &DashboardController{Workshop: w}
}

// GetDashboardStats -> ringkasan service, stok, dan grafik 7 hari
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := dc.Services.List(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	items, err := dc.Inventory.List(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"services":  services.BuildDashboardStats(list, dc.Now()),
		"inventory": services.BuildInventoryStats(items, dc.Config.LowStockThreshold),
	})
}

func (dc *DashboardController) GetWeeklyChart(c *gin.Context) {
	list, err := dc.Services.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	now := dc.Now()
	days := services.WeeklyCounts(list, now, now.Location())

	var buf bytes.Buffer
	if err := documents.RenderWeeklyChart(&buf, days); err != nil {
		utils.ErrorLogger.Printf("Render weekly chart: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
