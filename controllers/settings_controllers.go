package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

type SettingsController struct {
	*Workshop
}

func NewSettingsController(w *Workshop) *SettingsController {
	return &SettingsController{Workshop: w}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.Settings.Get(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", settings)
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req struct {
		WorkshopName string `json:"workshop_name"`
		Address      string `json:"address"`
		Phone        string `json:"phone"`
		Owner        string `json:"owner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	saved, err := sc.Settings.Save(c.Request.Context(), models.Settings{
		WorkshopName: strings.TrimSpace(req.WorkshopName),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Owner:        strings.TrimSpace(req.Owner),
	})
	if err != nil {
		utils.ErrorLogger.Printf("Save settings: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrSaveFailed)
		return
	}

	sc.Hub.BroadcastSettingsUpdate(saved)
	utils.RespondJSON(c, http.StatusOK, "Pengaturan tersimpan!", saved)
}
