package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/documents"
	"github.com/LarzzCode/LarGarage/metrics"
	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

type ServiceController struct {
	*Workshop
}

func NewServiceController(w *Workshop) *ServiceController {
	return &ServiceController{Workshop: w}
}

type serviceRequest struct {
	Customer   string                  `json:"customer" binding:"required"`
	Phone      string                  `json:"phone"`
	Plate      string                  `json:"plate" binding:"required"`
	Car        string                  `json:"car"`
	VIN        string                  `json:"vin"`
	Status     models.ServiceStatus    `json:"status"`
	Items      []models.LineItem       `json:"items"`
	Price      int64                   `json:"price"`
	Signature  string                  `json:"signature"`
	Inspection []models.InspectionMark `json:"inspection"`
}

func (r serviceRequest) toModel() models.Service {
	return models.Service{
		Customer:   r.Customer,
		Phone:      r.Phone,
		Plate:      r.Plate,
		Car:        r.Car,
		VIN:        r.VIN,
		Status:     r.Status,
		Items:      r.Items,
		Price:      r.Price,
		Signature:  r.Signature,
		Inspection: r.Inspection,
	}
}

// GetServices -> semua service terbaru dulu, bisa difilter ?q=
func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Services.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Services", services.FilterServices(list, c.Query("q")))
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	s, err := sc.Services.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service", s)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	s, err := sc.Services.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Service %d created for %s (%s)", s.ID, s.Customer, s.Plate)
	sc.Hub.BroadcastServiceUpdate(s)
	sc.refresh(c)
	utils.RespondJSON(c, http.StatusCreated, "Data tersimpan!", s)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	s, err := sc.Services.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	sc.Hub.BroadcastServiceUpdate(s)
	sc.refresh(c)
	utils.RespondJSON(c, http.StatusOK, "Data tersimpan!", s)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	if err := sc.Services.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Service %d deleted", id)
	sc.Hub.BroadcastServiceDelete(id)
	sc.refresh(c)
	utils.RespondJSON(c, http.StatusOK, "Service deleted", nil)
}

// UpdateStatus mengganti status tanpa lewat drag di board
func (sc *ServiceController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := models.ParseStatus(input.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := sc.Services.UpdateStatus(ctx, id, status); err != nil {
		respondDomainError(c, err)
		return
	}
	s, err := sc.Services.Get(ctx, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	sc.Hub.BroadcastServiceUpdate(s)
	sc.refresh(c)
	utils.RespondJSON(c, http.StatusOK, "Status updated", s)
}

// GetInvoice -> PDF invoice sebagai attachment
func (sc *ServiceController) GetInvoice(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	s, err := sc.Services.Get(ctx, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	settings, err := sc.Settings.Get(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	var buf bytes.Buffer
	opts := documents.InvoiceOptions{City: sc.Config.InvoiceCity, Now: sc.Now()}
	if err := documents.RenderInvoice(&buf, s, settings, opts); err != nil {
		utils.ErrorLogger.Printf("Render invoice %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	metrics.IncInvoices()

	c.Header("Content-Disposition", `attachment; filename="`+documents.InvoiceFilename(s)+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GetWhatsAppLink -> link wa.me, atau redirect langsung dengan ?redirect=1
func (sc *ServiceController) GetWhatsAppLink(c *gin.Context) {
	id, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	s, err := sc.Services.Get(ctx, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	settings, err := sc.Settings.Get(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	link, err := services.WhatsAppLink(s, sc.Config.WACountryCode, signOff(settings))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if c.Query("redirect") == "1" {
		c.Redirect(http.StatusFound, link)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "WhatsApp link", gin.H{"url": link})
}

func (sc *ServiceController) refresh(c *gin.Context) {
	if err := sc.RefreshBoard(c.Request.Context()); err != nil {
		utils.ErrorLogger.Printf("Error refreshing board: %v", err)
	}
}

// signOff memakai nama bengkel kalau sudah diatur
func signOff(settings models.Settings) string {
	if settings.WorkshopName == "" || settings.WorkshopName == models.DefaultSettings().WorkshopName {
		return services.DefaultSignOff
	}
	return settings.WorkshopName
}
