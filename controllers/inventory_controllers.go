package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/documents"
	"github.com/LarzzCode/LarGarage/importer"
	"github.com/LarzzCode/LarGarage/metrics"
	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "Stok_Bengkel.xlsx"
	maxImportSize   = 10 << 20
)

type InventoryController struct {
	*Workshop
}

func NewInventoryController(w *Workshop) *InventoryController {
	return &InventoryController{Workshop: w}
}

type inventoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	SKU      string `json:"sku"`
	Price    int64  `json:"price" binding:"min=0"`
	Stock    int    `json:"stock"`
}

func (r inventoryRequest) toModel() models.InventoryItem {
	return models.InventoryItem{
		Name:     strings.TrimSpace(r.Name),
		Brand:    r.Brand,
		Category: r.Category,
		SKU:      strings.TrimSpace(r.SKU),
		Price:    r.Price,
		Stock:    r.Stock,
	}
}

func (ic *InventoryController) GetInventory(c *gin.Context) {
	items, err := ic.Inventory.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory", services.FilterInventory(items, c.Query("q")))
}

// GetAvailable -> barang dengan stok > 0, untuk dipilih di form service
func (ic *InventoryController) GetAvailable(c *gin.Context) {
	items, err := ic.Inventory.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	items = services.AvailableInventory(items)
	utils.RespondJSON(c, http.StatusOK, "Available inventory", services.FilterInventory(items, c.Query("q")))
}

func (ic *InventoryController) GetStats(c *gin.Context) {
	items, err := ic.Inventory.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory stats", services.BuildInventoryStats(items, ic.Config.LowStockThreshold))
}

func (ic *InventoryController) GetItem(c *gin.Context) {
	item, ok := ic.loadItem(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item", item)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	item, err := ic.Inventory.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	ic.Hub.BroadcastInventoryUpdate(item)
	utils.RespondJSON(c, http.StatusCreated, "Barang tersimpan!", item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	item, err := ic.Inventory.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	ic.Hub.BroadcastInventoryUpdate(item)
	utils.RespondJSON(c, http.StatusOK, "Barang tersimpan!", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return
	}
	if err := ic.Inventory.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	ic.Hub.BroadcastInventoryUpdate(gin.H{"deleted": id})
	utils.RespondJSON(c, http.StatusOK, "Barang dihapus", nil)
}

// ImportExcel membaca sheet pertama file "file" lalu bulk insert
func (ic *InventoryController) ImportExcel(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrFileRequired)
		return
	}
	if header.Size > maxImportSize {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, fmt.Errorf("file terlalu besar (maks %d MB)", maxImportSize>>20))
		return
	}
	f, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	rows, err := importer.ParseInventory(f)
	if err != nil {
		utils.ErrorLogger.Printf("Import %s failed: %v", header.Filename, err)
		if statusFor(err) == http.StatusBadRequest {
			respondDomainError(c, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, ErrImportFailed)
		return
	}

	n, err := ic.Inventory.CreateMany(c.Request.Context(), rows)
	if err != nil {
		utils.ErrorLogger.Printf("Import %s insert failed: %v", header.Filename, err)
		utils.RespondError(c, http.StatusInternalServerError, ErrImportFailed)
		return
	}
	metrics.AddImportedRows(n)
	utils.InfoLogger.Printf("Imported %d inventory rows from %s", n, header.Filename)

	ic.Hub.BroadcastInventoryUpdate(gin.H{"imported": n})
	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("Sukses import %d barang!", n), gin.H{"imported": n})
}

func (ic *InventoryController) ExportExcel(c *gin.Context) {
	items, err := ic.Inventory.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := importer.WriteInventory(&buf, items); err != nil {
		utils.ErrorLogger.Printf("Export inventory: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (ic *InventoryController) GetQRCode(c *gin.Context) {
	item, ok := ic.loadItem(c)
	if !ok {
		return
	}
	png, err := documents.QRCodePNG(item, documents.QRSize)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetLabel -> halaman HTML siap print untuk label rak
func (ic *InventoryController) GetLabel(c *gin.Context) {
	item, ok := ic.loadItem(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := documents.RenderLabelHTML(&buf, item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (ic *InventoryController) loadItem(c *gin.Context) (models.InventoryItem, bool) {
	id, ok := paramID(c, "item_id")
	if !ok {
		return models.InventoryItem{}, false
	}
	item, err := ic.Inventory.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return models.InventoryItem{}, false
	}
	return item, true
}
