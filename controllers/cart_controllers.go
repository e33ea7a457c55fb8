package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

// CartController tidak menyimpan state, keranjang dikirim bolak-balik di request
type CartController struct {
	*Workshop
}

func NewCartController(w *Workshop) *CartController {
	return &CartController{Workshop: w}
}

type cartResponse struct {
	Items []models.LineItem `json:"items"`
	Total int64             `json:"total"`
}

func respondCart(c *gin.Context, cart *services.Cart) {
	utils.RespondJSON(c, http.StatusOK, "Cart", cartResponse{Items: cart.Items(), Total: cart.Total()})
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		Items  []models.LineItem `json:"items"`
		ItemID uint              `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.Inventory.Get(c.Request.Context(), req.ItemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	cart := services.NewCart(req.Items)
	cart.AddInventoryItem(item)
	respondCart(c, cart)
}

func (cc *CartController) AddFee(c *gin.Context) {
	var req struct {
		Items []models.LineItem `json:"items"`
		Name  string            `json:"name"`
		Price int64             `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := services.NewCart(req.Items)
	if _, err := cart.AddServiceFee(req.Name, req.Price); err != nil {
		respondDomainError(c, err)
		return
	}
	respondCart(c, cart)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	var req struct {
		Items []models.LineItem `json:"items"`
		Index int               `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := services.NewCart(req.Items)
	cart.Remove(req.Index)
	respondCart(c, cart)
}
