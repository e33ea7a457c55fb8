package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/repository"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

// CustomerController menyusun direktori pelanggan dari riwayat service,
// tidak ada tabel customer tersendiri.
type CustomerController struct {
	*Workshop
}

func NewCustomerController(w *Workshop) *CustomerController {
	return &CustomerController{Workshop: w}
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	list, err := cc.Services.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	dir := services.BuildCustomerDirectory(list)
	utils.RespondJSON(c, http.StatusOK, "List of customers", services.FilterCustomers(dir, c.Query("q")))
}

// GetCustomer -> detail dan riwayat service satu pelanggan
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	list, err := cc.Services.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	customer, ok := services.FindCustomer(services.BuildCustomerDirectory(list), c.Param("customer_key"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, repository.ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer", customer)
}
