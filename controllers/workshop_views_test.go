package controllers_test

import (
	"bytes"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
)

type cartView struct {
	Items []models.LineItem `json:"items"`
	Total int64             `json:"total"`
}

func TestCartEndpoints(t *testing.T) {
	app := newTestApp(t)
	rec := app.api(http.MethodPost, "/api/inventory", map[string]interface{}{"name": "Busi", "price": 15000, "stock": 4})
	var item models.InventoryItem
	decodeData(t, rec, &item)

	var cart cartView
	rec = app.api(http.MethodPost, "/api/cart/items", map[string]interface{}{"item_id": item.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, rec, &cart)

	rec = app.api(http.MethodPost, "/api/cart/items", map[string]interface{}{"items": cart.Items, "item_id": item.ID})
	decodeData(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, int64(30000), cart.Total)

	rec = app.api(http.MethodPost, "/api/cart/fees", map[string]interface{}{"items": cart.Items, "name": "", "price": 50000})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.api(http.MethodPost, "/api/cart/fees", map[string]interface{}{"items": cart.Items, "name": "Tune Up", "price": 50000})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &cart)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, models.CategoryJasa, cart.Items[1].Category)
	assert.Equal(t, int64(80000), cart.Total)

	rec = app.api(http.MethodPost, "/api/cart/remove", map[string]interface{}{"items": cart.Items, "index": 0})
	decodeData(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(50000), cart.Total)

	rec = app.api(http.MethodPost, "/api/cart/items", map[string]interface{}{"item_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerDirectory(t *testing.T) {
	app := newTestApp(t)
	app.createService(map[string]interface{}{"customer": "Budi Santoso", "plate": "B 1 A", "car": "Avanza", "price": 100000})
	app.createService(map[string]interface{}{"customer": "budi santoso ", "plate": "B 2 B", "car": "Xenia", "price": 200000})
	app.createService(map[string]interface{}{"customer": "Sari", "plate": "D 7 C", "price": 500000})

	rec := app.api(http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dir []services.Customer
	decodeData(t, rec, &dir)
	require.Len(t, dir, 2)
	assert.Equal(t, "Sari", dir[0].Name)
	assert.Equal(t, 2, dir[1].TotalVisits)
	assert.Equal(t, int64(300000), dir[1].TotalSpent)

	rec = app.api(http.MethodGet, "/api/customers?q=b%202", nil)
	decodeData(t, rec, &dir)
	require.Len(t, dir, 1)

	rec = app.api(http.MethodGet, "/api/customers/"+url.PathEscape("budi santoso"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var customer services.Customer
	decodeData(t, rec, &customer)
	assert.Len(t, customer.History, 2)

	assert.Equal(t, http.StatusNotFound, app.api(http.MethodGet, "/api/customers/nobody", nil).Code)
}

func TestDashboard(t *testing.T) {
	app := newTestApp(t)
	app.createService(map[string]interface{}{"customer": "Andi", "plate": "B 1 A", "price": 100000})
	app.createService(map[string]interface{}{"customer": "Budi", "plate": "B 2 B", "price": 250000, "status": "Selesai"})

	rec := app.api(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Services  services.DashboardStats `json:"services"`
		Inventory services.InventoryStats `json:"inventory"`
	}
	decodeData(t, rec, &stats)
	assert.Equal(t, 2, stats.Services.TotalServices)
	assert.Equal(t, int64(350000), stats.Services.TotalIncome)
	assert.Equal(t, 1, stats.Services.PendingCount)
	assert.Len(t, stats.Services.Weekly, 7)

	rec = app.api(http.MethodGet, "/api/dashboard/chart.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}
