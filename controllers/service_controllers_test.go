package controllers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarzzCode/LarGarage/models"
)

func budiService() map[string]interface{} {
	return map[string]interface{}{
		"customer": " Budi Santoso ",
		"phone":    "0812-3456-789",
		"plate":    "B 1234 XYZ",
		"car":      "Avanza",
		"items": []map[string]interface{}{
			{"id": 7, "name": "Oli Mesin", "price": 50000, "qty": 2, "category": "Oli"},
			{"id": "manual-1", "name": "Ganti Oli", "price": 25000, "qty": 1, "category": "Jasa"},
		},
	}
}

func TestServiceCRUD(t *testing.T) {
	app := newTestApp(t)

	s := app.createService(budiService())
	assert.Equal(t, "Budi Santoso", s.Customer)
	assert.Equal(t, models.StatusPending, s.Status)
	assert.Equal(t, int64(125000), s.Price)
	require.Len(t, s.Items, 2)
	assert.Equal(t, int64(100000), s.Items[0].Total)

	rec := app.api(http.MethodPost, "/api/services", map[string]interface{}{"customer": "Tanpa Plat"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.api(http.MethodPost, "/api/services", map[string]interface{}{"customer": "A", "plate": "B 1", "status": "Diproses"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	app.createService(map[string]interface{}{"customer": "Sari", "plate": "D 77 AB", "price": 300000})

	rec = app.api(http.MethodGet, "/api/services?q=1234", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Service
	decodeData(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)

	update := budiService()
	update["car"] = "Avanza Veloz"
	update["items"] = []map[string]interface{}{{"id": 7, "name": "Oli Mesin", "price": 50000, "qty": 1}}
	rec = app.api(http.MethodPut, pathf("/api/services/%d", s.ID), update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Service
	decodeData(t, rec, &updated)
	assert.Equal(t, "Avanza Veloz", updated.Car)
	assert.Equal(t, int64(50000), updated.Price)

	assert.Equal(t, http.StatusOK, app.api(http.MethodDelete, pathf("/api/services/%d", s.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, app.api(http.MethodGet, pathf("/api/services/%d", s.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, app.api(http.MethodDelete, pathf("/api/services/%d", s.ID), nil).Code)
	assert.Equal(t, http.StatusBadRequest, app.api(http.MethodGet, "/api/services/abc", nil).Code)
}

func TestUpdateServiceStatus(t *testing.T) {
	app := newTestApp(t)
	s := app.createService(budiService())

	rec := app.api(http.MethodPatch, pathf("/api/services/%d/status", s.ID), map[string]string{"status": "Beres"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.api(http.MethodPatch, pathf("/api/services/%d/status", s.ID), map[string]string{"status": "Selesai"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Service
	decodeData(t, rec, &updated)
	assert.Equal(t, models.StatusSelesai, updated.Status)

	cols := app.workshop.Board.Columns()
	require.Len(t, cols[2].Items, 1)
	assert.Equal(t, s.ID, cols[2].Items[0].ID)

	rec = app.api(http.MethodPatch, "/api/services/999/status", map[string]string{"status": "Proses"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceDownload(t *testing.T) {
	app := newTestApp(t)
	s := app.createService(budiService())

	rec := app.api(http.MethodGet, pathf("/api/services/%d/invoice", s.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice_B 1234 XYZ.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	again := app.api(http.MethodGet, pathf("/api/services/%d/invoice", s.ID), nil)
	assert.Equal(t, rec.Body.Bytes(), again.Body.Bytes())

	assert.Equal(t, http.StatusNotFound, app.api(http.MethodGet, "/api/services/404/invoice", nil).Code)
}

func TestWhatsAppLink(t *testing.T) {
	app := newTestApp(t)
	noPhone := app.createService(map[string]interface{}{"customer": "Sari", "plate": "D 77 AB", "price": 300000})

	rec := app.api(http.MethodGet, pathf("/api/services/%d/whatsapp", noPhone.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Nomor HP pelanggan belum diisi!", decodeEnvelope(t, rec).Message)

	s := app.createService(budiService())
	rec = app.api(http.MethodGet, pathf("/api/services/%d/whatsapp", s.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		URL string `json:"url"`
	}
	decodeData(t, rec, &data)
	assert.True(t, strings.HasPrefix(data.URL, "https://wa.me/628123456789?text="), data.URL)
	assert.Contains(t, data.URL, "BengkelPRO")

	rec = app.api(http.MethodGet, pathf("/api/services/%d/whatsapp?redirect=1", s.ID), nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, data.URL, rec.Header().Get("Location"))
}
