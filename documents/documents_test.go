package documents

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
)

func TestFallbackSplitSumsToPrice(t *testing.T) {
	for _, price := range []int64{0, 1, 10, 100000, 250001, 999999, 1234567} {
		labor, parts := FallbackSplit(price)
		assert.Equal(t, price, labor+parts, price)
	}
	labor, parts := FallbackSplit(100000)
	assert.Equal(t, int64(30000), labor)
	assert.Equal(t, int64(70000), parts)

	labor, parts = FallbackSplit(5)
	assert.Equal(t, int64(2), labor)
	assert.Equal(t, int64(3), parts)
}

func TestInvoiceRowsFallback(t *testing.T) {
	rows := InvoiceRows(models.Service{Price: 450000})
	require.Len(t, rows, 2)
	assert.Equal(t, "Jasa Service & Tune Up (Est)", rows[0].Name)
	assert.Equal(t, "SET", rows[0].Unit)
	assert.Equal(t, int64(135000), rows[0].Amount)
	assert.Equal(t, "Sparepart & Oli (Est)", rows[1].Name)
	assert.Equal(t, int64(315000), rows[1].Amount)
	assert.Equal(t, int64(450000), rows[0].Amount+rows[1].Amount)
}

func TestInvoiceRowsFromItems(t *testing.T) {
	rows := InvoiceRows(models.Service{Items: []models.LineItem{
		{ID: "1", Name: "Oli mesin", Price: 50000, Qty: 2, Total: 100000, Category: "Oli"},
		{ID: "manual-1", Name: "Jasa servis", Price: 80000, Qty: 1, Total: 80000, Category: models.CategoryJasa},
	}})
	require.Len(t, rows, 2)
	assert.Equal(t, InvoiceRow{No: 1, Qty: 2, Unit: "PCS", Name: "OLI MESIN", Price: 50000, Amount: 100000}, rows[0])
	assert.Equal(t, "JASA", rows[1].Unit)
	assert.Equal(t, 2, rows[1].No)
}

func TestInvoiceNumberAndFilename(t *testing.T) {
	s := models.Service{ID: 42, Plate: "B 1234 XY"}
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV/2025/42", InvoiceNumber(s, now))
	assert.Equal(t, "Invoice_B 1234 XY.pdf", InvoiceFilename(s))
}

func TestRenderInvoiceIsDeterministic(t *testing.T) {
	s := models.Service{
		ID: 7, Customer: "Budi", Car: "Avanza", Plate: "B 1 AA", Price: 300000,
		Items: []models.LineItem{{ID: "1", Name: "Kampas Rem", Price: 300000, Qty: 1, Total: 300000}},
	}
	opts := InvoiceOptions{City: "Tangerang Selatan", Now: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)}

	var a, b bytes.Buffer
	require.NoError(t, RenderInvoice(&a, s, models.Settings{}, opts))
	require.NoError(t, RenderInvoice(&b, s, models.Settings{}, opts))
	assert.True(t, bytes.HasPrefix(a.Bytes(), []byte("%PDF-")))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRenderInvoiceWithoutItems(t *testing.T) {
	var buf bytes.Buffer
	err := RenderInvoice(&buf, models.Service{ID: 1, Customer: "Lama", Price: 100000}, models.DefaultSettings(), InvoiceOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestLabelPayload(t *testing.T) {
	payload, err := LabelPayload(models.InventoryItem{ID: 9, SKU: "OLI-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"sku":"OLI-1"}`, string(payload))

	payload, err = LabelPayload(models.InventoryItem{ID: 10})
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, float64(10), decoded["id"])
	_, hasSKU := decoded["sku"]
	assert.False(t, hasSKU)
}

func TestQRCodePNG(t *testing.T) {
	png, err := QRCodePNG(models.InventoryItem{ID: 1, SKU: "X"}, 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderLabelHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderLabelHTML(&buf, models.InventoryItem{ID: 3, Name: "Busi <NGK>", Price: 15000}))
	html := buf.String()
	assert.Contains(t, html, "LarGarage")
	assert.Contains(t, html, "NO-SKU")
	assert.Contains(t, html, "Rp 15.000")
	assert.Contains(t, html, "Busi &lt;NGK&gt;")
	assert.Contains(t, html, `src="data:image/png;base64,`)
	assert.True(t, strings.Contains(html, "window.print()"))
}

func TestRenderWeeklyChart(t *testing.T) {
	days := services.WeeklyCounts(nil, time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC), time.UTC)
	var buf bytes.Buffer
	require.NoError(t, RenderWeeklyChart(&buf, days))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.Error(t, RenderWeeklyChart(&bytes.Buffer{}, nil))
}
