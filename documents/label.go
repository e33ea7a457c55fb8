package documents

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/skip2/go-qrcode"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

const (
	LabelBrand = "LarGarage"
	QRSize     = 256
)

type labelPayload struct {
	ID  uint   `json:"id"`
	SKU string `json:"sku,omitempty"`
}

// LabelPayload is the JSON encoded in the shelf label QR code.
func LabelPayload(item models.InventoryItem) ([]byte, error) {
	return json.Marshal(labelPayload{ID: item.ID, SKU: item.SKU})
}

// QRCodePNG renders the label payload as a PNG QR code.
func QRCodePNG(item models.InventoryItem, size int) ([]byte, error) {
	payload, err := LabelPayload(item)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = QRSize
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

var labelTmpl = template.Must(template.New("label").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Print Label - {{.Name}}</title>
<style>
body { display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; font-family: monospace; }
.label { width: 16rem; border: 2px solid #000; border-radius: 8px; padding: 1rem; text-align: center; }
.brand { font-size: 10px; font-weight: bold; letter-spacing: .2em; text-transform: uppercase; color: #64748b; }
.name { font-size: 1.25rem; font-weight: 900; margin: .25rem 0; }
.sku { font-size: .875rem; font-weight: bold; color: #475569; margin-bottom: 1rem; }
.price-box { margin-top: 1rem; border-top: 2px dashed #cbd5e1; padding-top: .5rem; }
.price-caption { font-size: 10px; color: #94a3b8; }
.price { font-size: 1.5rem; font-weight: bold; }
</style>
</head>
<body onload="window.print()">
<div class="label">
  <p class="brand">{{.Brand}}</p>
  <h2 class="name">{{.Name}}</h2>
  <p class="sku">{{.SKU}}</p>
  <img src="{{.QR}}" width="120" height="120" alt="QR {{.SKU}}">
  <div class="price-box">
    <p class="price-caption">HARGA SATUAN</p>
    <p class="price">{{.Price}}</p>
  </div>
</div>
</body>
</html>
`))

// RenderLabelHTML writes the printable shelf label page.
func RenderLabelHTML(w io.Writer, item models.InventoryItem) error {
	png, err := QRCodePNG(item, QRSize)
	if err != nil {
		return err
	}
	sku := item.SKU
	if sku == "" {
		sku = "NO-SKU"
	}
	data := struct {
		Brand, Name, SKU, Price string
		QR                      template.URL
	}{
		Brand: LabelBrand,
		Name:  item.Name,
		SKU:   sku,
		Price: utils.FormatRupiah(item.Price),
		QR:    template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}
	return labelTmpl.Execute(w, data)
}
