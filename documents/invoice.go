// Package documents renders the printable artifacts of the workshop: the
// service invoice PDF, the QR shelf label and the dashboard chart.
package documents

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

const (
	brandStrip = "ISUZU   DAIHATSU   DATSUN   HONDA   TOYOTA   SUZUKI   MITSUBISHI   CHEVROLET   HYUNDAI   KIA   MAZDA   FORD   NISSAN   BMW"
	tagline    = "PERAWATAN & PERBAIKAN, ENGINE, INJECTION, AC, SPESIALIS AUTOMATIC"

	invoiceMinRows = 6
	DefaultCity    = "Tangerang Selatan"
)

var laborShare = decimal.NewFromFloat(0.3)

// InvoiceRow is one line of the invoice table.
type InvoiceRow struct {
	No     int
	Qty    int
	Unit   string
	Name   string
	Price  int64
	Amount int64
}

type InvoiceOptions struct {
	City string
	Now  time.Time
}

// FallbackSplit splits an unitemized price 30/70 into labor and parts.
// Parts takes the rounding remainder so both always sum to price.
func FallbackSplit(price int64) (labor, parts int64) {
	labor = decimal.NewFromInt(price).Mul(laborShare).Round(0).IntPart()
	return labor, price - labor
}

// InvoiceRows builds the table body without padding rows.
func InvoiceRows(s models.Service) []InvoiceRow {
	if len(s.Items) == 0 {
		labor, parts := FallbackSplit(s.Price)
		return []InvoiceRow{
			{No: 1, Qty: 1, Unit: "SET", Name: "Jasa Service & Tune Up (Est)", Price: labor, Amount: labor},
			{No: 2, Qty: 1, Unit: "SET", Name: "Sparepart & Oli (Est)", Price: parts, Amount: parts},
		}
	}
	rows := make([]InvoiceRow, 0, len(s.Items))
	for i, it := range s.Items {
		unit := "PCS"
		if it.IsJasa() {
			unit = "JASA"
		}
		rows = append(rows, InvoiceRow{
			No:     i + 1,
			Qty:    it.Qty,
			Unit:   unit,
			Name:   strings.ToUpper(it.Name),
			Price:  it.Price,
			Amount: it.Total,
		})
	}
	return rows
}

func InvoiceNumber(s models.Service, now time.Time) string {
	return fmt.Sprintf("INV/%d/%d", now.Year(), s.ID)
}

func InvoiceFilename(s models.Service) string {
	return fmt.Sprintf("Invoice_%s.pdf", s.Plate)
}

// RenderInvoice writes the A4 invoice PDF for a service.
func RenderInvoice(w io.Writer, s models.Service, settings models.Settings, opts InvoiceOptions) error {
	settings = settings.WithDefaults()
	if opts.City == "" {
		opts.City = DefaultCity
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(opts.Now)
	pdf.SetModificationDate(opts.Now)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(InvoiceNumber(s, opts.Now), false)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	centered := func(x, y float64, txt string) {
		txt = tr(txt)
		pdf.Text(x-pdf.GetStringWidth(txt)/2, y, txt)
	}
	right := func(x, y float64, txt string) {
		txt = tr(txt)
		pdf.Text(x-pdf.GetStringWidth(txt), y, txt)
	}

	// header bengkel
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(100, 100, 100)
	centered(105, 10, brandStrip)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(14, 20, tr(strings.ToUpper(settings.WorkshopName)))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(14, 25, tagline)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(14, 30, tr(settings.Address))
	pdf.Text(14, 34, tr("HP/Telp: "+settings.Phone))

	pdf.SetLineWidth(0.5)
	pdf.Line(14, 38, 196, 38)

	// info pelanggan
	pdf.SetFont("Helvetica", "", 10)
	const leftX, leftDataX, rightX, rightDataX = 14.0, 50.0, 120.0, 150.0
	const gap = 5.0
	y := 48.0
	vin := "-"
	if strings.TrimSpace(s.VIN) != "" {
		vin = strings.ToUpper(s.VIN)
	}
	left := [][2]string{
		{"Perihal", "SERVICE"},
		{"Nama Pelanggan", strings.ToUpper(s.Customer)},
		{"Jenis Kendaraan", strings.ToUpper(s.Car)},
		{"Nomor Polisi", strings.ToUpper(s.Plate)},
		{"VIN / Rangka", vin},
	}
	for i, kv := range left {
		pdf.Text(leftX, y+gap*float64(i), kv[0])
		pdf.Text(leftDataX, y+gap*float64(i), tr(": "+kv[1]))
	}
	pdf.Text(rightX, y+gap, "No. Invoice")
	pdf.Text(rightDataX, y+gap, ": "+InvoiceNumber(s, opts.Now))
	pdf.Text(rightX, y+gap*2, "KM / Miles")
	pdf.Text(rightDataX, y+gap*2, ": -")

	// tabel item
	widths := []float64{12, 14, 18, 70, 34, 34}
	const rowH = 7.0
	pdf.SetXY(14, 80)
	pdf.SetLineWidth(0.1)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range []string{"NO.", "QTY", "UNIT", "NAMA BARANG / JASA", "HARGA", "JUMLAH"} {
		pdf.CellFormat(widths[i], rowH, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	rows := InvoiceRows(s)
	for i := 0; i < len(rows) || i < invoiceMinRows; i++ {
		cells := []string{"", "", "", "", "", ""}
		if i < len(rows) {
			r := rows[i]
			cells = []string{
				strconv.Itoa(r.No),
				strconv.Itoa(r.Qty),
				r.Unit,
				r.Name,
				utils.FormatRupiah(r.Price),
				utils.FormatRupiah(r.Amount),
			}
		}
		pdf.SetX(14)
		aligns := []string{"C", "C", "C", "L", "R", "R"}
		for j, txt := range cells {
			pdf.CellFormat(widths[j], rowH, tr(txt), "1", 0, aligns[j], false, 0, "")
		}
		pdf.Ln(-1)
	}

	// total
	finalY := pdf.GetY() + 5
	const boxX, boxW, lineH = 120.0, 76.0, 7.0
	pdf.SetFont("Helvetica", "B", 10)
	totals := [][2]string{
		{"JUMLAH Rp.", utils.FormatRupiah(s.Price)},
		{"DISC", "Rp 0"},
		{"TOTAL BAYAR", utils.FormatRupiah(s.Price)},
	}
	for i, kv := range totals {
		top := finalY + lineH*float64(i)
		pdf.Rect(boxX, top, boxW, lineH, "D")
		pdf.Text(boxX+2, top+5, kv[0])
		right(194, top+5, kv[1])
	}

	// tanda tangan
	dateY := finalY + lineH*3 + 10
	pdf.SetFont("Helvetica", "", 10)
	centered(158, dateY, fmt.Sprintf("%s, %s", opts.City, opts.Now.Format("2/1/2006")))
	centered(30, dateY, "Tanda Terima,")
	centered(30, dateY+25, "( ........................ )")
	centered(158, dateY+5, "Hormat Kami")
	centered(158, dateY+25, fmt.Sprintf("( %s )", strings.ToUpper(settings.Owner)))

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render invoice: %w", err)
	}
	return pdf.Output(w)
}
