package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/LarzzCode/LarGarage/models"
)

// ErrEmptySheet dikembalikan saat file tidak berisi baris data
var ErrEmptySheet = errors.New("Data kosong!")

// headerSynonyms lists accepted headers per field, in priority order.
var headerSynonyms = map[string][]string{
	"name":     {"Nama Barang", "Name", "nama"},
	"brand":    {"Merek", "Brand", "Merk"},
	"category": {"Kategori", "Category"},
	"price":    {"Harga", "Price"},
	"stock":    {"Stok", "Stock"},
	"sku":      {"SKU", "Kode"},
}

const (
	defaultName     = "Tanpa Nama"
	defaultBrand    = "-"
	defaultCategory = "Umum"
)

var (
	thousandsPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	plainDecimal     = regexp.MustCompile(`^\d+(\.\d+)?$`)
	numberScrub      = regexp.MustCompile(`[^0-9,]`)
	maxNumber        = decimal.NewFromInt(math.MaxInt64)
)

type Parser struct {
	autoSKU func() string
}

func NewParser() *Parser {
	return &Parser{autoSKU: func() string {
		return fmt.Sprintf("AUTO-%d", rand.Intn(10000))
	}}
}

// ParseInventory reads the first sheet of an xlsx workbook.
func ParseInventory(r io.Reader) ([]models.InventoryItem, error) {
	return NewParser().Parse(r)
}

func (p *Parser) Parse(r io.Reader) ([]models.InventoryItem, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet rows: %w", err)
	}
	return p.ParseRows(rows)
}

// ParseRows maps a header row plus data rows to inventory items.
func (p *Parser) ParseRows(rows [][]string) ([]models.InventoryItem, error) {
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	cols := mapColumns(rows[0])

	items := make([]models.InventoryItem, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		item := models.InventoryItem{
			Name:     firstValue(cells, cols["name"], defaultName),
			Brand:    firstValue(cells, cols["brand"], defaultBrand),
			Category: firstValue(cells, cols["category"], defaultCategory),
			Price:    ParseNumber(firstValue(cells, cols["price"], "")),
			Stock:    stockValue(firstValue(cells, cols["stock"], "")),
			SKU:      firstValue(cells, cols["sku"], ""),
		}
		if item.SKU == "" {
			item.SKU = p.autoSKU()
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrEmptySheet
	}
	return items, nil
}

// ParseNumber parses a spreadsheet number permissively and rounds it.
// Dots are Indonesian thousands separators ("Rp 15.000" is 15000) unless the
// value is a plain decimal such as "12.5". Everything except digits and the
// decimal comma is scrubbed, so signs and exponents are dropped. Anything
// unparseable is 0 and values past int64 are clamped.
func ParseNumber(raw string) int64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}
	if plainDecimal.MatchString(value) && !thousandsPattern.MatchString(value) {
		if d, err := decimal.NewFromString(value); err == nil {
			return clampInt64(d.Round(0))
		}
	}
	scrubbed := numberScrub.ReplaceAllString(value, "")
	if i := strings.Index(scrubbed, ","); i >= 0 {
		scrubbed = scrubbed[:i] + "." + strings.ReplaceAll(scrubbed[i+1:], ",", "")
	}
	d, err := decimal.NewFromString(scrubbed)
	if err != nil {
		return 0
	}
	return clampInt64(d.Round(0))
}

func clampInt64(d decimal.Decimal) int64 {
	if d.GreaterThan(maxNumber) {
		return math.MaxInt64
	}
	return d.IntPart()
}

// stockValue keeps the parsed stock inside the platform int range.
func stockValue(raw string) int {
	n := ParseNumber(raw)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// mapColumns maps each field to the header columns that match its synonyms,
// keeping synonym priority.
func mapColumns(header []string) map[string][]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	mapped := make(map[string][]int, len(headerSynonyms))
	for field, synonyms := range headerSynonyms {
		for _, syn := range synonyms {
			if i, ok := index[normalizeHeader(syn)]; ok {
				mapped[field] = append(mapped[field], i)
			}
		}
	}
	return mapped
}

func normalizeHeader(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, "_", " ")
	return strings.Join(strings.Fields(value), " ")
}

func firstValue(cells []string, idxs []int, fallback string) string {
	for _, idx := range idxs {
		if v := strings.TrimSpace(readCell(cells, idx)); v != "" {
			return v
		}
	}
	return fallback
}

func readCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
