package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/LarzzCode/LarGarage/models"
)

var (
	ErrFeeNameRequired  = errors.New("nama jasa wajib diisi")
	ErrFeePriceRequired = errors.New("harga jasa wajib diisi")
)

// Cart menampung baris tagihan saat service sedang disusun, sebelum disimpan
type Cart struct {
	items []models.LineItem
	newID func() string
}

func NewCart(items []models.LineItem) *Cart {
	c := &Cart{newID: func() string { return uuid.NewString() }}
	c.items = Normalize(items)
	return c
}

// AddInventoryItem adds one unit of a stock item, bumping the existing line if present.
func (c *Cart) AddInventoryItem(item models.InventoryItem) {
	id := models.InventoryItemID(item.ID)
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty++
			c.items[i].Total = c.items[i].Price * int64(c.items[i].Qty)
			return
		}
	}
	c.items = append(c.items, models.LineItem{
		ID:       id,
		Name:     item.Name,
		Price:    item.Price,
		Qty:      1,
		Total:    item.Price,
		Category: item.Category,
	})
}

// AddServiceFee appends a manual "Jasa" line.
func (c *Cart) AddServiceFee(name string, price int64) (models.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.LineItem{}, ErrFeeNameRequired
	}
	if price <= 0 {
		return models.LineItem{}, ErrFeePriceRequired
	}
	line := models.LineItem{
		ID:       models.ItemID("manual-" + c.newID()),
		Name:     name,
		Price:    price,
		Qty:      1,
		Total:    price,
		Category: models.CategoryJasa,
	}
	c.items = append(c.items, line)
	return line, nil
}

// Remove drops the line at index; out of range is ignored.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index:index], c.items[index+1:]...)
	return true
}

func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() int64 {
	return SumTotals(c.items)
}

// Normalize returns a copy of items with every line total recomputed.
func Normalize(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		if it.Qty < 1 {
			it.Qty = 1
		}
		it.Total = it.Price * int64(it.Qty)
		out = append(out, it)
	}
	return out
}

func SumTotals(items []models.LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Total
	}
	return total
}
