package services

import (
	"strings"

	"github.com/LarzzCode/LarGarage/models"
)

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// FilterServices matches customer name or plate.
func FilterServices(list []models.Service, q string) []models.Service {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	out := make([]models.Service, 0, len(list))
	for _, s := range list {
		if containsFold(s.Customer, q) || containsFold(s.Plate, q) {
			out = append(out, s)
		}
	}
	return out
}

// FilterInventory matches name, brand or SKU.
func FilterInventory(list []models.InventoryItem, q string) []models.InventoryItem {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	out := make([]models.InventoryItem, 0, len(list))
	for _, it := range list {
		if containsFold(it.Name, q) || containsFold(it.Brand, q) || containsFold(it.SKU, q) {
			out = append(out, it)
		}
	}
	return out
}

// AvailableInventory keeps only items that can still be added to a cart.
func AvailableInventory(list []models.InventoryItem) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(list))
	for _, it := range list {
		if it.Stock > 0 {
			out = append(out, it)
		}
	}
	return out
}
