package services

import (
	"time"

	"github.com/LarzzCode/LarGarage/models"
)

const recentServicesLimit = 5

var hariSingkat = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalServices  int              `json:"total_services"`
	TotalIncome    int64            `json:"total_income"`
	PendingCount   int              `json:"pending_count"`
	RecentServices []models.Service `json:"recent_services"`
	Weekly         []DayCount       `json:"weekly"`
}

type InventoryStats struct {
	TotalItems      int   `json:"total_items"`
	TotalAssetValue int64 `json:"total_asset_value"`
	LowStockCount   int   `json:"low_stock_count"`
}

// BuildDashboardStats expects services in created_at desc order.
func BuildDashboardStats(services []models.Service, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalServices: len(services),
		Weekly:        WeeklyCounts(services, now, now.Location()),
	}
	for _, s := range services {
		stats.TotalIncome += s.Price
		if s.Status == models.StatusPending {
			stats.PendingCount++
		}
	}
	n := len(services)
	if n > recentServicesLimit {
		n = recentServicesLimit
	}
	stats.RecentServices = append([]models.Service{}, services[:n]...)
	return stats
}

// WeeklyCounts counts services per calendar day for the 7 days ending at now.
func WeeklyCounts(services []models.Service, now time.Time, loc *time.Location) []DayCount {
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -6)

	days := make([]DayCount, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = DayCount{Date: d.Format("2006-01-02"), Label: hariSingkat[d.Weekday()]}
	}
	for _, s := range services {
		t := s.CreatedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		if day.Before(start) || day.After(today) {
			continue
		}
		// +12h absorbs DST days of 23 or 25 hours
		idx := int((day.Sub(start).Hours() + 12) / 24)
		if idx >= 0 && idx < len(days) {
			days[idx].Count++
		}
	}
	return days
}

func BuildInventoryStats(items []models.InventoryItem, lowStockThreshold int) InventoryStats {
	stats := InventoryStats{TotalItems: len(items)}
	for _, it := range items {
		stats.TotalAssetValue += it.Price * int64(it.Stock)
		if it.Stock <= lowStockThreshold {
			stats.LowStockCount++
		}
	}
	return stats
}
