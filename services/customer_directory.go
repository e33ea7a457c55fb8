package services

import (
	"sort"
	"strings"
	"time"

	"github.com/LarzzCode/LarGarage/models"
)

// Visit satu kunjungan pelanggan
type Visit struct {
	ServiceID uint                 `json:"service_id"`
	Date      time.Time            `json:"date"`
	Car       string               `json:"car"`
	Plate     string               `json:"plate"`
	Price     int64                `json:"price"`
	Status    models.ServiceStatus `json:"status"`
}

// Customer is derived from services and never stored.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	TotalVisits int       `json:"total_visits"`
	TotalSpent  int64     `json:"total_spent"`
	Plates      []string  `json:"plates"`
	Cars        []string  `json:"cars"`
	LastVisit   time.Time `json:"last_visit"`
	History     []Visit   `json:"history"`
}

func (c Customer) PlatesLabel() string {
	return strings.Join(c.Plates, ", ")
}

// CustomerKey normalizes a customer name into its grouping key.
func CustomerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildCustomerDirectory groups services by normalized customer name.
// services must already be in fetch order (created_at desc); history keeps that order.
// The result is sorted by total spend, highest first.
func BuildCustomerDirectory(services []models.Service) []Customer {
	index := make(map[string]int)
	var dir []Customer

	for _, s := range services {
		key := CustomerKey(s.Customer)
		pos, ok := index[key]
		if !ok {
			dir = append(dir, Customer{
				ID:   key,
				Name: strings.TrimSpace(s.Customer),
			})
			pos = len(dir) - 1
			index[key] = pos
		}
		c := &dir[pos]

		c.TotalVisits++
		c.TotalSpent += s.Price
		if c.Phone == "" {
			c.Phone = strings.TrimSpace(s.Phone)
		}
		c.Plates = appendDistinct(c.Plates, s.Plate)
		c.Cars = appendDistinct(c.Cars, s.Car)
		if s.CreatedAt.After(c.LastVisit) {
			c.LastVisit = s.CreatedAt
		}
		c.History = append(c.History, Visit{
			ServiceID: s.ID,
			Date:      s.CreatedAt,
			Car:       s.Car,
			Plate:     s.Plate,
			Price:     s.Price,
			Status:    s.Status,
		})
	}

	sort.SliceStable(dir, func(i, j int) bool {
		return dir[i].TotalSpent > dir[j].TotalSpent
	})
	return dir
}

// FilterCustomers matches q against the name or the joined plates.
func FilterCustomers(dir []Customer, q string) []Customer {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return dir
	}
	out := make([]Customer, 0, len(dir))
	for _, c := range dir {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.PlatesLabel()), q) {
			out = append(out, c)
		}
	}
	return out
}

func FindCustomer(dir []Customer, key string) (Customer, bool) {
	key = CustomerKey(key)
	for _, c := range dir {
		if c.ID == key {
			return c, true
		}
	}
	return Customer{}, false
}

func appendDistinct(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
