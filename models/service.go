package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ServiceStatus adalah status pengerjaan kendaraan di bengkel
type ServiceStatus string

const (
	StatusPending ServiceStatus = "Pending"
	StatusProses  ServiceStatus = "Proses"
	StatusSelesai ServiceStatus = "Selesai"
)

// ErrInvalidStatus dikembalikan saat status di luar tiga nilai yang dikenal
var ErrInvalidStatus = errors.New("status tidak valid")

// Statuses returns the board column order.
func Statuses() []ServiceStatus {
	return []ServiceStatus{StatusPending, StatusProses, StatusSelesai}
}

func (s ServiceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProses, StatusSelesai:
		return true
	}
	return false
}

// ParseStatus validates a raw status value at the write boundary.
func ParseStatus(raw string) (ServiceStatus, error) {
	s := ServiceStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// InspectionMark is a damage note placed on the car diagram, x/y in percent.
type InspectionMark struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Note string  `json:"note"`
}

type Service struct {
	ID         uint                                `gorm:"primaryKey" json:"id"`
	Customer   string                              `gorm:"type:varchar(255);not null;index" json:"customer"`
	Phone      string                              `gorm:"type:varchar(50)" json:"phone"`
	Plate      string                              `gorm:"type:varchar(20);index" json:"plate"`
	Car        string                              `gorm:"type:varchar(255)" json:"car"`
	VIN        string                              `gorm:"column:vin;type:varchar(50)" json:"vin"`
	Status     ServiceStatus                       `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	Items      datatypes.JSONSlice[LineItem]       `json:"items"`
	Price      int64                               `gorm:"not null;default:0" json:"price"`
	Signature  string                              `gorm:"type:text" json:"signature,omitempty"`
	Inspection datatypes.JSONSlice[InspectionMark] `json:"inspection,omitempty"`
	CreatedAt  time.Time                           `json:"created_at"`
	UpdatedAt  time.Time                           `json:"updated_at"`
}
