package models

import "time"

type InventoryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Brand     string    `gorm:"type:varchar(255)" json:"brand"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	SKU       string    `gorm:"column:sku;type:varchar(100);index" json:"sku"`
	Price     int64     `gorm:"not null;default:0" json:"price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the existing data.
func (InventoryItem) TableName() string {
	return "inventory"
}
