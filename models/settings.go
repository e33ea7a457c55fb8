package models

import "time"

// SettingsID adalah id baris tunggal tabel settings
const SettingsID = 1

type Settings struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	WorkshopName string    `gorm:"type:varchar(255)" json:"workshop_name"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Owner        string    `gorm:"type:varchar(255)" json:"owner"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSettings dipakai saat baris settings belum pernah disimpan
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		WorkshopName: "BENGKEL PRO",
		Address:      "Alamat Bengkel Belum Diatur",
		Phone:        "-",
		Owner:        "Admin",
	}
}

// WithDefaults fills blank fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.WorkshopName == "" {
		s.WorkshopName = d.WorkshopName
	}
	if s.Address == "" {
		s.Address = d.Address
	}
	if s.Phone == "" {
		s.Phone = d.Phone
	}
	if s.Owner == "" {
		s.Owner = d.Owner
	}
	s.ID = SettingsID
	return s
}
