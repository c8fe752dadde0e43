package models

import "time"

type SavedAddress struct {
	ID           string    `json:"id"            gorm:"primary_key;type:varchar(36)"`
	CustomerID   string    `json:"customer_id"   gorm:"type:varchar(36);not null;index"`
	Label        *string   `json:"label"         gorm:"type:varchar(50)"`
	Address      string    `json:"address"       gorm:"type:varchar(200);not null"`
	City         string    `json:"city"          gorm:"type:varchar(50);not null"`
	State        string    `json:"state"         gorm:"type:varchar(50);not null"`
	Pincode      string    `json:"pincode"       gorm:"type:varchar(6);not null"`
	ContactName  *string   `json:"contact_name"  gorm:"type:varchar(100)"`
	ContactPhone *string   `json:"contact_phone" gorm:"type:varchar(16)"`
	IsDefault    bool      `json:"is_default"    gorm:"not null;default:false"`
	IsActive     bool      `json:"is_active"     gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}
