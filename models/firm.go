package models

import "time"

type Firm struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FirmName  string     `json:"firmname" gorm:"uniqueIndex;not null"`
	Area      string     `json:"area" gorm:"not null;index"`
	Category  StringList `json:"category" gorm:"serializer:json"`
	Region    StringList `json:"region" gorm:"serializer:json"`
	Offer     string     `json:"offer,omitempty"`
	Image     string     `json:"image,omitempty"`
	VendorID  uint       `json:"vendor_id" gorm:"not null;index"`
	Vendor    *Vendor    `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Products  []Product  `json:"products,omitempty" gorm:"foreignKey:FirmID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
