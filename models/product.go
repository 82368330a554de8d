package models

import "time"

type Product struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProductName string     `json:"productName" gorm:"not null"`
	Price       float64    `json:"price" gorm:"not null"`
	Category    StringList `json:"category" gorm:"serializer:json"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	FirmID      *uint      `json:"firm_id" gorm:"index"`
	Firm        *Firm      `json:"firm,omitempty" gorm:"foreignKey:FirmID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
