package models

import "github.com/shopspring/decimal"

// Product is a catalog item. Price is stored with two-decimal precision.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text;not null" json:"description"`
	ImageFile   string          `gorm:"size:20;not null;default:'default.jpg'" json:"image_file"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
}
