package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the durable record of a completed purchase. Deleting an order
// removes its items as well; the referenced products are left untouched.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OrderDate time.Time   `gorm:"not null;autoCreateTime" json:"order_date"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one line of an order. PricePerUnit is captured when the order
// is placed and does not follow later catalog price changes.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"not null;index" json:"order_id"`
	ProductID    uint            `gorm:"not null" json:"product_id"`
	Product      Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity     int             `gorm:"not null;default:1" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
}
