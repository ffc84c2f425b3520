package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order: code is indexed but NOT unique - one order can legitimately span
// several rows of an export file, and code-less rows get a synthetic code.
type Order struct {
	ID         uint        `gorm:"primaryKey"`
	Code       string      `gorm:"size:100;index;not null"`
	CreatedAt  *time.Time  `gorm:"autoCreateTime:false"` // order creation time from the export, unknown for some rows
	CustomerID *uint
	Customer   *Customer   `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Status     OrderStatus `gorm:"size:20;not null;default:pending"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
