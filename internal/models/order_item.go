package models

import "time"

// OrderItem: one per imported row, append-only. Items are never deduplicated,
// so re-importing the same file doubles them while master records stay stable.
type OrderItem struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"index;not null"`
	Order      Order
	ProductID  *uint    `gorm:"index"`
	Product    *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	Quantity   int      `gorm:"not null;default:0"` // SL
	UnitPrice  int64    `gorm:"not null;default:0"` // Đơn giá
	TotalPrice int64    `gorm:"not null;default:0"` // Thành tiền
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
