package models

import "time"

// Product: one row per distinct "Mã mặt hàng". When the export has no product
// code the importer stores a synthesized GEN_ code instead, so Code stays the
// natural key either way.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:50;uniqueIndex;not null"`
	Name        string `gorm:"size:300"`
	CategoryID  *uint
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	ImportPrice *int64    // Giá Nhập
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
