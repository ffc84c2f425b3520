package models

import "time"

type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:50;uniqueIndex;not null"` // Mã nhóm hàng
	Name      string `gorm:"size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
