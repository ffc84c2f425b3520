package models

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:50;uniqueIndex;not null"` // Mã khách hàng
	Name      string `gorm:"size:200"`
	SegmentID *uint
	Segment   *CustomerSegment `gorm:"foreignKey:SegmentID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
