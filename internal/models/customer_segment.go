package models

import "time"

// CustomerSegment: "Mã PKKH" in the source exports (phân khúc khách hàng)
type CustomerSegment struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:20;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
