package model

import "time"

type CalendarEvent struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_date,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Date        time.Time `gorm:"not null;index:idx_user_date,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
