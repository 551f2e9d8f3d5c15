package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      *string `gorm:"type:varchar(100)"`
	Email     string  `gorm:"type:varchar(191);not null;uniqueIndex:idx_email"`
	Password  *string `gorm:"type:varchar(255)"`
	Image     *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SocialConnections []SocialConnection `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
