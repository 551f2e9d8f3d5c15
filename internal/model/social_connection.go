package model

import (
	"time"

	"gorm.io/datatypes"
)

// SocialConnection 用户绑定的社交账号，(UserID, Platform) 唯一
type SocialConnection struct {
	ID             uint64         `gorm:"primaryKey" json:"id"`
	UserID         uint64         `gorm:"not null;uniqueIndex:idx_user_platform,priority:1" json:"user_id"`
	Platform       string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_platform,priority:2" json:"platform"`
	PlatformUserID string         `gorm:"type:varchar(191);not null;index" json:"platform_user_id"`
	Username       string         `gorm:"type:varchar(100);not null" json:"username"`
	AccessToken    string         `gorm:"type:text" json:"-"`
	RefreshToken   string         `gorm:"type:text" json:"-"`
	TokenExpiresAt *time.Time     `json:"token_expires_at,omitempty"`
	Metadata       datatypes.JSON `json:"metadata,omitempty"`
	IsConnected    bool           `gorm:"not null" json:"is_connected"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (SocialConnection) TableName() string {
	return "social_connections"
}
