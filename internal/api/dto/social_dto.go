package dto

import (
	"time"

	"gorm.io/datatypes"
)

// ConnectDTO 绑定社交账号
type ConnectDTO struct {
	Platform       string         `json:"platform"`
	AccessToken    string         `json:"accessToken"`
	RefreshToken   *string        `json:"refreshToken"`
	ExpiresAt      *time.Time     `json:"expiresAt"`
	PlatformUserID string         `json:"platformUserId"`
	Username       string         `json:"username"`
	Metadata       datatypes.JSON `json:"metadata"`
}

type DisconnectDTO struct {
	PlatformUserID string `json:"platformUserId"`
}

// SocialAccountDTO 对外展示的社交账号，不包含 token
type SocialAccountDTO struct {
	ID             uint64         `json:"id"`
	Platform       string         `json:"platform"`
	PlatformUserID string         `json:"platformUserId"`
	Username       string         `json:"username"`
	TokenExpiresAt *time.Time     `json:"tokenExpiresAt"`
	Metadata       datatypes.JSON `json:"metadata"`
	IsConnected    bool           `json:"isConnected"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type OAuthURLDTO struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type OAuthCallbackDTO struct {
	State string `form:"state" validate:"required"`
	Code  string `form:"code" validate:"required"`
}
