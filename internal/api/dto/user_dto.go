package dto

import "time"

// SignupDTO 注册
type SignupDTO struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninDTO 登录
type SigninDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// UserDTO 用户
type UserDTO struct {
	ID    uint64  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

// SigninResultDTO 登录成功返回的用户与 Token
type SigninResultDTO struct {
	User      UserDTO   `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionDTO 当前会话
type SessionDTO struct {
	User              UserDTO             `json:"user"`
	SocialConnections []*SocialAccountDTO `json:"socialConnections"`
}
