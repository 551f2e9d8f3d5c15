package api

import (
	"SocialDash/internal/api/handler"
	"SocialDash/internal/api/middleware"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	PlatformHandler  *handler.PlatformHandler
	CalendarHandler  *handler.CalendarHandler
	SocialHandler    *handler.SocialHandler
	SettingsHandler  *handler.SettingsHandler

	// AuthLimiter 登录、注册按 IP 限流
	AuthLimiter *middleware.RateLimiter
}
