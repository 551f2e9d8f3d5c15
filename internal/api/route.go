package api

import (
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/logger"
	"SocialDash/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, trustedProxies []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(trustedProxies)

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		authGroup := apiGroup.Group("/auth")
		{
			limited := authGroup.Group("")
			limited.Use(middleware.RateLimitMiddleware(group.AuthLimiter))
			{
				limited.POST("/signup", group.AuthHandler.Signup)
				limited.POST("/signin", group.AuthHandler.Signin)
			}

			// 未登录也可以调用，用于清理 cookie
			authGroup.POST("/signout", group.AuthHandler.Signout)
			authGroup.GET("/session", middleware.AuthMiddleware(), group.AuthHandler.Session)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(middleware.AuthMiddleware())
		{
			dashboardGroup.GET("", group.DashboardHandler.GetDashboard)
			dashboardGroup.GET("/growth-chart.png", group.DashboardHandler.GetGrowthChart)
		}

		platformGroup := apiGroup.Group("/platforms")
		platformGroup.Use(middleware.AuthMiddleware())
		{
			platformGroup.GET("", group.PlatformHandler.GetPlatforms)
			platformGroup.GET("/:name/stats", group.PlatformHandler.GetStats)
			platformGroup.GET("/:name/overview", group.PlatformHandler.GetOverview)
			platformGroup.GET("/:name/engagement", group.PlatformHandler.GetEngagement)
			platformGroup.GET("/:name/content", group.PlatformHandler.GetContent)
			platformGroup.GET("/:name/audience", group.PlatformHandler.GetAudience)
		}

		calendarGroup := apiGroup.Group("/calendar-events")
		calendarGroup.Use(middleware.AuthMiddleware())
		{
			calendarGroup.GET("", group.CalendarHandler.ListEvents)
			calendarGroup.POST("", group.CalendarHandler.CreateEvent)
			calendarGroup.PUT("", group.CalendarHandler.UpdateEvent)
			calendarGroup.DELETE("", group.CalendarHandler.DeleteEvent)
			calendarGroup.GET("/:id", group.CalendarHandler.GetEvent)
			calendarGroup.PUT("/:id", group.CalendarHandler.UpdateEvent)
			calendarGroup.DELETE("/:id", group.CalendarHandler.DeleteEvent)
		}

		socialGroup := apiGroup.Group("/social")
		socialGroup.Use(middleware.AuthMiddleware())
		{
			socialGroup.GET("/accounts", group.SocialHandler.GetAccounts)
			socialGroup.POST("/connect", group.SocialHandler.Connect)
			socialGroup.POST("/disconnect", group.SocialHandler.Disconnect)
			socialGroup.GET("/oauth/:platform/url", group.SocialHandler.GetOAuthURL)
			socialGroup.GET("/oauth/:platform/callback", group.SocialHandler.OAuthCallback)
		}

		settingsGroup := apiGroup.Group("/settings")
		settingsGroup.Use(middleware.AuthMiddleware())
		{
			settingsGroup.PUT("/password", group.SettingsHandler.ChangePassword)
			settingsGroup.POST("/avatar", group.SettingsHandler.UploadAvatar)
		}
	}

	return r
}
