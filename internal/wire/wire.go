package wire

import (
	"SocialDash/internal/api"
	"SocialDash/internal/api/config"
	"SocialDash/internal/api/handler"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/job"
	"SocialDash/internal/pkg/cron"
	"SocialDash/internal/pkg/kafka"
	"SocialDash/internal/pkg/oauth"
	"SocialDash/internal/repository"
	"SocialDash/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	AuthLimiter *middleware.RateLimiter
	CronMgr     *cron.Manager
	// KafkaManager 未开启 kafka 时为 nil
	KafkaManager *kafka.ConsumerManager
}

// BuildApplication storage 为 nil 时头像上传返回 ErrStorageDisabled
func BuildApplication(db *gorm.DB, cfg *config.Config, storage service.ObjectStorage) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	platformRepo := repository.NewPlatformRepo(db)
	connectionRepo := repository.NewSocialConnectionRepo(db)
	calendarRepo := repository.NewCalendarRepo(db)

	userService := service.NewUserService(userRepo, storage)
	dashboardService := service.NewDashboardService(userRepo, platformRepo, connectionRepo)
	platformService := service.NewPlatformService(userRepo, platformRepo, connectionRepo)
	calendarService := service.NewCalendarService(userRepo, calendarRepo)
	socialService := service.NewSocialService(userRepo, connectionRepo, oauth.NewRegistry(cfg.OAuth))
	statsService := service.NewStatsService(platformRepo)

	authLimiter := middleware.NewRateLimiter(cfg.Server.AuthRPS, cfg.Server.AuthBurst)
	handlers := &api.HandlersGroup{
		AuthHandler:      handler.NewAuthHandler(userService, cfg.Server.IsProduction()),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		PlatformHandler:  handler.NewPlatformHandler(platformService),
		CalendarHandler:  handler.NewCalendarHandler(calendarService),
		SocialHandler:    handler.NewSocialHandler(socialService),
		SettingsHandler:  handler.NewSettingsHandler(userService),
		AuthLimiter:      authLimiter,
	}

	router := api.SetupRouter(handlers, cfg.Server.TrustedCIDR)

	cronMgr := cron.NewCronManager(
		cfg.Cron,
		job.NewStatsRollForwardJob(statsService),
		job.NewConnectionExpiryJob(socialService),
	)

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		var err error
		kafkaMgr, err = kafka.NewConsumerManager(cfg, statsService)
		if err != nil {
			return nil, err
		}
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		AuthLimiter:  authLimiter,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
