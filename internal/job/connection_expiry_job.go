package job

import (
	"SocialDash/internal/pkg/logger"
	"SocialDash/internal/service"
	log "log/slog"
	"time"
)

// ConnectionExpiryJob 将 token 已过期的连接标记为未连接
type ConnectionExpiryJob struct {
	socialSvc service.SocialService
	now       func() time.Time
}

func NewConnectionExpiryJob(socialSvc service.SocialService) *ConnectionExpiryJob {
	return &ConnectionExpiryJob{
		socialSvc: socialSvc,
		now:       time.Now,
	}
}

func (s *ConnectionExpiryJob) Run() {
	ctx := logger.NewBackgroundContext("job")

	n, err := s.socialSvc.ExpireConnections(ctx, s.now())
	if err != nil {
		log.ErrorContext(ctx, "expire connections error", "err", err)
		return
	}
	if n > 0 {
		log.InfoContext(ctx, "expired social connections", "users", n)
	}
}
