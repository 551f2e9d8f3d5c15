package job

import (
	"SocialDash/internal/pkg/logger"
	"SocialDash/internal/service"
	log "log/slog"
	"time"
)

// StatsRollForwardJob 每天把各平台最新一条统计复制到当天
type StatsRollForwardJob struct {
	statsSvc service.StatsService
	now      func() time.Time
}

func NewStatsRollForwardJob(statsSvc service.StatsService) *StatsRollForwardJob {
	return &StatsRollForwardJob{
		statsSvc: statsSvc,
		now:      time.Now,
	}
}

func (s *StatsRollForwardJob) Run() {
	ctx := logger.NewBackgroundContext("job")
	start := time.Now()

	n, err := s.statsSvc.RollForward(ctx, s.now())
	if err != nil {
		log.ErrorContext(ctx, "stats roll forward error", "err", err)
		return
	}
	log.InfoContext(ctx, "stats roll forward done", "rows", n, "cost", time.Since(start))
}
