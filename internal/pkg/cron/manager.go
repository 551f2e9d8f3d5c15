package cron

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	cfg                 config.CronConfig
	statsRollForwardJob *job.StatsRollForwardJob
	connectionExpiryJob *job.ConnectionExpiryJob
}

func NewCronManager(
	cfg config.CronConfig,
	statsRollForwardJob *job.StatsRollForwardJob,
	connectionExpiryJob *job.ConnectionExpiryJob,
) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		cfg:                 cfg,
		statsRollForwardJob: statsRollForwardJob,
		connectionExpiryJob: connectionExpiryJob,
	}
}

// RegisterJobs 注册定时任务，表达式来自配置
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cfg.StatsRollForward, s.statsRollForwardJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.cfg.ConnectionExpiry, s.connectionExpiryJob); err != nil {
		return err
	}
	return nil
}

// Start 注册并启动
func (s *Manager) Start() error {
	if err := s.RegisterJobs(); err != nil {
		return err
	}
	log.Info("Cron engine started", "jobs", len(s.engine.Entries()))
	s.engine.Start()
	return nil
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
