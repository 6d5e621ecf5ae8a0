package cron

import (
	"CafeX/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	publishSpec     string
	publishSweepJob *job.PublishSweepJob
}

func NewCronManager(publishSpec string, publishSweepJob *job.PublishSweepJob) *Manager {
	if publishSpec == "" {
		publishSpec = "@every 1m"
	}
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		publishSpec:     publishSpec,
		publishSweepJob: publishSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.publishSpec, s.publishSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
