package cron

import (
	"Pulse/internal/pkg/logger"
	"Pulse/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine *cron.Cron
	jobSvc service.JobService
}

func NewCronManager(jobSvc service.JobService) *Manager {
	return &Manager{
		engine: cron.New(),
		jobSvc: jobSvc,
	}
}

// RegisterJobs 把注册表里的全部任务挂到调度引擎上。
// 调度触发与手动触发共用 Trigger 入口，互斥和审计都在那一层
func (s *Manager) RegisterJobs() error {
	for _, j := range s.jobSvc.Jobs() {
		name := j.Name
		_, err := s.engine.AddFunc(j.Spec, func() {
			traceID := "job-" + name + "-" + uuid.NewString()
			ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

			if _, err := s.jobSvc.Trigger(ctx, name); err != nil {
				log.ErrorContext(ctx, "scheduled job trigger error", "job_name", name, "err", err)
			}
		})
		if err != nil {
			return err
		}
		log.Info("job scheduled", "job_name", name, "spec", j.Spec)
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
