package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"time"
)

// CleanupJob 每周清一次保留窗口外的历史数据
type CleanupJob struct {
	cleanupSvc service.CleanupService
}

func NewCleanupJob(cleanupSvc service.CleanupService) *CleanupJob {
	return &CleanupJob{cleanupSvc: cleanupSvc}
}

func (j *CleanupJob) Definition() service.Job {
	return service.Job{
		Name:    consts.JobCleanup,
		Spec:    "@weekly",
		LockTTL: time.Hour,
		Run:     j.run,
	}
}

func (j *CleanupJob) run(ctx context.Context, now time.Time) (int64, error) {
	return j.cleanupSvc.Purge(ctx, now)
}
