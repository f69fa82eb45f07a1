package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"time"
)

// TrendingRecomputeJob 每小时重排一次话题热榜
type TrendingRecomputeJob struct {
	trendingSvc service.TrendingService
}

func NewTrendingRecomputeJob(trendingSvc service.TrendingService) *TrendingRecomputeJob {
	return &TrendingRecomputeJob{trendingSvc: trendingSvc}
}

func (j *TrendingRecomputeJob) Definition() service.Job {
	return service.Job{
		Name:    consts.JobTrendingRecompute,
		Spec:    "@every 1h",
		LockTTL: 30 * time.Minute,
		Run:     j.run,
	}
}

func (j *TrendingRecomputeJob) run(ctx context.Context, now time.Time) (int64, error) {
	return j.trendingSvc.Recompute(ctx, now)
}
