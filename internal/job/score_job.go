package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"time"
)

// ScoreRecomputeJob 全量重算分数，每 15 分钟一轮
type ScoreRecomputeJob struct {
	scoreSvc service.ScoreService
}

func NewScoreRecomputeJob(scoreSvc service.ScoreService) *ScoreRecomputeJob {
	return &ScoreRecomputeJob{scoreSvc: scoreSvc}
}

func (j *ScoreRecomputeJob) Definition() service.Job {
	return service.Job{
		Name:    consts.JobScoreRecompute,
		Spec:    "@every 15m",
		LockTTL: 10 * time.Minute,
		Run:     j.run,
	}
}

func (j *ScoreRecomputeJob) run(ctx context.Context, now time.Time) (int64, error) {
	return j.scoreSvc.RecomputeAll(ctx, now)
}
