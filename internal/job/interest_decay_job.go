package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"time"
)

// InterestDecayJob 每天凌晨给全量兴趣画像做一次衰减
type InterestDecayJob struct {
	interestSvc service.InterestService
}

func NewInterestDecayJob(interestSvc service.InterestService) *InterestDecayJob {
	return &InterestDecayJob{interestSvc: interestSvc}
}

func (j *InterestDecayJob) Definition() service.Job {
	return service.Job{
		Name:    consts.JobInterestDecay,
		Spec:    "@daily",
		LockTTL: time.Hour,
		Run:     j.run,
	}
}

func (j *InterestDecayJob) run(ctx context.Context, _ time.Time) (int64, error) {
	return j.interestSvc.DecayAll(ctx)
}
