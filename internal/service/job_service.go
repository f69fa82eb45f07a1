package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/logger"
	"Pulse/internal/pkg/mongo"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobFunc 任务体，返回本次处理的条目数
type JobFunc func(ctx context.Context, now time.Time) (int64, error)

// Job 可调度任务。LockTTL 是租约上限，任务跑完立即释放，
// 进程崩溃时租约到期自动失效
type Job struct {
	Name    string
	Spec    string
	LockTTL time.Duration
	Run     JobFunc
}

// JobLocker 任务互斥所需的最小锁接口
type JobLocker interface {
	Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string, token string) error
}

type JobService interface {
	Register(job Job)
	Jobs() []Job
	Trigger(ctx context.Context, name string) (*dto.JobTriggerDTO, error)
	History(ctx context.Context, name string, limit int64) ([]*dto.JobRunDTO, error)
}

type jobServiceImpl struct {
	jobs    map[string]Job
	order   []string
	locker  JobLocker
	runRepo mongo.JobRunRepo
	alert   AlertSender
}

func NewJobService(locker JobLocker, runRepo mongo.JobRunRepo, alert AlertSender) JobService {
	return &jobServiceImpl{
		jobs:    make(map[string]Job),
		locker:  locker,
		runRepo: runRepo,
		alert:   alert,
	}
}

// Register 注册一个任务。注册发生在启动期装配阶段，无并发
func (s *jobServiceImpl) Register(job Job) {
	if _, ok := s.jobs[job.Name]; !ok {
		s.order = append(s.order, job.Name)
	}
	s.jobs[job.Name] = job
}

// Jobs 按注册顺序返回全部任务，调度器启动时遍历挂载
func (s *jobServiceImpl) Jobs() []Job {
	list := make([]Job, 0, len(s.order))
	for _, name := range s.order {
		list = append(list, s.jobs[name])
	}
	return list
}

// Trigger 执行一个任务，调度触发与手动触发走同一入口。
// 同名任务在任意时刻最多一个实例在跑：抢不到租约的这次记为
// skipped 并正常返回，不算失败
func (s *jobServiceImpl) Trigger(ctx context.Context, name string) (*dto.JobTriggerDTO, error) {
	job, ok := s.jobs[name]
	if !ok {
		return nil, ErrJobNotFound
	}

	token := uuid.NewString()
	lockKey := consts.JobLockKey + name
	acquired, err := s.locker.Acquire(ctx, lockKey, token, job.LockTTL)
	if err != nil {
		log.Error("failed to acquire job lease", "job_name", name, "err", err)
		return nil, UnExpectedError
	}
	if !acquired {
		runID, _ := s.runRepo.Create(ctx, &mongo.JobRunModel{
			JobName:   name,
			StartedAt: time.Now(),
			Outcome:   mongo.JobOutcomeSkipped,
			TraceID:   traceIDFrom(ctx),
		})
		log.Info("job already running, skipped", "job_name", name)
		return &dto.JobTriggerDTO{JobName: name, Outcome: mongo.JobOutcomeSkipped, RunID: runID.Hex()}, nil
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey, token); err != nil {
			log.Warn("failed to release job lease", "job_name", name, "err", err)
		}
	}()

	now := time.Now()
	runID, err := s.runRepo.Create(ctx, &mongo.JobRunModel{
		JobName:   name,
		StartedAt: now,
		Outcome:   mongo.JobOutcomeRunning,
		TraceID:   traceIDFrom(ctx),
	})
	if err != nil {
		log.Error("failed to record job run", "job_name", name, "err", err)
		return nil, UnExpectedError
	}

	affected, runErr := s.runSafely(ctx, job, now)
	if runErr != nil {
		s.finish(ctx, runID, mongo.JobOutcomeFailed, affected, runErr.Error())
		s.alert.JobFailed(ctx, name, runErr)
		log.Error("job failed", "job_name", name, "err", runErr)
		return &dto.JobTriggerDTO{JobName: name, Outcome: mongo.JobOutcomeFailed, RunID: runID.Hex()}, nil
	}

	s.finish(ctx, runID, mongo.JobOutcomeSuccess, affected, "")
	log.Info("job finished", "job_name", name, "affected", affected, "elapsed", time.Since(now).String())
	return &dto.JobTriggerDTO{JobName: name, Outcome: mongo.JobOutcomeSuccess, RunID: runID.Hex()}, nil
}

// History 任务执行历史，最近的在前
func (s *jobServiceImpl) History(ctx context.Context, name string, limit int64) ([]*dto.JobRunDTO, error) {
	if _, ok := s.jobs[name]; !ok {
		return nil, ErrJobNotFound
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := s.runRepo.History(ctx, name, limit)
	if err != nil {
		log.Error("failed to load job history", "job_name", name, "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.JobRunDTO, 0, len(runs))
	for _, run := range runs {
		item := &dto.JobRunDTO{
			RunID:     run.ID.Hex(),
			JobName:   run.JobName,
			StartedAt: run.StartedAt.Format(time.RFC3339),
			Outcome:   run.Outcome,
			Error:     run.Error,
			Affected:  run.Affected,
			TraceID:   run.TraceID,
		}
		if run.FinishedAt != nil {
			item.FinishedAt = run.FinishedAt.Format(time.RFC3339)
		}
		list = append(list, item)
	}
	return list, nil
}

// runSafely 任务 panic 转为普通错误，不拖垮调度进程
func (s *jobServiceImpl) runSafely(ctx context.Context, job Job, now time.Time) (affected int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job.Run(ctx, now)
}

func (s *jobServiceImpl) finish(ctx context.Context, runID primitive.ObjectID, outcome string, affected int64, errMsg string) {
	if err := s.runRepo.Finish(ctx, runID, outcome, affected, errMsg); err != nil {
		log.Warn("failed to finalize job run record", "run_id", runID.Hex(), "err", err)
	}
}

func traceIDFrom(ctx context.Context) string {
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
