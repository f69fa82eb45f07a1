package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 任务执行结果
const (
	JobOutcomeRunning = "running"
	JobOutcomeSuccess = "success"
	JobOutcomeFailed  = "failed"
	JobOutcomeSkipped = "skipped"
)

// JobRunModel 定时任务的一次执行记录
type JobRunModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobName    string             `bson:"job_name" json:"jobName"`               // 任务名称
	StartedAt  time.Time          `bson:"started_at" json:"startedAt"`           // 开始时间
	FinishedAt *time.Time         `bson:"finished_at,omitempty" json:"finishedAt"` // 结束时间 (running 状态下为空)
	Outcome    string             `bson:"outcome" json:"outcome"`                // running / success / failed / skipped
	Error      string             `bson:"error,omitempty" json:"error"`          // 失败原因
	Affected   int64              `bson:"affected" json:"affected"`              // 本次处理的条目数
	TraceID    string             `bson:"trace_id" json:"traceId"`               // 关联日志的 trace_id
}
