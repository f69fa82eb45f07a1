package dto

// JobTriggerDTO 手动触发结果
type JobTriggerDTO struct {
	JobName string `json:"job_name"`
	Outcome string `json:"outcome"`
	RunID   string `json:"run_id"`
}

// JobRunDTO 执行历史中的一条记录
type JobRunDTO struct {
	RunID      string `json:"run_id"`
	JobName    string `json:"job_name"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	Affected   int64  `json:"affected"`
	TraceID    string `json:"trace_id"`
}
