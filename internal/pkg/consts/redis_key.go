package consts

const (
	PostScoreKey      = "post:score:"
	TrendingTopicsKey = "trending:topics"
)

const (
	JobLockKey = "lock:job:"
)
