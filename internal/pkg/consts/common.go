package consts

import "time"

// 任务名称，调度与手动触发共用
const (
	JobScoreRecompute     = "score_recompute"
	JobEngagementSnapshot = "engagement_snapshot"
	JobTrendingRecompute  = "trending_recompute"
	JobInterestDecay      = "interest_decay"
	JobCleanup            = "cleanup"
)

// 窗口设置
const (
	// ScoreLookback 超过该窗口的内容不再重算，沿用最后一次分数
	ScoreLookback = 7 * 24 * time.Hour
	// SnapshotLookback 超过该窗口的内容增速视为可忽略，不再采样
	SnapshotLookback = 48 * time.Hour
	// SnapshotRetention 快照滚动保留窗口
	SnapshotRetention = 7 * 24 * time.Hour
	// MentionRetention 标签提及记录保留窗口
	MentionRetention = 7 * 24 * time.Hour
	// ScoreRetention 超过该窗口的分数行由清理任务删除
	ScoreRetention = 30 * 24 * time.Hour
)

// 互动动作，来自互动日志
const (
	ActionView     = "view"
	ActionLike     = "like"
	ActionComment  = "comment"
	ActionBookmark = "bookmark"
)
