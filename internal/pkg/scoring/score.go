// Package scoring 实现内容排序的全部纯函数：
// 互动强度、质量与信任乘数、时间衰减、个性化加分。
// 所有函数无副作用，同样的输入永远产出同样的分数
package scoring

import "time"

// Input 一次打分所需的全部事实
type Input struct {
	Likes     int
	Comments  int
	Bookmarks int

	Quality QualityInput
	Trust   TrustInput

	CreatedAt time.Time

	// Viewer 为 nil 表示全局分数（访客视角），个性化加分为 0
	Viewer *PersonalizationInput
}

// Breakdown 分数及其各个组成部分，组成部分随分数一起落库便于解释
type Breakdown struct {
	Score      float64
	Engagement float64
	Quality    float64
	Trust      float64
	Decay      float64
	Bonus      float64
}

// PostScore 综合打分:
//
//	score = engagement × quality × trust × decay + personalization
func (p Params) PostScore(in Input, now time.Time) Breakdown {
	b := Breakdown{
		Engagement: p.EngagementMagnitude(in.Likes, in.Comments, in.Bookmarks),
		Quality:    p.QualityMultiplier(in.Quality),
		Trust:      p.TrustMultiplier(in.Trust),
		Decay:      p.TimeDecay(now.Sub(in.CreatedAt)),
	}

	if in.Viewer != nil {
		b.Bonus = p.PersonalizationBonus(*in.Viewer)
	}

	b.Score = b.Engagement*b.Quality*b.Trust*b.Decay + b.Bonus
	return b
}
