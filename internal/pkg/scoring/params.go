package scoring

import (
	"errors"
	"fmt"
)

// Params 排序算法的全部可调参数，启动时从配置加载并校验
type Params struct {
	// 时间衰减
	HalfLifeHours float64
	MinDecay      float64

	// 互动权重
	LikeWeight     float64
	CommentWeight  float64
	BookmarkWeight float64

	// 内容质量加成
	LongContentChars    int
	LongContentBonus    float64
	MediaBonus          float64
	TagBonus            float64
	DiscussionRatio     float64
	DiscussionBonus     float64
	QualityCeiling      float64

	// 作者信任乘数
	VerifiedFactor   float64
	PremiumFactor    float64
	HighLevel        int
	HighLevelFactor  float64
	ExpertLevel      int
	ExpertFactor     float64
	TrustCeiling     float64

	// 个性化加分
	SpecialtyBonus    float64
	FollowBonus       float64
	InterestBonus     float64
	InterestRelevance float64

	// 兴趣衰减
	InterestDecayFactor    float64
	InterestPruneThreshold float64
}

// DefaultParams 返回线上默认参数
func DefaultParams() Params {
	return Params{
		HalfLifeHours: 48,
		MinDecay:      0.05,

		LikeWeight:     1.0,
		CommentWeight:  3.0,
		BookmarkWeight: 5.0,

		LongContentChars: 500,
		LongContentBonus: 0.3,
		MediaBonus:       0.1,
		TagBonus:         0.1,
		DiscussionRatio:  0.1,
		DiscussionBonus:  0.3,
		QualityCeiling:   2.0,

		VerifiedFactor:  1.5,
		PremiumFactor:   1.2,
		HighLevel:       10,
		HighLevelFactor: 1.3,
		ExpertLevel:     20,
		ExpertFactor:    1.5,
		TrustCeiling:    3.0,

		SpecialtyBonus:    20,
		FollowBonus:       15,
		InterestBonus:     10,
		InterestRelevance: 1.0,

		InterestDecayFactor:    0.95,
		InterestPruneThreshold: 0.1,
	}
}

// Validate 配置错误属于致命错误，只允许在启动时暴露
func (p Params) Validate() error {
	if p.HalfLifeHours <= 0 {
		return fmt.Errorf("half life must be positive, got %v", p.HalfLifeHours)
	}
	if p.MinDecay <= 0 || p.MinDecay >= 1 {
		return fmt.Errorf("min decay must be in (0, 1), got %v", p.MinDecay)
	}
	if p.LikeWeight < 0 || p.CommentWeight < 0 || p.BookmarkWeight < 0 {
		return errors.New("engagement weights must be non-negative")
	}
	if p.QualityCeiling < 1.0 {
		return fmt.Errorf("quality ceiling must be at least 1.0, got %v", p.QualityCeiling)
	}
	if p.TrustCeiling < 1.0 {
		return fmt.Errorf("trust ceiling must be at least 1.0, got %v", p.TrustCeiling)
	}
	if p.ExpertLevel < p.HighLevel {
		return fmt.Errorf("expert level %d below high level %d", p.ExpertLevel, p.HighLevel)
	}
	if p.InterestDecayFactor <= 0 || p.InterestDecayFactor >= 1 {
		return fmt.Errorf("interest decay factor must be in (0, 1), got %v", p.InterestDecayFactor)
	}
	if p.InterestPruneThreshold < 0 {
		return fmt.Errorf("interest prune threshold must be non-negative, got %v", p.InterestPruneThreshold)
	}
	return nil
}
