package scoring

import (
	"math"
	"time"
)

// TimeDecay 指数半衰期衰减。48 小时半衰期是刻意为之：
// 投资类内容的生命周期远长于一般社交闲聊
func (p Params) TimeDecay(age time.Duration) float64 {
	if age <= 0 {
		return 1.0
	}

	ageHours := age.Hours()
	decayConstant := math.Ln2 / p.HalfLifeHours
	decay := math.Exp(-decayConstant * ageHours)

	// 永远保留一个下限，老的优质内容仍然可被触达
	if decay < p.MinDecay {
		return p.MinDecay
	}
	return decay
}
