package scoring

// TrustInput 作者声誉特征，由外部声誉服务同步而来
type TrustInput struct {
	Verified bool
	Premium  bool
	Level    int
}

// TrustMultiplier 作者信任乘数，连乘后夹在 [1.0, 上限]。
// 高等级与专家等级互斥，取高者
func (p Params) TrustMultiplier(in TrustInput) float64 {
	multiplier := 1.0

	if in.Verified {
		multiplier *= p.VerifiedFactor
	}
	if in.Premium {
		multiplier *= p.PremiumFactor
	}

	if in.Level >= p.ExpertLevel {
		multiplier *= p.ExpertFactor
	} else if in.Level >= p.HighLevel {
		multiplier *= p.HighLevelFactor
	}

	if multiplier > p.TrustCeiling {
		return p.TrustCeiling
	}
	return multiplier
}
