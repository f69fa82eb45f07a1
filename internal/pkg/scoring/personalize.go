package scoring

// PersonalizationInput 观看者与内容之间的关系信号。
// 全部为 false（匿名访问）时加分为 0
type PersonalizationInput struct {
	SharesSpecialty bool
	FollowsAuthor   bool
	// 内容标签与观看者兴趣集至少有一个匹配即生效，不按匹配数叠加
	MatchesInterest bool
}

// PersonalizationBonus 个性化加分，附加在全局分数之上
func (p Params) PersonalizationBonus(in PersonalizationInput) float64 {
	bonus := 0.0

	if in.SharesSpecialty {
		bonus += p.SpecialtyBonus
	}
	if in.FollowsAuthor {
		bonus += p.FollowBonus
	}
	if in.MatchesInterest {
		bonus += p.InterestBonus
	}

	return bonus
}
