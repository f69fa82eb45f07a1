package scoring

// QualityInput 内容本身的静态特征
type QualityInput struct {
	ContentLength int
	MediaCount    int
	TagCount      int
	Comments      int
	Views         int
}

// QualityMultiplier 内容质量乘数，从 1.0 起累加封顶加成，最终夹在 [1.0, 上限]
func (p Params) QualityMultiplier(in QualityInput) float64 {
	multiplier := 1.0

	if in.ContentLength > p.LongContentChars {
		multiplier += p.LongContentBonus
	}
	if in.MediaCount > 0 {
		multiplier += p.MediaBonus
	}
	if in.TagCount > 0 {
		multiplier += p.TagBonus
	}

	// 高讨论率（评论/浏览）说明内容引发了真实讨论
	if in.Views > 0 {
		ratio := float64(in.Comments) / float64(in.Views)
		if ratio > p.DiscussionRatio {
			multiplier += p.DiscussionBonus
		}
	}

	if multiplier > p.QualityCeiling {
		return p.QualityCeiling
	}
	return multiplier
}
