package model

import "errors"

// FeedView 流视角。每种视角对应一组固定行为组合，
// 避免把分支散落在排序逻辑里
type FeedView string

const (
	// FeedViewForYou 个性化排序：按分数排，叠加观看者加分
	FeedViewForYou FeedView = "for_you"
	// FeedViewNew 时间流：忽略分数，按发布时间倒序
	FeedViewNew FeedView = "new"
	// FeedViewFollowing 关注流：先按关注图过滤，再按全局分数排
	FeedViewFollowing FeedView = "following"
)

var ErrUnknownFeedView = errors.New("unknown feed view")

// ParseFeedView 解析请求参数，空串默认个性化视角
func ParseFeedView(s string) (FeedView, error) {
	switch FeedView(s) {
	case "", FeedViewForYou:
		return FeedViewForYou, nil
	case FeedViewNew:
		return FeedViewNew, nil
	case FeedViewFollowing:
		return FeedViewFollowing, nil
	default:
		return "", ErrUnknownFeedView
	}
}

// UsePersonalization 该视角是否叠加观看者个性化加分
func (v FeedView) UsePersonalization() bool {
	return v == FeedViewForYou
}

// FilterByFollows 该视角是否按关注图过滤候选集
func (v FeedView) FilterByFollows() bool {
	return v == FeedViewFollowing
}

// IgnoreScore 该视角是否完全忽略分数（纯时间序）
func (v FeedView) IgnoreScore() bool {
	return v == FeedViewNew
}
