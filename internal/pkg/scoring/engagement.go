package scoring

// EngagementMagnitude 互动强度加权和。评论和收藏的权重高于点赞，
// 它们代表了比轻量点击更深的参与
func (p Params) EngagementMagnitude(likes, comments, bookmarks int) float64 {
	return float64(likes)*p.LikeWeight +
		float64(comments)*p.CommentWeight +
		float64(bookmarks)*p.BookmarkWeight
}

// Velocity 两次快照之间的加权互动增速（每秒）。
// 快照不足两个时速度视为 0（冷启动）
func (p Params) Velocity(prevLikes, prevComments, prevBookmarks, curLikes, curComments, curBookmarks int, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	delta := p.EngagementMagnitude(curLikes-prevLikes, curComments-prevComments, curBookmarks-prevBookmarks)
	return delta / elapsedSeconds
}
