package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/pkg/scoring"
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const (
	// RecomputeBatchSize 重算任务每批拉取的帖子数
	RecomputeBatchSize = 200
	// ScoreCacheTTL 分数缓存时效，略长于重算周期
	ScoreCacheTTL = 20 * time.Minute
	// FeedCandidateFactor 个性化流候选集放大倍数，重排后再截断
	FeedCandidateFactor = 3
)

type ScoreService interface {
	GetScore(ctx context.Context, postID uint64, viewerID uint64) (*dto.ScoreDTO, error)
	GetFeed(ctx context.Context, view model.FeedView, viewerID uint64, limit int) (*dto.FeedDTO, error)
	RecomputeAll(ctx context.Context, now time.Time) (int64, error)
	EvictScore(ctx context.Context, postID uint64) error
}

type scoreServiceImpl struct {
	params       scoring.Params
	postRepo     repository.PostRepo
	scoreRepo    repository.PostScoreRepo
	snapshotRepo repository.SnapshotRepo
	profileRepo  repository.UserProfileRepo
	followRepo   repository.UserFollowRepo
	interestRepo repository.UserInterestRepo
}

func NewScoreService(
	params scoring.Params,
	postRepo repository.PostRepo,
	scoreRepo repository.PostScoreRepo,
	snapshotRepo repository.SnapshotRepo,
	profileRepo repository.UserProfileRepo,
	followRepo repository.UserFollowRepo,
	interestRepo repository.UserInterestRepo,
) ScoreService {
	return &scoreServiceImpl{
		params:       params,
		postRepo:     postRepo,
		scoreRepo:    scoreRepo,
		snapshotRepo: snapshotRepo,
		profileRepo:  profileRepo,
		followRepo:   followRepo,
		interestRepo: interestRepo,
	}
}

// GetScore 查询单帖分数。viewerID 为 0 表示匿名访问，返回全局分；
// 带观看者时叠加个性化加分
func (s *scoreServiceImpl) GetScore(ctx context.Context, postID uint64, viewerID uint64) (*dto.ScoreDTO, error) {
	scoreDTO, err := s.getCachedScore(ctx, postID)
	if err != nil {
		return nil, err
	}
	if scoreDTO == nil {
		score, err := s.scoreRepo.GetScoreByPostID(ctx, postID)
		if err != nil {
			log.Error("failed to load post score", "post_id", postID, "err", err)
			return nil, UnExpectedError
		}
		if score == nil {
			return nil, ErrScoreNotFound
		}
		scoreDTO = toScoreDTO(score)
	}

	if viewerID > 0 {
		post, err := s.postRepo.GetPostByID(ctx, postID)
		if err != nil {
			log.Error("failed to load post for personalization", "post_id", postID, "err", err)
			return nil, UnExpectedError
		}
		if post == nil {
			return nil, ErrPostNotFound
		}
		bonus := s.personalBonus(ctx, post, viewerID)
		scoreDTO.PersonalBonus = bonus
		scoreDTO.Score += bonus
	}
	return scoreDTO, nil
}

// GetFeed 按视角返回排序后的内容流
func (s *scoreServiceImpl) GetFeed(ctx context.Context, view model.FeedView, viewerID uint64, limit int) (*dto.FeedDTO, error) {
	if limit <= 0 {
		return nil, ErrParamInvalid
	}

	var (
		items []*dto.FeedItemDTO
		err   error
	)
	switch {
	case view.IgnoreScore():
		items, err = s.newestFeed(ctx, limit)
	case view.FilterByFollows():
		items, err = s.followingFeed(ctx, viewerID, limit)
	default:
		items, err = s.personalizedFeed(ctx, viewerID, limit)
	}
	if err != nil {
		log.Error("failed to build feed", "view", view, "viewer_id", viewerID, "err", err)
		return nil, UnExpectedError
	}
	return &dto.FeedDTO{View: string(view), Items: items}, nil
}

// RecomputeAll 重算计算窗口内全部活跃帖子的分数。
// 单帖失败只记日志跳过，不中断整批
func (s *scoreServiceImpl) RecomputeAll(ctx context.Context, now time.Time) (int64, error) {
	since := now.Add(-consts.ScoreLookback)

	var (
		computed int64
		lastID   uint64
	)
	for {
		posts, err := s.postRepo.ListCreatedSince(ctx, since, lastID, RecomputeBatchSize)
		if err != nil {
			return computed, err
		}
		if len(posts) == 0 {
			break
		}

		authorIDs := make([]uint64, 0, len(posts))
		for _, p := range posts {
			authorIDs = append(authorIDs, p.UserID)
		}
		profiles, err := s.profileRepo.GetProfilesByUserIDs(ctx, authorIDs)
		if err != nil {
			return computed, err
		}

		for _, post := range posts {
			lastID = post.ID
			if err = s.recomputeOne(ctx, post, profiles[post.UserID], now); err != nil {
				log.Warn("skip post during recompute", "post_id", post.ID, "err", err)
				continue
			}
			computed++
		}

		if len(posts) < RecomputeBatchSize {
			break
		}
	}
	return computed, nil
}

func (s *scoreServiceImpl) recomputeOne(ctx context.Context, post *model.Post, author *model.UserProfile, now time.Time) error {
	in := scoring.Input{
		Likes:     post.LikesCount,
		Comments:  post.CommentsCount,
		Bookmarks: post.BookmarksCount,
		Quality:   s.qualityOf(post),
		Trust:     s.trustOf(post, author),
		CreatedAt: post.CreatedAt,
	}
	breakdown := s.params.PostScore(in, now)

	velocity, err := s.velocityOf(ctx, post.ID)
	if err != nil {
		return err
	}

	score := &model.PostScore{
		PostID:          post.ID,
		Score:           breakdown.Score,
		EngagementScore: breakdown.Engagement,
		QualityScore:    breakdown.Quality,
		TrustScore:      breakdown.Trust,
		DecayScore:      breakdown.Decay,
		Velocity:        velocity,
		ComputedAt:      now,
	}
	if err = s.scoreRepo.SaveOrUpdateScore(ctx, score); err != nil {
		return err
	}

	s.cacheScore(ctx, score)
	return nil
}

// qualityOf 内容信号汇总。字符数按 rune 计，标签从正文提取
func (s *scoreServiceImpl) qualityOf(post *model.Post) scoring.QualityInput {
	return scoring.QualityInput{
		ContentLength: utf8.RuneCountInString(post.Content),
		MediaCount:    post.MediaCount,
		TagCount:      len(util.ExtractTags(post.Content)),
		Comments:      post.CommentsCount,
		Views:         post.ViewsCount,
	}
}

// trustOf 匿名帖与无画像作者按基准信任处理，零值输入乘数即为 1
func (s *scoreServiceImpl) trustOf(post *model.Post, author *model.UserProfile) scoring.TrustInput {
	if post.IsAnonymous || author == nil {
		return scoring.TrustInput{}
	}
	return scoring.TrustInput{
		Verified: author.IsVerified,
		Premium:  author.IsPremium,
		Level:    author.Level,
	}
}

// velocityOf 快照不足两条时增速为 0
func (s *scoreServiceImpl) velocityOf(ctx context.Context, postID uint64) (float64, error) {
	snapshots, err := s.snapshotRepo.GetLatestTwo(ctx, postID)
	if err != nil {
		return 0, err
	}
	if len(snapshots) < 2 {
		return 0, nil
	}
	cur, prev := snapshots[0], snapshots[1]
	elapsed := cur.SnapshotAt.Sub(prev.SnapshotAt).Seconds()
	return s.params.Velocity(
		prev.Likes, prev.Comments, prev.Bookmarks,
		cur.Likes, cur.Comments, cur.Bookmarks,
		elapsed,
	), nil
}

// personalBonus 个性化加分。任何查询失败都按无加分处理，
// 读路径不因画像服务异常而失败
func (s *scoreServiceImpl) personalBonus(ctx context.Context, post *model.Post, viewerID uint64) float64 {
	in := scoring.PersonalizationInput{}

	viewer, err := s.profileRepo.GetProfileByUserID(ctx, viewerID)
	if err != nil {
		log.Warn("failed to load viewer profile", "viewer_id", viewerID, "err", err)
	}
	if viewer != nil && viewer.Specialty != "" && !post.IsAnonymous {
		author, err := s.profileRepo.GetProfileByUserID(ctx, post.UserID)
		if err != nil {
			log.Warn("failed to load author profile", "user_id", post.UserID, "err", err)
		}
		if author != nil && author.Specialty == viewer.Specialty {
			in.SharesSpecialty = true
		}
	}

	if !post.IsAnonymous {
		following, err := s.followRepo.IsFollowing(ctx, viewerID, post.UserID)
		if err != nil {
			log.Warn("failed to check follow relation", "viewer_id", viewerID, "err", err)
		}
		in.FollowsAuthor = following
	}

	in.MatchesInterest = s.matchesInterest(ctx, post, viewerID)
	return s.params.PersonalizationBonus(in)
}

func (s *scoreServiceImpl) matchesInterest(ctx context.Context, post *model.Post, viewerID uint64) bool {
	tags := util.ExtractTags(post.Content)
	if len(tags) == 0 {
		return false
	}
	interests, err := s.interestRepo.GetUserInterests(ctx, viewerID)
	if err != nil {
		log.Warn("failed to load viewer interests", "viewer_id", viewerID, "err", err)
		return false
	}

	weights := make(map[string]float64, len(interests))
	for _, it := range interests {
		weights[it.Tag] = it.Weight
	}
	for _, tag := range tags {
		if weights[tag] >= s.params.InterestRelevance {
			return true
		}
	}
	return false
}

func (s *scoreServiceImpl) newestFeed(ctx context.Context, limit int) ([]*dto.FeedItemDTO, error) {
	posts, err := s.postRepo.ListNewest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.toFeedItems(ctx, posts, nil), nil
}

func (s *scoreServiceImpl) followingFeed(ctx context.Context, viewerID uint64, limit int) ([]*dto.FeedItemDTO, error) {
	if viewerID == 0 {
		return []*dto.FeedItemDTO{}, nil
	}
	authorIDs, err := s.followRepo.ListFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListNewestByAuthors(ctx, authorIDs, limit)
	if err != nil {
		return nil, err
	}

	items := s.toFeedItems(ctx, posts, nil)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	return items, nil
}

// personalizedFeed 先取放大后的全局 Top 候选集，
// 叠加观看者加分重排，再截断到请求条数
func (s *scoreServiceImpl) personalizedFeed(ctx context.Context, viewerID uint64, limit int) ([]*dto.FeedItemDTO, error) {
	scores, err := s.scoreRepo.ListTopScores(ctx, limit*FeedCandidateFactor)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FeedItemDTO, 0, len(scores))
	for _, score := range scores {
		post, err := s.postRepo.GetPostByID(ctx, score.PostID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			continue
		}
		item := &dto.FeedItemDTO{
			PostID:    post.ID,
			UserID:    post.UserID,
			Title:     post.Title,
			Score:     score.Score,
			CreatedAt: post.CreatedAt.Format(time.RFC3339),
		}
		if viewerID > 0 {
			item.Score += s.personalBonus(ctx, post, viewerID)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *scoreServiceImpl) toFeedItems(ctx context.Context, posts []*model.Post, _ []*model.PostScore) []*dto.FeedItemDTO {
	postIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}
	scoreByPost := make(map[uint64]float64, len(postIDs))
	scores, err := s.scoreRepo.ListScoresByPostIDs(ctx, postIDs)
	if err != nil {
		log.Warn("failed to attach scores to feed", "err", err)
	} else {
		for _, sc := range scores {
			scoreByPost[sc.PostID] = sc.Score
		}
	}

	items := make([]*dto.FeedItemDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, &dto.FeedItemDTO{
			PostID:    p.ID,
			UserID:    p.UserID,
			Title:     p.Title,
			Score:     scoreByPost[p.ID],
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}

func (s *scoreServiceImpl) cacheScore(ctx context.Context, score *model.PostScore) {
	payload, err := json.Marshal(toScoreDTO(score))
	if err != nil {
		log.Warn("failed to marshal score cache", "post_id", score.PostID, "err", err)
		return
	}
	key := consts.PostScoreKey + strconv.FormatUint(score.PostID, 10)
	if err = redis.SetWithExpiration(ctx, key, payload, ScoreCacheTTL); err != nil {
		log.Warn("failed to write score cache", "post_id", score.PostID, "err", err)
	}
}

// EvictScore 内容删除后清掉缓存条目，避免 TTL 内继续吐已删帖的分数。
// 失败向上返回，由消费端批次重试
func (s *scoreServiceImpl) EvictScore(ctx context.Context, postID uint64) error {
	key := consts.PostScoreKey + strconv.FormatUint(postID, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.Warn("failed to evict score cache", "post_id", postID, "err", err)
		return err
	}
	return nil
}

func (s *scoreServiceImpl) getCachedScore(ctx context.Context, postID uint64) (*dto.ScoreDTO, error) {
	key := consts.PostScoreKey + strconv.FormatUint(postID, 10)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		log.Warn("failed to read score cache", "post_id", postID, "err", err)
		return nil, nil
	}
	if value == "" {
		return nil, nil
	}
	var scoreDTO dto.ScoreDTO
	if err = json.Unmarshal([]byte(value), &scoreDTO); err != nil {
		log.Warn("broken score cache entry", "post_id", postID, "err", err)
		return nil, nil
	}
	return &scoreDTO, nil
}

func toScoreDTO(score *model.PostScore) *dto.ScoreDTO {
	var scoreDTO dto.ScoreDTO
	_ = copier.Copy(&scoreDTO, score)
	scoreDTO.ComputedAt = score.ComputedAt.Format(time.RFC3339)
	return &scoreDTO
}
