package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/pkg/scoring"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

const (
	// TrendingWindow 热度计算只看最近 24 小时的提及
	TrendingWindow = 24 * time.Hour
	// TrendingSize 热榜长度
	TrendingSize = 20
	// TrendingCacheTTL 缓存时效，略长于重算周期
	TrendingCacheTTL = 2 * time.Hour
)

type TrendingService interface {
	GetTrending(ctx context.Context, limit int) (*dto.TrendingDTO, error)
	Recompute(ctx context.Context, now time.Time) (int64, error)
}

type trendingServiceImpl struct {
	params      scoring.Params
	hashtagRepo repository.HashtagRepo
}

func NewTrendingService(params scoring.Params, hashtagRepo repository.HashtagRepo) TrendingService {
	return &trendingServiceImpl{
		params:      params,
		hashtagRepo: hashtagRepo,
	}
}

// GetTrending 读缓存中的热榜。缓存缺失返回空榜而不是报错，
// 下一轮重算会补上
func (t *trendingServiceImpl) GetTrending(ctx context.Context, limit int) (*dto.TrendingDTO, error) {
	if limit <= 0 || limit > TrendingSize {
		limit = TrendingSize
	}

	value, err := redis.GetValue(ctx, consts.TrendingTopicsKey)
	if err != nil {
		log.Error("failed to read trending cache", "err", err)
		return nil, UnExpectedError
	}
	if value == "" {
		return &dto.TrendingDTO{Topics: []*dto.TrendingTopicDTO{}}, nil
	}

	var trending dto.TrendingDTO
	if err = json.Unmarshal([]byte(value), &trending); err != nil {
		log.Error("broken trending cache entry", "err", err)
		return nil, UnExpectedError
	}
	if len(trending.Topics) > limit {
		trending.Topics = trending.Topics[:limit]
	}
	return &trending, nil
}

// Recompute 重算热榜。每个话题的热度是窗口内每次提及按提及时间
// 衰减后的加权和：刚被提到的贡献接近 1，越早的贡献越小。
// 热度同分时按标签名升序，保证榜单稳定
func (t *trendingServiceImpl) Recompute(ctx context.Context, now time.Time) (int64, error) {
	since := now.Add(-TrendingWindow)
	mentions, err := t.hashtagRepo.ListMentionsSince(ctx, since)
	if err != nil {
		return 0, err
	}

	heat := make(map[uint64]float64)
	count := make(map[uint64]int64)
	for _, m := range mentions {
		heat[m.HashtagID] += t.params.TimeDecay(now.Sub(m.MentionedAt))
		count[m.HashtagID]++
	}

	ids := make([]uint64, 0, len(heat))
	for id := range heat {
		ids = append(ids, id)
	}
	tags, err := t.hashtagRepo.GetHashtagsByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	topics := rankTopics(tags, heat, count)

	payload, err := json.Marshal(&dto.TrendingDTO{
		ComputedAt: now.Format(time.RFC3339),
		Topics:     topics,
	})
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, consts.TrendingTopicsKey, payload, TrendingCacheTTL); err != nil {
		return 0, err
	}
	return int64(len(topics)), nil
}

// rankTopics 热度倒序排榜，同分按标签名升序，截断到榜单长度
func rankTopics(tags []*model.Hashtag, heat map[uint64]float64, count map[uint64]int64) []*dto.TrendingTopicDTO {
	topics := make([]*dto.TrendingTopicDTO, 0, len(tags))
	for _, tag := range tags {
		topics = append(topics, &dto.TrendingTopicDTO{
			Tag:          tag.Name,
			Heat:         heat[tag.ID],
			MentionCount: count[tag.ID],
		})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Heat != topics[j].Heat {
			return topics[i].Heat > topics[j].Heat
		}
		return topics[i].Tag < topics[j].Tag
	})
	if len(topics) > TrendingSize {
		topics = topics[:TrendingSize]
	}
	return topics
}
