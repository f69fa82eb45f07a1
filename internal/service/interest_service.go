package service

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/scoring"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
)

// 各动作对兴趣权重的增量，权重越高表示意图越强
var actionIncrements = map[string]float64{
	consts.ActionView:     0.1,
	consts.ActionLike:     1.0,
	consts.ActionComment:  2.0,
	consts.ActionBookmark: 3.0,
}

type InterestService interface {
	Reinforce(ctx context.Context, userID uint64, tags []string, action string) error
	DecayAll(ctx context.Context) (int64, error)
}

type interestServiceImpl struct {
	params       scoring.Params
	interestRepo repository.UserInterestRepo
}

func NewInterestService(params scoring.Params, interestRepo repository.UserInterestRepo) InterestService {
	return &interestServiceImpl{
		params:       params,
		interestRepo: interestRepo,
	}
}

// Reinforce 根据一次互动给用户对内容标签的亲和度加权。
// 未知动作静默忽略，互动日志里偶尔有新类型
func (s *interestServiceImpl) Reinforce(ctx context.Context, userID uint64, tags []string, action string) error {
	increment, ok := actionIncrements[action]
	if !ok {
		log.Debug("skip unknown interaction action", "action", action)
		return nil
	}
	if userID == 0 || len(tags) == 0 {
		return nil
	}

	for _, tag := range tags {
		if err := s.interestRepo.ReinforceInterest(ctx, userID, tag, increment); err != nil {
			return err
		}
	}
	return nil
}

// DecayAll 全量兴趣按日衰减，跌破阈值的直接删除。
// 长期不互动的用户画像随之自然清空
func (s *interestServiceImpl) DecayAll(ctx context.Context) (int64, error) {
	decayed, pruned, err := s.interestRepo.DecayAll(ctx, s.params.InterestDecayFactor, s.params.InterestPruneThreshold)
	if err != nil {
		return 0, err
	}
	log.Info("interest decay finished", "decayed", decayed, "pruned", pruned)
	return decayed, nil
}
