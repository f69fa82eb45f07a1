package kafka

import (
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"Pulse/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// InteractionHandler 消费互动日志，驱动兴趣画像的正向增强。
// 互动行数据只有新增，UPDATE/DELETE 一律忽略
type InteractionHandler struct {
	postRepo    repository.PostRepo
	interestSvc service.InterestService
}

func NewInteractionHandler(postRepo repository.PostRepo, interestSvc service.InterestService) *InteractionHandler {
	return &InteractionHandler{
		postRepo:    postRepo,
		interestSvc: interestSvc,
	}
}

func (s *InteractionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer setup")
	return nil
}

func (s *InteractionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer cleanup")
	return nil
}

func (s *InteractionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-interaction consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-interaction process batch error", "err", err)
		return err
	}
	log.Info("topic-interaction consume claim end")
	return nil
}

func (s *InteractionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "post_interactions")
	if err != nil || canalMsg == nil {
		return nil
	}
	if canalMsg.Type != INSERT {
		return nil
	}

	for _, row := range canalMsg.Data {
		userID := StrToUint64(row["user_id"])
		postID := StrToUint64(row["post_id"])
		action := StrToString(row["action"])
		if userID == 0 || postID == 0 {
			continue
		}

		post, err := s.postRepo.GetPostByID(ctx, postID)
		if err != nil {
			return errors.Wrapf(err, "load post %d for interaction", postID)
		}
		if post == nil {
			// 帖子事件可能还没同步到，等重试
			return errors.Errorf("post %d not synced yet", postID)
		}

		tags := util.ExtractTags(post.Content)
		if err = s.interestSvc.Reinforce(ctx, userID, tags, action); err != nil {
			return errors.Wrapf(err, "reinforce interests of user %d", userID)
		}
	}
	return nil
}
