package kafka

import (
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// FollowHandler 同步社交图的关注与取关
type FollowHandler struct {
	followRepo repository.UserFollowRepo
}

func NewFollowHandler(followRepo repository.UserFollowRepo) *FollowHandler {
	return &FollowHandler{followRepo: followRepo}
}

func (s *FollowHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("follow consumer setup")
	return nil
}

func (s *FollowHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("follow consumer cleanup")
	return nil
}

func (s *FollowHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-follow consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-follow process batch error", "err", err)
		return err
	}
	log.Info("topic-follow consume claim end")
	return nil
}

func (s *FollowHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "user_follows")
	if err != nil || canalMsg == nil {
		return nil
	}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		if followerID == 0 || followingID == 0 {
			continue
		}

		switch canalMsg.Type {
		case INSERT:
			follow := &model.UserFollow{
				FollowerID:  followerID,
				FollowingID: followingID,
				CreatedAt:   StrToDateTime(row["created_at"]),
			}
			if err = s.followRepo.SaveFollow(ctx, follow); err != nil {
				return errors.Wrapf(err, "save follow %d -> %d", followerID, followingID)
			}
		case DELETE:
			if err = s.followRepo.DeleteFollow(ctx, followerID, followingID); err != nil {
				return errors.Wrapf(err, "delete follow %d -> %d", followerID, followingID)
			}
		}
	}
	return nil
}
