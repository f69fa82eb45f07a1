package kafka

import (
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ProfileHandler 同步声誉服务的用户画像变更
type ProfileHandler struct {
	profileRepo repository.UserProfileRepo
}

func NewProfileHandler(profileRepo repository.UserProfileRepo) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

func (s *ProfileHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("profile consumer setup")
	return nil
}

func (s *ProfileHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("profile consumer cleanup")
	return nil
}

func (s *ProfileHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-profile consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-profile process batch error", "err", err)
		return err
	}
	log.Info("topic-profile consume claim end")
	return nil
}

func (s *ProfileHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "user_profiles")
	if err != nil || canalMsg == nil {
		return nil
	}
	if canalMsg.Type == DELETE {
		return nil
	}

	for _, row := range canalMsg.Data {
		profile := &model.UserProfile{
			UserID:     StrToUint64(row["user_id"]),
			Specialty:  StrToString(row["specialty"]),
			IsVerified: StrToBool(row["is_verified"]),
			IsPremium:  StrToBool(row["is_premium"]),
			Level:      StrToInt(row["level"]),
			UpdatedAt:  StrToDateTime(row["updated_at"]),
		}
		if profile.UserID == 0 {
			continue
		}
		if err = s.profileRepo.SaveOrUpdateProfile(ctx, profile); err != nil {
			return errors.Wrapf(err, "upsert profile of user %d", profile.UserID)
		}
	}
	return nil
}
