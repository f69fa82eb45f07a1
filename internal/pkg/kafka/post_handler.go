package kafka

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"Pulse/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// PostHandler 同步内容主表的变更，并在新帖落地时登记话题提及
type PostHandler struct {
	postRepo    repository.PostRepo
	hashtagRepo repository.HashtagRepo
	scoreSvc    service.ScoreService
}

func NewPostHandler(postRepo repository.PostRepo, hashtagRepo repository.HashtagRepo, scoreSvc service.ScoreService) *PostHandler {
	return &PostHandler{
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
		scoreSvc:    scoreSvc,
	}
}

func (s *PostHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer setup")
	return nil
}

func (s *PostHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer cleanup")
	return nil
}

func (s *PostHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-post consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-post process batch error", "err", err)
		return err
	}
	log.Info("topic-post consume claim end")
	return nil
}

func (s *PostHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "posts")
	if err != nil || canalMsg == nil {
		return nil
	}

	for _, row := range canalMsg.Data {
		post := toPostModel(row)

		if canalMsg.Type == DELETE || post.IsDeleted {
			if err = s.postRepo.MarkDeleted(ctx, post.ID); err != nil {
				return errors.Wrapf(err, "mark post %d deleted", post.ID)
			}
			if err = s.scoreSvc.EvictScore(ctx, post.ID); err != nil {
				return errors.Wrapf(err, "evict score cache of post %d", post.ID)
			}
			continue
		}

		if err = s.postRepo.SaveOrUpdatePost(ctx, post); err != nil {
			return errors.Wrapf(err, "upsert post %d", post.ID)
		}

		// 只有新帖登记提及，编辑不重复计热度
		if canalMsg.Type == INSERT {
			if err = s.recordMentions(ctx, post); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *PostHandler) recordMentions(ctx context.Context, post *model.Post) error {
	for _, tagName := range util.ExtractTags(post.Content) {
		tag, err := s.hashtagRepo.GetOrCreate(ctx, tagName, post.CreatedAt)
		if err != nil {
			return errors.Wrapf(err, "get or create hashtag %q", tagName)
		}
		if err = s.hashtagRepo.RecordMention(ctx, tag.ID, post.ID, post.CreatedAt); err != nil {
			return errors.Wrapf(err, "record mention of %q", tagName)
		}
	}
	return nil
}

func toPostModel(row map[string]interface{}) *model.Post {
	return &model.Post{
		ID:             StrToUint64(row["id"]),
		UserID:         StrToUint64(row["user_id"]),
		Title:          StrToString(row["title"]),
		Content:        StrToString(row["content"]),
		MediaCount:     StrToInt(row["media_count"]),
		LikesCount:     StrToInt(row["likes_count"]),
		CommentsCount:  StrToInt(row["comments_count"]),
		BookmarksCount: StrToInt(row["bookmarks_count"]),
		ViewsCount:     StrToInt(row["views_count"]),
		IsAnonymous:    StrToBool(row["is_anonymous"]),
		IsDeleted:      StrToBool(row["is_deleted"]),
		CreatedAt:      StrToDateTime(row["created_at"]),
		UpdatedAt:      StrToDateTime(row["updated_at"]),
	}
}
