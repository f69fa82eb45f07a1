package kafka

import (
	"Pulse/internal/api/config"
	"Pulse/internal/repository"
	"Pulse/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	postConsumer sarama.ConsumerGroup
	postHandler  sarama.ConsumerGroupHandler

	interactionConsumer sarama.ConsumerGroup
	interactionHandler  sarama.ConsumerGroupHandler

	profileConsumer sarama.ConsumerGroup
	profileHandler  sarama.ConsumerGroupHandler

	followConsumer sarama.ConsumerGroup
	followHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	postRepo repository.PostRepo,
	hashtagRepo repository.HashtagRepo,
	profileRepo repository.UserProfileRepo,
	followRepo repository.UserFollowRepo,
	interestSvc service.InterestService,
	scoreSvc service.ScoreService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	postConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaPostConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	interactionConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaInteractionConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	profileConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaProfileConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	followConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollowConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		postConsumer:        postConsumer,
		postHandler:         NewPostHandler(postRepo, hashtagRepo, scoreSvc),
		interactionConsumer: interactionConsumer,
		interactionHandler:  NewInteractionHandler(postRepo, interestSvc),
		profileConsumer:     profileConsumer,
		profileHandler:      NewProfileHandler(profileRepo),
		followConsumer:      followConsumer,
		followHandler:       NewFollowHandler(followRepo),
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	run := func(consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string, name string) {
		log.Info(name+" consumer started", "topic", topic)
		for {
			if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
				log.Error("Error from consumer", "consumer", name, "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}

	go run(m.postConsumer, m.postHandler, cfg.KafkaPostConsumer.Topic, "post")
	go run(m.interactionConsumer, m.interactionHandler, cfg.KafkaInteractionConsumer.Topic, "interaction")
	go run(m.profileConsumer, m.profileHandler, cfg.KafkaProfileConsumer.Topic, "profile")
	go run(m.followConsumer, m.followHandler, cfg.KafkaFollowConsumer.Topic, "follow")

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	for name, consumer := range map[string]sarama.ConsumerGroup{
		"post":        m.postConsumer,
		"interaction": m.interactionConsumer,
		"profile":     m.profileConsumer,
		"follow":      m.followConsumer,
	} {
		if err := consumer.Close(); err != nil {
			log.Error("Failed to close consumer", "consumer", name, "err", err)
		}
	}
	return nil
}
