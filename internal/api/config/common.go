package config

import "Pulse/internal/pkg/scoring"

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Alert    AlertConfig    `mapstructure:"alert"`
	Ranking  RankingConfig  `mapstructure:"ranking"`

	Kafka                    KafkaConfig          `mapstructure:"kafka"`
	KafkaPostConsumer        KafkaConsumerBinding `mapstructure:"kafka_post_consumer"`
	KafkaInteractionConsumer KafkaConsumerBinding `mapstructure:"kafka_interaction_consumer"`
	KafkaProfileConsumer     KafkaConsumerBinding `mapstructure:"kafka_profile_consumer"`
	KafkaFollowConsumer      KafkaConsumerBinding `mapstructure:"kafka_follow_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig 任务审计日志存储
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// AlertConfig 任务失败告警 Webhook，URL 为空则关闭告警
type AlertConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Timeout    int    `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaConsumerBinding 单个消费组绑定
type KafkaConsumerBinding struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// RankingConfig 排序参数，零值字段回落到默认值
type RankingConfig struct {
	HalfLifeHours       float64 `mapstructure:"half_life_hours"`
	MinDecay            float64 `mapstructure:"min_decay"`
	InterestDecayFactor float64 `mapstructure:"interest_decay_factor"`
	InterestPrune       float64 `mapstructure:"interest_prune_threshold"`
}

// ToParams 合并默认参数与配置覆盖
func (c RankingConfig) ToParams() scoring.Params {
	p := scoring.DefaultParams()
	if c.HalfLifeHours != 0 {
		p.HalfLifeHours = c.HalfLifeHours
	}
	if c.MinDecay != 0 {
		p.MinDecay = c.MinDecay
	}
	if c.InterestDecayFactor != 0 {
		p.InterestDecayFactor = c.InterestDecayFactor
	}
	if c.InterestPrune != 0 {
		p.InterestPruneThreshold = c.InterestPrune
	}
	return p
}
