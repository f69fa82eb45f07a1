package service

import (
	"Pulse/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// AlertSender 任务失败告警出口
type AlertSender interface {
	JobFailed(ctx context.Context, jobName string, runErr error)
}

type webhookAlertImpl struct {
	client *resty.Client
	url    string
}

// NewAlertSender Webhook 地址为空时返回空实现，告警关闭
func NewAlertSender(cfg config.AlertConfig) AlertSender {
	if cfg.WebhookURL == "" {
		return &noopAlertImpl{}
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2)

	return &webhookAlertImpl{client: client, url: cfg.WebhookURL}
}

// JobFailed 推送告警。告警本身失败只记日志，绝不反过来影响任务流程
func (a *webhookAlertImpl) JobFailed(ctx context.Context, jobName string, runErr error) {
	payload := map[string]string{
		"event":    "job_failed",
		"job_name": jobName,
		"error":    runErr.Error(),
		"time":     time.Now().Format(time.RFC3339),
		"text":     fmt.Sprintf("ranking job %s failed: %v", jobName, runErr),
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(a.url)
	if err != nil {
		log.Error("failed to deliver job alert", "job_name", jobName, "err", err)
		return
	}
	if resp.IsError() {
		log.Error("job alert rejected by webhook", "job_name", jobName, "status", resp.StatusCode())
	}
}

type noopAlertImpl struct{}

func (a *noopAlertImpl) JobFailed(context.Context, string, error) {}
