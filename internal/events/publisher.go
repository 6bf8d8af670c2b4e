package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"stocksync/internal/config"
	"stocksync/internal/logger"
)

// SyncRequest asks the worker to run a sync. An empty Platform means every
// configured target.
type SyncRequest struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	RequestedAt time.Time `json:"requested_at"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(cfg *config.Config, logger *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers),
		Topic:    cfg.SyncTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, request SyncRequest) error {
	value, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal sync request: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(request.ID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish sync request: %w", err)
	}

	p.logger.Debug("Published sync request %s (platform=%q)", request.ID, request.Platform)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
