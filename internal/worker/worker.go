package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"

	"stocksync/internal/config"
	"stocksync/internal/events"
	"stocksync/internal/logger"
	"stocksync/internal/syncer"
)

type Worker struct {
	config  *config.Config
	logger  *logger.Logger
	reader  *kafka.Reader
	service *syncer.Service
}

func New(cfg *config.Config, service *syncer.Service, logger *logger.Logger) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        "stocksync-worker",
		Topic:          cfg.SyncTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:  cfg,
		logger:  logger,
		reader:  reader,
		service: service,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for sync requests...")

	for {
		message, err := w.reader.ReadMessage(context.Background())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		var request events.SyncRequest
		if err := json.Unmarshal(message.Value, &request); err != nil {
			w.logger.Error("Failed to parse sync request: %v", err)
			continue
		}

		w.logger.Info("Processing sync request %s (platform=%q)", request.ID, request.Platform)

		if err := w.service.Run(request.Platform); err != nil {
			w.logger.Error("Sync request %s failed: %v", request.ID, err)
			continue
		}

		w.logger.Debug("Sync request %s processed", request.ID)
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
