package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stocksync/internal/events"
	"stocksync/internal/logger"
)

type SyncHandler struct {
	publisher *events.Publisher
	logger    *logger.Logger
}

func NewSyncHandler(publisher *events.Publisher, logger *logger.Logger) *SyncHandler {
	return &SyncHandler{
		publisher: publisher,
		logger:    logger,
	}
}

type triggerRequest struct {
	Platform string `json:"platform"`
}

// Trigger publishes a sync request and returns immediately; the worker picks
// it up from Kafka.
func (h *SyncHandler) Trigger(c *gin.Context) {
	var body triggerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	if body.Platform != "" && body.Platform != "ozon" && body.Platform != "yandex" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform: " + body.Platform})
		return
	}

	request := events.SyncRequest{
		ID:          uuid.New().String(),
		Platform:    body.Platform,
		RequestedAt: time.Now().UTC(),
	}

	if err := h.publisher.Publish(c.Request.Context(), request); err != nil {
		h.logger.Error("Failed to publish sync request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue sync request"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"data": request})
}
