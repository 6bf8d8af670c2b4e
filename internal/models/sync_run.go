package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyncRun struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Platform     string    `json:"platform" gorm:"not null"`
	Campaign     string    `json:"campaign"`
	Status       string    `json:"status" gorm:"default:SUCCEEDED"`
	OffersTotal  int       `json:"offers_total"`
	StocksPushed int       `json:"stocks_pushed"`
	PricesPushed int       `json:"prices_pushed"`
	Error        *string   `json:"error"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

type SyncRunStatus string

const (
	RunSucceeded SyncRunStatus = "SUCCEEDED"
	RunFailed    SyncRunStatus = "FAILED"
)

func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
