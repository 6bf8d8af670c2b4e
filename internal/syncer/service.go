package syncer

import (
	"errors"
	"net"
	"time"

	"stocksync/internal/config"
	"stocksync/internal/logger"
	"stocksync/internal/models"
	"stocksync/internal/pipeline"
	"stocksync/internal/remnants"
	"stocksync/internal/services/ozon"
	"stocksync/internal/services/yandex"
)

// Store persists sync run history. A nil Store disables persistence.
type Store interface {
	CreateRun(run *models.SyncRun) error
}

// Service drives the full sync: download the remnants feed once, then run the
// pipeline against every configured marketplace target.
type Service struct {
	pipeline *pipeline.Pipeline
	feed     *remnants.Fetcher
	targets  []pipeline.Target
	store    Store
	logger   *logger.Logger
}

func New(cfg *config.Config, store Store, logger *logger.Logger) *Service {
	return &Service{
		pipeline: pipeline.New(logger),
		feed:     remnants.NewFetcher(cfg.RemnantsURL, cfg.RemnantsHeaderRow, logger),
		targets:  Targets(cfg, logger),
		store:    store,
		logger:   logger,
	}
}

// Targets builds every marketplace target the configuration enables: the Ozon
// shop plus the two Yandex.Market campaigns (FBS and DBS). Targets without
// credentials are left out.
func Targets(cfg *config.Config, logger *logger.Logger) []pipeline.Target {
	var targets []pipeline.Target

	if cfg.OzonClientID != "" {
		targets = append(targets, ozon.NewAdapter(cfg, logger))
	}

	if cfg.MarketToken != "" {
		client := yandex.NewClient(cfg.MarketBaseURL, cfg.MarketToken, logger)
		if cfg.FBSCampaignID != "" {
			targets = append(targets, yandex.NewAdapter(client, cfg.FBSCampaignID, cfg.FBSWarehouseID, logger))
		}
		if cfg.DBSCampaignID != "" {
			targets = append(targets, yandex.NewAdapter(client, cfg.DBSCampaignID, cfg.DBSWarehouseID, logger))
		}
	}

	return targets
}

// Run downloads the feed and syncs every target whose platform matches the
// filter (empty filter matches all). Target failures are reported and do not
// stop the remaining targets; batches already pushed stay applied.
func (s *Service) Run(platform string) error {
	records, err := s.feed.Fetch()
	if err != nil {
		return err
	}

	for _, target := range s.targets {
		if platform != "" && target.Name() != platform {
			continue
		}
		s.runTarget(target, records)
	}
	return nil
}

func (s *Service) runTarget(target pipeline.Target, records []models.InventoryRecord) {
	startedAt := time.Now().UTC()
	report, err := s.pipeline.Run(target, records)

	run := &models.SyncRun{
		Platform:   target.Name(),
		Campaign:   target.Campaign(),
		Status:     string(models.RunSucceeded),
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	}

	if err != nil {
		s.logger.Error("[%s/%s] %s: %v", target.Name(), target.Campaign(), describeFailure(err), err)
		message := err.Error()
		run.Status = string(models.RunFailed)
		run.Error = &message
	} else {
		run.OffersTotal = report.OffersTotal
		run.StocksPushed = report.StocksPushed
		run.PricesPushed = report.PricesPushed
	}

	if s.store != nil {
		if storeErr := s.store.CreateRun(run); storeErr != nil {
			s.logger.Error("Failed to record sync run: %v", storeErr)
		}
	}
}

// describeFailure separates timeouts and connection problems from everything
// else, mirroring how operators triage these runs.
func describeFailure(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Request timed out"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "Connection error"
	}
	return "Sync failed"
}
