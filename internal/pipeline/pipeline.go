package pipeline

import (
	"fmt"

	"stocksync/internal/logger"
	"stocksync/internal/models"
)

// Target is one marketplace campaign the pipeline can sync against. Adapters
// supply the endpoint calls, payload shapes and per-endpoint batch limits.
type Target interface {
	Name() string
	Campaign() string
	FetchOfferIDs() ([]string, error)
	PushStocks(batch []models.StockEntry) error
	PushPrices(batch []models.PriceEntry) error
	StockBatchSize() int
	PriceBatchSize() int
}

// Report summarizes one completed target run.
type Report struct {
	OffersTotal  int
	StocksPushed int
	PricesPushed int
}

type Pipeline struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Run executes the full sync sequence for one target: fetch the catalog,
// reconcile stocks against the feed, push stocks in batches, then build and
// push prices. There are no retries; the first failed call aborts the run and
// batches already pushed stay applied.
func (p *Pipeline) Run(target Target, records []models.InventoryRecord) (*Report, error) {
	p.logger.Info("[%s/%s] Fetching catalog...", target.Name(), target.Campaign())

	offerIDs, err := target.FetchOfferIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offer ids: %w", err)
	}
	p.logger.Info("[%s/%s] Catalog has %d offers", target.Name(), target.Campaign(), len(offerIDs))

	stocks, err := ReconcileStocks(records, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile stocks: %w", err)
	}
	if err := UploadInBatches(stocks, target.StockBatchSize(), target.PushStocks); err != nil {
		return nil, fmt.Errorf("failed to push stocks: %w", err)
	}
	p.logger.Info("[%s/%s] Pushed %d stock entries", target.Name(), target.Campaign(), len(stocks))

	prices, err := BuildPrices(records, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build prices: %w", err)
	}
	if err := UploadInBatches(prices, target.PriceBatchSize(), target.PushPrices); err != nil {
		return nil, fmt.Errorf("failed to push prices: %w", err)
	}
	p.logger.Info("[%s/%s] Pushed %d price entries", target.Name(), target.Campaign(), len(prices))

	return &Report{
		OffersTotal:  len(offerIDs),
		StocksPushed: len(stocks),
		PricesPushed: len(prices),
	}, nil
}
