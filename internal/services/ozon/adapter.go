package ozon

import (
	"strconv"

	"stocksync/internal/config"
	"stocksync/internal/logger"
	"stocksync/internal/models"
)

// Endpoint batch limits documented by the seller API.
const (
	stockBatchSize = 100
	priceBatchSize = 900

	currencyCode      = "RUB"
	autoActionUnknown = "UNKNOWN"
)

// Adapter exposes the Ozon seller API as a sync pipeline target.
type Adapter struct {
	client   *Client
	clientID string
	logger   *logger.Logger
}

func NewAdapter(cfg *config.Config, logger *logger.Logger) *Adapter {
	return &Adapter{
		client:   NewClient(cfg.OzonBaseURL, cfg.OzonClientID, cfg.OzonAPIKey, logger),
		clientID: cfg.OzonClientID,
		logger:   logger,
	}
}

func (a *Adapter) Name() string     { return "ozon" }
func (a *Adapter) Campaign() string { return a.clientID }

func (a *Adapter) StockBatchSize() int { return stockBatchSize }
func (a *Adapter) PriceBatchSize() int { return priceBatchSize }

// FetchOfferIDs pages through the catalog until the reported total is
// collected. An empty page also terminates, so an inconsistent total cannot
// loop forever.
func (a *Adapter) FetchOfferIDs() ([]string, error) {
	var offerIDs []string
	lastID := ""
	for {
		result, err := a.client.ProductList(lastID)
		if err != nil {
			return nil, err
		}
		if len(result.Items) == 0 {
			break
		}
		for _, item := range result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}
		lastID = result.LastID
		if len(offerIDs) >= result.Total {
			break
		}
	}
	return offerIDs, nil
}

func (a *Adapter) PushStocks(batch []models.StockEntry) error {
	stocks := make([]StockUpdate, len(batch))
	for i, entry := range batch {
		stocks[i] = StockUpdate{OfferID: entry.OfferID, Stock: entry.Count}
	}
	return a.client.UpdateStocks(stocks)
}

func (a *Adapter) PushPrices(batch []models.PriceEntry) error {
	prices := make([]PriceUpdate, len(batch))
	for i, entry := range batch {
		prices[i] = PriceUpdate{
			AutoActionEnabled: autoActionUnknown,
			CurrencyCode:      currencyCode,
			OfferID:           entry.OfferID,
			OldPrice:          "0",
			Price:             strconv.Itoa(entry.Amount),
		}
	}
	return a.client.UpdatePrices(prices)
}
