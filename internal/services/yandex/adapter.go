package yandex

import (
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/models"
)

// Endpoint batch limits documented by the partner API.
const (
	stockBatchSize = 2000
	priceBatchSize = 500

	currencyID   = "RUR"
	stockTypeFit = "FIT"
)

// Adapter exposes one Yandex.Market campaign (FBS or DBS) as a sync pipeline
// target. Each campaign ships from its own warehouse.
type Adapter struct {
	client      *Client
	campaignID  string
	warehouseID string
	logger      *logger.Logger
}

func NewAdapter(client *Client, campaignID, warehouseID string, logger *logger.Logger) *Adapter {
	return &Adapter{
		client:      client,
		campaignID:  campaignID,
		warehouseID: warehouseID,
		logger:      logger,
	}
}

func (a *Adapter) Name() string     { return "yandex" }
func (a *Adapter) Campaign() string { return a.campaignID }

func (a *Adapter) StockBatchSize() int { return stockBatchSize }
func (a *Adapter) PriceBatchSize() int { return priceBatchSize }

// FetchOfferIDs pages through the campaign's offer mappings until the API
// stops returning a next-page token.
func (a *Adapter) FetchOfferIDs() ([]string, error) {
	var offerIDs []string
	pageToken := ""
	for {
		result, err := a.client.ProductList(a.campaignID, pageToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range result.OfferMappingEntries {
			offerIDs = append(offerIDs, entry.Offer.ShopSKU)
		}
		pageToken = result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return offerIDs, nil
}

func (a *Adapter) PushStocks(batch []models.StockEntry) error {
	updatedAt := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	skus := make([]SKUStocks, len(batch))
	for i, entry := range batch {
		skus[i] = SKUStocks{
			SKU:         entry.OfferID,
			WarehouseID: a.warehouseID,
			Items: []StockItem{
				{
					Count:     entry.Count,
					Type:      stockTypeFit,
					UpdatedAt: updatedAt,
				},
			},
		}
	}
	return a.client.UpdateStocks(a.campaignID, skus)
}

func (a *Adapter) PushPrices(batch []models.PriceEntry) error {
	offers := make([]OfferPrice, len(batch))
	for i, entry := range batch {
		offers[i] = OfferPrice{
			ID: entry.OfferID,
			Price: Price{
				Value:      entry.Amount,
				CurrencyID: currencyID,
			},
		}
	}
	return a.client.UpdatePrices(a.campaignID, offers)
}
