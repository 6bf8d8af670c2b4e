package ozon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/services/marketplace"
)

const (
	productListPath  = "/v2/product/list"
	importStocksPath = "/v1/product/import/stocks"
	importPricesPath = "/v1/product/import/prices"

	pageLimit     = 1000
	visibilityAll = "ALL"
)

// Client talks to the Ozon seller API.
type Client struct {
	baseURL    string
	clientID   string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, clientID, apiKey string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ProductList fetches one page of the seller's catalog. lastID is the cursor
// from the previous page, empty for the first one.
func (c *Client) ProductList(lastID string) (*ProductListResult, error) {
	payload := ProductListRequest{
		Filter: ProductFilter{Visibility: visibilityAll},
		LastID: lastID,
		Limit:  pageLimit,
	}

	var resp ProductListResponse
	if err := c.post(productListPath, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// UpdateStocks submits one batch of stock counts.
func (c *Client) UpdateStocks(stocks []StockUpdate) error {
	var resp UpdateResponse
	if err := c.post(importStocksPath, StocksRequest{Stocks: stocks}, &resp); err != nil {
		return err
	}
	for _, result := range resp.Result {
		if !result.Updated {
			c.logger.Warn("Stock for offer %s was not updated: %+v", result.OfferID, result.Errors)
		}
	}
	return nil
}

// UpdatePrices submits one batch of prices.
func (c *Client) UpdatePrices(prices []PriceUpdate) error {
	var resp UpdateResponse
	return c.post(importPricesPath, PricesRequest{Prices: prices}, &resp)
}

func (c *Client) post(path string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &marketplace.StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
