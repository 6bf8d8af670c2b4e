package yandex

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

const pageLimit = 200

// Client talks to the Yandex.Market partner API. One client serves every
// campaign; the campaign ID is part of each request path.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, token string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ProductList fetches one page of the campaign's offer mappings. pageToken is
// the cursor from the previous page, empty for the first one.
func (c *Client) ProductList(campaignID, pageToken string) (*ProductListResult, error) {
	url := fmt.Sprintf("%s/campaigns/%s/offer-mapping-entries", c.baseURL, campaignID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	q := req.URL.Query()
	q.Set("limit", fmt.Sprintf("%d", pageLimit))
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	req.URL.RawQuery = q.Encode()

	var resp ProductListResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// UpdateStocks submits one batch of per-warehouse stock counts.
func (c *Client) UpdateStocks(campaignID string, skus []SKUStocks) error {
	url := fmt.Sprintf("%s/campaigns/%s/offers/stocks", c.baseURL, campaignID)
	return c.send(http.MethodPut, url, StocksRequest{SKUs: skus})
}

// UpdatePrices submits one batch of offer prices.
func (c *Client) UpdatePrices(campaignID string, offers []OfferPrice) error {
	url := fmt.Sprintf("%s/campaigns/%s/offer-prices/updates", c.baseURL, campaignID)
	return c.send(http.MethodPost, url, PricesRequest{Offers: offers})
}

func (c *Client) send(method, url string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	var resp UpdateResponse
	return c.do(req, &resp)
}

func (c *Client) do(req *http.Request, out interface{}) error {
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

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
