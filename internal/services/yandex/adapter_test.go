package yandex

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/models"
	"stocksync/internal/services/marketplace"
)

func newTestAdapter(baseURL string) *Adapter {
	client := NewClient(baseURL, "token123", logger.New("error"))
	return NewAdapter(client, "campaign123", "warehouse123", logger.New("error"))
}

func TestFetchOfferIDsPaginates(t *testing.T) {
	pages := map[string]ProductListResult{
		"": {
			OfferMappingEntries: []OfferMappingEntry{
				{Offer: Offer{ShopSKU: "123"}},
				{Offer: Offer{ShopSKU: "456"}},
			},
			Paging: Paging{NextPageToken: "page-2"},
		},
		"page-2": {
			OfferMappingEntries: []OfferMappingEntry{
				{Offer: Offer{ShopSKU: "789"}},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaigns/campaign123/offer-mapping-entries" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token123" {
			t.Error("bearer token missing")
		}

		token := r.URL.Query().Get("page_token")
		json.NewEncoder(w).Encode(ProductListResponse{Result: pages[token]})
	}))
	defer server.Close()

	offerIDs, err := newTestAdapter(server.URL).FetchOfferIDs()
	if err != nil {
		t.Fatalf("FetchOfferIDs returned error: %v", err)
	}

	want := []string{"123", "456", "789"}
	if !reflect.DeepEqual(offerIDs, want) {
		t.Errorf("FetchOfferIDs = %v; want %v", offerIDs, want)
	}
}

func TestFetchOfferIDsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).FetchOfferIDs()

	var statusErr *marketplace.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("Code = %d; want %d", statusErr.Code, http.StatusUnauthorized)
	}
}

func TestPushStocksPayload(t *testing.T) {
	var got StocksRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s; want PUT", r.Method)
		}
		if r.URL.Path != "/campaigns/campaign123/offers/stocks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(UpdateResponse{Status: "OK"})
	}))
	defer server.Close()

	batch := []models.StockEntry{{OfferID: "123", Count: 100}}
	if err := newTestAdapter(server.URL).PushStocks(batch); err != nil {
		t.Fatalf("PushStocks returned error: %v", err)
	}

	if len(got.SKUs) != 1 {
		t.Fatalf("expected 1 sku, got %d", len(got.SKUs))
	}
	sku := got.SKUs[0]
	if sku.SKU != "123" || sku.WarehouseID != "warehouse123" {
		t.Errorf("unexpected sku %+v", sku)
	}
	if len(sku.Items) != 1 {
		t.Fatalf("expected 1 stock item, got %d", len(sku.Items))
	}
	item := sku.Items[0]
	if item.Count != 100 || item.Type != "FIT" {
		t.Errorf("unexpected stock item %+v", item)
	}
	if _, err := time.Parse(time.RFC3339, item.UpdatedAt); err != nil {
		t.Errorf("updatedAt %q is not RFC3339: %v", item.UpdatedAt, err)
	}
}

func TestPushPricesPayload(t *testing.T) {
	var got PricesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s; want POST", r.Method)
		}
		if r.URL.Path != "/campaigns/campaign123/offer-prices/updates" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(UpdateResponse{Status: "OK"})
	}))
	defer server.Close()

	batch := []models.PriceEntry{{OfferID: "123", Amount: 5990, Currency: "RUB"}}
	if err := newTestAdapter(server.URL).PushPrices(batch); err != nil {
		t.Fatalf("PushPrices returned error: %v", err)
	}

	want := []OfferPrice{{ID: "123", Price: Price{Value: 5990, CurrencyID: "RUR"}}}
	if !reflect.DeepEqual(got.Offers, want) {
		t.Errorf("prices payload = %+v; want %+v", got.Offers, want)
	}
}
