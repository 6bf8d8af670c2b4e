package ozon

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"stocksync/internal/config"
	"stocksync/internal/logger"
	"stocksync/internal/models"
	"stocksync/internal/services/marketplace"
)

func newTestAdapter(baseURL string) *Adapter {
	cfg := &config.Config{
		OzonBaseURL:  baseURL,
		OzonClientID: "client123",
		OzonAPIKey:   "key123",
	}
	return NewAdapter(cfg, logger.New("error"))
}

func TestFetchOfferIDsPaginates(t *testing.T) {
	pages := map[string]ProductListResult{
		"": {
			Items:  []ProductListItem{{OfferID: "123"}, {OfferID: "456"}},
			Total:  3,
			LastID: "cursor-1",
		},
		"cursor-1": {
			Items:  []ProductListItem{{OfferID: "789"}},
			Total:  3,
			LastID: "cursor-2",
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != productListPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Client-Id") != "client123" || r.Header.Get("Api-Key") != "key123" {
			t.Error("auth headers missing")
		}

		var req ProductListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Filter.Visibility != "ALL" {
			t.Errorf("visibility = %q; want ALL", req.Filter.Visibility)
		}

		json.NewEncoder(w).Encode(ProductListResponse{Result: pages[req.LastID]})
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

func TestFetchOfferIDsStopsOnEmptyPage(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// Reported total never reached; the guard must still terminate.
		json.NewEncoder(w).Encode(ProductListResponse{Result: ProductListResult{Total: 100}})
	}))
	defer server.Close()

	offerIDs, err := newTestAdapter(server.URL).FetchOfferIDs()
	if err != nil {
		t.Fatalf("FetchOfferIDs returned error: %v", err)
	}
	if len(offerIDs) != 0 {
		t.Errorf("expected no offer ids, got %v", offerIDs)
	}
	if calls != 1 {
		t.Errorf("expected a single page request, got %d", calls)
	}
}

func TestFetchOfferIDsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).FetchOfferIDs()

	var statusErr *marketplace.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusForbidden {
		t.Errorf("Code = %d; want %d", statusErr.Code, http.StatusForbidden)
	}
}

func TestPushStocksPayload(t *testing.T) {
	var got StocksRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != importStocksPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(UpdateResponse{})
	}))
	defer server.Close()

	batch := []models.StockEntry{{OfferID: "123", Count: 100}, {OfferID: "456", Count: 0}}
	if err := newTestAdapter(server.URL).PushStocks(batch); err != nil {
		t.Fatalf("PushStocks returned error: %v", err)
	}

	want := []StockUpdate{{OfferID: "123", Stock: 100}, {OfferID: "456", Stock: 0}}
	if !reflect.DeepEqual(got.Stocks, want) {
		t.Errorf("stocks payload = %+v; want %+v", got.Stocks, want)
	}
}

func TestPushPricesPayload(t *testing.T) {
	var got PricesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != importPricesPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(UpdateResponse{})
	}))
	defer server.Close()

	batch := []models.PriceEntry{{OfferID: "123", Amount: 5990, Currency: "RUB"}}
	if err := newTestAdapter(server.URL).PushPrices(batch); err != nil {
		t.Fatalf("PushPrices returned error: %v", err)
	}

	want := []PriceUpdate{{
		AutoActionEnabled: "UNKNOWN",
		CurrencyCode:      "RUB",
		OfferID:           "123",
		OldPrice:          "0",
		Price:             "5990",
	}}
	if !reflect.DeepEqual(got.Prices, want) {
		t.Errorf("prices payload = %+v; want %+v", got.Prices, want)
	}
}
