package syncer

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"stocksync/internal/config"
	"stocksync/internal/logger"
	"stocksync/internal/models"
	"stocksync/internal/pipeline"
)

type fakeStore struct {
	runs []*models.SyncRun
}

func (s *fakeStore) CreateRun(run *models.SyncRun) error {
	s.runs = append(s.runs, run)
	return nil
}

type fakeTarget struct {
	name     string
	offerIDs []string
	fetchErr error
}

func (f *fakeTarget) Name() string        { return f.name }
func (f *fakeTarget) Campaign() string    { return "test" }
func (f *fakeTarget) StockBatchSize() int { return 100 }
func (f *fakeTarget) PriceBatchSize() int { return 100 }

func (f *fakeTarget) FetchOfferIDs() ([]string, error)     { return f.offerIDs, f.fetchErr }
func (f *fakeTarget) PushStocks([]models.StockEntry) error { return nil }
func (f *fakeTarget) PushPrices([]models.PriceEntry) error { return nil }

func newTestService(store Store, targets ...pipeline.Target) *Service {
	log := logger.New("error")
	return &Service{
		pipeline: pipeline.New(log),
		targets:  targets,
		store:    store,
		logger:   log,
	}
}

func TestRunTargetRecordsSuccess(t *testing.T) {
	store := &fakeStore{}
	target := &fakeTarget{name: "ozon", offerIDs: []string{"123", "456"}}
	service := newTestService(store, target)

	records := []models.InventoryRecord{
		{Code: "123", Quantity: "5", Price: "5'990.00 руб."},
	}
	service.runTarget(target, records)

	if len(store.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run.Status != string(models.RunSucceeded) {
		t.Errorf("Status = %q; want SUCCEEDED", run.Status)
	}
	if run.OffersTotal != 2 || run.StocksPushed != 2 || run.PricesPushed != 1 {
		t.Errorf("unexpected counters: %+v", run)
	}
	if run.Error != nil {
		t.Errorf("Error = %v; want nil", *run.Error)
	}
}

func TestRunTargetRecordsFailure(t *testing.T) {
	store := &fakeStore{}
	target := &fakeTarget{name: "ozon", fetchErr: errors.New("boom")}
	service := newTestService(store, target)

	service.runTarget(target, nil)

	if len(store.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run.Status != string(models.RunFailed) {
		t.Errorf("Status = %q; want FAILED", run.Status)
	}
	if run.Error == nil {
		t.Fatal("expected error text to be recorded")
	}
}

func TestRunTargetNilStore(t *testing.T) {
	target := &fakeTarget{name: "ozon", offerIDs: []string{"123"}}
	service := newTestService(nil, target)

	// Must not panic without a store.
	service.runTarget(target, nil)
}

func TestTargetsFromConfig(t *testing.T) {
	cfg := &config.Config{
		OzonClientID:  "client123",
		OzonAPIKey:    "key123",
		MarketToken:   "token123",
		FBSCampaignID: "fbs123",
		DBSCampaignID: "dbs123",
	}

	targets := Targets(cfg, logger.New("error"))
	if len(targets) != 3 {
		t.Fatalf("expected 3 targets, got %d", len(targets))
	}

	names := map[string]int{}
	for _, target := range targets {
		names[target.Name()]++
	}
	if names["ozon"] != 1 || names["yandex"] != 2 {
		t.Errorf("unexpected target mix: %v", names)
	}
}

func TestTargetsWithoutCredentials(t *testing.T) {
	targets := Targets(&config.Config{}, logger.New("error"))
	if len(targets) != 0 {
		t.Errorf("expected no targets without credentials, got %d", len(targets))
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrap: %w", timeoutErr{}), "Request timed out"},
		{fmt.Errorf("wrap: %w", &net.OpError{Op: "dial", Err: errors.New("refused")}), "Connection error"},
		{errors.New("boom"), "Sync failed"},
	}

	for _, tt := range tests {
		if got := describeFailure(tt.err); got != tt.want {
			t.Errorf("describeFailure(%v) = %q; want %q", tt.err, got, tt.want)
		}
	}
}
