package pipeline

import (
	"fmt"
	"strconv"

	"stocksync/internal/models"
)

// Currency applied to every built price entry.
const Currency = "RUB"

// ReconcileStocks builds the complete stock list for one marketplace catalog:
// explicit counts for offers present in the remnants, zero for offers the
// marketplace knows about but the feed never mentions. Feed-derived entries
// come first in feed order, leftovers after in catalog order. Every offer ID
// appears exactly once. The inputs are never mutated.
func ReconcileStocks(records []models.InventoryRecord, offerIDs []string) ([]models.StockEntry, error) {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	consumed := make(map[string]struct{}, len(records))
	stocks := make([]models.StockEntry, 0, len(offerIDs))

	for _, record := range records {
		if _, ok := known[record.Code]; !ok {
			continue
		}
		if _, dup := consumed[record.Code]; dup {
			continue
		}
		count, err := countFromQuantity(record.Quantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", record.Code, err)
		}
		stocks = append(stocks, models.StockEntry{OfferID: record.Code, Count: count})
		consumed[record.Code] = struct{}{}
	}

	for _, id := range offerIDs {
		if _, ok := consumed[id]; !ok {
			stocks = append(stocks, models.StockEntry{OfferID: id, Count: 0})
		}
	}

	return stocks, nil
}

// countFromQuantity maps the feed's quantity field to an uploadable count.
// ">10" means plenty in stock and is reported as 100. A literal "1" is
// reported as zero: the business treats a single remaining unit as sold out.
func countFromQuantity(quantity string) (int, error) {
	switch quantity {
	case ">10":
		return 100, nil
	case "1":
		return 0, nil
	}
	count, err := strconv.Atoi(quantity)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	return count, nil
}

// BuildPrices builds price entries for offers present in both the remnants
// feed and the marketplace catalog. Offers without a feed record are skipped,
// not zeroed — prices are only ever overwritten with real values.
func BuildPrices(records []models.InventoryRecord, offerIDs []string) ([]models.PriceEntry, error) {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	prices := make([]models.PriceEntry, 0, len(records))
	for _, record := range records {
		if _, ok := known[record.Code]; !ok {
			continue
		}
		amount, err := strconv.Atoi(NormalizePrice(record.Price))
		if err != nil {
			return nil, fmt.Errorf("offer %s: invalid price %q: %w", record.Code, record.Price, err)
		}
		prices = append(prices, models.PriceEntry{
			OfferID:  record.Code,
			Amount:   amount,
			Currency: Currency,
		})
	}

	return prices, nil
}
