package models

// InventoryRecord is one row of the remnants feed. Quantity stays a string
// because the feed mixes numerals with sentinels like ">10".
type InventoryRecord struct {
	Code     string `json:"code"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// StockEntry is a reconciled per-offer stock count ready for upload.
type StockEntry struct {
	OfferID string `json:"offer_id"`
	Count   int    `json:"count"`
}

// PriceEntry is a per-offer price in major currency units.
type PriceEntry struct {
	OfferID  string `json:"offer_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}
