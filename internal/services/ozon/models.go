package ozon

// ProductListRequest is the body of POST /v2/product/list
type ProductListRequest struct {
	Filter ProductFilter `json:"filter"`
	LastID string        `json:"last_id"`
	Limit  int           `json:"limit"`
}

type ProductFilter struct {
	Visibility string `json:"visibility"`
}

type ProductListResponse struct {
	Result ProductListResult `json:"result"`
}

type ProductListResult struct {
	Items  []ProductListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type ProductListItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
}

// StockUpdate is one element of POST /v1/product/import/stocks
type StockUpdate struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type StocksRequest struct {
	Stocks []StockUpdate `json:"stocks"`
}

// PriceUpdate is one element of POST /v1/product/import/prices. Price fields
// are strings on the wire.
type PriceUpdate struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type PricesRequest struct {
	Prices []PriceUpdate `json:"prices"`
}

type UpdateResponse struct {
	Result []UpdateResult `json:"result"`
}

type UpdateResult struct {
	OfferID string        `json:"offer_id"`
	Updated bool          `json:"updated"`
	Errors  []ResultError `json:"errors"`
}

type ResultError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
