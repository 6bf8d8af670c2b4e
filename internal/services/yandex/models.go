package yandex

// ProductListResponse is the body of GET campaigns/{id}/offer-mapping-entries
type ProductListResponse struct {
	Result ProductListResult `json:"result"`
}

type ProductListResult struct {
	OfferMappingEntries []OfferMappingEntry `json:"offerMappingEntries"`
	Paging              Paging              `json:"paging"`
}

type OfferMappingEntry struct {
	Offer Offer `json:"offer"`
}

type Offer struct {
	ShopSKU string `json:"shopSku"`
}

type Paging struct {
	NextPageToken string `json:"nextPageToken"`
}

// StocksRequest is the body of PUT campaigns/{id}/offers/stocks
type StocksRequest struct {
	SKUs []SKUStocks `json:"skus"`
}

type SKUStocks struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// PricesRequest is the body of POST campaigns/{id}/offer-prices/updates
type PricesRequest struct {
	Offers []OfferPrice `json:"offers"`
}

type OfferPrice struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
}

type Price struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type UpdateResponse struct {
	Status string `json:"status"`
}
