package handler

// SubmitEntryRequest carries the purchase form. Field completeness is checked
// by the entry validator, not by binding rules, so every incomplete form
// gets the same rejection.
type SubmitEntryRequest struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Product    string  `json:"product"`
	Supplier   string  `json:"supplier"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	TotalPrice float64 `json:"total_price"`
}

// FilterParams holds the optional query-string criteria shared by list, average and export endpoints
type FilterParams struct {
	Product  string `form:"product"`
	Supplier string `form:"supplier"`
	From     string `form:"from"` // YYYY-MM-DD, inclusive
	To       string `form:"to"`   // YYYY-MM-DD, inclusive
}

// RecentParams holds the size of the recent-entries table
type RecentParams struct {
	N int `form:"n" binding:"omitempty,min=1,max=1000"`
}

// ProductParams selects the product a trend or ranking is computed for
type ProductParams struct {
	Product string `form:"product" binding:"required"`
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// EntryResponse represents a purchase entry in API responses
type EntryResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Period           string  `json:"period"`
	Product          string  `json:"product"`
	Supplier         string  `json:"supplier"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	TotalPrice       float64 `json:"total_price"`
	UnitPrice        float64 `json:"unit_price"`
	UnitPriceDisplay string  `json:"unit_price_display"`
}

// SubmitEntryResponse confirms an accepted entry
type SubmitEntryResponse struct {
	Entry   EntryResponse `json:"entry"`
	Message string        `json:"message"`
}

// ProductListResponse lists the distinct products of a ledger
type ProductListResponse struct {
	Products []string `json:"products"`
}

// BoundsResponse gives the date-range selector span
type BoundsResponse struct {
	Status string `json:"status"`
	Min    string `json:"min,omitempty"`
	Max    string `json:"max,omitempty"`
}

// TotalsResponse represents session totals
type TotalsResponse struct {
	TotalSpend        float64 `json:"total_spend"`
	TotalSpendDisplay string  `json:"total_spend_display"`
	Count             int     `json:"count"`
}

// AverageResponse represents a weighted average unit price
type AverageResponse struct {
	Status                 string   `json:"status"`
	WeightedAverage        *float64 `json:"weighted_average,omitempty"`
	WeightedAverageDisplay string   `json:"weighted_average_display,omitempty"`
}

// PricePointResponse is one point of a price history chart
type PricePointResponse struct {
	Date      string  `json:"date"`
	Supplier  string  `json:"supplier"`
	UnitPrice float64 `json:"unit_price"`
}

// TrendResponse represents the price change between the two latest purchases of a product
type TrendResponse struct {
	Status          string               `json:"status"`
	Product         string               `json:"product"`
	Message         string               `json:"message,omitempty"`
	PercentChange   *float64             `json:"percent_change,omitempty"`
	Direction       string               `json:"direction,omitempty"`
	PriceRise       bool                 `json:"price_rise"`
	CurrentSupplier string               `json:"current_supplier,omitempty"`
	CurrentPrice    string               `json:"current_price_display,omitempty"`
	Previous        *EntryResponse       `json:"previous,omitempty"`
	Latest          *EntryResponse       `json:"latest,omitempty"`
	History         []PricePointResponse `json:"history"`
}

// SupplierRankResponse is one row of a supplier ranking
type SupplierRankResponse struct {
	Rank                 int     `json:"rank"`
	Supplier             string  `json:"supplier"`
	MeanUnitPrice        float64 `json:"mean_unit_price"`
	MeanUnitPriceDisplay string  `json:"mean_unit_price_display"`
	Purchases            int     `json:"purchases"`
}

// RankingResponse represents the supplier ranking of a product
type RankingResponse struct {
	Status    string                 `json:"status"`
	Product   string                 `json:"product"`
	Unit      string                 `json:"unit,omitempty"`
	Suppliers []SupplierRankResponse `json:"suppliers"`
}
