package entity

// Valuation holds the optional valuation metrics of a ticker. A nil field
// means the upstream did not report it.
type Valuation struct {
	ForwardPE   *float64 `json:"forward_pe"`
	TrailingPE  *float64 `json:"trailing_pe"`
	PriceToBook *float64 `json:"price_to_book"`
	Beta        *float64 `json:"beta"`
	MarketCap   *int64   `json:"market_cap"`
}

// Quote is the price and valuation snapshot of a ticker over a look-back window.
type Quote struct {
	Ticker         string  `json:"ticker"`
	CompanyName    string  `json:"company_name"`
	CurrentPrice   float64 `json:"current_price"`
	PriceChangePct float64 `json:"price_change_pct"`
	Valuation
}
