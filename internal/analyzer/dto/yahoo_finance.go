package dto

// YahooChartResponse is the subset of the v8 chart endpoint used for price history.
type YahooChartResponse struct {
	Chart struct {
		Result []YahooChartResult `json:"result"`
		Error  *YahooError        `json:"error"`
	} `json:"chart"`
}

type YahooChartResult struct {
	Meta struct {
		Symbol             string   `json:"symbol"`
		LongName           string   `json:"longName"`
		ShortName          string   `json:"shortName"`
		Currency           string   `json:"currency"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			// null marks a session without a close
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooRawValue is Yahoo's {"raw": ..., "fmt": ...} number wrapper. Raw is
// nil when the field is present but empty.
type YahooRawValue struct {
	Raw *float64 `json:"raw"`
}

// YahooQuoteSummaryResponse is the subset of the v10 quoteSummary endpoint
// used for valuation metrics.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []YahooQuoteSummaryResult `json:"result"`
		Error  *YahooError               `json:"error"`
	} `json:"quoteSummary"`
}

type YahooQuoteSummaryResult struct {
	Price *struct {
		LongName  string `json:"longName"`
		ShortName string `json:"shortName"`
	} `json:"price"`
	SummaryDetail *struct {
		TrailingPE *YahooRawValue `json:"trailingPE"`
		ForwardPE  *YahooRawValue `json:"forwardPE"`
		Beta       *YahooRawValue `json:"beta"`
		MarketCap  *YahooRawValue `json:"marketCap"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics *struct {
		ForwardPE   *YahooRawValue `json:"forwardPE"`
		PriceToBook *YahooRawValue `json:"priceToBook"`
		Beta        *YahooRawValue `json:"beta"`
	} `json:"defaultKeyStatistics"`
}
