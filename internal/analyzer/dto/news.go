package dto

// NewsQuery selects news about one company over a look-back window.
type NewsQuery struct {
	Ticker      string
	CompanyName string
	Days        int
}
