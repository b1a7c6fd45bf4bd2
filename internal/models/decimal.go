package models

import "github.com/shopspring/decimal"

func init() {
	// The backend maps money to BigDecimal and expects JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
