package models

import "github.com/shopspring/decimal"

// Transaction represents a financial transaction. Transactions are append-only.
type Transaction struct {
	ID               int64           `json:"txnId"`
	AccountID        *int64          `json:"accountId"`
	TxnType          string          `json:"txnType"`
	Amount           decimal.Decimal `json:"amount"`
	Timestamp        string          `json:"timestamp"`
	Channel          string          `json:"channel"`
	MerchantCategory string          `json:"merchantCategory"`
	GeoLocation      string          `json:"geoLocation"`
	IsRecurring      bool            `json:"isRecurring"`
	IsHighValue      bool            `json:"isHighValue"`
	TxnScore         float64         `json:"txnScore"`
}

// TransactionPayload is the create body for a transaction
type TransactionPayload struct {
	AccountID        *int64           `json:"accountId"`
	TxnType          *string          `json:"txnType"`
	Amount           *decimal.Decimal `json:"amount"`
	Timestamp        *string          `json:"timestamp"`
	Channel          *string          `json:"channel"`
	MerchantCategory *string          `json:"merchantCategory"`
	GeoLocation      *string          `json:"geoLocation"`
	IsRecurring      bool             `json:"isRecurring"`
	IsHighValue      bool             `json:"isHighValue"`
	TxnScore         *float64         `json:"txnScore"`
}
