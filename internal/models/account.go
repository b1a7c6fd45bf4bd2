package models

import "github.com/shopspring/decimal"

// Account represents a customer account
type Account struct {
	ID                 int64           `json:"accountId"`
	CustomerID         *int64          `json:"customerId"`
	AccountType        string          `json:"accountType"`
	Balance            decimal.Decimal `json:"balance"`
	AvgMonthlyTxn      decimal.Decimal `json:"avgMonthlyTxn"`
	OverdraftEnabled   bool            `json:"overdraftEnabled"`
	LastActiveDate     string          `json:"lastActiveDate"`
	TenureMonths       int             `json:"tenureMonths"`
	ChannelPreferences string          `json:"channelPreferences"`
	DormantFlag        bool            `json:"dormantFlag"`
}

// AccountPayload is the create/update body for an account
type AccountPayload struct {
	CustomerID         *int64          `json:"customerId"`
	AccountType        *string         `json:"accountType"`
	Balance            decimal.Decimal `json:"balance"`
	AvgMonthlyTxn      decimal.Decimal `json:"avgMonthlyTxn"`
	OverdraftEnabled   bool            `json:"overdraftEnabled"`
	TenureMonths       int             `json:"tenureMonths"`
	ChannelPreferences *string         `json:"channelPreferences"`
	DormantFlag        bool            `json:"dormantFlag"`
	LastActiveDate     *string         `json:"lastActiveDate"`
}
