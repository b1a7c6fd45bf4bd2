package models

import "github.com/shopspring/decimal"

// Campaign represents a marketing campaign shown on the campaigns tab
type Campaign struct {
	ID            int64
	Name          string
	Channel       string
	Status        string
	TargetSegment string
	StartDate     string
	EndDate       string
	Audience      int
	Conversions   int
	Budget        decimal.Decimal
}
