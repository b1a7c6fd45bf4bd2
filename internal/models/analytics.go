package models

import "github.com/shopspring/decimal"

// SegmentInfo represents one customer segment of the segmentation model
type SegmentInfo struct {
	SegmentID       string  `json:"segmentId"`
	SegmentName     string  `json:"segmentName"`
	CustomerCount   int64   `json:"customerCount"`
	Percentage      float64 `json:"percentage"`
	AvgSegmentScore float64 `json:"avgSegmentScore"`
}

// MonthlyVolume represents transaction volume for a month
type MonthlyVolume struct {
	Month        string          `json:"month"` // Format: YYYY-MM
	Transactions int             `json:"transactions"`
	Volume       decimal.Decimal `json:"volume"`
}
