package models

// Product represents a banking product offered to customers
type Product struct {
	ID               int64   `json:"productId"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	SubCategory      string  `json:"subCategory"`
	Features         string  `json:"features"`
	RiskLevel        string  `json:"riskLevel"`
	EligibilityRules string  `json:"eligibilityRules"`
	AvgRating        float64 `json:"avgRating"`
	PopularityScore  float64 `json:"popularityScore"`
}

// ProductPayload is the create/update body for a product
type ProductPayload struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	SubCategory      *string  `json:"subCategory"`
	Features         *string  `json:"features"`
	RiskLevel        *string  `json:"riskLevel"`
	EligibilityRules *string  `json:"eligibilityRules"`
	AvgRating        *float64 `json:"avgRating"`
	PopularityScore  *float64 `json:"popularityScore"`
}
