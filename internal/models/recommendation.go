package models

// Recommendation is a product recommendation produced by the segmentation model
type Recommendation struct {
	CustomerID      int64   `json:"customerId"`
	CustomerName    string  `json:"customerName"`
	Segment         string  `json:"segment"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductCategory string  `json:"productCategory"`
	Confidence      float64 `json:"confidence"` // 0..100
	Rationale       string  `json:"rationale"`
	Priority        string  `json:"priority"`
}
