package models

import "github.com/shopspring/decimal"

// Literal sample data for the tabs that have no backend source. Each call returns a fresh copy.

// MockCampaigns returns the fixed campaign list
func MockCampaigns() []Campaign {
	return []Campaign{
		{ID: 1, Name: "Digital Savings Drive", Channel: "Email", Status: "Active", TargetSegment: "Digital Natives",
			StartDate: "2025-01-06", EndDate: "2025-03-31", Audience: 12500, Conversions: 1125, Budget: decimal.NewFromInt(250000)},
		{ID: 2, Name: "Premium Card Upgrade", Channel: "SMS", Status: "Active", TargetSegment: "Digital Elite",
			StartDate: "2025-02-01", EndDate: "2025-04-30", Audience: 4200, Conversions: 546, Budget: decimal.NewFromInt(180000)},
		{ID: 3, Name: "Win-Back Offers", Channel: "Phone", Status: "Active", TargetSegment: "At-Risk Customers",
			StartDate: "2025-01-15", EndDate: "2025-02-28", Audience: 3100, Conversions: 217, Budget: decimal.NewFromInt(95000)},
		{ID: 4, Name: "Home Loan Festival", Channel: "Branch", Status: "Completed", TargetSegment: "Growing Professionals",
			StartDate: "2024-10-01", EndDate: "2024-12-31", Audience: 8600, Conversions: 430, Budget: decimal.NewFromInt(420000)},
		{ID: 5, Name: "Welcome Onboarding", Channel: "Mobile", Status: "Scheduled", TargetSegment: "New Customers",
			StartDate: "2025-04-01", EndDate: "2025-06-30", Audience: 0, Conversions: 0, Budget: decimal.NewFromInt(120000)},
		{ID: 6, Name: "Fixed Deposit Renewal", Channel: "Email", Status: "Paused", TargetSegment: "Traditional Affluent",
			StartDate: "2025-01-20", EndDate: "2025-03-20", Audience: 2750, Conversions: 165, Budget: decimal.NewFromInt(60000)},
	}
}

// MockSegments returns the fixed customer segment distribution
func MockSegments() []SegmentInfo {
	return []SegmentInfo{
		{SegmentID: "0", SegmentName: "Digital Elite", CustomerCount: 180, Percentage: 12.0, AvgSegmentScore: 0.91},
		{SegmentID: "1", SegmentName: "Traditional Affluent", CustomerCount: 150, Percentage: 10.0, AvgSegmentScore: 0.84},
		{SegmentID: "2", SegmentName: "Digital Natives", CustomerCount: 345, Percentage: 23.0, AvgSegmentScore: 0.78},
		{SegmentID: "3", SegmentName: "At-Risk Customers", CustomerCount: 195, Percentage: 13.0, AvgSegmentScore: 0.62},
		{SegmentID: "4", SegmentName: "New Customers", CustomerCount: 270, Percentage: 18.0, AvgSegmentScore: 0.70},
		{SegmentID: "5", SegmentName: "Growing Professionals", CustomerCount: 360, Percentage: 24.0, AvgSegmentScore: 0.81},
	}
}

// MockMonthlyVolume returns the fixed monthly transaction volume series
func MockMonthlyVolume() []MonthlyVolume {
	return []MonthlyVolume{
		{Month: "2024-08", Transactions: 4120, Volume: decimal.NewFromInt(18250000)},
		{Month: "2024-09", Transactions: 4385, Volume: decimal.NewFromInt(19730000)},
		{Month: "2024-10", Transactions: 4610, Volume: decimal.NewFromInt(21480000)},
		{Month: "2024-11", Transactions: 4490, Volume: decimal.NewFromInt(20960000)},
		{Month: "2024-12", Transactions: 5230, Volume: decimal.NewFromInt(26310000)},
		{Month: "2025-01", Transactions: 4875, Volume: decimal.NewFromInt(22740000)},
	}
}

// MockRecommendations returns the fixed 8-item recommendation list used in demo mode
func MockRecommendations() []Recommendation {
	return []Recommendation{
		{CustomerID: 101, CustomerName: "Aarav Sharma", Segment: "Digital Elite", ProductID: 7, ProductName: "Platinum Rewards Card",
			ProductCategory: "Credit", Confidence: 94, Rationale: "High balance and heavy mobile usage", Priority: "High"},
		{CustomerID: 102, CustomerName: "Priya Nair", Segment: "Growing Professionals", ProductID: 12, ProductName: "Home Loan Plus",
			ProductCategory: "Mortgage", Confidence: 89, Rationale: "Stable income growth and long tenure", Priority: "High"},
		{CustomerID: 103, CustomerName: "Rohan Mehta", Segment: "Digital Natives", ProductID: 3, ProductName: "Smart Saver Account",
			ProductCategory: "Savings", Confidence: 86, Rationale: "Frequent small deposits through the app", Priority: "Medium"},
		{CustomerID: 104, CustomerName: "Ananya Gupta", Segment: "Traditional Affluent", ProductID: 9, ProductName: "Wealth Fixed Deposit",
			ProductCategory: "Investment", Confidence: 83, Rationale: "Large idle balance with low risk appetite", Priority: "High"},
		{CustomerID: 105, CustomerName: "Vikram Singh", Segment: "At-Risk Customers", ProductID: 5, ProductName: "Fee Waiver Checking",
			ProductCategory: "Checking", Confidence: 78, Rationale: "Rising churn score after fee charges", Priority: "High"},
		{CustomerID: 106, CustomerName: "Meera Iyer", Segment: "New Customers", ProductID: 2, ProductName: "Starter Credit Card",
			ProductCategory: "Credit", Confidence: 74, Rationale: "Recent account with regular salary credits", Priority: "Medium"},
		{CustomerID: 107, CustomerName: "Karan Patel", Segment: "Growing Professionals", ProductID: 14, ProductName: "Business Current Account",
			ProductCategory: "Business", Confidence: 71, Rationale: "Merchant inflows suggest self-employment", Priority: "Medium"},
		{CustomerID: 108, CustomerName: "Sneha Reddy", Segment: "Dormant Savers", ProductID: 4, ProductName: "Recurring Deposit",
			ProductCategory: "Savings", Confidence: 65, Rationale: "Low activity with steady balance", Priority: "Low"},
	}
}
