package service

import (
	"context"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// CampaignStats aggregates the campaign list
type CampaignStats struct {
	Total             int
	Active            int
	AudienceReached   int
	Conversions       int
	AvgConversionRate float64 // 0..1
	TotalBudget       decimal.Decimal
}

// CampaignsView is the state of the campaigns tab
type CampaignsView struct {
	Campaigns []models.Campaign
	Stats     CampaignStats
}

// ConversionRate returns conversions per audience member, or 0 for campaigns without audience
func ConversionRate(c models.Campaign) float64 {
	if c.Audience <= 0 {
		return 0
	}
	return float64(c.Conversions) / float64(c.Audience)
}

// SummarizeCampaigns computes the campaign stat cards. The average rate only counts campaigns that reached someone.
func SummarizeCampaigns(campaigns []models.Campaign) CampaignStats {
	stats := CampaignStats{Total: len(campaigns), TotalBudget: decimal.Zero}
	var rateSum float64
	var rated int
	for _, c := range campaigns {
		if c.Status == "Active" {
			stats.Active++
		}
		stats.AudienceReached += c.Audience
		stats.Conversions += c.Conversions
		stats.TotalBudget = stats.TotalBudget.Add(c.Budget)
		if c.Audience > 0 {
			rateSum += ConversionRate(c)
			rated++
		}
	}
	if rated > 0 {
		stats.AvgConversionRate = rateSum / float64(rated)
	}
	return stats
}

// LoadCampaigns renders the campaigns tab from the built-in campaign list
func (s *Service) LoadCampaigns(ctx context.Context, session string) *CampaignsView {
	s.enter(ctx, session)
	campaigns := models.MockCampaigns()
	return &CampaignsView{Campaigns: campaigns, Stats: SummarizeCampaigns(campaigns)}
}

// AnalyticsStats aggregates segments and monthly volumes
type AnalyticsStats struct {
	TotalCustomers    int64
	SegmentCount      int
	LargestSegment    string
	AvgSegmentScore   float64 // weighted by customer count
	TotalTransactions int
	TotalVolume       decimal.Decimal
	AvgMonthlyVolume  decimal.Decimal
}

// AnalyticsView is the state of the analytics tab
type AnalyticsView struct {
	Segments []models.SegmentInfo
	Monthly  []models.MonthlyVolume
	Stats    AnalyticsStats
}

// SummarizeAnalytics computes the analytics stat cards
func SummarizeAnalytics(segments []models.SegmentInfo, monthly []models.MonthlyVolume) AnalyticsStats {
	stats := AnalyticsStats{SegmentCount: len(segments), TotalVolume: decimal.Zero, AvgMonthlyVolume: decimal.Zero}

	var largest int64 = -1
	var weighted float64
	for _, seg := range segments {
		stats.TotalCustomers += seg.CustomerCount
		weighted += seg.AvgSegmentScore * float64(seg.CustomerCount)
		if seg.CustomerCount > largest {
			largest = seg.CustomerCount
			stats.LargestSegment = seg.SegmentName
		}
	}
	if stats.TotalCustomers > 0 {
		stats.AvgSegmentScore = weighted / float64(stats.TotalCustomers)
	}

	for _, m := range monthly {
		stats.TotalTransactions += m.Transactions
		stats.TotalVolume = stats.TotalVolume.Add(m.Volume)
	}
	if len(monthly) > 0 {
		stats.AvgMonthlyVolume = stats.TotalVolume.Div(decimal.NewFromInt(int64(len(monthly)))).Round(2)
	}
	return stats
}

// LoadAnalytics renders the analytics tab from the built-in segment and volume data
func (s *Service) LoadAnalytics(ctx context.Context, session string) *AnalyticsView {
	s.enter(ctx, session)
	segments := models.MockSegments()
	monthly := models.MockMonthlyVolume()
	return &AnalyticsView{Segments: segments, Monthly: monthly, Stats: SummarizeAnalytics(segments, monthly)}
}

// RecommendationStats aggregates the recommendation list
type RecommendationStats struct {
	Count         int
	HighPriority  int
	AvgConfidence float64 // 0..100
}

// RecommendationsView is the state of the recommendations tab. Live is false when the built-in list is shown.
type RecommendationsView struct {
	Recommendations []models.Recommendation
	Live            bool
	Stats           RecommendationStats
}

// SummarizeRecommendations computes the recommendation stat cards
func SummarizeRecommendations(recs []models.Recommendation) RecommendationStats {
	stats := RecommendationStats{Count: len(recs)}
	var sum float64
	for _, r := range recs {
		if r.Priority == "High" {
			stats.HighPriority++
		}
		sum += r.Confidence
	}
	if len(recs) > 0 {
		stats.AvgConfidence = sum / float64(len(recs))
	}
	return stats
}

// LoadRecommendations fetches live recommendations and falls back to the built-in list
// when the backend fails or has none. It never returns an error.
func (s *Service) LoadRecommendations(ctx context.Context, session string) *RecommendationsView {
	s.enter(ctx, session)

	recs, err := s.repo.ListRecommendations(ctx)
	live := true
	switch {
	case err != nil:
		s.log.WithError(err).Warn("Recommendations unavailable, showing demo data")
		recs, live = models.MockRecommendations(), false
	case len(recs) == 0:
		s.log.Warn("No recommendations returned, showing demo data")
		recs, live = models.MockRecommendations(), false
	}

	return &RecommendationsView{Recommendations: recs, Live: live, Stats: SummarizeRecommendations(recs)}
}
