package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métricas conhecidas da série temporal de campanhas
const (
	MetricReach       = "reach"
	MetricEngagement  = "engagement"
	MetricClicks      = "clicks"
	MetricConversions = "conversions"
	MetricRevenue     = "revenue"
)

type Analytics struct {
	ID              int             `json:"id"`
	CampaignID      int             `json:"campaignId"`
	CollaborationID *int            `json:"collaborationId"`
	Metric          string          `json:"metric"`
	Value           decimal.Decimal `json:"value"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type AnalyticsFilters struct {
	CampaignIDs []int
	Metric      string
}

func (f AnalyticsFilters) Match(a *Analytics) bool {
	if f.CampaignIDs != nil && !containsID(f.CampaignIDs, a.CampaignID) {
		return false
	}
	if f.Metric != "" && a.Metric != f.Metric {
		return false
	}
	return true
}

type CreateAnalyticsRequest struct {
	CampaignID      int             `json:"campaignId" validate:"required,gt=0"`
	CollaborationID *int            `json:"collaborationId" validate:"omitempty,gt=0"`
	Metric          string          `json:"metric" validate:"required"`
	Value           decimal.Decimal `json:"value"`
	Date            time.Time       `json:"date" validate:"required"`
}
