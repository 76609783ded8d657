package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type DashboardStats struct {
	ActiveCampaigns   int             `json:"activeCampaigns"`
	TotalReach        int64           `json:"totalReach"`
	AvgEngagementRate decimal.Decimal `json:"avgEngagementRate"`
	TotalROI          decimal.Decimal `json:"totalROI"`
}

// CalculateReach soma o alcance real das colaborações (nulo conta como zero)
func CalculateReach(collaborations []*Collaboration) int64 {
	var total int64
	for _, col := range collaborations {
		if col.ActualReach != nil {
			total += int64(*col.ActualReach)
		}
	}
	return total
}

// CalculateAverageEngagement retorna a média simples do engajamento real, com duas casas.
// Conjunto vazio resulta em zero.
func CalculateAverageEngagement(collaborations []*Collaboration) decimal.Decimal {
	if len(collaborations) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, col := range collaborations {
		if col.ActualEngagement != nil {
			sum = sum.Add(*col.ActualEngagement)
		}
	}

	return sum.Div(decimal.NewFromInt(int64(len(collaborations)))).Round(2)
}

// CalculateROI calcula o retorno percentual: (receita - investimento) / investimento * 100.
// O investimento é a soma do valor acordado das colaborações; sem investimento o ROI é zero.
func CalculateROI(collaborations []*Collaboration, revenue []*Analytics) decimal.Decimal {
	spend := decimal.Zero
	for _, col := range collaborations {
		if col.AgreedRate != nil {
			spend = spend.Add(*col.AgreedRate)
		}
	}

	if !spend.IsPositive() {
		return decimal.Zero
	}

	totalRevenue := decimal.Zero
	for _, entry := range revenue {
		totalRevenue = totalRevenue.Add(entry.Value)
	}

	return totalRevenue.Sub(spend).Div(spend).Mul(hundred).Round(2)
}
