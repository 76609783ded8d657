package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestInfluencerFilters_Match(t *testing.T) {
	inf := &Influencer{Name: "Emma Style", Handle: "@emmastyle", Category: CategoryFashionBeauty, Followers: 450000}

	tests := []struct {
		name    string
		filters InfluencerFilters
		want    bool
	}{
		{"sem filtros", InfluencerFilters{}, true},
		{"todas as categorias", InfluencerFilters{Category: AllCategories}, true},
		{"categoria diferente", InfluencerFilters{Category: CategoryTechnology}, false},
		{"mínimo inclusivo", InfluencerFilters{MinFollowers: intPtr(450000)}, true},
		{"acima do máximo", InfluencerFilters{MaxFollowers: intPtr(449999)}, false},
		{"busca no nome sem caixa", InfluencerFilters{Search: "EMMA"}, true},
		{"busca no handle", InfluencerFilters{Search: "style"}, true},
		{"busca sem resultado", InfluencerFilters{Search: "tech"}, false},
		{"predicados combinados", InfluencerFilters{Category: CategoryFashionBeauty, MinFollowers: intPtr(500000)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(inf))
		})
	}
}

func TestCollaborationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, CollaborationStatusPending.CanTransitionTo(CollaborationStatusAccepted))
	assert.True(t, CollaborationStatusActive.CanTransitionTo(CollaborationStatusCompleted))
	assert.True(t, CollaborationStatusCompleted.CanTransitionTo(CollaborationStatusCompleted))
	assert.False(t, CollaborationStatusCompleted.CanTransitionTo(CollaborationStatusPending))
	assert.False(t, CollaborationStatusPending.CanTransitionTo(CollaborationStatusCompleted))

	assert.True(t, CollaborationStatusDeclined.IsTerminal())
	assert.False(t, CollaborationStatusAccepted.IsTerminal())
	assert.False(t, CollaborationStatus("paused").IsValid())
}

func TestCollaborationFilters_EmptyScopeMatchesNothing(t *testing.T) {
	col := &Collaboration{CampaignID: 1, InfluencerID: 2, Status: CollaborationStatusCompleted}

	assert.True(t, CollaborationFilters{}.Match(col))
	assert.False(t, CollaborationFilters{CampaignIDs: []int{}}.Match(col))
	assert.True(t, CollaborationFilters{CampaignIDs: []int{3, 1}, InfluencerID: intPtr(2)}.Match(col))
	assert.False(t, CollaborationFilters{Status: CollaborationStatusPending}.Match(col))
}

func TestDashboardCalculations(t *testing.T) {
	completed := []*Collaboration{
		{ActualReach: intPtr(450000), ActualEngagement: decPtr("4.8"), AgreedRate: decPtr("2000")},
		{ActualReach: intPtr(320000), ActualEngagement: decPtr("6.1"), AgreedRate: decPtr("2000")},
		{},
	}

	assert.Equal(t, int64(770000), CalculateReach(completed))
	assert.Equal(t, "3.63", CalculateAverageEngagement(completed).String())
	assert.Equal(t, "5.45", CalculateAverageEngagement(completed[:2]).String())
	assert.True(t, CalculateAverageEngagement(nil).IsZero())

	revenue := []*Analytics{
		{Metric: MetricRevenue, Value: decimal.NewFromInt(3000)},
		{Metric: MetricRevenue, Value: decimal.NewFromInt(2000)},
	}
	assert.Equal(t, "25", CalculateROI(completed, revenue).String())
	assert.True(t, CalculateROI([]*Collaboration{{}}, revenue).IsZero())
}

func TestUpdateRequests_ApplyOnlySetFields(t *testing.T) {
	inf := &Influencer{Name: "Tech Guru", Handle: "@techguru", Followers: 10}
	name := "Tech Master"
	(&UpdateInfluencerRequest{Name: &name}).Apply(inf)
	assert.Equal(t, "Tech Master", inf.Name)
	assert.Equal(t, "@techguru", inf.Handle)
	assert.Equal(t, 10, inf.Followers)

	col := &Collaboration{Status: CollaborationStatusPending, ActualReach: intPtr(5)}
	status := CollaborationStatusActive
	(&UpdateCollaborationRequest{Status: &status}).Apply(col)
	assert.Equal(t, CollaborationStatusActive, col.Status)
	assert.Equal(t, 5, *col.ActualReach)
}
