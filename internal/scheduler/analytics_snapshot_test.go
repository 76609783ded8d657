package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/memory"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type snapshotFixture struct {
	store   *memory.Store
	service *AnalyticsSnapshotService
	active  *domain.Campaign
	draft   *domain.Campaign
}

func newSnapshotFixture(t *testing.T, now time.Time) snapshotFixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()

	service := NewAnalyticsSnapshotService(store, store, store, &config.Config{})
	service.clock = func() time.Time { return now }

	active, err := store.CreateCampaign(ctx, &domain.Campaign{Name: "Summer", Status: domain.CampaignStatusActive, CreatedBy: 1})
	require.NoError(t, err)
	draft, err := store.CreateCampaign(ctx, &domain.Campaign{Name: "Draft", Status: domain.CampaignStatusDraft, CreatedBy: 1})
	require.NoError(t, err)

	collaborations := []*domain.Collaboration{
		{CampaignID: active.ID, InfluencerID: 1, Status: domain.CollaborationStatusCompleted, ActualReach: intPtr(450000), ActualEngagement: decPtr("4.8")},
		{CampaignID: active.ID, InfluencerID: 2, Status: domain.CollaborationStatusCompleted, ActualReach: intPtr(320000), ActualEngagement: decPtr("6.1")},
		{CampaignID: active.ID, InfluencerID: 3, Status: domain.CollaborationStatusActive, ActualReach: intPtr(999999)},
		{CampaignID: draft.ID, InfluencerID: 1, Status: domain.CollaborationStatusCompleted, ActualReach: intPtr(1000)},
	}
	for _, col := range collaborations {
		_, err := store.CreateCollaboration(ctx, col)
		require.NoError(t, err)
	}

	return snapshotFixture{store: store, service: service, active: active, draft: draft}
}

func TestRunSnapshot_RecordsActiveCampaignMetrics(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)
	f := newSnapshotFixture(t, now)

	result, err := f.service.RunSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SnapshotResult{Campaigns: 1, Recorded: 2}, result)

	entries, err := f.store.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{f.active.ID}})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	values := map[string]string{}
	for _, e := range entries {
		values[e.Metric] = e.Value.String()
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), e.Date)
		assert.Nil(t, e.CollaborationID)
	}
	assert.Equal(t, "770000", values[domain.MetricReach])
	assert.Equal(t, "5.45", values[domain.MetricEngagement])

	draftEntries, err := f.store.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{f.draft.ID}})
	require.NoError(t, err)
	assert.Empty(t, draftEntries)
}

func TestRunSnapshot_SameDayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)
	f := newSnapshotFixture(t, now)

	_, err := f.service.RunSnapshot(ctx)
	require.NoError(t, err)

	result, err := f.service.RunSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Recorded)
	assert.Equal(t, 2, result.Skipped)

	// no dia seguinte grava de novo
	f.service.clock = func() time.Time { return now.AddDate(0, 0, 1) }
	result, err = f.service.RunSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recorded)

	entries, err := f.store.ListAnalytics(ctx, domain.AnalyticsFilters{})
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestRunSnapshot_NoActiveCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mocks.NewMockCampaignRepository(ctrl)
	collaborations := mocks.NewMockCollaborationRepository(ctrl)
	analytics := mocks.NewMockAnalyticsRepository(ctrl)

	campaigns.EXPECT().
		ListCampaigns(gomock.Any(), domain.CampaignFilters{Status: "active"}).
		Return([]*domain.Campaign{}, nil)

	service := NewAnalyticsSnapshotService(campaigns, collaborations, analytics, &config.Config{})

	result, err := service.RunSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SnapshotResult{}, result)
}

func TestRunSnapshot_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mocks.NewMockCampaignRepository(ctrl)
	collaborations := mocks.NewMockCollaborationRepository(ctrl)
	analytics := mocks.NewMockAnalyticsRepository(ctrl)

	boom := errors.New("database is locked")
	campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return([]*domain.Campaign{{ID: 1}}, nil)
	collaborations.EXPECT().ListCollaborations(gomock.Any(), gomock.Any()).Return(nil, boom)

	service := NewAnalyticsSnapshotService(campaigns, collaborations, analytics, &config.Config{})

	_, err := service.RunSnapshot(context.Background())
	require.ErrorIs(t, err, boom)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, boom.Error(), status["last_error"])
}

func TestRunSnapshot_RejectsOverlappingRuns(t *testing.T) {
	f := newSnapshotFixture(t, time.Now())

	require.True(t, f.service.begin())

	_, err := f.service.RunSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrSyncRunning)
	assert.ErrorIs(t, f.service.TriggerManualSync(), ErrSyncRunning)

	f.service.finish(nil, nil)
	assert.Equal(t, false, f.service.GetStatus()["sync_running"])
}

func TestStart_DisabledIsNoop(t *testing.T) {
	f := newSnapshotFixture(t, time.Now())

	require.NoError(t, f.service.Start(context.Background()))
	assert.Equal(t, false, f.service.GetStatus()["sync_enabled"])
}

func TestStart_InvalidCron(t *testing.T) {
	store := memory.NewStore()
	service := NewAnalyticsSnapshotService(store, store, store, &config.Config{
		AnalyticsSnapshot: config.AnalyticsSnapshot{Enabled: true, CronSchedule: "not a cron"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}

func TestCampaignMetrics_WithoutEngagement(t *testing.T) {
	metrics := campaignMetrics([]*domain.Collaboration{
		{ActualReach: intPtr(100)},
		{},
	})

	require.Len(t, metrics, 1)
	assert.Equal(t, "100", metrics[domain.MetricReach].String())
}

func TestCampaignMetrics_NullEngagementCountsAsZero(t *testing.T) {
	collaborations := []*domain.Collaboration{
		{ActualReach: intPtr(450000), ActualEngagement: decPtr("4.8")},
		{ActualReach: intPtr(320000)},
	}

	metrics := campaignMetrics(collaborations)

	require.Len(t, metrics, 2)
	assert.Equal(t, "770000", metrics[domain.MetricReach].String())
	assert.Equal(t, "2.4", metrics[domain.MetricEngagement].String())
	assert.True(t, domain.CalculateAverageEngagement(collaborations).Equal(metrics[domain.MetricEngagement]))
}
