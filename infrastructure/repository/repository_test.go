package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/infrastructure/database/sqldb"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/memory"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

type repositories struct {
	users          repository.UserRepository
	influencers    repository.InfluencerRepository
	campaigns      repository.CampaignRepository
	collaborations repository.CollaborationRepository
	analytics      repository.AnalyticsRepository
}

func newMemoryRepositories(t *testing.T) repositories {
	t.Helper()

	store := memory.NewStore()
	return repositories{
		users:          store,
		influencers:    store,
		campaigns:      store,
		collaborations: store,
		analytics:      store,
	}
}

func newSQLiteRepositories(t *testing.T) repositories {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "influence-hub.db")

	conn, err := sqldb.NewConnection(ctx, config.Database{Driver: "sqlite", URL: path, DSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, sqldb.Migrate(ctx, conn))
	// migração é idempotente
	require.NoError(t, sqldb.Migrate(ctx, conn))

	return repositories{
		users:          repository.NewUserRepository(conn),
		influencers:    repository.NewInfluencerRepository(conn),
		campaigns:      repository.NewCampaignRepository(conn),
		collaborations: repository.NewCollaborationRepository(conn),
		analytics:      repository.NewAnalyticsRepository(conn),
	}
}

// forEachBackend executa o mesmo caso contra o armazenamento em memória e o sqlite
func forEachBackend(t *testing.T, fn func(t *testing.T, repos repositories)) {
	backends := map[string]func(*testing.T) repositories{
		"memory": newMemoryRepositories,
		"sqlite": newSQLiteRepositories,
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, build(t))
		})
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createUser(t *testing.T, repos repositories, username string) *domain.User {
	t.Helper()

	user, err := repos.users.CreateUser(context.Background(), &domain.User{
		Username:     username,
		Email:        strPtr(username + "@brand.com"),
		PasswordHash: "hash",
		Role:         domain.DefaultUserRole,
	})
	require.NoError(t, err)
	return user
}

func createInfluencer(t *testing.T, repos repositories, name, handle, category string, followers int) *domain.Influencer {
	t.Helper()

	inf, err := repos.influencers.CreateInfluencer(context.Background(), &domain.Influencer{
		Name:           name,
		Handle:         handle,
		Category:       category,
		Followers:      followers,
		EngagementRate: dec("4.8"),
		RatePerPost:    dec("500"),
	})
	require.NoError(t, err)
	return inf
}

func createCampaign(t *testing.T, repos repositories, name string, createdBy int, status domain.CampaignStatus) *domain.Campaign {
	t.Helper()

	campaign, err := repos.campaigns.CreateCampaign(context.Background(), &domain.Campaign{
		Name:      name,
		Category:  domain.CategoryFashionBeauty,
		Budget:    dec("15000"),
		Status:    status,
		CreatedBy: createdBy,
	})
	require.NoError(t, err)
	return campaign
}

func createCollaboration(t *testing.T, repos repositories, campaignID, influencerID int, status domain.CollaborationStatus) *domain.Collaboration {
	t.Helper()

	rate := dec("1200.50")
	col, err := repos.collaborations.CreateCollaboration(context.Background(), &domain.Collaboration{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       status,
		AgreedRate:   &rate,
	})
	require.NoError(t, err)
	return col
}

func TestUserRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		sarah := createUser(t, repos, "sarah")
		assert.Positive(t, sarah.ID)
		assert.False(t, sarah.CreatedAt.IsZero())
		assert.Nil(t, sarah.FirstName)

		byName, err := repos.users.GetUserByUsername(ctx, "sarah")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, sarah.ID, byName.ID)
		assert.Equal(t, "hash", byName.PasswordHash)

		byEmail, err := repos.users.GetUserByEmail(ctx, "sarah@brand.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, sarah.ID, byEmail.ID)

		missing, err := repos.users.GetUserByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		_, err = repos.users.CreateUser(ctx, &domain.User{Username: "sarah", PasswordHash: "x", Role: "r"})
		assert.True(t, errors.Is(err, repository.ErrUniqueViolation))

		updated, err := repos.users.UpdateUser(ctx, sarah.ID, &domain.UpdateUserRequest{FirstName: strPtr("Sarah")})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Sarah", *updated.FirstName)
		assert.Equal(t, "sarah", updated.Username)

		absent, err := repos.users.UpdateUser(ctx, 999, &domain.UpdateUserRequest{FirstName: strPtr("X")})
		require.NoError(t, err)
		assert.Nil(t, absent)

		other := createUser(t, repos, "mike")
		users, err := repos.users.GetUsersByIDs(ctx, []int{other.ID, sarah.ID, 999})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, sarah.ID, users[0].ID)

		none, err := repos.users.GetUsersByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestInfluencerRepository_ListFilters(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		emma := createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)
		tech := createInfluencer(t, repos, "TechReviewer", "@techreviewer", domain.CategoryTechnology, 280000)
		travel := createInfluencer(t, repos, "Wanderlust Tales", "@wanderlust_tales", domain.CategoryTravel, 680000)

		all, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Category: domain.AllCategories})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{travel.ID, emma.ID, tech.ID}, []int{all[0].ID, all[1].ID, all[2].ID})
		assert.Equal(t, "4.8", all[0].EngagementRate.String())

		byCategory, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Category: domain.CategoryTechnology})
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, tech.ID, byCategory[0].ID)

		byRange, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{
			MinFollowers: intPtr(280000),
			MaxFollowers: intPtr(450000),
		})
		require.NoError(t, err)
		assert.Len(t, byRange, 2)

		bySearch, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Search: "STYLE"})
		require.NoError(t, err)
		require.Len(t, bySearch, 1)
		assert.Equal(t, emma.ID, bySearch[0].ID)

		// curingas do LIKE são tratados como texto
		wildcard, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Search: "_tales"})
		require.NoError(t, err)
		require.Len(t, wildcard, 1)
		assert.Equal(t, travel.ID, wildcard[0].ID)

		percent, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, percent)

		count, err := repos.influencers.CountInfluencers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestInfluencerRepository_SearchFoldsNonASCIICase(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		elodie := createInfluencer(t, repos, "ÉLODIE Martin", "@elodie", domain.CategoryLifestyle, 120000)
		createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)

		for _, search := range []string{"élodie", "ÉLODIE", "Élodie mar"} {
			found, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{Search: search})
			require.NoError(t, err)
			require.Len(t, found, 1, search)
			assert.Equal(t, elodie.ID, found[0].ID)
		}

		combined, err := repos.influencers.ListInfluencers(ctx, domain.InfluencerFilters{
			Search:       "élodie",
			MinFollowers: intPtr(200000),
		})
		require.NoError(t, err)
		assert.Empty(t, combined)
	})
}

func TestInfluencerRepository_UniqueHandleAndUpdate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		emma := createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)
		tech := createInfluencer(t, repos, "TechReviewer", "@techreviewer", domain.CategoryTechnology, 280000)

		_, err := repos.influencers.CreateInfluencer(ctx, &domain.Influencer{
			Name: "Copy", Handle: "@emmastyle", Category: domain.CategoryLifestyle,
		})
		assert.True(t, errors.Is(err, repository.ErrUniqueViolation))

		_, err = repos.influencers.UpdateInfluencer(ctx, tech.ID, &domain.UpdateInfluencerRequest{Handle: strPtr("@emmastyle")})
		assert.True(t, errors.Is(err, repository.ErrUniqueViolation))

		rate := dec("5.25")
		updated, err := repos.influencers.UpdateInfluencer(ctx, emma.ID, &domain.UpdateInfluencerRequest{
			EngagementRate: &rate,
			IsVerified:     boolPtr(true),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "5.25", updated.EngagementRate.String())
		assert.True(t, updated.IsVerified)
		assert.Equal(t, "Emma Style", updated.Name)

		byHandle, err := repos.influencers.GetInfluencerByHandle(ctx, "@emmastyle")
		require.NoError(t, err)
		require.NotNil(t, byHandle)
		assert.True(t, byHandle.IsVerified)

		absent, err := repos.influencers.UpdateInfluencer(ctx, 999, &domain.UpdateInfluencerRequest{Name: strPtr("x")})
		require.NoError(t, err)
		assert.Nil(t, absent)
	})
}

func boolPtr(b bool) *bool { return &b }

func TestDeleteInfluencer_Cascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		user := createUser(t, repos, "sarah")
		emma := createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)
		tech := createInfluencer(t, repos, "TechReviewer", "@techreviewer", domain.CategoryTechnology, 280000)
		campaign := createCampaign(t, repos, "Summer Fashion", user.ID, domain.CampaignStatusActive)

		emmaCol := createCollaboration(t, repos, campaign.ID, emma.ID, domain.CollaborationStatusActive)
		techCol := createCollaboration(t, repos, campaign.ID, tech.ID, domain.CollaborationStatusPending)

		_, err := repos.analytics.CreateAnalytics(ctx, &domain.Analytics{
			CampaignID: campaign.ID, CollaborationID: &emmaCol.ID, Metric: domain.MetricReach,
			Value: dec("1000"), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		_, err = repos.analytics.CreateAnalytics(ctx, &domain.Analytics{
			CampaignID: campaign.ID, Metric: domain.MetricRevenue,
			Value: dec("500"), Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		require.NoError(t, repos.influencers.DeleteInfluencer(ctx, emma.ID))
		// remover de novo não é erro
		require.NoError(t, repos.influencers.DeleteInfluencer(ctx, emma.ID))

		gone, err := repos.influencers.GetInfluencerByID(ctx, emma.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		col, err := repos.collaborations.GetCollaborationByID(ctx, emmaCol.ID)
		require.NoError(t, err)
		assert.Nil(t, col)

		remaining, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{})
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, techCol.ID, remaining[0].ID)

		entries, err := repos.analytics.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{campaign.ID}})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.MetricRevenue, entries[0].Metric)
	})
}

func TestCampaignRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		sarah := createUser(t, repos, "sarah")
		mike := createUser(t, repos, "mike")

		first := createCampaign(t, repos, "Summer Fashion", sarah.ID, domain.CampaignStatusActive)
		second := createCampaign(t, repos, "Tech Launch", sarah.ID, domain.CampaignStatusDraft)
		third := createCampaign(t, repos, "Fitness", mike.ID, domain.CampaignStatusActive)

		all, err := repos.campaigns.ListCampaigns(ctx, domain.CampaignFilters{Status: domain.CampaignStatusAll})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{third.ID, second.ID, first.ID}, []int{all[0].ID, all[1].ID, all[2].ID})
		assert.Equal(t, "15000", all[0].Budget.String())

		mine, err := repos.campaigns.ListCampaigns(ctx, domain.CampaignFilters{UserID: &sarah.ID})
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		active, err := repos.campaigns.ListCampaigns(ctx, domain.CampaignFilters{UserID: &sarah.ID, Status: "active"})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, first.ID, active[0].ID)

		byIDs, err := repos.campaigns.GetCampaignsByIDs(ctx, []int{third.ID, first.ID, first.ID})
		require.NoError(t, err)
		require.Len(t, byIDs, 2)
		assert.Equal(t, first.ID, byIDs[0].ID)

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		status := domain.CampaignStatusCompleted
		updated, err := repos.campaigns.UpdateCampaign(ctx, second.ID, &domain.UpdateCampaignRequest{
			Status:    &status,
			StartDate: &start,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.CampaignStatusCompleted, updated.Status)
		require.NotNil(t, updated.StartDate)
		assert.True(t, start.Equal(*updated.StartDate))
		assert.Nil(t, updated.EndDate)

		absent, err := repos.campaigns.UpdateCampaign(ctx, 999, &domain.UpdateCampaignRequest{Status: &status})
		require.NoError(t, err)
		assert.Nil(t, absent)
	})
}

func TestDeleteCampaign_Cascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		user := createUser(t, repos, "sarah")
		emma := createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)
		keep := createCampaign(t, repos, "Keep", user.ID, domain.CampaignStatusActive)
		drop := createCampaign(t, repos, "Drop", user.ID, domain.CampaignStatusActive)

		createCollaboration(t, repos, keep.ID, emma.ID, domain.CollaborationStatusActive)
		dropCol := createCollaboration(t, repos, drop.ID, emma.ID, domain.CollaborationStatusActive)

		for _, campaignID := range []int{keep.ID, drop.ID} {
			_, err := repos.analytics.CreateAnalytics(ctx, &domain.Analytics{
				CampaignID: campaignID, Metric: domain.MetricClicks,
				Value: dec("10"), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
		}

		require.NoError(t, repos.campaigns.DeleteCampaign(ctx, drop.ID))
		require.NoError(t, repos.campaigns.DeleteCampaign(ctx, 999))

		gone, err := repos.campaigns.GetCampaignByID(ctx, drop.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		col, err := repos.collaborations.GetCollaborationByID(ctx, dropCol.ID)
		require.NoError(t, err)
		assert.Nil(t, col)

		entries, err := repos.analytics.ListAnalytics(ctx, domain.AnalyticsFilters{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, keep.ID, entries[0].CampaignID)

		inf, err := repos.influencers.GetInfluencerByID(ctx, emma.ID)
		require.NoError(t, err)
		assert.NotNil(t, inf)
	})
}

func TestCollaborationRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		user := createUser(t, repos, "sarah")
		emma := createInfluencer(t, repos, "Emma Style", "@emmastyle", domain.CategoryFashionBeauty, 450000)
		tech := createInfluencer(t, repos, "TechReviewer", "@techreviewer", domain.CategoryTechnology, 280000)
		summer := createCampaign(t, repos, "Summer", user.ID, domain.CampaignStatusActive)
		launch := createCampaign(t, repos, "Launch", user.ID, domain.CampaignStatusActive)

		first := createCollaboration(t, repos, summer.ID, emma.ID, domain.CollaborationStatusActive)
		second := createCollaboration(t, repos, summer.ID, tech.ID, domain.CollaborationStatusCompleted)
		third := createCollaboration(t, repos, launch.ID, tech.ID, domain.CollaborationStatusPending)

		assert.Equal(t, "1200.5", first.AgreedRate.String())
		assert.Nil(t, first.CompletedAt)

		all, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int{third.ID, second.ID, first.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

		bySummer, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{CampaignIDs: []int{summer.ID}})
		require.NoError(t, err)
		assert.Len(t, bySummer, 2)

		byTech, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{InfluencerID: &tech.ID})
		require.NoError(t, err)
		assert.Len(t, byTech, 2)

		completed, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{Status: domain.CollaborationStatusCompleted})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, second.ID, completed[0].ID)

		// escopo vazio não casa nada
		empty, err := repos.collaborations.ListCollaborations(ctx, domain.CollaborationFilters{CampaignIDs: []int{}})
		require.NoError(t, err)
		assert.Empty(t, empty)

		completedAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
		status := domain.CollaborationStatusCompleted
		engagement := dec("6.1")
		updated, err := repos.collaborations.UpdateCollaboration(ctx, first.ID, &domain.UpdateCollaborationRequest{
			Status:           &status,
			ActualReach:      intPtr(320000),
			ActualEngagement: &engagement,
			CompletedAt:      &completedAt,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.CollaborationStatusCompleted, updated.Status)
		assert.Equal(t, 320000, *updated.ActualReach)
		assert.Equal(t, "6.1", updated.ActualEngagement.String())
		require.NotNil(t, updated.CompletedAt)
		assert.True(t, completedAt.Equal(*updated.CompletedAt))
		assert.Equal(t, "1200.5", updated.AgreedRate.String())

		absent, err := repos.collaborations.UpdateCollaboration(ctx, 999, &domain.UpdateCollaborationRequest{Status: &status})
		require.NoError(t, err)
		assert.Nil(t, absent)
	})
}

func TestAnalyticsRepository(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos repositories) {
		ctx := context.Background()

		user := createUser(t, repos, "sarah")
		summer := createCampaign(t, repos, "Summer", user.ID, domain.CampaignStatusActive)
		launch := createCampaign(t, repos, "Launch", user.ID, domain.CampaignStatusActive)

		entries := []struct {
			campaignID int
			metric     string
			value      string
			day        int
		}{
			{summer.ID, domain.MetricRevenue, "2500.75", 3},
			{summer.ID, domain.MetricReach, "120000", 1},
			{summer.ID, domain.MetricRevenue, "1000", 2},
			{launch.ID, domain.MetricRevenue, "300", 1},
		}
		for _, e := range entries {
			_, err := repos.analytics.CreateAnalytics(ctx, &domain.Analytics{
				CampaignID: e.campaignID,
				Metric:     e.metric,
				Value:      dec(e.value),
				Date:       time.Date(2024, 6, e.day, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
		}

		summerEntries, err := repos.analytics.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{summer.ID}})
		require.NoError(t, err)
		require.Len(t, summerEntries, 3)
		assert.Equal(t, 1, summerEntries[0].Date.Day())
		assert.Equal(t, 3, summerEntries[2].Date.Day())
		assert.Equal(t, "2500.75", summerEntries[2].Value.String())
		assert.Nil(t, summerEntries[0].CollaborationID)

		revenue, err := repos.analytics.ListAnalytics(ctx, domain.AnalyticsFilters{Metric: domain.MetricRevenue})
		require.NoError(t, err)
		assert.Len(t, revenue, 3)

		none, err := repos.analytics.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{}})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
