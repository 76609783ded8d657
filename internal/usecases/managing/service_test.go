package managing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/memory"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

// tickingClock avança um segundo a cada leitura para que os timestamps sejam distintos
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{t: time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newMemoryService(t *testing.T, cfg *config.Config) (*Service, *memory.Store) {
	t.Helper()

	clock := newTickingClock()
	store := memory.NewStore(memory.WithClock(clock.Now))

	if cfg == nil {
		cfg = &config.Config{}
	}
	if cfg.Seed.AdminPassword == "" {
		cfg.Seed.AdminPassword = "demo-password"
	}

	svc := NewService(Repositories{
		Users:          store,
		Influencers:    store,
		Campaigns:      store,
		Collaborations: store,
		Analytics:      store,
	}, cfg)
	svc.clock = clock.Now

	return svc, store
}

func mustCreateUser(t *testing.T, svc *Service, username string) *domain.User {
	t.Helper()

	user, err := svc.CreateUser(context.Background(), &domain.CreateUserRequest{
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)

	return user
}

func mustCreateInfluencer(t *testing.T, svc *Service, name, handle, category string, followers int) *domain.Influencer {
	t.Helper()

	inf, err := svc.CreateInfluencer(context.Background(), &domain.CreateInfluencerRequest{
		Name:           name,
		Handle:         handle,
		Category:       category,
		Followers:      followers,
		EngagementRate: decimal.RequireFromString("4.5"),
		RatePerPost:    decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	return inf
}

func mustCreateCampaign(t *testing.T, svc *Service, userID int, name string, status domain.CampaignStatus) *domain.Campaign {
	t.Helper()

	campaign, err := svc.CreateCampaign(context.Background(), &domain.CreateCampaignRequest{
		Name:      name,
		Category:  domain.CategoryFashionBeauty,
		Budget:    decimal.NewFromInt(1000),
		Status:    status,
		CreatedBy: userID,
	})
	require.NoError(t, err)

	return campaign
}

func mustCreateCollaboration(t *testing.T, svc *Service, req *domain.CreateCollaborationRequest) *domain.Collaboration {
	t.Helper()

	col, err := svc.CreateCollaboration(context.Background(), req)
	require.NoError(t, err)

	return col
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
