package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

func TestStore_WithClock(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 9, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	store := NewStore(WithClock(func() time.Time { return fixed }))

	inf, err := store.CreateInfluencer(context.Background(), &domain.Influencer{Name: "Emma", Handle: "@emma"})
	require.NoError(t, err)

	assert.True(t, fixed.Equal(inf.CreatedAt))
	assert.Equal(t, time.UTC, inf.CreatedAt.Location())
	assert.Equal(t, inf.CreatedAt, inf.UpdatedAt)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	created, err := store.CreateInfluencer(ctx, &domain.Influencer{Name: "Emma", Handle: "@emma", Followers: 10})
	require.NoError(t, err)

	created.Followers = 999

	stored, err := store.GetInfluencerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Followers)

	list, err := store.ListInfluencers(ctx, domain.InfluencerFilters{})
	require.NoError(t, err)
	list[0].Name = "changed"

	stored, err = store.GetInfluencerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma", stored.Name)
}

func TestStore_DoesNotSharePointerFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	email := "emma@style.com"
	created, err := store.CreateInfluencer(ctx, &domain.Influencer{Name: "Emma", Handle: "@emma", Email: &email})
	require.NoError(t, err)

	// ponteiro de quem chamou não chega ao registro guardado
	email = "caller-changed@x.com"
	*created.Email = "created-changed@x.com"

	got, err := store.GetInfluencerByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Email)
	assert.Equal(t, "emma@style.com", *got.Email)

	// ponteiro devolvido não altera o registro guardado
	*got.Email = "hijacked@x.com"

	again, err := store.GetInfluencerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "emma@style.com", *again.Email)

	bio := "moda e beleza"
	_, err = store.UpdateInfluencer(ctx, created.ID, &domain.UpdateInfluencerRequest{Bio: &bio})
	require.NoError(t, err)
	bio = "patch-changed"

	again, err = store.GetInfluencerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "moda e beleza", *again.Bio)
}

func TestStore_CollaborationPointerFieldsAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	reach := 1000
	rate := decimal.RequireFromString("1500.00")
	created, err := store.CreateCollaboration(ctx, &domain.Collaboration{
		CampaignID:   1,
		InfluencerID: 1,
		Status:       domain.CollaborationStatusActive,
		ActualReach:  &reach,
		AgreedRate:   &rate,
	})
	require.NoError(t, err)

	reach = 5
	rate = decimal.Zero
	*created.ActualReach = 7

	list, err := store.ListCollaborations(ctx, domain.CollaborationFilters{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1000, *list[0].ActualReach)
	assert.Equal(t, "1500", list[0].AgreedRate.String())

	*list[0].ActualReach = 9

	stored, err := store.GetCollaborationByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000, *stored.ActualReach)
}

func TestStore_IDsAreSequentialPerCollection(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	user, err := store.CreateUser(ctx, &domain.User{Username: "sarah"})
	require.NoError(t, err)
	inf, err := store.CreateInfluencer(ctx, &domain.Influencer{Name: "Emma", Handle: "@emma"})
	require.NoError(t, err)
	second, err := store.CreateInfluencer(ctx, &domain.Influencer{Name: "Tech", Handle: "@tech"})
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, 1, inf.ID)
	assert.Equal(t, 2, second.ID)

	// ids removidos não são reaproveitados
	require.NoError(t, store.DeleteInfluencer(ctx, second.ID))
	third, err := store.CreateInfluencer(ctx, &domain.Influencer{Name: "Fit", Handle: "@fit"})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.CreateAnalytics(ctx, &domain.Analytics{CampaignID: 1, Metric: domain.MetricReach, Date: time.Now()})
		}(i)
	}
	wg.Wait()

	entries, err := store.ListAnalytics(ctx, domain.AnalyticsFilters{})
	require.NoError(t, err)
	assert.Len(t, entries, 50)

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.ID], "id %d repetido", e.ID)
		seen[e.ID] = true
	}
}
