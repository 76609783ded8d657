package managing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type mockedRepositories struct {
	users          *mocks.MockUserRepository
	influencers    *mocks.MockInfluencerRepository
	campaigns      *mocks.MockCampaignRepository
	collaborations *mocks.MockCollaborationRepository
	analytics      *mocks.MockAnalyticsRepository
}

func newMockedService(t *testing.T) (*Service, mockedRepositories) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockedRepositories{
		users:          mocks.NewMockUserRepository(ctrl),
		influencers:    mocks.NewMockInfluencerRepository(ctrl),
		campaigns:      mocks.NewMockCampaignRepository(ctrl),
		collaborations: mocks.NewMockCollaborationRepository(ctrl),
		analytics:      mocks.NewMockAnalyticsRepository(ctrl),
	}

	svc := NewService(Repositories{
		Users:          m.users,
		Influencers:    m.influencers,
		Campaigns:      m.campaigns,
		Collaborations: m.collaborations,
		Analytics:      m.analytics,
	}, &config.Config{})

	return svc, m
}

var errBackendDown = errors.New("connection refused")

func TestStorageFailuresSurfaceAsStorageError(t *testing.T) {
	ctx := context.Background()

	t.Run("listar influenciadores", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.influencers.EXPECT().ListInfluencers(gomock.Any(), gomock.Any()).Return(nil, errBackendDown)

		_, err := svc.GetInfluencers(ctx, domain.InfluencerFilters{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStorage))
		assert.True(t, errors.Is(err, errBackendDown))

		var managingErr *ManagingError
		require.True(t, errors.As(err, &managingErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, managingErr.Code)
	})

	t.Run("remover influenciador", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.influencers.EXPECT().DeleteInfluencer(gomock.Any(), 7).Return(errBackendDown)

		err := svc.DeleteInfluencer(ctx, 7)
		assert.True(t, errors.Is(err, ErrStorage))
	})

	t.Run("estatísticas", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return([]*domain.Campaign{}, nil)
		m.collaborations.EXPECT().ListCollaborations(gomock.Any(), gomock.Any()).Return(nil, errBackendDown)

		_, err := svc.GetDashboardStats(ctx, nil)
		assert.True(t, errors.Is(err, ErrStorage))
	})

	t.Run("seed", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.influencers.EXPECT().CountInfluencers(gomock.Any()).Return(0, errBackendDown)

		_, err := svc.SeedData(ctx)
		assert.True(t, errors.Is(err, ErrStorage))
	})
}

func TestCreateUser_RaceOnUniqueConstraint(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUserByUsername(gomock.Any(), "sarah").Return(nil, nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(repository.ErrUniqueViolation, errors.New("UNIQUE constraint failed: users.username")))

	_, err := svc.CreateUser(ctx, &domain.CreateUserRequest{Username: "sarah", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestGetCampaigns_MissingCreatorIsIntegrityFault(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()

	m.campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).
		Return([]*domain.Campaign{{ID: 1, CreatedBy: 42, Status: domain.CampaignStatusActive}}, nil)
	m.users.EXPECT().GetUsersByIDs(gomock.Any(), []int{42}).Return([]*domain.User{}, nil)
	m.collaborations.EXPECT().ListCollaborations(gomock.Any(), domain.CollaborationFilters{CampaignIDs: []int{1}}).
		Return([]*domain.Collaboration{}, nil)
	m.influencers.EXPECT().GetInfluencersByIDs(gomock.Any(), []int{}).Return([]*domain.Influencer{}, nil)

	_, err := svc.GetCampaigns(ctx, nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, ErrDataIntegrity))
}

func TestGetCampaigns_MissingInfluencerIsIntegrityFault(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()

	m.campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).
		Return([]*domain.Campaign{{ID: 1, CreatedBy: 2}}, nil)
	m.users.EXPECT().GetUsersByIDs(gomock.Any(), []int{2}).Return([]*domain.User{{ID: 2}}, nil)
	m.collaborations.EXPECT().ListCollaborations(gomock.Any(), gomock.Any()).
		Return([]*domain.Collaboration{{ID: 10, CampaignID: 1, InfluencerID: 5}}, nil)
	m.influencers.EXPECT().GetInfluencersByIDs(gomock.Any(), []int{5}).Return([]*domain.Influencer{}, nil)

	_, err := svc.GetCampaigns(ctx, nil, "")
	assert.True(t, errors.Is(err, ErrDataIntegrity))
}

func TestGetCampaigns_BatchFetchesRelations(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()

	campaigns := []*domain.Campaign{
		{ID: 3, CreatedBy: 1},
		{ID: 2, CreatedBy: 1},
		{ID: 1, CreatedBy: 2},
	}
	collaborations := []*domain.Collaboration{
		{ID: 30, CampaignID: 3, InfluencerID: 7},
		{ID: 20, CampaignID: 2, InfluencerID: 7},
		{ID: 10, CampaignID: 1, InfluencerID: 8},
	}

	// uma chamada por tabela relacionada, independente do número de campanhas
	m.campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(campaigns, nil).Times(1)
	m.users.EXPECT().GetUsersByIDs(gomock.Any(), []int{1, 2}).
		Return([]*domain.User{{ID: 1}, {ID: 2}}, nil).Times(1)
	m.collaborations.EXPECT().ListCollaborations(gomock.Any(), domain.CollaborationFilters{CampaignIDs: []int{3, 2, 1}}).
		Return(collaborations, nil).Times(1)
	m.influencers.EXPECT().GetInfluencersByIDs(gomock.Any(), []int{7, 8}).
		Return([]*domain.Influencer{{ID: 7}, {ID: 8}}, nil).Times(1)

	result, err := svc.GetCampaigns(ctx, nil, "")
	require.NoError(t, err)
	require.Len(t, result, 3)

	for _, c := range result {
		require.Len(t, c.Collaborations, 1)
		assert.Equal(t, c.ID*10, c.Collaborations[0].ID)
	}
	assert.Equal(t, 8, result[2].Collaborations[0].Influencer.ID)
}
