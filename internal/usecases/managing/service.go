package managing

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/config"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

// Manager concentra leitura, escrita, enriquecimento e estatísticas das entidades do dashboard
type Manager interface {
	CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	UpdateUser(ctx context.Context, userID int, request *domain.UpdateUserRequest) (*domain.User, error)

	GetInfluencers(ctx context.Context, filters domain.InfluencerFilters) ([]*domain.Influencer, error)
	GetInfluencer(ctx context.Context, influencerID int) (*domain.Influencer, error)
	CreateInfluencer(ctx context.Context, request *domain.CreateInfluencerRequest) (*domain.Influencer, error)
	UpdateInfluencer(ctx context.Context, influencerID int, request *domain.UpdateInfluencerRequest) (*domain.Influencer, error)
	DeleteInfluencer(ctx context.Context, influencerID int) error

	GetCampaigns(ctx context.Context, userID *int, status string) ([]*domain.CampaignWithCollaborations, error)
	GetCampaign(ctx context.Context, campaignID int) (*domain.CampaignWithCollaborations, error)
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID int, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID int) error

	GetCollaborations(ctx context.Context, campaignID, influencerID *int) ([]*domain.CollaborationWithDetails, error)
	CreateCollaboration(ctx context.Context, request *domain.CreateCollaborationRequest) (*domain.Collaboration, error)
	UpdateCollaboration(ctx context.Context, collaborationID int, request *domain.UpdateCollaborationRequest) (*domain.Collaboration, error)

	GetAnalytics(ctx context.Context, campaignID int) ([]*domain.Analytics, error)
	CreateAnalytics(ctx context.Context, request *domain.CreateAnalyticsRequest) (*domain.Analytics, error)

	GetDashboardStats(ctx context.Context, userID *int) (*domain.DashboardStats, error)
	SeedData(ctx context.Context) (*domain.SeedResult, error)
}

// Repositories agrupa os repositórios usados pelo serviço
type Repositories struct {
	Users          repository.UserRepository
	Influencers    repository.InfluencerRepository
	Campaigns      repository.CampaignRepository
	Collaborations repository.CollaborationRepository
	Analytics      repository.AnalyticsRepository
}

type Service struct {
	userRepository          repository.UserRepository
	influencerRepository    repository.InfluencerRepository
	campaignRepository      repository.CampaignRepository
	collaborationRepository repository.CollaborationRepository
	analyticsRepository     repository.AnalyticsRepository
	cfg                     *config.Config
	validate                *validator

	// seedMu serializa SeedData para que chamadas concorrentes não semeiem duas vezes
	seedMu sync.Mutex
	clock  func() time.Time
}

func NewService(repos Repositories, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return &Service{
		userRepository:          repos.Users,
		influencerRepository:    repos.Influencers,
		campaignRepository:      repos.Campaigns,
		collaborationRepository: repos.Collaborations,
		analyticsRepository:     repos.Analytics,
		cfg:                     cfg,
		validate:                newValidator(),
		clock:                   time.Now,
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

// uniqueIDs devolve os ids sem repetição, na ordem em que aparecem
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
