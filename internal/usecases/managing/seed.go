package managing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const seedAdminUsername = "admin"

// SeedData carrega os dados de demonstração quando não há influenciadores.
// Chamadas repetidas não alteram nada; a carga não é transacional.
func (s *Service) SeedData(ctx context.Context) (*domain.SeedResult, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	count, err := s.influencerRepository.CountInfluencers(ctx)
	if err != nil {
		return nil, newStorageError(err, "falha ao verificar dados existentes")
	}
	if count > 0 {
		logrus.WithField("influencers", count).Info("Seed ignorado: já existem influenciadores")
		return &domain.SeedResult{Seeded: false, Message: "Dados já existentes, nada a fazer"}, nil
	}

	result := &domain.SeedResult{Seeded: true, Message: "Dados de demonstração criados"}

	admin, err := s.seedAdmin(ctx, result)
	if err != nil {
		return nil, err
	}

	influencers := make([]*domain.Influencer, 0, len(seedInfluencers))
	for _, inf := range seedInfluencers {
		created, err := s.influencerRepository.CreateInfluencer(ctx, inf)
		if err != nil {
			logrus.WithError(err).WithField("handle", inf.Handle).Error("Erro ao semear influenciador")
			return nil, newStorageError(err, "falha ao semear influenciadores")
		}
		influencers = append(influencers, created)
	}
	result.Influencers = len(influencers)

	campaigns := make([]*domain.Campaign, 0, len(seedCampaigns))
	for _, c := range seedCampaigns {
		campaign := *c
		campaign.CreatedBy = admin.ID

		created, err := s.campaignRepository.CreateCampaign(ctx, &campaign)
		if err != nil {
			logrus.WithError(err).WithField("name", c.Name).Error("Erro ao semear campanha")
			return nil, newStorageError(err, "falha ao semear campanhas")
		}
		campaigns = append(campaigns, created)
	}
	result.Campaigns = len(campaigns)

	for i, col := range seedCollaborations {
		collaboration := *col
		collaboration.CampaignID = campaigns[i].ID
		collaboration.InfluencerID = influencers[i].ID

		if _, err := s.collaborationRepository.CreateCollaboration(ctx, &collaboration); err != nil {
			logrus.WithError(err).Error("Erro ao semear colaboração")
			return nil, newStorageError(err, "falha ao semear colaborações")
		}
		result.Collaborations++
	}

	logrus.WithFields(logrus.Fields{
		"influencers":    result.Influencers,
		"campaigns":      result.Campaigns,
		"collaborations": result.Collaborations,
	}).Info("Seed concluído")

	return result, nil
}

// seedAdmin reaproveita o usuário admin quando ele já existe
func (s *Service) seedAdmin(ctx context.Context, result *domain.SeedResult) (*domain.User, error) {
	admin, err := s.userRepository.GetUserByUsername(ctx, seedAdminUsername)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar usuário admin")
	}
	if admin != nil {
		return admin, nil
	}

	password := s.cfg.Seed.AdminPassword
	if password == "" {
		password, err = utils.GenerateSecret(16)
		if err != nil {
			return nil, &ManagingError{Err: ErrStorage, Cause: err, Code: apiErrors.ErrInternalServer, Details: "falha ao gerar senha do admin"}
		}
		logrus.WithField("username", seedAdminUsername).Warn("SEED_ADMIN_PASSWORD não configurada, senha aleatória gerada para o admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &ManagingError{Err: ErrStorage, Cause: err, Code: apiErrors.ErrInternalServer, Details: "falha ao processar senha do admin"}
	}

	admin, err = s.userRepository.CreateUser(ctx, &domain.User{
		Username:        seedAdminUsername,
		Email:           ptr("admin@influencehub.com"),
		PasswordHash:    string(hash),
		Role:            domain.DefaultUserRole,
		FirstName:       ptr("Sarah"),
		LastName:        ptr("Johnson"),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150"),
	})
	if err != nil {
		return nil, newStorageError(err, "falha ao semear usuário admin")
	}
	result.Users = 1

	return admin, nil
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

var seedInfluencers = []*domain.Influencer{
	{
		Name:            "Emma Style",
		Handle:          "@emmastyle",
		Email:           ptr("emma@style.com"),
		Category:        domain.CategoryFashionBeauty,
		Followers:       450000,
		EngagementRate:  decimal.RequireFromString("4.8"),
		RatePerPost:     decimal.NewFromInt(500),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1524504388940-b1c1722653e1?w=150&h=150"),
		Bio:             ptr("Fashion influencer sharing daily style inspiration"),
		IsVerified:      true,
	},
	{
		Name:            "TechReviewer",
		Handle:          "@techreviewer",
		Email:           ptr("tech@reviewer.com"),
		Category:        domain.CategoryTechnology,
		Followers:       280000,
		EngagementRate:  decimal.RequireFromString("5.2"),
		RatePerPost:     decimal.NewFromInt(400),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150"),
		Bio:             ptr("Tech enthusiast reviewing the latest gadgets"),
		IsVerified:      true,
	},
	{
		Name:            "FitLife Coach",
		Handle:          "@fitlifecoach",
		Email:           ptr("fit@life.com"),
		Category:        domain.CategoryHealthFitness,
		Followers:       320000,
		EngagementRate:  decimal.RequireFromString("6.1"),
		RatePerPost:     decimal.NewFromInt(350),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=150&h=150"),
		Bio:             ptr("Fitness coach helping people live their best life"),
		IsVerified:      true,
	},
	{
		Name:            "Foodie Adventures",
		Handle:          "@foodieadventures",
		Email:           ptr("foodie@adventures.com"),
		Category:        domain.CategoryFoodLifestyle,
		Followers:       190000,
		EngagementRate:  decimal.RequireFromString("7.3"),
		RatePerPost:     decimal.NewFromInt(300),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150"),
		Bio:             ptr("Food blogger exploring culinary adventures"),
	},
	{
		Name:            "Wanderlust Tales",
		Handle:          "@wanderlusttales",
		Email:           ptr("wander@lust.com"),
		Category:        domain.CategoryTravel,
		Followers:       680000,
		EngagementRate:  decimal.RequireFromString("4.9"),
		RatePerPost:     decimal.NewFromInt(750),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=150&h=150"),
		Bio:             ptr("Travel blogger sharing stories from around the world"),
		IsVerified:      true,
	},
	{
		Name:            "Lifestyle Maven",
		Handle:          "@lifestylemaven",
		Email:           ptr("lifestyle@maven.com"),
		Category:        domain.CategoryLifestyle,
		Followers:       520000,
		EngagementRate:  decimal.RequireFromString("5.5"),
		RatePerPost:     decimal.NewFromInt(600),
		ProfileImageURL: ptr("https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150"),
		Bio:             ptr("Lifestyle influencer sharing daily inspiration"),
		IsVerified:      true,
	},
}

var seedCampaigns = []*domain.Campaign{
	{
		Name:           "Summer Fashion Collection",
		Description:    ptr("Beauty & Fashion campaign targeting young women aged 18-35"),
		Category:       domain.CategoryFashionBeauty,
		Budget:         decimal.NewFromInt(7500),
		Status:         domain.CampaignStatusActive,
		StartDate:      date(2024, time.June, 15),
		EndDate:        date(2024, time.July, 15),
		TargetAudience: ptr("Young women aged 18-35"),
		Goals:          ptr("Increase brand awareness and drive sales"),
	},
	{
		Name:           "Tech Product Launch",
		Description:    ptr("Launch campaign for new smartphone targeting tech enthusiasts"),
		Category:       domain.CategoryTechnology,
		Budget:         decimal.NewFromInt(5200),
		Status:         domain.CampaignStatusPending,
		StartDate:      date(2024, time.July, 1),
		EndDate:        date(2024, time.August, 1),
		TargetAudience: ptr("Tech enthusiasts aged 25-45"),
		Goals:          ptr("Generate buzz for product launch"),
	},
	{
		Name:           "Fitness Challenge",
		Description:    ptr("Health & Fitness campaign promoting workout program"),
		Category:       domain.CategoryHealthFitness,
		Budget:         decimal.NewFromInt(2200),
		Status:         domain.CampaignStatusCompleted,
		StartDate:      date(2024, time.May, 1),
		EndDate:        date(2024, time.May, 31),
		TargetAudience: ptr("Fitness enthusiasts aged 20-40"),
		Goals:          ptr("Promote new workout program"),
	},
}

// seedCollaborations[i] liga seedCampaigns[i] a seedInfluencers[i]
var seedCollaborations = []*domain.Collaboration{
	{
		Status:           domain.CollaborationStatusCompleted,
		AgreedRate:       ptr(decimal.NewFromInt(500)),
		Deliverables:     ptr("2 Instagram posts, 1 story"),
		ActualReach:      ptr(450000),
		ActualEngagement: ptr(decimal.RequireFromString("4.8")),
		CompletedAt:      date(2024, time.June, 20),
	},
	{
		Status:       domain.CollaborationStatusPending,
		AgreedRate:   ptr(decimal.NewFromInt(400)),
		Deliverables: ptr("1 YouTube review, 2 Instagram posts"),
	},
	{
		Status:           domain.CollaborationStatusCompleted,
		AgreedRate:       ptr(decimal.NewFromInt(350)),
		Deliverables:     ptr("3 workout videos, 5 Instagram posts"),
		ActualReach:      ptr(320000),
		ActualEngagement: ptr(decimal.RequireFromString("6.1")),
		CompletedAt:      date(2024, time.May, 25),
	},
}
