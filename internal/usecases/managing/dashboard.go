package managing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

// GetDashboardStats calcula os agregados do dashboard, opcionalmente restritos às campanhas do usuário.
// Alcance e engajamento consideram apenas colaborações concluídas.
func (s *Service) GetDashboardStats(ctx context.Context, userID *int) (*domain.DashboardStats, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx, domain.CampaignFilters{UserID: userID})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas para o dashboard")
		return nil, newStorageError(err, "falha ao calcular estatísticas")
	}

	activeCampaigns := 0
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusActive {
			activeCampaigns++
		}
	}

	// nil = todas as campanhas; lista vazia = nenhuma
	var scope []int
	if userID != nil {
		scope = make([]int, 0, len(campaigns))
		for _, c := range campaigns {
			scope = append(scope, c.ID)
		}
	}

	completed, err := s.collaborationRepository.ListCollaborations(ctx, domain.CollaborationFilters{
		CampaignIDs: scope,
		Status:      domain.CollaborationStatusCompleted,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar colaborações para o dashboard")
		return nil, newStorageError(err, "falha ao calcular estatísticas")
	}

	revenue, err := s.analyticsRepository.ListAnalytics(ctx, domain.AnalyticsFilters{
		CampaignIDs: scope,
		Metric:      domain.MetricRevenue,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar receita para o dashboard")
		return nil, newStorageError(err, "falha ao calcular estatísticas")
	}

	return &domain.DashboardStats{
		ActiveCampaigns:   activeCampaigns,
		TotalReach:        domain.CalculateReach(completed),
		AvgEngagementRate: domain.CalculateAverageEngagement(completed),
		TotalROI:          domain.CalculateROI(completed, revenue),
	}, nil
}
