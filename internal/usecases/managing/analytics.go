package managing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// GetAnalytics retorna a série da campanha em ordem cronológica
func (s *Service) GetAnalytics(ctx context.Context, campaignID int) ([]*domain.Analytics, error) {
	entries, err := s.analyticsRepository.ListAnalytics(ctx, domain.AnalyticsFilters{CampaignIDs: []int{campaignID}})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao listar métricas")
		return nil, newStorageError(err, "falha ao listar métricas")
	}

	return entries, nil
}

func (s *Service) CreateAnalytics(ctx context.Context, request *domain.CreateAnalyticsRequest) (*domain.Analytics, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	if err := s.checkCampaignExists(ctx, request.CampaignID); err != nil {
		return nil, err
	}

	if request.CollaborationID != nil {
		collaboration, err := s.collaborationRepository.GetCollaborationByID(ctx, *request.CollaborationID)
		if err != nil {
			return nil, newStorageError(err, "falha ao buscar colaboração")
		}
		if collaboration == nil {
			return nil, newValidationError(apiErrors.ErrInvalidReference, fmt.Sprintf("colaboração %d não existe", *request.CollaborationID))
		}
		if collaboration.CampaignID != request.CampaignID {
			return nil, newValidationError(apiErrors.ErrInvalidReference, fmt.Sprintf("colaboração %d não pertence à campanha %d", collaboration.ID, request.CampaignID))
		}
	}

	entry, err := s.analyticsRepository.CreateAnalytics(ctx, &domain.Analytics{
		CampaignID:      request.CampaignID,
		CollaborationID: request.CollaborationID,
		Metric:          request.Metric,
		Value:           request.Value,
		Date:            request.Date,
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", request.CampaignID).Error("Erro ao registrar métrica")
		return nil, newStorageError(err, "falha ao registrar métrica")
	}

	return entry, nil
}
