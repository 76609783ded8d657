package managing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// GetCollaborations filtra por campanha e/ou influenciador (AND) e enriquece cada colaboração
func (s *Service) GetCollaborations(ctx context.Context, campaignID, influencerID *int) ([]*domain.CollaborationWithDetails, error) {
	filters := domain.CollaborationFilters{InfluencerID: influencerID}
	if campaignID != nil {
		filters.CampaignIDs = []int{*campaignID}
	}

	collaborations, err := s.collaborationRepository.ListCollaborations(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar colaborações")
		return nil, newStorageError(err, "falha ao listar colaborações")
	}

	result := make([]*domain.CollaborationWithDetails, 0, len(collaborations))
	if len(collaborations) == 0 {
		return result, nil
	}

	campaignIDs := make([]int, 0, len(collaborations))
	influencerIDs := make([]int, 0, len(collaborations))
	for _, col := range collaborations {
		campaignIDs = append(campaignIDs, col.CampaignID)
		influencerIDs = append(influencerIDs, col.InfluencerID)
	}

	campaigns, err := s.campaignRepository.GetCampaignsByIDs(ctx, uniqueIDs(campaignIDs))
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar campanhas das colaborações")
	}
	campaignsByID := make(map[int]*domain.Campaign, len(campaigns))
	for _, c := range campaigns {
		campaignsByID[c.ID] = c
	}

	influencersByID, err := s.influencersByID(ctx, influencerIDs)
	if err != nil {
		return nil, err
	}

	for _, col := range collaborations {
		campaign, ok := campaignsByID[col.CampaignID]
		if !ok {
			return nil, newIntegrityError(col.ID, fmt.Sprintf("campanha %d da colaboração %d não existe", col.CampaignID, col.ID))
		}
		influencer, ok := influencersByID[col.InfluencerID]
		if !ok {
			return nil, newIntegrityError(col.ID, fmt.Sprintf("influenciador %d da colaboração %d não existe", col.InfluencerID, col.ID))
		}

		result = append(result, &domain.CollaborationWithDetails{
			Collaboration: *col,
			Campaign:      campaign,
			Influencer:    influencer,
		})
	}

	return result, nil
}

func (s *Service) CreateCollaboration(ctx context.Context, request *domain.CreateCollaborationRequest) (*domain.Collaboration, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	if err := s.checkCampaignExists(ctx, request.CampaignID); err != nil {
		return nil, err
	}
	if err := s.checkInfluencerExists(ctx, request.InfluencerID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = domain.CollaborationStatusPending
	}

	completedAt := request.CompletedAt
	if status == domain.CollaborationStatusCompleted && completedAt == nil {
		now := s.now()
		completedAt = &now
	}

	collaboration, err := s.collaborationRepository.CreateCollaboration(ctx, &domain.Collaboration{
		CampaignID:       request.CampaignID,
		InfluencerID:     request.InfluencerID,
		Status:           status,
		AgreedRate:       request.AgreedRate,
		Deliverables:     request.Deliverables,
		ActualReach:      request.ActualReach,
		ActualEngagement: request.ActualEngagement,
		CompletedAt:      completedAt,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id":   request.CampaignID,
			"influencer_id": request.InfluencerID,
		}).Error("Erro ao criar colaboração")
		return nil, newStorageError(err, "falha ao criar colaboração")
	}

	return collaboration, nil
}

// UpdateCollaboration aplica o patch parcial. O grafo de status só é exigido com
// COLLABORATION_STRICT_TRANSITIONS; a passagem para completed registra completedAt.
func (s *Service) UpdateCollaboration(ctx context.Context, collaborationID int, request *domain.UpdateCollaborationRequest) (*domain.Collaboration, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	existing, err := s.collaborationRepository.GetCollaborationByID(ctx, collaborationID)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar colaboração")
	}
	if existing == nil {
		return nil, newNotFoundError(apiErrors.ErrCollaborationNotFound, collaborationID, fmt.Sprintf("colaboração %d não encontrada", collaborationID))
	}

	if request.CampaignID != nil {
		if err := s.checkCampaignExists(ctx, *request.CampaignID); err != nil {
			return nil, err
		}
	}
	if request.InfluencerID != nil {
		if err := s.checkInfluencerExists(ctx, *request.InfluencerID); err != nil {
			return nil, err
		}
	}

	patch := *request
	if patch.Status != nil {
		next := *patch.Status

		if s.cfg.Collaboration.StrictTransitions && !existing.Status.CanTransitionTo(next) {
			return nil, newTransitionError(collaborationID, fmt.Sprintf("%s -> %s", existing.Status, next))
		}

		if next == domain.CollaborationStatusCompleted && patch.CompletedAt == nil && existing.CompletedAt == nil {
			now := s.now()
			patch.CompletedAt = &now
		}
	}

	collaboration, err := s.collaborationRepository.UpdateCollaboration(ctx, collaborationID, &patch)
	if err != nil {
		logrus.WithError(err).WithField("collaboration_id", collaborationID).Error("Erro ao atualizar colaboração")
		return nil, newStorageError(err, "falha ao atualizar colaboração")
	}
	if collaboration == nil {
		return nil, newNotFoundError(apiErrors.ErrCollaborationNotFound, collaborationID, fmt.Sprintf("colaboração %d não encontrada", collaborationID))
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		logrus.WithFields(logrus.Fields{
			"collaboration_id": collaborationID,
			"from":             existing.Status,
			"to":               *patch.Status,
		}).Info("Status da colaboração alterado")
	}

	return collaboration, nil
}

func (s *Service) checkCampaignExists(ctx context.Context, campaignID int) error {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return newStorageError(err, "falha ao buscar campanha")
	}
	if campaign == nil {
		return newValidationError(apiErrors.ErrInvalidReference, fmt.Sprintf("campanha %d não existe", campaignID))
	}
	return nil
}

func (s *Service) checkInfluencerExists(ctx context.Context, influencerID int) error {
	influencer, err := s.influencerRepository.GetInfluencerByID(ctx, influencerID)
	if err != nil {
		return newStorageError(err, "falha ao buscar influenciador")
	}
	if influencer == nil {
		return newValidationError(apiErrors.ErrInvalidReference, fmt.Sprintf("influenciador %d não existe", influencerID))
	}
	return nil
}
