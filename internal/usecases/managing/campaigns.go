package managing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// GetCampaigns lista as campanhas (mais recentes primeiro) com criador e colaborações.
// Status vazio ou "all" não filtra.
func (s *Service) GetCampaigns(ctx context.Context, userID *int, status string) ([]*domain.CampaignWithCollaborations, error) {
	filters := domain.CampaignFilters{UserID: userID, Status: status}
	if filters.HasStatus() && !domain.CampaignStatus(status).IsValid() {
		return nil, newValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf("status de campanha inválido: %q", status))
	}

	campaigns, err := s.campaignRepository.ListCampaigns(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas")
		return nil, newStorageError(err, "falha ao listar campanhas")
	}

	return s.enrichCampaigns(ctx, campaigns)
}

// GetCampaign retorna nil sem erro quando a campanha não existe
func (s *Service) GetCampaign(ctx context.Context, campaignID int) (*domain.CampaignWithCollaborations, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar campanha")
	}
	if campaign == nil {
		return nil, nil
	}

	enriched, err := s.enrichCampaigns(ctx, []*domain.Campaign{campaign})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

// enrichCampaigns busca criadores, colaborações e influenciadores em lote, uma consulta por tabela
func (s *Service) enrichCampaigns(ctx context.Context, campaigns []*domain.Campaign) ([]*domain.CampaignWithCollaborations, error) {
	result := make([]*domain.CampaignWithCollaborations, 0, len(campaigns))
	if len(campaigns) == 0 {
		return result, nil
	}

	campaignIDs := make([]int, 0, len(campaigns))
	creatorIDs := make([]int, 0, len(campaigns))
	for _, c := range campaigns {
		campaignIDs = append(campaignIDs, c.ID)
		creatorIDs = append(creatorIDs, c.CreatedBy)
	}

	creators, err := s.userRepository.GetUsersByIDs(ctx, uniqueIDs(creatorIDs))
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar criadores das campanhas")
	}
	creatorsByID := make(map[int]*domain.User, len(creators))
	for _, u := range creators {
		creatorsByID[u.ID] = u
	}

	collaborations, err := s.collaborationRepository.ListCollaborations(ctx, domain.CollaborationFilters{CampaignIDs: campaignIDs})
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar colaborações das campanhas")
	}

	influencerIDs := make([]int, 0, len(collaborations))
	for _, col := range collaborations {
		influencerIDs = append(influencerIDs, col.InfluencerID)
	}

	influencersByID, err := s.influencersByID(ctx, influencerIDs)
	if err != nil {
		return nil, err
	}

	byCampaign := make(map[int][]*domain.CollaborationWithInfluencer, len(campaigns))
	for _, col := range collaborations {
		influencer, ok := influencersByID[col.InfluencerID]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"collaboration_id": col.ID,
				"influencer_id":    col.InfluencerID,
			}).Error("Colaboração referencia influenciador inexistente")
			return nil, newIntegrityError(col.ID, fmt.Sprintf("influenciador %d da colaboração %d não existe", col.InfluencerID, col.ID))
		}
		byCampaign[col.CampaignID] = append(byCampaign[col.CampaignID], &domain.CollaborationWithInfluencer{
			Collaboration: *col,
			Influencer:    influencer,
		})
	}

	for _, c := range campaigns {
		creator, ok := creatorsByID[c.CreatedBy]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"campaign_id": c.ID,
				"created_by":  c.CreatedBy,
			}).Error("Campanha referencia criador inexistente")
			return nil, newIntegrityError(c.ID, fmt.Sprintf("criador %d da campanha %d não existe", c.CreatedBy, c.ID))
		}

		cols := byCampaign[c.ID]
		if cols == nil {
			cols = []*domain.CollaborationWithInfluencer{}
		}

		result = append(result, &domain.CampaignWithCollaborations{
			Campaign:       *c,
			Creator:        creator,
			Collaborations: cols,
		})
	}

	return result, nil
}

func (s *Service) influencersByID(ctx context.Context, ids []int) (map[int]*domain.Influencer, error) {
	influencers, err := s.influencerRepository.GetInfluencersByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar influenciadores")
	}

	byID := make(map[int]*domain.Influencer, len(influencers))
	for _, inf := range influencers {
		byID[inf.ID] = inf
	}

	return byID, nil
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	if err := checkDateRange(request.StartDate, request.EndDate); err != nil {
		return nil, err
	}

	if err := s.checkUserExists(ctx, request.CreatedBy); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}

	campaign, err := s.campaignRepository.CreateCampaign(ctx, &domain.Campaign{
		Name:           request.Name,
		Description:    request.Description,
		Category:       request.Category,
		Budget:         request.Budget,
		Status:         status,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		TargetAudience: request.TargetAudience,
		Goals:          request.Goals,
		CreatedBy:      request.CreatedBy,
	})
	if err != nil {
		logrus.WithError(err).WithField("name", request.Name).Error("Erro ao criar campanha")
		return nil, newStorageError(err, "falha ao criar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"created_by":  campaign.CreatedBy,
	}).Info("Campanha criada")

	return campaign, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, campaignID int, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	existing, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar campanha")
	}
	if existing == nil {
		return nil, newNotFoundError(apiErrors.ErrCampaignNotFound, campaignID, fmt.Sprintf("campanha %d não encontrada", campaignID))
	}

	merged := *existing
	request.Apply(&merged)
	if err := checkDateRange(merged.StartDate, merged.EndDate); err != nil {
		return nil, err
	}

	if request.CreatedBy != nil {
		if err := s.checkUserExists(ctx, *request.CreatedBy); err != nil {
			return nil, err
		}
	}

	campaign, err := s.campaignRepository.UpdateCampaign(ctx, campaignID, request)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao atualizar campanha")
		return nil, newStorageError(err, "falha ao atualizar campanha")
	}
	if campaign == nil {
		return nil, newNotFoundError(apiErrors.ErrCampaignNotFound, campaignID, fmt.Sprintf("campanha %d não encontrada", campaignID))
	}

	return campaign, nil
}

// DeleteCampaign remove a campanha com colaborações e métricas. Id inexistente não é erro.
func (s *Service) DeleteCampaign(ctx context.Context, campaignID int) error {
	if err := s.campaignRepository.DeleteCampaign(ctx, campaignID); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao remover campanha")
		return newStorageError(err, "falha ao remover campanha")
	}

	return nil
}

func (s *Service) checkUserExists(ctx context.Context, userID int) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return newStorageError(err, "falha ao buscar usuário")
	}
	if user == nil {
		return newValidationError(apiErrors.ErrInvalidReference, fmt.Sprintf("usuário %d não existe", userID))
	}
	return nil
}

func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return newValidationError(apiErrors.ErrInvalidRequest, "endDate anterior a startDate")
	}
	return nil
}
