package managing

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// GetInfluencers aplica todos os filtros (AND) e ordena por seguidores, do maior para o menor
func (s *Service) GetInfluencers(ctx context.Context, filters domain.InfluencerFilters) ([]*domain.Influencer, error) {
	influencers, err := s.influencerRepository.ListInfluencers(ctx, filters)
	if err != nil {
		logrus.WithError(err).WithField("filters", filters).Error("Erro ao listar influenciadores")
		return nil, newStorageError(err, "falha ao listar influenciadores")
	}

	return influencers, nil
}

func (s *Service) GetInfluencer(ctx context.Context, influencerID int) (*domain.Influencer, error) {
	influencer, err := s.influencerRepository.GetInfluencerByID(ctx, influencerID)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar influenciador")
	}

	return influencer, nil
}

func (s *Service) CreateInfluencer(ctx context.Context, request *domain.CreateInfluencerRequest) (*domain.Influencer, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	influencer, err := s.influencerRepository.CreateInfluencer(ctx, &domain.Influencer{
		Name:            request.Name,
		Handle:          request.Handle,
		Email:           request.Email,
		Category:        request.Category,
		Followers:       request.Followers,
		EngagementRate:  request.EngagementRate,
		RatePerPost:     request.RatePerPost,
		ProfileImageURL: request.ProfileImageURL,
		Bio:             request.Bio,
		IsVerified:      request.IsVerified,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, newValidationError(apiErrors.ErrAlreadyExists, fmt.Sprintf("handle %q já cadastrado", request.Handle))
		}
		logrus.WithError(err).WithField("handle", request.Handle).Error("Erro ao criar influenciador")
		return nil, newStorageError(err, "falha ao criar influenciador")
	}

	return influencer, nil
}

// UpdateInfluencer aplica o patch parcial; updatedAt é sempre renovado, mesmo com patch vazio
func (s *Service) UpdateInfluencer(ctx context.Context, influencerID int, request *domain.UpdateInfluencerRequest) (*domain.Influencer, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	influencer, err := s.influencerRepository.UpdateInfluencer(ctx, influencerID, request)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, newValidationError(apiErrors.ErrAlreadyExists, "handle já cadastrado")
		}
		logrus.WithError(err).WithField("influencer_id", influencerID).Error("Erro ao atualizar influenciador")
		return nil, newStorageError(err, "falha ao atualizar influenciador")
	}
	if influencer == nil {
		return nil, newNotFoundError(apiErrors.ErrInfluencerNotFound, influencerID, fmt.Sprintf("influenciador %d não encontrado", influencerID))
	}

	return influencer, nil
}

// DeleteInfluencer remove o influenciador e suas colaborações. Id inexistente não é erro.
func (s *Service) DeleteInfluencer(ctx context.Context, influencerID int) error {
	if err := s.influencerRepository.DeleteInfluencer(ctx, influencerID); err != nil {
		logrus.WithError(err).WithField("influencer_id", influencerID).Error("Erro ao remover influenciador")
		return newStorageError(err, "falha ao remover influenciador")
	}

	return nil
}
