package memory

import (
	"context"
	"sort"

	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const campaignsCollection = "campaigns"

func (s *Store) ListCampaigns(_ context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := make([]*domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if filters.UserID != nil && c.CreatedBy != *filters.UserID {
			continue
		}
		if filters.HasStatus() && string(c.Status) != filters.Status {
			continue
		}
		out := cloneCampaign(c)
		campaigns = append(campaigns, &out)
	}

	sort.Slice(campaigns, func(i, j int) bool {
		if !campaigns[i].CreatedAt.Equal(campaigns[j].CreatedAt) {
			return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
		}
		return campaigns[i].ID > campaigns[j].ID
	})

	return campaigns, nil
}

func (s *Store) GetCampaignByID(_ context.Context, campaignID int) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return nil, nil
	}

	out := cloneCampaign(c)
	return &out, nil
}

func (s *Store) GetCampaignsByIDs(_ context.Context, campaignIDs []int) ([]*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := make([]*domain.Campaign, 0, len(campaignIDs))
	seen := make(map[int]struct{}, len(campaignIDs))
	for _, id := range campaignIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if c, ok := s.campaigns[id]; ok {
			out := cloneCampaign(c)
			campaigns = append(campaigns, &out)
		}
	}

	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })

	return campaigns, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneCampaign(campaign)
	created.ID = s.nextID(campaignsCollection)
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.campaigns[created.ID] = &created

	out := cloneCampaign(&created)
	return &out, nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaignID int, patch *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return nil, nil
	}

	updated := cloneCampaign(c)
	patch.Apply(&updated)
	updated = cloneCampaign(&updated)
	updated.UpdatedAt = s.now()
	s.campaigns[campaignID] = &updated

	out := cloneCampaign(&updated)
	return &out, nil
}

// DeleteCampaign remove em cascata colaborações e métricas da campanha
func (s *Store) DeleteCampaign(_ context.Context, campaignID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.analytics {
		if a.CampaignID == campaignID {
			delete(s.analytics, id)
		}
	}

	for id, col := range s.collaborations {
		if col.CampaignID == campaignID {
			s.deleteCollaborationAnalytics(id)
			delete(s.collaborations, id)
		}
	}

	delete(s.campaigns, campaignID)

	return nil
}
