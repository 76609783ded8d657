package memory

import (
	"context"
	"sort"

	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const influencersCollection = "influencers"

func (s *Store) ListInfluencers(_ context.Context, filters domain.InfluencerFilters) ([]*domain.Influencer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	influencers := make([]*domain.Influencer, 0, len(s.influencers))
	for _, inf := range s.influencers {
		if !filters.Match(inf) {
			continue
		}
		out := cloneInfluencer(inf)
		influencers = append(influencers, &out)
	}

	sort.Slice(influencers, func(i, j int) bool {
		if influencers[i].Followers != influencers[j].Followers {
			return influencers[i].Followers > influencers[j].Followers
		}
		return influencers[i].ID < influencers[j].ID
	})

	return influencers, nil
}

func (s *Store) GetInfluencerByID(_ context.Context, influencerID int) (*domain.Influencer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inf, ok := s.influencers[influencerID]
	if !ok {
		return nil, nil
	}

	out := cloneInfluencer(inf)
	return &out, nil
}

func (s *Store) GetInfluencerByHandle(_ context.Context, handle string) (*domain.Influencer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inf := range s.influencers {
		if inf.Handle == handle {
			out := cloneInfluencer(inf)
			return &out, nil
		}
	}

	return nil, nil
}

func (s *Store) GetInfluencersByIDs(_ context.Context, influencerIDs []int) ([]*domain.Influencer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	influencers := make([]*domain.Influencer, 0, len(influencerIDs))
	seen := make(map[int]struct{}, len(influencerIDs))
	for _, id := range influencerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if inf, ok := s.influencers[id]; ok {
			out := cloneInfluencer(inf)
			influencers = append(influencers, &out)
		}
	}

	sort.Slice(influencers, func(i, j int) bool { return influencers[i].ID < influencers[j].ID })

	return influencers, nil
}

func (s *Store) CountInfluencers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.influencers), nil
}

func (s *Store) CreateInfluencer(_ context.Context, influencer *domain.Influencer) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkHandleUnique(0, influencer.Handle); err != nil {
		return nil, err
	}

	created := cloneInfluencer(influencer)
	created.ID = s.nextID(influencersCollection)
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.influencers[created.ID] = &created

	out := cloneInfluencer(&created)
	return &out, nil
}

func (s *Store) UpdateInfluencer(_ context.Context, influencerID int, patch *domain.UpdateInfluencerRequest) (*domain.Influencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inf, ok := s.influencers[influencerID]
	if !ok {
		return nil, nil
	}

	updated := cloneInfluencer(inf)
	patch.Apply(&updated)
	updated = cloneInfluencer(&updated)

	if err := s.checkHandleUnique(influencerID, updated.Handle); err != nil {
		return nil, err
	}

	updated.UpdatedAt = s.now()
	s.influencers[influencerID] = &updated

	out := cloneInfluencer(&updated)
	return &out, nil
}

// DeleteInfluencer remove em cascata as colaborações e as métricas ligadas a elas
func (s *Store) DeleteInfluencer(_ context.Context, influencerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, col := range s.collaborations {
		if col.InfluencerID != influencerID {
			continue
		}
		s.deleteCollaborationAnalytics(id)
		delete(s.collaborations, id)
	}

	delete(s.influencers, influencerID)

	return nil
}

func (s *Store) checkHandleUnique(selfID int, handle string) error {
	for _, other := range s.influencers {
		if other.ID != selfID && other.Handle == handle {
			return uniqueViolation("handle", handle)
		}
	}
	return nil
}
