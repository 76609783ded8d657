package memory

import (
	"context"
	"sort"

	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const collaborationsCollection = "collaborations"

func (s *Store) ListCollaborations(_ context.Context, filters domain.CollaborationFilters) ([]*domain.Collaboration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collaborations := make([]*domain.Collaboration, 0)
	for _, col := range s.collaborations {
		if !filters.Match(col) {
			continue
		}
		out := cloneCollaboration(col)
		collaborations = append(collaborations, &out)
	}

	sort.Slice(collaborations, func(i, j int) bool {
		if !collaborations[i].CreatedAt.Equal(collaborations[j].CreatedAt) {
			return collaborations[i].CreatedAt.After(collaborations[j].CreatedAt)
		}
		return collaborations[i].ID > collaborations[j].ID
	})

	return collaborations, nil
}

func (s *Store) GetCollaborationByID(_ context.Context, collaborationID int) (*domain.Collaboration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collaborations[collaborationID]
	if !ok {
		return nil, nil
	}

	out := cloneCollaboration(col)
	return &out, nil
}

func (s *Store) CreateCollaboration(_ context.Context, collaboration *domain.Collaboration) (*domain.Collaboration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneCollaboration(collaboration)
	created.ID = s.nextID(collaborationsCollection)
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.collaborations[created.ID] = &created

	out := cloneCollaboration(&created)
	return &out, nil
}

func (s *Store) UpdateCollaboration(_ context.Context, collaborationID int, patch *domain.UpdateCollaborationRequest) (*domain.Collaboration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collaborations[collaborationID]
	if !ok {
		return nil, nil
	}

	updated := cloneCollaboration(col)
	patch.Apply(&updated)
	updated = cloneCollaboration(&updated)
	updated.UpdatedAt = s.now()
	s.collaborations[collaborationID] = &updated

	out := cloneCollaboration(&updated)
	return &out, nil
}

// deleteCollaborationAnalytics deve ser chamado com o lock de escrita
func (s *Store) deleteCollaborationAnalytics(collaborationID int) {
	for id, a := range s.analytics {
		if a.CollaborationID != nil && *a.CollaborationID == collaborationID {
			delete(s.analytics, id)
		}
	}
}
