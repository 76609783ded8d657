package memory

import (
	"context"
	"sort"

	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const analyticsCollection = "analytics"

func (s *Store) ListAnalytics(_ context.Context, filters domain.AnalyticsFilters) ([]*domain.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*domain.Analytics, 0)
	for _, a := range s.analytics {
		if !filters.Match(a) {
			continue
		}
		out := cloneAnalytics(a)
		entries = append(entries, &out)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

func (s *Store) CreateAnalytics(_ context.Context, entry *domain.Analytics) (*domain.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneAnalytics(entry)
	created.ID = s.nextID(analyticsCollection)
	created.Date = created.Date.UTC()
	created.CreatedAt = s.now()
	s.analytics[created.ID] = &created

	out := cloneAnalytics(&created)
	return &out, nil
}
