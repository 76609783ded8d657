// Package memory implementa os repositórios em memória, usado em desenvolvimento e testes
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

var (
	_ repository.UserRepository          = (*Store)(nil)
	_ repository.InfluencerRepository    = (*Store)(nil)
	_ repository.CampaignRepository      = (*Store)(nil)
	_ repository.CollaborationRepository = (*Store)(nil)
	_ repository.AnalyticsRepository     = (*Store)(nil)
)

type Option func(*Store)

// WithClock substitui o relógio usado nos timestamps
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// Store guarda todas as coleções. É seguro para uso concorrente.
type Store struct {
	mu    sync.RWMutex
	clock func() time.Time

	users          map[int]*domain.User
	influencers    map[int]*domain.Influencer
	campaigns      map[int]*domain.Campaign
	collaborations map[int]*domain.Collaboration
	analytics      map[int]*domain.Analytics

	seq map[string]int
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:          time.Now,
		users:          make(map[int]*domain.User),
		influencers:    make(map[int]*domain.Influencer),
		campaigns:      make(map[int]*domain.Campaign),
		collaborations: make(map[int]*domain.Collaboration),
		analytics:      make(map[int]*domain.Analytics),
		seq:            make(map[string]int),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

// nextID deve ser chamado com o lock de escrita
func (s *Store) nextID(collection string) int {
	s.seq[collection]++
	return s.seq[collection]
}

func uniqueViolation(field, value string) error {
	return fmt.Errorf("%w: %s %q já existe", repository.ErrUniqueViolation, field, value)
}
