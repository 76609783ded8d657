package memory

import (
	"context"
	"sort"

	"github.com/vfg2006/influence-hub-api/internal/domain"
)

const usersCollection = "users"

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUserUnique(0, user.Username, user.Email); err != nil {
		return nil, err
	}

	created := cloneUser(user)
	created.ID = s.nextID(usersCollection)
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.users[created.ID] = &created

	out := cloneUser(&created)
	return &out, nil
}

func (s *Store) GetUserByID(_ context.Context, userID int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}

	out := cloneUser(user)
	return &out, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			out := cloneUser(user)
			return &out, nil
		}
	}

	return nil, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email != nil && *user.Email == email {
			out := cloneUser(user)
			return &out, nil
		}
	}

	return nil, nil
}

func (s *Store) GetUsersByIDs(_ context.Context, userIDs []int) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(userIDs))
	seen := make(map[int]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if user, ok := s.users[id]; ok {
			out := cloneUser(user)
			users = append(users, &out)
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (s *Store) UpdateUser(_ context.Context, userID int, patch *domain.UpdateUserRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}

	updated := cloneUser(user)
	patch.Apply(&updated)
	updated = cloneUser(&updated)

	if err := s.checkUserUnique(userID, updated.Username, updated.Email); err != nil {
		return nil, err
	}

	updated.UpdatedAt = s.now()
	s.users[userID] = &updated

	out := cloneUser(&updated)
	return &out, nil
}

// checkUserUnique ignora o próprio registro (selfID) na comparação
func (s *Store) checkUserUnique(selfID int, username string, email *string) error {
	for _, other := range s.users {
		if other.ID == selfID {
			continue
		}
		if other.Username == username {
			return uniqueViolation("username", username)
		}
		if email != nil && other.Email != nil && *other.Email == *email {
			return uniqueViolation("email", *email)
		}
	}
	return nil
}
