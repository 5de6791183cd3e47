package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// CreateUser adds a user to the in-memory roster.
func (s *Store) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if _, exists := s.usersByEmail[email]; exists {
		return ErrDuplicate
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = email
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	s.users[user.ID] = *user
	s.usersByEmail[email] = user.ID
	return nil
}

// FindUserByEmail returns a user copy by email.
func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNoRecord
	}
	user := s.users[id]
	return &user, nil
}

// FindUserByID returns a user copy by id.
func (s *Store) FindUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &user, nil
}
