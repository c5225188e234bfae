package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"studio-agenda/internal/domain/users"
)

type usersRepo struct {
	mu         sync.RWMutex
	byID       map[string]users.User
	byUsername map[string]string // username -> id
	byEmail    map[string]string // email -> id
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID:       make(map[string]users.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return users.ErrDuplicateUsername
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrDuplicateEmail
	}

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}
