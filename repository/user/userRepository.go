package userrepo

import (
	"context"
	"errors"
	"sync"

	"libraryapi/model"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("email already registered")
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func New() Repo {
	return &repo{users: make(map[string]*model.User)}
}

// Create is a check-and-insert under one lock, so two concurrent
// registrations for the same email cannot both succeed.
func (r *repo) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Email]; ok {
		return ErrDuplicate
	}
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}
