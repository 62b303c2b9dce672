package repository

import (
	"context"
	"sync"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

type MemUserRepo struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewMemUserRepo(seed ...*domain.User) *MemUserRepo {
	r := &MemUserRepo{}
	for _, u := range seed {
		c := *u
		r.users = append(r.users, &c)
	}
	return r
}

func (r *MemUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *user
	r.users = append(r.users, &c)
	return nil
}

func (r *MemUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			c := *user
			r.users[i] = &c
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *MemUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		res = append(res, &c)
	}
	return res, nil
}
