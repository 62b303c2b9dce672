package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

// MemSignupRepo enforces one signup per (event, user) pair.
type MemSignupRepo struct {
	mu      sync.RWMutex
	signups []*domain.Signup
}

func NewMemSignupRepo(seed ...*domain.Signup) *MemSignupRepo {
	r := &MemSignupRepo{}
	for _, s := range seed {
		c := *s
		r.signups = append(r.signups, &c)
	}
	return r
}

func (r *MemSignupRepo) Create(_ context.Context, s *domain.Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.signups {
		if existing.EventID == s.EventID && existing.UserID == s.UserID {
			return domain.ErrAlreadyRegistered
		}
	}

	c := *s
	r.signups = append(r.signups, &c)
	return nil
}

func (r *MemSignupRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.signups)
	r.signups = slices.DeleteFunc(r.signups, func(s *domain.Signup) bool { return s.ID == id })
	if len(r.signups) == before {
		return domain.ErrSignupNotFound
	}
	return nil
}

func (r *MemSignupRepo) GetByEventAndUser(_ context.Context, eventID, userID string) (*domain.Signup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.signups {
		if s.EventID == eventID && s.UserID == userID {
			c := *s
			return &c, nil
		}
	}
	return nil, domain.ErrSignupNotFound
}

func (r *MemSignupRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.Signup, error) {
	return r.filter(func(s *domain.Signup) bool { return s.EventID == eventID }), nil
}

func (r *MemSignupRepo) ListByUser(_ context.Context, userID string) ([]*domain.Signup, error) {
	return r.filter(func(s *domain.Signup) bool { return s.UserID == userID }), nil
}

func (r *MemSignupRepo) filter(keep func(*domain.Signup) bool) []*domain.Signup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Signup, 0)
	for _, s := range r.signups {
		if keep(s) {
			c := *s
			res = append(res, &c)
		}
	}
	return res
}
