package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

// MemEventRepo keeps events in process memory, newest first.
type MemEventRepo struct {
	mu     sync.RWMutex
	events []*domain.Event
}

func NewMemEventRepo(seed ...*domain.Event) *MemEventRepo {
	r := &MemEventRepo{}
	for _, e := range seed {
		r.events = append(r.events, cloneEvent(e))
	}
	return r
}

func (r *MemEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = slices.Insert(r.events, 0, cloneEvent(e))
	return nil
}

func (r *MemEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			return cloneEvent(e), nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *MemEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, cloneEvent(e))
	}
	return res, nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Questions = slices.Clone(e.Questions)
	if c.Questions == nil {
		c.Questions = []string{}
	}
	if e.VolunteerQuota != nil {
		q := *e.VolunteerQuota
		c.VolunteerQuota = &q
	}
	return &c
}
