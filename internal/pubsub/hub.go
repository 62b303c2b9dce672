package pubsub

import (
	"sync"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

const defaultBuffer = 16

// Hub fans activities out to per-event subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the message.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	buffer int
	closed bool
}

type subscription struct {
	ch   chan domain.Activity
	once sync.Once
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[string]map[*subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers interest in one event. The returned cancel func is
// idempotent and closes the channel.
func (h *Hub) Subscribe(eventID string) (<-chan domain.Activity, func()) {
	sub := &subscription{ch: make(chan domain.Activity, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	if h.subs[eventID] == nil {
		h.subs[eventID] = make(map[*subscription]struct{})
	}
	h.subs[eventID][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[eventID]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(h.subs, eventID)
			}
		}
		h.mu.Unlock()
		sub.once.Do(func() { close(sub.ch) })
	}

	return sub.ch, cancel
}

func (h *Hub) Publish(activity domain.Activity) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[activity.EventID] {
		select {
		case sub.ch <- activity:
		default:
		}
	}
}

// Subscribers reports how many listeners an event has.
func (h *Hub) Subscribers(eventID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[eventID])
}

// Close ends every subscription. Later subscriptions get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for eventID, set := range h.subs {
		for sub := range set {
			sub.once.Do(func() { close(sub.ch) })
		}
		delete(h.subs, eventID)
	}
}
