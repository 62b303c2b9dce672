package pubsub

import (
	"testing"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToEventSubscribers(t *testing.T) {
	h := NewHub(4)

	ch, cancel := h.Subscribe("e1")
	defer cancel()
	other, cancelOther := h.Subscribe("e2")
	defer cancelOther()

	h.Publish(domain.Activity{EventID: "e1", Kind: domain.ActivitySignupAdmitted, ParticipantCount: 1})

	got := <-ch
	assert.Equal(t, domain.ActivitySignupAdmitted, got.Kind)
	assert.Equal(t, 1, got.ParticipantCount)
	assert.Empty(t, other)
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	h := NewHub(4)

	ch, cancel := h.Subscribe("e1")
	require.Equal(t, 1, h.Subscribers("e1"))

	cancel()
	cancel()

	assert.Equal(t, 0, h.Subscribers("e1"))
	h.Publish(domain.Activity{EventID: "e1"})

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(1)

	ch, cancel := h.Subscribe("e1")
	defer cancel()

	h.Publish(domain.Activity{EventID: "e1", VolunteerCount: 1})
	h.Publish(domain.Activity{EventID: "e1", VolunteerCount: 2})

	got := <-ch
	assert.Equal(t, 1, got.VolunteerCount)
	assert.Empty(t, ch)
}

func TestHub_Close(t *testing.T) {
	h := NewHub(0)

	ch, cancel := h.Subscribe("e1")
	h.Close()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	late, _ := h.Subscribe("e1")
	_, open = <-late
	assert.False(t, open)
}
