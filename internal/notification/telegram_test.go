package notification

import (
	"context"
	"testing"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:        "evt-1002",
		Title:     "Food Pantry Packathon",
		Date:      "2026-10-05",
		StartTime: "13:00",
		EndTime:   "16:00",
		Location:  "Northside Community Hub",
	}
}

func TestAdmittedText(t *testing.T) {
	text := admittedText(testEvent(), domain.RoleVolunteer)

	assert.Contains(t, text, "Food Pantry Packathon")
	assert.Contains(t, text, "Role: volunteer")
	assert.Contains(t, text, "When: Mon 5 Oct 2026, 13:00-16:00")
	assert.Contains(t, text, "Northside Community Hub")
}

func TestWhen_UnparsableDate(t *testing.T) {
	e := testEvent()
	e.Date = "soon"

	assert.Equal(t, "soon, 13:00-16:00", when(e))
}

func TestWithdrawnText(t *testing.T) {
	text := withdrawnText(testEvent())

	assert.Contains(t, text, "Signup withdrawn")
	assert.Contains(t, text, "Food Pantry Packathon")
	assert.Contains(t, text, "When: Mon 5 Oct 2026, 13:00-16:00")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	user := &domain.User{ID: "user-001", TelegramChatID: &chatID}

	assert.NotPanics(t, func() {
		n.NotifySignupAdmitted(context.Background(), user, testEvent(), domain.RoleParticipant)
		n.NotifySignupWithdrawn(context.Background(), user, testEvent())
	})
}
