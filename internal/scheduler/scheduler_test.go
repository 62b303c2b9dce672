package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_ReportsDrift(t *testing.T) {
	auditor := mocks.NewMockRosterAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	drift := []domain.RosterDrift{
		{EventID: "evt-1001", RosterSize: 3, VolunteerCount: 1},
	}
	auditor.EXPECT().Audit(mock.Anything).Return(drift, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	auditor := mocks.NewMockRosterAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	auditor.EXPECT().Audit(mock.Anything).Return(nil, errors.New("kv unavailable"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	auditor := mocks.NewMockRosterAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	auditor := mocks.NewMockRosterAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 30*time.Millisecond, log)

	auditor.EXPECT().Audit(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 3)
}
