package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type rosterAuditor interface {
	Audit(ctx context.Context) ([]domain.RosterDrift, error)
}

// Scheduler periodically checks that volunteer rosters agree with the
// volunteer signups. It only reports; neither side is changed.
type Scheduler struct {
	auditor  rosterAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor rosterAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("roster auditor started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("roster auditor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	drift, err := s.auditor.Audit(ctx)
	if err != nil {
		s.logger.Error("failed to audit rosters",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drift {
		s.logger.Warn("roster out of sync with volunteer signups",
			logger.String("event_id", d.EventID),
			logger.Int("roster_size", d.RosterSize),
			logger.Int("volunteer_count", d.VolunteerCount),
		)
	}
}
