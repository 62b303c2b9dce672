package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const rosterKeyPrefix = "volunteers_"

var defaultRoster = []string{"Alex Chen", "Jordan Martinez", "Sam Taylor"}

func RosterKey(eventID string) string {
	return rosterKeyPrefix + eventID
}

// RosterService keeps the display-name list of volunteers per event. The
// roster is not tied to user identity; Signup records stay authoritative for
// admission and colouring. Writes hold mu across the read-modify-write.
type RosterService struct {
	mu sync.Mutex

	store     ports.KVStore
	events    ports.EventRepo
	signups   ports.SignupRepo
	publisher ports.ActivityPublisher
	logger    logger.Logger
}

func NewRosterService(
	store ports.KVStore,
	events ports.EventRepo,
	signups ports.SignupRepo,
	publisher ports.ActivityPublisher,
	logger logger.Logger,
) *RosterService {
	return &RosterService{
		store:     store,
		events:    events,
		signups:   signups,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns the roster for an event. Storage failures read as an empty roster.
func (s *RosterService) List(ctx context.Context, eventID string) []string {
	names, _, err := s.load(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to read roster",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return []string{}
	}
	return names
}

func (s *RosterService) Add(ctx context.Context, eventID, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: volunteer name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	current := s.List(ctx, eventID)
	if slices.Contains(current, name) {
		s.mu.Unlock()
		return current, nil
	}

	updated := append(current, name)
	err := s.save(ctx, eventID, updated)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("failed to add volunteer to roster",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return []string{}, nil
	}

	s.announce(ctx, eventID, domain.ActivityRosterChanged)
	return updated, nil
}

func (s *RosterService) Remove(ctx context.Context, eventID, name string) []string {
	s.mu.Lock()
	current := s.List(ctx, eventID)
	updated := slices.DeleteFunc(current, func(n string) bool { return n == name })
	err := s.save(ctx, eventID, updated)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to remove volunteer from roster",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return []string{}
	}

	s.announce(ctx, eventID, domain.ActivityRosterChanged)
	return updated
}

// Init seeds an event's roster with the demo names when it has never been written.
func (s *RosterService) Init(ctx context.Context, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.load(ctx, eventID)
	if err != nil {
		s.logger.Warn("roster init skipped",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}
	if found {
		return
	}

	if err = s.save(ctx, eventID, slices.Clone(defaultRoster)); err != nil {
		s.logger.Warn("roster init failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}

// InitAll initialises the roster of every event that tracks volunteers.
func (s *RosterService) InitAll(ctx context.Context) error {
	events, err := s.events.List(ctx)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	for _, e := range events {
		if e.TracksVolunteers() {
			s.Init(ctx, e.ID)
		}
	}
	return nil
}

// Audit compares roster sizes with volunteer signup counts for every event
// with a quota. It never modifies either side.
func (s *RosterService) Audit(ctx context.Context) ([]domain.RosterDrift, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var drift []domain.RosterDrift
	for _, e := range events {
		if !e.TracksVolunteers() {
			continue
		}

		signups, err := s.signups.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("list signups for %s: %w", e.ID, err)
		}
		_, volunteers := domain.CountByRole(signups)

		names := s.List(ctx, e.ID)
		if len(names) != volunteers {
			drift = append(drift, domain.RosterDrift{
				EventID:        e.ID,
				RosterSize:     len(names),
				VolunteerCount: volunteers,
			})
		}
	}

	return drift, nil
}

// announce publishes the current counts and roster of an event.
func (s *RosterService) announce(ctx context.Context, eventID string, kind domain.ActivityKind) {
	signups, err := s.signups.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to build activity",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}
	participants, volunteers := domain.CountByRole(signups)

	s.publisher.Publish(domain.Activity{
		EventID:          eventID,
		Kind:             kind,
		ParticipantCount: participants,
		VolunteerCount:   volunteers,
		Volunteers:       s.List(ctx, eventID),
		At:               time.Now().UTC(),
	})
}

func (s *RosterService) load(ctx context.Context, eventID string) ([]string, bool, error) {
	raw, err := s.store.Get(ctx, RosterKey(eventID))
	if err != nil {
		return nil, false, fmt.Errorf("get roster: %w", err)
	}
	if raw == nil {
		return []string{}, false, nil
	}

	var names []string
	if err = json.Unmarshal(raw, &names); err != nil {
		return nil, true, fmt.Errorf("decode roster: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, true, nil
}

func (s *RosterService) save(ctx context.Context, eventID string, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return s.store.Set(ctx, RosterKey(eventID), raw)
}
