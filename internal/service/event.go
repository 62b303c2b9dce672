package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/service/ports"
)

type rosterReader interface {
	List(ctx context.Context, eventID string) []string
}

type EventService struct {
	repo       ports.EventRepo
	signupRepo ports.SignupRepo
	userRepo   ports.UserRepo
	roster     rosterReader
	validate   *validator.Validate
}

func NewEventService(
	repo ports.EventRepo,
	signupRepo ports.SignupRepo,
	userRepo ports.UserRepo,
	roster rosterReader,
) *EventService {
	return &EventService{
		repo:       repo,
		signupRepo: signupRepo,
		userRepo:   userRepo,
		roster:     roster,
		validate:   validator.New(),
	}
}

// CreateEvent is admin-only.
func (s *EventService) CreateEvent(ctx context.Context, actorID string, input domain.CreateEventInput) (*domain.Event, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can create events", domain.ErrForbidden)
	}

	input = normalizeEventInput(input)
	if err = s.validateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:                 uuid.New().String(),
		Title:              input.Title,
		Description:        input.Description,
		Date:               input.Date,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Location:           input.Location,
		ImageURL:           input.ImageURL,
		Capacity:           input.Capacity,
		VolunteerQuota:     input.VolunteerQuota,
		VolunteerEventType: input.VolunteerEventType,
		Questions:          input.Questions,
		CreatedBy:          actor.ID,
		CreatedAt:          time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func normalizeEventInput(in domain.CreateEventInput) domain.CreateEventInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	questions := make([]string, 0, len(in.Questions))
	for _, q := range in.Questions {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	in.Questions = questions

	return in
}

func (s *EventService) validateEventInput(in domain.CreateEventInput) error {
	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fieldError(ve[0])
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	start, err := time.Parse(domain.ClockLayout, in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start_time must be HH:MM", domain.ErrValidation)
	}
	end, err := time.Parse(domain.ClockLayout, in.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end_time must be HH:MM", domain.ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	if in.VolunteerEventType != "" && !in.VolunteerEventType.Valid() {
		return fmt.Errorf("%w: unknown volunteer_event_type %q", domain.ErrValidation, in.VolunteerEventType)
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	name := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	case "gte":
		return fmt.Errorf("%w: %s must not be negative", domain.ErrValidation, name)
	case "url":
		return fmt.Errorf("%w: %s must be a valid URL", domain.ErrValidation, name)
	default:
		return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, name)
	}
}

// snakeCase turns a Go field name into its JSON spelling, keeping acronyms
// together: ImageURL becomes image_url.
func snakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// Visible lists the events a role may see, ordered by start.
func (s *EventService) Visible(ctx context.Context, viewer domain.Role) ([]*domain.Event, error) {
	if !viewer.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, viewer)
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if domain.VisibleTo(e, viewer) {
			res = append(res, e)
		}
	}
	domain.SortByStart(res)

	return res, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string, viewer domain.Role) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	signups, err := s.signupRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	participants, volunteers := domain.CountByRole(signups)

	details := &domain.EventDetails{
		Event:            *event,
		ParticipantCount: participants,
		VolunteerCount:   volunteers,
		CapacityFull:     domain.IsCapacityFull(event, participants),
		QuotaReached:     domain.IsQuotaReached(event, volunteers),
		Color:            domain.ColorFor(event, viewer, volunteers),
		Volunteers:       []string{},
		Signups:          make([]domain.Signup, len(signups)),
	}
	for i, sg := range signups {
		details.Signups[i] = *sg
	}
	if viewer.Staff() && event.TracksVolunteers() {
		details.Volunteers = s.roster.List(ctx, id)
	}

	return details, nil
}
