package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubRoster struct {
	names []string
	calls int
}

func (s *stubRoster) List(context.Context, string) []string {
	s.calls++
	return s.names
}

func intPtr(n int) *int { return &n }

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:       "  Beach Sweep ",
		Description: "Pick up litter along the shore",
		Date:        "2026-10-20",
		StartTime:   "09:00",
		EndTime:     "11:30",
		Location:    "Pier 4",
		Capacity:    20,
		Questions:   []string{"Any allergies?", "   ", ""},
	}
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockSignupRepo, *mocks.MockUserRepo, *stubRoster) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	roster := &stubRoster{names: []string{"Alex Chen"}}

	return NewEventService(eventRepo, signupRepo, userRepo, roster), eventRepo, signupRepo, userRepo, roster
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "admin-1").
		Return(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), "admin-1", validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Beach Sweep", event.Title)
	assert.Equal(t, "admin-1", event.CreatedBy)
	assert.Equal(t, []string{"Any allergies?"}, event.Questions)
	assert.Equal(t, time.UTC, event.CreatedAt.Location())
}

func TestEventService_CreateEvent_Forbidden(t *testing.T) {
	svc, _, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "user-001").
		Return(&domain.User{ID: "user-001", Role: domain.RoleVolunteer}, nil)

	_, err := svc.CreateEvent(context.Background(), "user-001", validEventInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_CreateEvent_UnknownActor(t *testing.T) {
	svc, _, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateEvent(context.Background(), "ghost", validEventInput())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateEventInput)
		msg    string
	}{
		{"blank title", func(in *domain.CreateEventInput) { in.Title = "   " }, "title is required"},
		{"missing location", func(in *domain.CreateEventInput) { in.Location = "" }, "location is required"},
		{"bad date", func(in *domain.CreateEventInput) { in.Date = "20/10/2026" }, "date must be YYYY-MM-DD"},
		{"bad start", func(in *domain.CreateEventInput) { in.StartTime = "9am" }, "start_time must be HH:MM"},
		{"end before start", func(in *domain.CreateEventInput) { in.EndTime = "08:00" }, "end_time must be after start_time"},
		{"negative capacity", func(in *domain.CreateEventInput) { in.Capacity = -1 }, "capacity must not be negative"},
		{"negative quota", func(in *domain.CreateEventInput) { in.VolunteerQuota = intPtr(-2) }, "volunteer_quota must not be negative"},
		{"bad image url", func(in *domain.CreateEventInput) { in.ImageURL = "not a url" }, "image_url must be a valid URL"},
		{"unknown type", func(in *domain.CreateEventInput) { in.VolunteerEventType = "vip" }, "unknown volunteer_event_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, userRepo, _ := newEventService(t)
			userRepo.EXPECT().GetByID(mock.Anything, "admin-1").
				Return(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil)

			in := validEventInput()
			tt.mutate(&in)

			_, err := svc.CreateEvent(context.Background(), "admin-1", in)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestEventService_CreateEvent_ZeroQuotaAllowed(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "admin-1").
		Return(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	in := validEventInput()
	in.VolunteerQuota = intPtr(0)
	in.VolunteerEventType = domain.VolunteerEventVolunteerOnly

	event, err := svc.CreateEvent(context.Background(), "admin-1", in)

	require.NoError(t, err)
	assert.Equal(t, 0, *event.VolunteerQuota)
}

func TestEventService_Visible(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	events := []*domain.Event{
		{ID: "late", Date: "2026-10-18", StartTime: "09:00"},
		{ID: "hidden", Date: "2026-10-01", StartTime: "09:00", VolunteerEventType: domain.VolunteerEventVolunteerOnly},
		{ID: "early", Date: "2026-10-03", StartTime: "08:30"},
	}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := svc.Visible(context.Background(), domain.RoleParticipant)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestEventService_Visible_StaffSeeEverything(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "a", Date: "2026-10-05", StartTime: "13:00"},
		{ID: "b", Date: "2026-10-01", VolunteerEventType: domain.VolunteerEventVolunteerOnly},
	}, nil)

	got, err := svc.Visible(context.Background(), domain.RoleVolunteer)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}

func TestEventService_Visible_InvalidRole(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.Visible(context.Background(), "guest")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails_Staff(t *testing.T) {
	svc, eventRepo, signupRepo, _, roster := newEventService(t)

	event := &domain.Event{
		ID:                 "evt-1",
		Capacity:           2,
		VolunteerQuota:     intPtr(2),
		VolunteerEventType: domain.VolunteerEventExperienced,
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "evt-1").Return(event, nil)
	signupRepo.EXPECT().ListByEvent(mock.Anything, "evt-1").Return([]*domain.Signup{
		{ID: "s1", Role: domain.RoleParticipant},
		{ID: "s2", Role: domain.RoleParticipant},
		{ID: "s3", Role: domain.RoleVolunteer},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "evt-1", domain.RoleVolunteer)

	require.NoError(t, err)
	assert.Equal(t, 2, details.ParticipantCount)
	assert.Equal(t, 1, details.VolunteerCount)
	assert.True(t, details.CapacityFull)
	assert.False(t, details.QuotaReached)
	assert.Equal(t, domain.ColorYellow, details.Color)
	assert.Equal(t, []string{"Alex Chen"}, details.Volunteers)
	assert.Len(t, details.Signups, 3)
	assert.Equal(t, 1, roster.calls)
}

func TestEventService_GetDetails_ParticipantSeesNoRoster(t *testing.T) {
	svc, eventRepo, signupRepo, _, roster := newEventService(t)

	event := &domain.Event{ID: "evt-1", VolunteerQuota: intPtr(1), VolunteerEventType: domain.VolunteerEventQuotaReached}
	eventRepo.EXPECT().GetByID(mock.Anything, "evt-1").Return(event, nil)
	signupRepo.EXPECT().ListByEvent(mock.Anything, "evt-1").Return([]*domain.Signup{}, nil)

	details, err := svc.GetDetails(context.Background(), "evt-1", domain.RoleParticipant)

	require.NoError(t, err)
	assert.True(t, details.QuotaReached)
	assert.Equal(t, domain.ColorDefault, details.Color)
	assert.Empty(t, details.Volunteers)
	assert.NotNil(t, details.Volunteers)
	assert.Zero(t, roster.calls)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetDetails_SignupError(t *testing.T) {
	svc, eventRepo, signupRepo, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "evt-1").Return(&domain.Event{ID: "evt-1"}, nil)
	signupRepo.EXPECT().ListByEvent(mock.Anything, "evt-1").Return(nil, assert.AnError)

	_, err := svc.GetDetails(context.Background(), "evt-1", domain.RoleAdmin)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "title", snakeCase("Title"))
	assert.Equal(t, "start_time", snakeCase("StartTime"))
	assert.Equal(t, "image_url", snakeCase("ImageURL"))
	assert.Equal(t, "volunteer_quota", snakeCase("VolunteerQuota"))
}
