package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// UserIDHeader names the acting user. Requests without it act as the session user.
const UserIDHeader = "X-User-ID"

const streamHeartbeat = 15 * time.Second

type EventSvc interface {
	CreateEvent(ctx context.Context, actorID string, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string, viewer domain.Role) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Visible(ctx context.Context, viewer domain.Role) ([]*domain.Event, error)
}

type SignupSvc interface {
	Toggle(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error)
	Register(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error)
	Withdraw(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Signup, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Signup, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	SetCurrentRole(ctx context.Context, role domain.Role) (*domain.User, error)
}

type RosterSvc interface {
	List(ctx context.Context, eventID string) []string
	Add(ctx context.Context, eventID, name string) ([]string, error)
	Remove(ctx context.Context, eventID, name string) []string
	Init(ctx context.Context, eventID string)
}

type ActivitySubscriber interface {
	Subscribe(eventID string) (<-chan domain.Activity, func())
}

type Handler struct {
	eventService  EventSvc
	signupService SignupSvc
	userService   UserSvc
	rosterService RosterSvc
	activity      ActivitySubscriber
}

func NewHandler(
	eventService EventSvc,
	signupService SignupSvc,
	userService UserSvc,
	rosterService RosterSvc,
	activity ActivitySubscriber,
) *Handler {
	return &Handler{
		eventService:  eventService,
		signupService: signupService,
		userService:   userService,
		rosterService: rosterService,
		activity:      activity,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := h.actorID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateEventInput{
		Title:              req.Title,
		Description:        req.Description,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		Location:           req.Location,
		ImageURL:           req.ImageURL,
		Capacity:           req.Capacity,
		VolunteerQuota:     req.VolunteerQuota,
		VolunteerEventType: domain.VolunteerEventType(req.VolunteerEventType),
		Questions:          req.Questions,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	viewer, err := h.viewerRole(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), c.Param("id"), viewer)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

// ListEvents returns every event, or only those visible to ?role= ordered by start.
func (h *Handler) ListEvents(c *ginext.Context) {
	var (
		events []*domain.Event
		err    error
	)
	if role := c.Query("role"); role != "" {
		events, err = h.eventService.Visible(c.Request.Context(), domain.Role(role))
	} else {
		events, err = h.eventService.List(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// StreamActivity pushes the event's activity as server-sent events until the
// client goes away.
func (h *Handler) StreamActivity(c *ginext.Context) {
	eventID := c.Param("id")
	ctx := c.Request.Context()

	// subscribe before the snapshot so no change between the two is lost
	ch, cancel := h.activity.Subscribe(eventID)
	defer cancel()

	details, err := h.eventService.GetDetails(ctx, eventID, domain.RoleAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("activity", domain.Activity{
		EventID:          eventID,
		Kind:             domain.ActivitySnapshot,
		ParticipantCount: details.ParticipantCount,
		VolunteerCount:   details.VolunteerCount,
		Volunteers:       details.Volunteers,
		At:               time.Now().UTC(),
	})
	c.Writer.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("activity", activity)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}

// Signups

func (h *Handler) ToggleSignup(c *ginext.Context) {
	in, ok := h.bindSignup(c)
	if !ok {
		return
	}

	res, err := h.signupService.Toggle(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeSignupResult(c, http.StatusOK, res)
}

func (h *Handler) RegisterSignup(c *ginext.Context) {
	in, ok := h.bindSignup(c)
	if !ok {
		return
	}

	res, err := h.signupService.Register(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeSignupResult(c, http.StatusCreated, res)
}

func (h *Handler) WithdrawSignup(c *ginext.Context) {
	in := domain.SignupInput{
		EventID:     c.Param("id"),
		UserID:      c.Param("user_id"),
		DisplayName: strings.TrimSpace(c.Query("name")),
	}

	res, err := h.signupService.Withdraw(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeSignupResult(c, http.StatusOK, res)
}

func (h *Handler) ListEventSignups(c *ginext.Context) {
	signups, err := h.signupService.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupsResponse(signups))
}

func (h *Handler) GetUserSignups(c *ginext.Context) {
	signups, err := h.signupService.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupsResponse(signups))
}

func (h *Handler) bindSignup(c *ginext.Context) (domain.SignupInput, bool) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.SignupInput{}, false
	}

	userID := req.UserID
	if userID == "" {
		id, err := h.actorID(c)
		if err != nil {
			h.handleError(c, err)
			return domain.SignupInput{}, false
		}
		userID = id
	}

	return domain.SignupInput{
		EventID:     c.Param("id"),
		UserID:      userID,
		Role:        domain.Role(req.Role),
		DisplayName: strings.TrimSpace(req.Name),
	}, true
}

// writeSignupResult reports rejected outcomes as 409 with the same body shape.
func writeSignupResult(c *ginext.Context, status int, res *domain.ToggleResult) {
	if res.Outcome.Rejected() {
		status = http.StatusConflict
	}
	c.JSON(status, dto.ToToggleResponse(res))
}

// Volunteer roster

func (h *Handler) ListVolunteers(c *ginext.Context) {
	eventID := c.Param("id")
	names := h.rosterService.List(c.Request.Context(), eventID)

	c.JSON(http.StatusOK, dto.RosterResponse{EventID: eventID, Volunteers: names})
}

func (h *Handler) AddVolunteer(c *ginext.Context) {
	var req dto.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventID := c.Param("id")
	names, err := h.rosterService.Add(c.Request.Context(), eventID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RosterResponse{EventID: eventID, Volunteers: names})
}

func (h *Handler) RemoveVolunteer(c *ginext.Context) {
	eventID := c.Param("id")
	names := h.rosterService.Remove(c.Request.Context(), eventID, c.Param("name"))

	c.JSON(http.StatusOK, dto.RosterResponse{EventID: eventID, Volunteers: names})
}

func (h *Handler) InitVolunteers(c *ginext.Context) {
	eventID := c.Param("id")
	h.rosterService.Init(c.Request.Context(), eventID)

	names := h.rosterService.List(c.Request.Context(), eventID)
	c.JSON(http.StatusOK, dto.RosterResponse{EventID: eventID, Volunteers: names})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateUserInput{Name: req.Name}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) CurrentUser(c *ginext.Context) {
	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) SetCurrentRole(c *ginext.Context) {
	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.SetCurrentRole(c.Request.Context(), domain.Role(req.Role))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// actorID resolves the acting user from the header, falling back to the session user.
func (h *Handler) actorID(c *ginext.Context) (string, error) {
	if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
		return id, nil
	}

	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// viewerRole takes ?role= when present, otherwise the acting user's role.
// Unknown actors view as participants.
func (h *Handler) viewerRole(c *ginext.Context) (domain.Role, error) {
	if q := c.Query("role"); q != "" {
		role := domain.Role(q)
		if !role.Valid() {
			return "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, q)
		}
		return role, nil
	}

	ctx := c.Request.Context()

	var (
		user *domain.User
		err  error
	)
	if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
		user, err = h.userService.GetByID(ctx, id)
	} else {
		user, err = h.userService.Current(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.RoleParticipant, nil
		}
		return "", err
	}
	return user.Role, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSignupNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCapacityFull),
		errors.Is(err, domain.ErrQuotaFull):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
