package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	hits map[string]int
}

func (s *stubHandler) hit(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.hits[name]++
		c.Status(http.StatusNoContent)
	}
}

func (s *stubHandler) ListEvents(c *ginext.Context)       { s.hit("ListEvents")(c) }
func (s *stubHandler) CreateEvent(c *ginext.Context)      { s.hit("CreateEvent")(c) }
func (s *stubHandler) GetEvent(c *ginext.Context)         { s.hit("GetEvent")(c) }
func (s *stubHandler) StreamActivity(c *ginext.Context)   { s.hit("StreamActivity")(c) }
func (s *stubHandler) ListEventSignups(c *ginext.Context) { s.hit("ListEventSignups")(c) }
func (s *stubHandler) RegisterSignup(c *ginext.Context)   { s.hit("RegisterSignup")(c) }
func (s *stubHandler) WithdrawSignup(c *ginext.Context)   { s.hit("WithdrawSignup")(c) }
func (s *stubHandler) ToggleSignup(c *ginext.Context)     { s.hit("ToggleSignup")(c) }
func (s *stubHandler) ListVolunteers(c *ginext.Context)   { s.hit("ListVolunteers")(c) }
func (s *stubHandler) AddVolunteer(c *ginext.Context)     { s.hit("AddVolunteer")(c) }
func (s *stubHandler) InitVolunteers(c *ginext.Context)   { s.hit("InitVolunteers")(c) }
func (s *stubHandler) RemoveVolunteer(c *ginext.Context)  { s.hit("RemoveVolunteer")(c) }
func (s *stubHandler) ListUsers(c *ginext.Context)        { s.hit("ListUsers")(c) }
func (s *stubHandler) CreateUser(c *ginext.Context)       { s.hit("CreateUser")(c) }
func (s *stubHandler) GetUser(c *ginext.Context)          { s.hit("GetUser")(c) }
func (s *stubHandler) UpdateUser(c *ginext.Context)       { s.hit("UpdateUser")(c) }
func (s *stubHandler) GetUserSignups(c *ginext.Context)   { s.hit("GetUserSignups")(c) }
func (s *stubHandler) CurrentUser(c *ginext.Context)      { s.hit("CurrentUser")(c) }
func (s *stubHandler) SetCurrentRole(c *ginext.Context)   { s.hit("SetCurrentRole")(c) }

func TestInitRouter_Routes(t *testing.T) {
	h := &stubHandler{hits: map[string]int{}}
	r := InitRouter("test", h)

	routes := []struct {
		method, path, handler string
	}{
		{http.MethodGet, "/api/events", "ListEvents"},
		{http.MethodPost, "/api/events", "CreateEvent"},
		{http.MethodGet, "/api/events/evt-1", "GetEvent"},
		{http.MethodGet, "/api/events/evt-1/stream", "StreamActivity"},
		{http.MethodGet, "/api/events/evt-1/signups", "ListEventSignups"},
		{http.MethodPost, "/api/events/evt-1/signups", "RegisterSignup"},
		{http.MethodDelete, "/api/events/evt-1/signups/user-001", "WithdrawSignup"},
		{http.MethodPost, "/api/events/evt-1/toggle", "ToggleSignup"},
		{http.MethodGet, "/api/events/evt-1/volunteers", "ListVolunteers"},
		{http.MethodPost, "/api/events/evt-1/volunteers", "AddVolunteer"},
		{http.MethodPost, "/api/events/evt-1/volunteers/init", "InitVolunteers"},
		{http.MethodDelete, "/api/events/evt-1/volunteers/Sam%20Taylor", "RemoveVolunteer"},
		{http.MethodGet, "/api/users", "ListUsers"},
		{http.MethodPost, "/api/users", "CreateUser"},
		{http.MethodGet, "/api/users/user-001", "GetUser"},
		{http.MethodPatch, "/api/users/user-001", "UpdateUser"},
		{http.MethodGet, "/api/users/user-001/signups", "GetUserSignups"},
		{http.MethodGet, "/api/me", "CurrentUser"},
		{http.MethodPut, "/api/me/role", "SetCurrentRole"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, 1, h.hits[rt.handler])
		})
	}
}

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", &stubHandler{hits: map[string]int{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
