package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	StreamActivity(c *ginext.Context)

	ListEventSignups(c *ginext.Context)
	RegisterSignup(c *ginext.Context)
	WithdrawSignup(c *ginext.Context)
	ToggleSignup(c *ginext.Context)

	ListVolunteers(c *ginext.Context)
	AddVolunteer(c *ginext.Context)
	InitVolunteers(c *ginext.Context)
	RemoveVolunteer(c *ginext.Context)

	ListUsers(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	GetUserSignups(c *ginext.Context)
	CurrentUser(c *ginext.Context)
	SetCurrentRole(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/stream", h.StreamActivity)

		// Signups
		api.GET("/events/:id/signups", h.ListEventSignups)
		api.POST("/events/:id/signups", h.RegisterSignup)
		api.DELETE("/events/:id/signups/:user_id", h.WithdrawSignup)
		api.POST("/events/:id/toggle", h.ToggleSignup)

		// Volunteer roster
		api.GET("/events/:id/volunteers", h.ListVolunteers)
		api.POST("/events/:id/volunteers", h.AddVolunteer)
		api.POST("/events/:id/volunteers/init", h.InitVolunteers)
		api.DELETE("/events/:id/volunteers/:name", h.RemoveVolunteer)

		// Users
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.UpdateUser)
		api.GET("/users/:id/signups", h.GetUserSignups)
		api.GET("/me", h.CurrentUser)
		api.PUT("/me/role", h.SetCurrentRole)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
