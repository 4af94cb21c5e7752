package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/internal/connection/authcode"
	"github.com/yhoon3002/schedule-bot/internal/page"
	"github.com/yhoon3002/schedule-bot/pkg/log"
)

// Handler is the public interface for the page HTTP delivery layer.
type Handler interface {
	Session(c *gin.Context)

	ConnectionState(c *gin.Context)
	ConnectionStatus(c *gin.Context)
	Login(c *gin.Context)
	Disconnect(c *gin.Context)
	Logout(c *gin.Context)
	Authorize(c *gin.Context)
	OAuthCallback(c *gin.Context)

	Events(c *gin.Context)
	Grid(c *gin.Context)
	Select(c *gin.Context)
	Activate(c *gin.Context)
	Move(c *gin.Context)
	Resize(c *gin.Context)

	Editor(c *gin.Context)
	UpdateForm(c *gin.Context)
	AddAttendee(c *gin.Context)
	RemoveAttendee(c *gin.Context)
	Save(c *gin.Context)
	Delete(c *gin.Context)
	CloseEditor(c *gin.Context)

	Chat(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *page.Registry
	redirect *authcode.Redirect
}

var _ Handler = &handler{}

// New creates the page HTTP handler. redirect may be nil when the
// consent flow is not configured; the authorize and callback endpoints
// then fail fast instead of minting dead URLs.
func New(l log.Logger, registry *page.Registry, redirect *authcode.Redirect) *handler {
	return &handler{
		l:        l,
		registry: registry,
		redirect: redirect,
	}
}

// bundle resolves the request's core bundle. The optional session_id
// query selects an explicit session; without it the default bundle
// behind the persisted identifier answers.
func (h *handler) bundle(c *gin.Context) *page.Bundle {
	return h.registry.Bundle(c.Query("session_id"))
}
