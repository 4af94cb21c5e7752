package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// ConnectionState godoc
// @Summary     Connection snapshot
// @Description Returns the current connection state without touching the network.
// @Tags        Connection
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} connectionResp
// @Router      /api/v1/connection [GET]
func (h *handler) ConnectionState(c *gin.Context) {
	b := h.bundle(c)
	response.OK(c, newConnectionResp(b.Conn.State()))
}

// ConnectionStatus godoc
// @Summary     Refresh connection status
// @Description Probes the auth backend and returns the refreshed snapshot. A dead backend still marks the state initialized.
// @Tags        Connection
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} connectionResp
// @Router      /api/v1/connection/status [POST]
func (h *handler) ConnectionStatus(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)
	response.OK(c, newConnectionResp(b.Conn.FetchStatus(ctx)))
}

// Login godoc
// @Summary     Connect Google Calendar
// @Description Runs the full connect flow. Blocks until the consent popup delivers a code, the login timeout passes, or the request is cancelled.
// @Tags        Connection
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} loginResp
// @Router      /api/v1/connection/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)
	response.OK(c, loginResp{Connected: b.Conn.LoginAndConnect(ctx)})
}

// Disconnect godoc
// @Summary     Disconnect Google Calendar
// @Description Revokes the stored tokens at the backend and returns the refreshed snapshot.
// @Tags        Connection
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} connectionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/connection/disconnect [POST]
func (h *handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)

	if err := b.Conn.Disconnect(ctx); err != nil {
		h.l.Errorf(ctx, "page: disconnect: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newConnectionResp(b.Conn.State()))
}

// Logout godoc
// @Summary     Log out
// @Description Clears local state and the persisted session identifier; nothing is revoked at the backend.
// @Tags        Connection
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} connectionResp
// @Router      /api/v1/connection/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	b := h.bundle(c)
	b.Conn.Logout()
	response.OK(c, newConnectionResp(b.Conn.State()))
}

// Authorize godoc
// @Summary     Open the Google consent screen
// @Description Redirects to the consent URL for this session. The page opens this in a popup while a login request is waiting.
// @Tags        Connection
// @Param       session_id query string false "Explicit session identifier"
// @Success     302 "Redirect to the Google consent screen"
// @Failure     503 {object} response.Resp "Consent flow not configured"
// @Router      /api/v1/connection/authorize [GET]
func (h *handler) Authorize(c *gin.Context) {
	if h.redirect == nil {
		h.respondError(c, connection.ErrProviderNotReady)
		return
	}

	b := h.bundle(c)
	c.Redirect(http.StatusFound, h.redirect.AuthorizeURL(b.Ref.SessionID()))
}
