package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// callbackHTML closes the consent popup; the page meanwhile unblocks
// from its pending login request.
const callbackHTML = `<!doctype html>
<meta charset="utf-8">
<title>Google 연결</title>
<p>연결이 완료되었습니다. 이 창은 닫아도 됩니다.</p>
<script>window.close()</script>
`

const callbackDeniedHTML = `<!doctype html>
<meta charset="utf-8">
<title>Google 연결</title>
<p>연결이 취소되었습니다. 이 창은 닫아도 됩니다.</p>
<script>window.close()</script>
`

// OAuthCallback godoc
// @Summary     OAuth redirect target
// @Description Receives the consent redirect from Google and delivers the code to the session waiting on it. Registered as the OAuth client's redirect URI.
// @Tags        Connection
// @Produce     html
// @Param       state query string false "State token minted by the authorize endpoint"
// @Param       code  query string false "Authorization code"
// @Param       error query string false "Consent error, e.g. access_denied"
// @Success     200 "Minimal page that closes the popup"
// @Failure     400 "Missing or expired state token"
// @Failure     503 "Consent flow not configured"
// @Router      /oauth/google/callback [GET]
func (h *handler) OAuthCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if h.redirect == nil {
		c.String(http.StatusServiceUnavailable, "authorization provider not ready")
		return
	}

	if errMsg := c.Query("error"); errMsg != "" {
		h.l.Warnf(ctx, "page: oauth callback: consent error: %s", errMsg)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(callbackDeniedHTML))
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.String(http.StatusBadRequest, "missing state or code")
		return
	}

	sid, err := h.redirect.HandleCallback(ctx, state, code)
	if err != nil {
		h.l.Warnf(ctx, "page: oauth callback: %v", err)
		c.String(http.StatusBadRequest, "unknown or expired state token")
		return
	}

	h.l.Infof(ctx, "page: oauth callback: code delivered for session %s", sid)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(callbackHTML))
}
