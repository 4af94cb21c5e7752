package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// Session godoc
// @Summary     Current session identifier
// @Description Returns the identifier backing this page's bundle, minting one on first use.
// @Tags        Session
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} sessionResp
// @Router      /api/v1/session [GET]
func (h *handler) Session(c *gin.Context) {
	b := h.bundle(c)
	response.OK(c, sessionResp{SessionID: b.Ref.SessionID()})
}
