package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// Chat godoc
// @Summary     Relay a chat message
// @Description Forwards the message and transcript to the scheduling assistant and returns its reply. Only available when a remote backend is configured.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body chatReq true "Message and prior turns"
// @Success     200 {object} chat.Reply
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Assistant not available"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	reply, err := b.Assistant.Send(ctx, b.Ref.SessionID(), req.UserMessage, req.History)
	if err != nil {
		h.l.Errorf(ctx, "page: chat: %v", err)
		h.respondError(c, err)
		return
	}
	response.OK(c, reply)
}
