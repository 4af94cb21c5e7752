package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/chat"
	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/page"
	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// respondError maps domain sentinels onto their HTTP status and writes
// the standard envelope. Anything unmapped answers 500 with the
// generic message so internals never leak to the page.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrEventNotFound):
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   err.Error(),
		})
	case errors.Is(err, calendar.ErrInvalidRange):
		response.Error(c, err, nil)
	case errors.Is(err, connection.ErrProviderNotReady),
		errors.Is(err, chat.ErrAssistantUnavailable):
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   err.Error(),
		})
	default:
		response.InternalError(c, err)
	}
}

// respondEditorError answers a failed editor mutation. Validation
// failures ride a 400 with the fresh snapshot attached so the page can
// render the recorded message without a second round trip; transport
// failures stay a plain 500.
func (h *handler) respondEditorError(c *gin.Context, b *page.Bundle, err error) {
	switch {
	case errors.Is(err, editor.ErrEditorClosed),
		errors.Is(err, editor.ErrMissingStart),
		errors.Is(err, editor.ErrInvalidTime),
		errors.Is(err, editor.ErrEmptyAttendee),
		errors.Is(err, editor.ErrInvalidAttendee),
		errors.Is(err, editor.ErrNothingToDelete):
		sess, form := b.Editor.Snapshot()
		response.Error(c, err, gin.H{"session": sess, "form": form})
	default:
		response.InternalError(c, err)
	}
}
