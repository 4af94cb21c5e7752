package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// Events godoc
// @Summary     Fetch events for a window
// @Description Fetches and normalizes the events between start and end. Not-ready and failed loads both collapse to an empty list; the grid snapshot carries the error.
// @Tags        Calendar
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       start query string false "Window start, RFC3339 or YYYY-MM-DD (default: today 00:00)"
// @Param       end   query string false "Window end, RFC3339 or YYYY-MM-DD (default: Dec 31 23:59:59)"
// @Success     200 {object} eventsResp
// @Router      /api/v1/calendar/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)

	items := b.Calendar.FetchRange(ctx, calendar.Range{
		Start: c.Query("start"),
		End:   c.Query("end"),
	})
	response.OK(c, eventsResp{Items: items})
}

// Grid godoc
// @Summary     Grid snapshot
// @Description Returns the displayed events plus the sequence numbers the page polls to re-render and to drop its selection.
// @Tags        Calendar
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} page.GridSnapshot
// @Router      /api/v1/calendar/grid [GET]
func (h *handler) Grid(c *gin.Context) {
	b := h.bundle(c)
	response.OK(c, b.Grid.Snapshot())
}

// Select godoc
// @Summary     Range selected on the grid
// @Description Opens the editor in create mode seeded from the selection, then clears the grid selection.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body selectReq true "Selection bounds"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/select [POST]
func (h *handler) Select(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	b.Calendar.OnRangeSelect(ctx, req.Start, req.End, req.AllDay)
	response.OK(c, nil)
}

// Activate godoc
// @Summary     Event activated on the grid
// @Description Opens the editor in edit mode from the displayed event.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body activateReq true "Event identifier"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event not in the displayed range"
// @Router      /api/v1/calendar/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processActivateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	if err := b.Calendar.OnEventActivate(ctx, req.ID); err != nil {
		h.l.Warnf(ctx, "page: activate %s: %v", req.ID, err)
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// Move godoc
// @Summary     Event dragged to a new time
// @Description Patches only the event's boundaries, then refetches the window. A failed patch still refetches so the dragged event snaps back.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body timePatchReq true "New boundaries"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event not in the displayed range"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimePatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	if err := b.Calendar.OnEventMoved(ctx, req.ID, req.Start, req.End); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// Resize godoc
// @Summary     Event resized to a new duration
// @Description Same contract as move: boundary patch plus refetch.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body timePatchReq true "New boundaries"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event not in the displayed range"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/resize [POST]
func (h *handler) Resize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimePatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	if err := b.Calendar.OnEventResized(ctx, req.ID, req.Start, req.End); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}
