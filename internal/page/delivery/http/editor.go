package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yhoon3002/schedule-bot/pkg/response"
)

// Editor godoc
// @Summary     Editor snapshot
// @Description Returns the modal session and the current form.
// @Tags        Editor
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} editorResp
// @Router      /api/v1/editor [GET]
func (h *handler) Editor(c *gin.Context) {
	b := h.bundle(c)
	response.OK(c, newEditorResp(b.Editor))
}

// UpdateForm godoc
// @Summary     Patch the form
// @Description Applies the present fields to the form and returns the fresh snapshot. Attendees change only through the attendee endpoints.
// @Tags        Editor
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body formPatchReq true "Fields to update; absent fields stay untouched"
// @Success     200 {object} editorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/editor/form [POST]
func (h *handler) UpdateForm(c *gin.Context) {
	req, err := h.processFormPatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	b.Editor.UpdateForm(req.toPatch())
	response.OK(c, newEditorResp(b.Editor))
}

// AddAttendee godoc
// @Summary     Add an attendee
// @Description Validates and appends an email to the draft. A rejected email rides a 400 whose data carries the snapshot with the recorded message.
// @Tags        Editor
// @Accept      json
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       body body attendeeReq true "Attendee email"
// @Success     200 {object} editorResp
// @Failure     400 {object} response.Resp "Invalid or empty email"
// @Router      /api/v1/editor/attendees [POST]
func (h *handler) AddAttendee(c *gin.Context) {
	req, err := h.processAttendeeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	if err := b.Editor.AddAttendee(req.Email); err != nil {
		h.respondEditorError(c, b, err)
		return
	}
	response.OK(c, newEditorResp(b.Editor))
}

// RemoveAttendee godoc
// @Summary     Remove an attendee
// @Description Drops the attendee at the given index; out of range is a no-op.
// @Tags        Editor
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Param       index path int true "Attendee index"
// @Success     200 {object} editorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/editor/attendees/{index} [DELETE]
func (h *handler) RemoveAttendee(c *gin.Context) {
	idx, err := h.processAttendeeIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	b := h.bundle(c)
	b.Editor.RemoveAttendee(idx)
	response.OK(c, newEditorResp(b.Editor))
}

// Save godoc
// @Summary     Save the draft
// @Description Creates or updates the event depending on the editor mode. On success the editor closes and a grid refetch is requested; validation failures ride a 400 with the snapshot attached.
// @Tags        Editor
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} editorResp
// @Failure     400 {object} response.Resp "Validation failure; data carries the snapshot"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/editor/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)

	if err := b.Editor.Save(ctx); err != nil {
		h.respondEditorError(c, b, err)
		return
	}
	response.OK(c, newEditorResp(b.Editor))
}

// Delete godoc
// @Summary     Delete the edited event
// @Description Removes the event behind an edit session. Same success and failure contract as save.
// @Tags        Editor
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} editorResp
// @Failure     400 {object} response.Resp "Validation failure; data carries the snapshot"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/editor/delete [POST]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	b := h.bundle(c)

	if err := b.Editor.Delete(ctx); err != nil {
		h.respondEditorError(c, b, err)
		return
	}
	response.OK(c, newEditorResp(b.Editor))
}

// CloseEditor godoc
// @Summary     Close the editor
// @Description Resets the modal and form to the neutral state. Safe in any state.
// @Tags        Editor
// @Produce     json
// @Param       session_id query string false "Explicit session identifier"
// @Success     200 {object} editorResp
// @Router      /api/v1/editor/close [POST]
func (h *handler) CloseEditor(c *gin.Context) {
	b := h.bundle(c)
	b.Editor.Close()
	response.OK(c, newEditorResp(b.Editor))
}
