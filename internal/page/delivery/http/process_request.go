package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// processSelectReq binds the range-selection request body.
func (h *handler) processSelectReq(c *gin.Context) (selectReq, error) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processActivateReq binds the event-activation request body.
func (h *handler) processActivateReq(c *gin.Context) (activateReq, error) {
	var req activateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTimePatchReq binds the drag/resize request body.
func (h *handler) processTimePatchReq(c *gin.Context) (timePatchReq, error) {
	var req timePatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFormPatchReq binds the partial form update body.
func (h *handler) processFormPatchReq(c *gin.Context) (formPatchReq, error) {
	var req formPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAttendeeReq binds the add-attendee body. The email itself is
// validated by the editor, which records the message for the modal.
func (h *handler) processAttendeeReq(c *gin.Context) (attendeeReq, error) {
	var req attendeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAttendeeIndex parses the :index path parameter.
func (h *handler) processAttendeeIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, fmt.Errorf("invalid attendee index %q", c.Param("index"))
	}
	return idx, nil
}

// processChatReq binds the chat relay body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
