package http

import (
	"github.com/yhoon3002/schedule-bot/internal/chat"
	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/editor"
	"github.com/yhoon3002/schedule-bot/internal/event"
)

// --- Request DTOs ---

type selectReq struct {
	Start  string `json:"start" binding:"required"`
	End    string `json:"end"`
	AllDay bool   `json:"all_day"`
}

type activateReq struct {
	ID string `json:"id" binding:"required"`
}

type timePatchReq struct {
	ID    string `json:"id"    binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

// formPatchReq mirrors event.Form's keys; absent fields stay untouched.
type formPatchReq struct {
	Title           *string `json:"title"`
	StartLocal      *string `json:"startLocal"`
	EndLocal        *string `json:"endLocal"`
	Location        *string `json:"location"`
	Description     *string `json:"description"`
	NotifyAttendees *bool   `json:"notifyAttendees"`
}

func (r formPatchReq) toPatch() editor.FormPatch {
	return editor.FormPatch{
		Title:           r.Title,
		StartLocal:      r.StartLocal,
		EndLocal:        r.EndLocal,
		Location:        r.Location,
		Description:     r.Description,
		NotifyAttendees: r.NotifyAttendees,
	}
}

type attendeeReq struct {
	Email string `json:"email"`
}

type chatReq struct {
	UserMessage string      `json:"user_message" binding:"required"`
	History     []chat.Turn `json:"history"`
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string `json:"session_id"`
}

type connectionResp struct {
	connection.State
	IsReady bool `json:"is_ready"`
}

func newConnectionResp(st connection.State) connectionResp {
	return connectionResp{State: st, IsReady: st.IsReady()}
}

type loginResp struct {
	Connected bool `json:"connected"`
}

type eventsResp struct {
	Items []event.Event `json:"items"`
}

type editorResp struct {
	Session editor.Session `json:"session"`
	Form    event.Form     `json:"form"`
}

func newEditorResp(ed editor.UseCase) editorResp {
	sess, form := ed.Snapshot()
	return editorResp{Session: sess, Form: form}
}
