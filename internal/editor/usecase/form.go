package usecase

import (
	"strings"

	"github.com/yhoon3002/schedule-bot/internal/editor"
)

// UpdateForm implements editor.UseCase.
func (uc *implUseCase) UpdateForm(patch editor.FormPatch) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Open {
		return
	}
	if patch.Title != nil {
		uc.form.Title = *patch.Title
	}
	if patch.StartLocal != nil {
		uc.form.StartLocal = *patch.StartLocal
	}
	if patch.EndLocal != nil {
		uc.form.EndLocal = *patch.EndLocal
	}
	if patch.Location != nil {
		uc.form.Location = *patch.Location
	}
	if patch.Description != nil {
		uc.form.Description = *patch.Description
	}
	if patch.NotifyAttendees != nil {
		uc.form.NotifyAttendees = *patch.NotifyAttendees
	}
}

// AddAttendee implements editor.UseCase.
func (uc *implUseCase) AddAttendee(email string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Open {
		return editor.ErrEditorClosed
	}

	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		uc.session.AttendeeError = editor.ErrEmptyAttendee.Error()
		return editor.ErrEmptyAttendee
	}
	if !emailPattern.MatchString(trimmed) {
		uc.session.AttendeeError = editor.ErrInvalidAttendee.Error()
		return editor.ErrInvalidAttendee
	}
	for _, existing := range uc.form.Attendees {
		if existing == trimmed {
			// Already invited. Not an error; the input just clears.
			uc.session.AttendeeError = ""
			return nil
		}
	}

	uc.form.Attendees = append(uc.form.Attendees, trimmed)
	uc.session.AttendeeError = ""
	return nil
}

// RemoveAttendee implements editor.UseCase.
func (uc *implUseCase) RemoveAttendee(index int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.session.Open || index < 0 || index >= len(uc.form.Attendees) {
		return
	}
	uc.form.Attendees = append(uc.form.Attendees[:index], uc.form.Attendees[index+1:]...)
}
