package session

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
	"github.com/Totix777/hauswirtschaft/pkg/db"
)

// Session owns the in-progress cleaning task draft for one room's form
// instance. Each room's form is independent, so the session carries no
// shared state and is not safe for concurrent use.
type Session struct {
	draft          db.CleaningTask
	classification rooms.Classification
	photos         []string
	completedToday bool
	validationErr  error
}

// New creates an editing session for a room. completedToday seeds the
// per-day completion indicator from existing records.
func New(roomNumber, staffName string, classification rooms.Classification, completedToday bool) *Session {
	return &Session{
		draft: db.CleaningTask{
			Date:       time.Now().Format("2006-01-02"),
			RoomNumber: roomNumber,
			StaffName:  staffName,
		},
		classification: classification,
		completedToday: completedToday,
	}
}

// Classification returns the room's checklist variant
func (s *Session) Classification() rooms.Classification {
	return s.classification
}

// Draft returns a copy of the current draft
func (s *Session) Draft() db.CleaningTask {
	return s.draft
}

// Toggle sets a checklist flag and clears any previous validation error,
// mirroring the live error-clearing on checkbox edits.
func (s *Session) Toggle(item rooms.ChecklistItem, value bool) {
	s.draft.SetFlag(item, value)
	s.validationErr = nil
}

// SetNotes replaces the free-text notes
func (s *Session) SetNotes(notes string) {
	s.draft.Notes = notes
}

// SetDate overrides the draft's calendar date (ISO form)
func (s *Session) SetDate(date string) {
	s.draft.Date = date
}

// AttachPhoto appends a photo data URI. Photos keep selection order so
// the notification payload is deterministic.
func (s *Session) AttachPhoto(dataURI string) {
	s.photos = append(s.photos, dataURI)
}

// Photos returns a copy of the accumulated photo evidence
func (s *Session) Photos() []string {
	out := make([]string, len(s.photos))
	copy(out, s.photos)
	return out
}

// CompletedToday reports whether a valid submission already exists for
// this room today. Advisory only - repeat submissions are permitted.
func (s *Session) CompletedToday() bool {
	return s.completedToday
}

// ValidationError returns the pending validation error, if any
func (s *Session) ValidationError() error {
	return s.validationErr
}

// Reject records a validation failure and leaves the draft intact
func (s *Session) Reject(err error) {
	s.validationErr = err
}

// Commit transitions the session back to a fresh editing state after a
// successful submission: the completion flag flips true, photos and the
// checklist and notes are cleared, while date, room number, staff name
// and the now-current time are preserved.
func (s *Session) Commit(submittedAt string) {
	s.validationErr = nil
	s.completedToday = true
	s.photos = nil
	s.draft.ClearChecklist()
	s.draft.Notes = ""
	s.draft.Time = submittedAt
}

// DataURI encodes raw image bytes as a self-describing base64 data URI
func DataURI(data []byte) string {
	contentType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
