package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tuitionku_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type AttendanceEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Present   bool      `json:"present"`
	Notes     string    `json:"notes" validate:"omitempty,max=500"`
}

// CreateAttendanceSessionRequest records one class session. When the class
// was taken, entries must cover every student enrolled in the batch (checked
// in the controller against the students table). When it wasn't, entries may
// be empty and the class notes carry the cancellation reason.
type CreateAttendanceSessionRequest struct {
	AttendanceSessionBatchID uuid.UUID `json:"attendance_session_batch_id" validate:"required"`
	AttendanceSessionDate    string    `json:"attendance_session_date"     validate:"required,datetime=2006-01-02"`

	AttendanceSessionClassTaken bool   `json:"attendance_session_class_taken"`
	AttendanceSessionClassNotes string `json:"attendance_session_class_notes" validate:"omitempty,max=1000"`

	AttendanceSessionEntries []AttendanceEntryRequest `json:"attendance_session_entries" validate:"omitempty,dive"`
}

func (r CreateAttendanceSessionRequest) Entries() []model.AttendanceEntry {
	out := make([]model.AttendanceEntry, 0, len(r.AttendanceSessionEntries))
	for _, e := range r.AttendanceSessionEntries {
		out = append(out, model.AttendanceEntry{
			StudentID: e.StudentID,
			Present:   e.Present,
			Notes:     e.Notes,
		})
	}
	return out
}

func (r CreateAttendanceSessionRequest) ToModel() (model.AttendanceSessionModel, error) {
	date, err := time.Parse("2006-01-02", r.AttendanceSessionDate)
	if err != nil {
		return model.AttendanceSessionModel{}, err
	}
	entriesJSON, err := json.Marshal(r.Entries())
	if err != nil {
		return model.AttendanceSessionModel{}, err
	}
	return model.AttendanceSessionModel{
		AttendanceSessionBatchID:    r.AttendanceSessionBatchID,
		AttendanceSessionDate:       date,
		AttendanceSessionClassTaken: r.AttendanceSessionClassTaken,
		AttendanceSessionClassNotes: r.AttendanceSessionClassNotes,
		AttendanceSessionEntries:    datatypes.JSON(entriesJSON),
	}, nil
}

// FilterAttendanceRequest is the list-screen filter (query string).
type FilterAttendanceRequest struct {
	BatchID *uuid.UUID `query:"batch_id" validate:"omitempty"`
	Date    *string    `query:"date"     validate:"omitempty,oneof=today yesterday this-week"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceSessionResponse struct {
	AttendanceSessionID      uuid.UUID `json:"attendance_session_id"`
	AttendanceSessionBatchID uuid.UUID `json:"attendance_session_batch_id"`

	// Resolved batch display name, empty when the batch is gone
	AttendanceSessionBatchName string `json:"attendance_session_batch_name,omitempty"`

	AttendanceSessionDate       time.Time `json:"attendance_session_date"`
	AttendanceSessionClassTaken bool      `json:"attendance_session_class_taken"`
	AttendanceSessionClassNotes string    `json:"attendance_session_class_notes"`

	AttendanceSessionEntries []model.AttendanceEntry `json:"attendance_session_entries"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at"`
}

func NewAttendanceSessionResponse(m model.AttendanceSessionModel, batchName string) AttendanceSessionResponse {
	var entries []model.AttendanceEntry
	if len(m.AttendanceSessionEntries) > 0 {
		_ = json.Unmarshal(m.AttendanceSessionEntries, &entries)
	}
	return AttendanceSessionResponse{
		AttendanceSessionID:         m.AttendanceSessionID,
		AttendanceSessionBatchID:    m.AttendanceSessionBatchID,
		AttendanceSessionBatchName:  batchName,
		AttendanceSessionDate:       m.AttendanceSessionDate,
		AttendanceSessionClassTaken: m.AttendanceSessionClassTaken,
		AttendanceSessionClassNotes: m.AttendanceSessionClassNotes,
		AttendanceSessionEntries:    entries,
		AttendanceSessionCreatedAt:  m.AttendanceSessionCreatedAt,
	}
}
