package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceEntry is one student's row inside a session, stored in the JSONB
// entries column.
type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Present   bool      `json:"present"`
	Notes     string    `json:"notes,omitempty"`
}

// AttendanceSessionModel is one attendance-taking event: one batch, one date.
// Sessions are append-only; there is no update or delete path.
type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	AttendanceSessionBatchID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_batch_id;index" json:"attendance_session_batch_id"`
	AttendanceSessionDate    time.Time `gorm:"not null;column:attendance_session_date;index"               json:"attendance_session_date"`

	AttendanceSessionClassTaken bool   `gorm:"not null;column:attendance_session_class_taken" json:"attendance_session_class_taken"`
	AttendanceSessionClassNotes string `gorm:"column:attendance_session_class_notes"          json:"attendance_session_class_notes"`

	AttendanceSessionEntries datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:attendance_session_entries" json:"attendance_session_entries"`

	AttendanceSessionCreatedAt time.Time `gorm:"column:attendance_session_created_at;autoCreateTime" json:"attendance_session_created_at"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }
