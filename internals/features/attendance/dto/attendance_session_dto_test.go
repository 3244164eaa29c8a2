package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/attendance/model"
)

func TestCreateAttendanceSessionRequestToModel(t *testing.T) {
	batchID := uuid.New()
	a, b := uuid.New(), uuid.New()

	req := CreateAttendanceSessionRequest{
		AttendanceSessionBatchID:    batchID,
		AttendanceSessionDate:       "2024-04-10",
		AttendanceSessionClassTaken: true,
		AttendanceSessionEntries: []AttendanceEntryRequest{
			{StudentID: a, Present: true},
			{StudentID: b, Present: false, Notes: "sick leave"},
		},
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if m.AttendanceSessionBatchID != batchID {
		t.Errorf("batch id = %s", m.AttendanceSessionBatchID)
	}
	if m.AttendanceSessionDate.Format("2006-01-02") != "2024-04-10" {
		t.Errorf("date = %s", m.AttendanceSessionDate)
	}

	var entries []model.AttendanceEntry
	if err := json.Unmarshal(m.AttendanceSessionEntries, &entries); err != nil {
		t.Fatalf("entries JSON invalid: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[1].StudentID != b || entries[1].Present || entries[1].Notes != "sick leave" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

// A cancelled class carries no entries; the stored JSON is still a valid
// empty array, not null.
func TestCreateAttendanceSessionRequestClassNotTaken(t *testing.T) {
	req := CreateAttendanceSessionRequest{
		AttendanceSessionBatchID:    uuid.New(),
		AttendanceSessionDate:       "2024-04-11",
		AttendanceSessionClassTaken: false,
		AttendanceSessionClassNotes: "holiday",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if string(m.AttendanceSessionEntries) != "[]" {
		t.Errorf("entries JSON = %s, want []", m.AttendanceSessionEntries)
	}
}

func TestCreateAttendanceSessionRequestBadDate(t *testing.T) {
	req := CreateAttendanceSessionRequest{
		AttendanceSessionBatchID: uuid.New(),
		AttendanceSessionDate:    "10-04-2024",
	}
	if _, err := req.ToModel(); err == nil {
		t.Error("ToModel() error = nil, want parse error")
	}
}
