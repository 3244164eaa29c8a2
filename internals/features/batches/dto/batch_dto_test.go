package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"tuitionku_backend/internals/features/batches/model"
)

func validCreateRequest() CreateBatchRequest {
	return CreateBatchRequest{
		BatchName:       "Class 10 Morning",
		BatchBoard:      "CBSE",
		BatchClassLevel: "10",
		BatchStartDate:  "2024-04-01",
		BatchSubjects:   []string{"Mathematics", "Science"},
		BatchSchedule: []ScheduleSlotRequest{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:30"},
		},
	}
}

func TestCreateBatchRequestToModel(t *testing.T) {
	req := validCreateRequest()
	end := "2024-12-20"
	req.BatchEndDate = &end

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if m.BatchStartDate.Format("2006-01-02") != "2024-04-01" {
		t.Errorf("BatchStartDate = %s", m.BatchStartDate)
	}
	if m.BatchEndDate == nil || m.BatchEndDate.Format("2006-01-02") != "2024-12-20" {
		t.Errorf("BatchEndDate = %v", m.BatchEndDate)
	}
	if len(m.BatchSubjects) != 2 {
		t.Errorf("BatchSubjects = %v", m.BatchSubjects)
	}

	var slots []model.ScheduleSlot
	if err := json.Unmarshal(m.BatchSchedule, &slots); err != nil {
		t.Fatalf("schedule JSON invalid: %v", err)
	}
	if len(slots) != 1 || slots[0].Day != "Monday" || slots[0].StartTime != "09:00" {
		t.Errorf("schedule = %+v", slots)
	}
}

func TestCreateBatchRequestEndBeforeStart(t *testing.T) {
	req := validCreateRequest()
	end := "2024-03-31" // one day before start
	req.BatchEndDate = &end

	if _, err := req.ToModel(); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("ToModel() error = %v, want ErrEndBeforeStart", err)
	}
}

func TestCreateBatchRequestEndEqualsStart(t *testing.T) {
	req := validCreateRequest()
	end := req.BatchStartDate // same day is allowed
	req.BatchEndDate = &end

	if _, err := req.ToModel(); err != nil {
		t.Errorf("ToModel() error = %v, want nil", err)
	}
}

func TestUpdateBatchRequestApplyTo(t *testing.T) {
	strp := func(s string) *string { return &s }

	t.Run("empty request patches nothing", func(t *testing.T) {
		patch, err := (UpdateBatchRequest{}).ApplyTo()
		if err != nil {
			t.Fatalf("ApplyTo() error: %v", err)
		}
		if len(patch) != 0 {
			t.Errorf("ApplyTo() = %v, want empty", patch)
		}
	})

	t.Run("set fields land in the patch", func(t *testing.T) {
		req := UpdateBatchRequest{
			BatchName:     strp("Class 10 Evening"),
			BatchSubjects: []string{"English"},
		}
		patch, err := req.ApplyTo()
		if err != nil {
			t.Fatalf("ApplyTo() error: %v", err)
		}
		if len(patch) != 2 {
			t.Fatalf("ApplyTo() has %d entries: %v", len(patch), patch)
		}
		if patch["batch_name"] != "Class 10 Evening" {
			t.Errorf("batch_name = %v", patch["batch_name"])
		}
	})

	t.Run("empty end date clears the column", func(t *testing.T) {
		req := UpdateBatchRequest{BatchEndDate: strp("")}
		patch, err := req.ApplyTo()
		if err != nil {
			t.Fatalf("ApplyTo() error: %v", err)
		}
		if v, ok := patch["batch_end_date"]; !ok || v != nil {
			t.Errorf("batch_end_date = %v (present=%v), want nil", v, ok)
		}
	})

	t.Run("bad date errors", func(t *testing.T) {
		req := UpdateBatchRequest{BatchStartDate: strp("31/01/2024")}
		if _, err := req.ApplyTo(); err == nil {
			t.Error("ApplyTo() error = nil, want parse error")
		}
	})
}

func TestCreateBatchRequestEmptyEndDateIgnored(t *testing.T) {
	req := validCreateRequest()
	empty := ""
	req.BatchEndDate = &empty

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if m.BatchEndDate != nil {
		t.Errorf("BatchEndDate = %v, want nil", m.BatchEndDate)
	}
}
