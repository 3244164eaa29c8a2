package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"tuitionku_backend/internals/features/batches/model"
)

var ErrEndBeforeStart = errors.New("batch end date must not be before start date")

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ScheduleSlotRequest struct {
	Day       string `json:"day"        validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04"`
}

type CreateBatchRequest struct {
	BatchName       string `json:"batch_name"        validate:"required,max=100"`
	BatchBoard      string `json:"batch_board"       validate:"required,oneof=CBSE ASSEB"`
	BatchClassLevel string `json:"batch_class_level" validate:"required,oneof=9 10 11 12"`

	BatchStartDate string  `json:"batch_start_date" validate:"required,datetime=2006-01-02"`
	BatchEndDate   *string `json:"batch_end_date"   validate:"omitempty,datetime=2006-01-02"`

	BatchSubjects []string              `json:"batch_subjects" validate:"required,min=1,dive,required"`
	BatchSchedule []ScheduleSlotRequest `json:"batch_schedule" validate:"omitempty,dive"`
}

func (r CreateBatchRequest) ToModel() (model.BatchModel, error) {
	start, err := time.Parse("2006-01-02", r.BatchStartDate)
	if err != nil {
		return model.BatchModel{}, err
	}

	var end *time.Time
	if r.BatchEndDate != nil && *r.BatchEndDate != "" {
		e, err := time.Parse("2006-01-02", *r.BatchEndDate)
		if err != nil {
			return model.BatchModel{}, err
		}
		if e.Before(start) {
			return model.BatchModel{}, ErrEndBeforeStart
		}
		end = &e
	}

	slots := make([]model.ScheduleSlot, 0, len(r.BatchSchedule))
	for _, s := range r.BatchSchedule {
		slots = append(slots, model.ScheduleSlot{
			Day:       s.Day,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	scheduleJSON, err := json.Marshal(slots)
	if err != nil {
		return model.BatchModel{}, err
	}

	return model.BatchModel{
		BatchName:       r.BatchName,
		BatchBoard:      r.BatchBoard,
		BatchClassLevel: r.BatchClassLevel,
		BatchStartDate:  start,
		BatchEndDate:    end,
		BatchSubjects:   pq.StringArray(r.BatchSubjects),
		BatchSchedule:   datatypes.JSON(scheduleJSON),
	}, nil
}

// UpdateBatchRequest is a partial update. The end-vs-start invariant is
// rechecked in the controller against the stored row, since either side of
// the range may be absent here.
type UpdateBatchRequest struct {
	BatchName       *string `json:"batch_name"        validate:"omitempty,max=100"`
	BatchBoard      *string `json:"batch_board"       validate:"omitempty,oneof=CBSE ASSEB"`
	BatchClassLevel *string `json:"batch_class_level" validate:"omitempty,oneof=9 10 11 12"`

	BatchStartDate *string `json:"batch_start_date" validate:"omitempty,datetime=2006-01-02"`
	BatchEndDate   *string `json:"batch_end_date"   validate:"omitempty,datetime=2006-01-02"`

	BatchSubjects []string              `json:"batch_subjects" validate:"omitempty,min=1,dive,required"`
	BatchSchedule []ScheduleSlotRequest `json:"batch_schedule" validate:"omitempty,dive"`
}

// ApplyTo collects the partial update into a column map for a single UPDATE.
func (r UpdateBatchRequest) ApplyTo() (map[string]any, error) {
	patch := map[string]any{}
	if r.BatchName != nil {
		patch["batch_name"] = *r.BatchName
	}
	if r.BatchBoard != nil {
		patch["batch_board"] = *r.BatchBoard
	}
	if r.BatchClassLevel != nil {
		patch["batch_class_level"] = *r.BatchClassLevel
	}
	if r.BatchStartDate != nil {
		start, err := time.Parse("2006-01-02", *r.BatchStartDate)
		if err != nil {
			return nil, err
		}
		patch["batch_start_date"] = start
	}
	if r.BatchEndDate != nil {
		if *r.BatchEndDate == "" {
			patch["batch_end_date"] = nil
		} else {
			end, err := time.Parse("2006-01-02", *r.BatchEndDate)
			if err != nil {
				return nil, err
			}
			patch["batch_end_date"] = end
		}
	}
	if r.BatchSubjects != nil {
		patch["batch_subjects"] = pq.StringArray(r.BatchSubjects)
	}
	if r.BatchSchedule != nil {
		slots := make([]model.ScheduleSlot, 0, len(r.BatchSchedule))
		for _, s := range r.BatchSchedule {
			slots = append(slots, model.ScheduleSlot{
				Day:       s.Day,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
			})
		}
		scheduleJSON, err := json.Marshal(slots)
		if err != nil {
			return nil, err
		}
		patch["batch_schedule"] = datatypes.JSON(scheduleJSON)
	}
	return patch, nil
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type BatchResponse struct {
	BatchID uuid.UUID `json:"batch_id"`

	BatchName       string `json:"batch_name"`
	BatchBoard      string `json:"batch_board"`
	BatchClassLevel string `json:"batch_class_level"`

	BatchStartDate time.Time  `json:"batch_start_date"`
	BatchEndDate   *time.Time `json:"batch_end_date,omitempty"`

	BatchSubjects []string             `json:"batch_subjects"`
	BatchSchedule []model.ScheduleSlot `json:"batch_schedule"`

	BatchCreatedAt time.Time `json:"batch_created_at"`
}

func NewBatchResponse(m model.BatchModel) BatchResponse {
	var slots []model.ScheduleSlot
	if len(m.BatchSchedule) > 0 {
		_ = json.Unmarshal(m.BatchSchedule, &slots)
	}
	return BatchResponse{
		BatchID:         m.BatchID,
		BatchName:       m.BatchName,
		BatchBoard:      m.BatchBoard,
		BatchClassLevel: m.BatchClassLevel,
		BatchStartDate:  m.BatchStartDate,
		BatchEndDate:    m.BatchEndDate,
		BatchSubjects:   []string(m.BatchSubjects),
		BatchSchedule:   slots,
		BatchCreatedAt:  m.BatchCreatedAt,
	}
}
