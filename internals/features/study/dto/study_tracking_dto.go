package dto

import (
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/study/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudyTrackingRequest struct {
	StudyTrackingStudentID uuid.UUID `json:"study_tracking_student_id" validate:"required"`

	StudyTrackingSubject string `json:"study_tracking_subject" validate:"required,max=100"`
	StudyTrackingTopic   string `json:"study_tracking_topic"   validate:"required,max=200"`

	StudyTrackingProgress   int     `json:"study_tracking_progress"    validate:"min=0,max=100"`
	StudyTrackingStudyHours float64 `json:"study_tracking_study_hours" validate:"min=0"`
	StudyTrackingNotes      string  `json:"study_tracking_notes"       validate:"omitempty,max=1000"`
}

// ToModel stamps last_studied with the write time.
func (r CreateStudyTrackingRequest) ToModel(now time.Time) model.StudyTrackingModel {
	return model.StudyTrackingModel{
		StudyTrackingStudentID:   r.StudyTrackingStudentID,
		StudyTrackingSubject:     r.StudyTrackingSubject,
		StudyTrackingTopic:       r.StudyTrackingTopic,
		StudyTrackingProgress:    r.StudyTrackingProgress,
		StudyTrackingStudyHours:  r.StudyTrackingStudyHours,
		StudyTrackingNotes:       r.StudyTrackingNotes,
		StudyTrackingLastStudied: now,
	}
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudyTrackingResponse struct {
	StudyTrackingID        uuid.UUID `json:"study_tracking_id"`
	StudyTrackingStudentID uuid.UUID `json:"study_tracking_student_id"`

	StudyTrackingStudentName string `json:"study_tracking_student_name"`

	StudyTrackingSubject string `json:"study_tracking_subject"`
	StudyTrackingTopic   string `json:"study_tracking_topic"`

	StudyTrackingProgress   int     `json:"study_tracking_progress"`
	StudyTrackingStudyHours float64 `json:"study_tracking_study_hours"`
	StudyTrackingNotes      string  `json:"study_tracking_notes,omitempty"`

	StudyTrackingLastStudied time.Time `json:"study_tracking_last_studied"`
	StudyTrackingCreatedAt   time.Time `json:"study_tracking_created_at"`
}

const UnknownStudentName = "Unknown Student"

func NewStudyTrackingResponse(m model.StudyTrackingModel, studentName string) StudyTrackingResponse {
	if studentName == "" {
		studentName = UnknownStudentName
	}
	return StudyTrackingResponse{
		StudyTrackingID:          m.StudyTrackingID,
		StudyTrackingStudentID:   m.StudyTrackingStudentID,
		StudyTrackingStudentName: studentName,
		StudyTrackingSubject:     m.StudyTrackingSubject,
		StudyTrackingTopic:       m.StudyTrackingTopic,
		StudyTrackingProgress:    m.StudyTrackingProgress,
		StudyTrackingStudyHours:  m.StudyTrackingStudyHours,
		StudyTrackingNotes:       m.StudyTrackingNotes,
		StudyTrackingLastStudied: m.StudyTrackingLastStudied,
		StudyTrackingCreatedAt:   m.StudyTrackingCreatedAt,
	}
}
