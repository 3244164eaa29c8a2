package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyTrackingModel struct {
	StudyTrackingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:study_tracking_id" json:"study_tracking_id"`

	StudyTrackingStudentID uuid.UUID `gorm:"type:uuid;not null;column:study_tracking_student_id;index" json:"study_tracking_student_id"`

	StudyTrackingSubject string `gorm:"not null;column:study_tracking_subject" json:"study_tracking_subject"`
	StudyTrackingTopic   string `gorm:"not null;column:study_tracking_topic"   json:"study_tracking_topic"`

	StudyTrackingProgress   int     `gorm:"not null;column:study_tracking_progress"    json:"study_tracking_progress"`
	StudyTrackingStudyHours float64 `gorm:"not null;column:study_tracking_study_hours" json:"study_tracking_study_hours"`
	StudyTrackingNotes      string  `gorm:"column:study_tracking_notes"                json:"study_tracking_notes"`

	// Stamped server-side on every write
	StudyTrackingLastStudied time.Time `gorm:"not null;column:study_tracking_last_studied;index" json:"study_tracking_last_studied"`

	StudyTrackingCreatedAt time.Time      `gorm:"column:study_tracking_created_at;autoCreateTime" json:"study_tracking_created_at"`
	StudyTrackingUpdatedAt *time.Time     `gorm:"column:study_tracking_updated_at;autoUpdateTime" json:"study_tracking_updated_at,omitempty"`
	StudyTrackingDeletedAt gorm.DeletedAt `gorm:"column:study_tracking_deleted_at;index"          json:"study_tracking_deleted_at,omitempty"`
}

func (StudyTrackingModel) TableName() string { return "study_tracking" }
