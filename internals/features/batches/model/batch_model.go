package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleSlot is one weekly class slot, stored inside the JSONB schedule
// column ("Monday" + "09:00"-"10:00").
type ScheduleSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BatchModel struct {
	BatchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:batch_id" json:"batch_id"`

	BatchName       string `gorm:"not null;column:batch_name"                    json:"batch_name"`
	BatchBoard      string `gorm:"type:varchar(10);not null;column:batch_board"  json:"batch_board"`
	BatchClassLevel string `gorm:"type:varchar(2);not null;column:batch_class_level" json:"batch_class_level"`

	BatchStartDate time.Time  `gorm:"type:date;not null;column:batch_start_date" json:"batch_start_date"`
	BatchEndDate   *time.Time `gorm:"type:date;column:batch_end_date"            json:"batch_end_date,omitempty"`

	BatchSubjects pq.StringArray `gorm:"type:text[];not null;column:batch_subjects" json:"batch_subjects"`
	BatchSchedule datatypes.JSON `gorm:"type:jsonb;column:batch_schedule"           json:"batch_schedule,omitempty"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt *time.Time     `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at,omitempty"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index"          json:"batch_deleted_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }
