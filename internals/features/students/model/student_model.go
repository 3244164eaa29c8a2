package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentFirstName string  `gorm:"not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string  `gorm:"not null;column:student_last_name"  json:"student_last_name"`
	StudentEmail     *string `gorm:"column:student_email"               json:"student_email,omitempty"`
	StudentPhone     *string `gorm:"column:student_phone"               json:"student_phone,omitempty"`
	StudentAddress   *string `gorm:"column:student_address"             json:"student_address,omitempty"`

	StudentEmergencyContactName  *string `gorm:"column:student_emergency_contact_name"  json:"student_emergency_contact_name,omitempty"`
	StudentEmergencyContactPhone *string `gorm:"column:student_emergency_contact_phone" json:"student_emergency_contact_phone,omitempty"`

	// Batch assignment is by id reference only, no FK (see DESIGN.md)
	StudentBatchID *uuid.UUID `gorm:"type:uuid;column:student_batch_id;index" json:"student_batch_id,omitempty"`

	StudentEnrollmentDate time.Time `gorm:"type:date;not null;column:student_enrollment_date" json:"student_enrollment_date"`

	StudentFeeCycle  string  `gorm:"type:varchar(20);not null;column:student_fee_cycle" json:"student_fee_cycle"`
	StudentFeeAmount float64 `gorm:"not null;column:student_fee_amount"                 json:"student_fee_amount"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m StudentModel) FullName() string {
	return m.StudentFirstName + " " + m.StudentLastName
}
