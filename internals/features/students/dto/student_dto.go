package dto

import (
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentFirstName string  `json:"student_first_name" validate:"required,max=100"`
	StudentLastName  string  `json:"student_last_name"  validate:"required,max=100"`
	StudentEmail     *string `json:"student_email"      validate:"omitempty,email"`
	StudentPhone     *string `json:"student_phone"      validate:"omitempty,max=20"`
	StudentAddress   *string `json:"student_address"    validate:"omitempty,max=500"`

	StudentEmergencyContactName  *string `json:"student_emergency_contact_name"  validate:"omitempty,max=100"`
	StudentEmergencyContactPhone *string `json:"student_emergency_contact_phone" validate:"omitempty,max=20"`

	StudentBatchID *uuid.UUID `json:"student_batch_id" validate:"omitempty"`

	StudentEnrollmentDate string `json:"student_enrollment_date" validate:"required,datetime=2006-01-02"`

	StudentFeeCycle  string  `json:"student_fee_cycle"  validate:"required,oneof=biweekly triweekly monthly quarterly yearly"`
	StudentFeeAmount float64 `json:"student_fee_amount" validate:"required,gt=0"`
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	enrolled, err := time.Parse("2006-01-02", r.StudentEnrollmentDate)
	if err != nil {
		return model.StudentModel{}, err
	}
	return model.StudentModel{
		StudentFirstName:             r.StudentFirstName,
		StudentLastName:              r.StudentLastName,
		StudentEmail:                 r.StudentEmail,
		StudentPhone:                 r.StudentPhone,
		StudentAddress:               r.StudentAddress,
		StudentEmergencyContactName:  r.StudentEmergencyContactName,
		StudentEmergencyContactPhone: r.StudentEmergencyContactPhone,
		StudentBatchID:               r.StudentBatchID,
		StudentEnrollmentDate:        enrolled,
		StudentFeeCycle:              r.StudentFeeCycle,
		StudentFeeAmount:             r.StudentFeeAmount,
	}, nil
}

// UpdateStudentRequest covers the staff-editable fields. Identity (name) is
// immutable once the student exists; only contact and fee fields move.
type UpdateStudentRequest struct {
	StudentEmail   *string `json:"student_email"   validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone"   validate:"omitempty,max=20"`
	StudentAddress *string `json:"student_address" validate:"omitempty,max=500"`

	StudentEmergencyContactName  *string `json:"student_emergency_contact_name"  validate:"omitempty,max=100"`
	StudentEmergencyContactPhone *string `json:"student_emergency_contact_phone" validate:"omitempty,max=20"`

	StudentBatchID *uuid.UUID `json:"student_batch_id" validate:"omitempty"`

	StudentFeeCycle  *string  `json:"student_fee_cycle"  validate:"omitempty,oneof=biweekly triweekly monthly quarterly yearly"`
	StudentFeeAmount *float64 `json:"student_fee_amount" validate:"omitempty,gt=0"`
}

// ApplyTo collects the partial update into a column map for a single UPDATE.
func (r UpdateStudentRequest) ApplyTo() map[string]any {
	patch := map[string]any{}
	if r.StudentEmail != nil {
		patch["student_email"] = *r.StudentEmail
	}
	if r.StudentPhone != nil {
		patch["student_phone"] = *r.StudentPhone
	}
	if r.StudentAddress != nil {
		patch["student_address"] = *r.StudentAddress
	}
	if r.StudentEmergencyContactName != nil {
		patch["student_emergency_contact_name"] = *r.StudentEmergencyContactName
	}
	if r.StudentEmergencyContactPhone != nil {
		patch["student_emergency_contact_phone"] = *r.StudentEmergencyContactPhone
	}
	if r.StudentBatchID != nil {
		patch["student_batch_id"] = *r.StudentBatchID
	}
	if r.StudentFeeCycle != nil {
		patch["student_fee_cycle"] = *r.StudentFeeCycle
	}
	if r.StudentFeeAmount != nil {
		patch["student_fee_amount"] = *r.StudentFeeAmount
	}
	return patch
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID uuid.UUID `json:"student_id"`

	StudentFirstName string  `json:"student_first_name"`
	StudentLastName  string  `json:"student_last_name"`
	StudentEmail     *string `json:"student_email,omitempty"`
	StudentPhone     *string `json:"student_phone,omitempty"`
	StudentAddress   *string `json:"student_address,omitempty"`

	StudentEmergencyContactName  *string `json:"student_emergency_contact_name,omitempty"`
	StudentEmergencyContactPhone *string `json:"student_emergency_contact_phone,omitempty"`

	StudentBatchID *uuid.UUID `json:"student_batch_id,omitempty"`

	StudentEnrollmentDate time.Time `json:"student_enrollment_date"`
	StudentFeeCycle       string    `json:"student_fee_cycle"`
	StudentFeeAmount      float64   `json:"student_fee_amount"`

	StudentCreatedAt time.Time `json:"student_created_at"`
}

func NewStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                    m.StudentID,
		StudentFirstName:             m.StudentFirstName,
		StudentLastName:              m.StudentLastName,
		StudentEmail:                 m.StudentEmail,
		StudentPhone:                 m.StudentPhone,
		StudentAddress:               m.StudentAddress,
		StudentEmergencyContactName:  m.StudentEmergencyContactName,
		StudentEmergencyContactPhone: m.StudentEmergencyContactPhone,
		StudentBatchID:               m.StudentBatchID,
		StudentEnrollmentDate:        m.StudentEnrollmentDate,
		StudentFeeCycle:              m.StudentFeeCycle,
		StudentFeeAmount:             m.StudentFeeAmount,
		StudentCreatedAt:             m.StudentCreatedAt,
	}
}
