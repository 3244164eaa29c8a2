package dto

import (
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/finance/payments/model"
	"tuitionku_backend/internals/features/finance/payments/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreatePaymentRequest records one fee payment. The due date is never taken
// from the client; it is computed from the cycle and the start date.
type CreatePaymentRequest struct {
	PaymentStudentID uuid.UUID `json:"payment_student_id" validate:"required"`
	PaymentAmount    float64   `json:"payment_amount"     validate:"required,gt=0"`
	PaymentMethod    string    `json:"payment_method"     validate:"required,oneof=cash upi net_banking"`
	PaymentStatus    string    `json:"payment_status"     validate:"required,oneof=pending paid overdue"`
	PaymentFeeCycle  string    `json:"payment_fee_cycle"  validate:"required,oneof=biweekly triweekly monthly quarterly yearly"`

	// Anchor for the due-date computation, "2006-01-02"
	PaymentStartDate string `json:"payment_start_date" validate:"required,datetime=2006-01-02"`
}

// ToModel computes the due date and stamps the payment date when the record
// is created already paid.
func (r CreatePaymentRequest) ToModel(now time.Time) (model.PaymentModel, error) {
	anchor, err := time.Parse("2006-01-02", r.PaymentStartDate)
	if err != nil {
		return model.PaymentModel{}, err
	}
	due, err := service.NextDueDate(r.PaymentFeeCycle, anchor)
	if err != nil {
		return model.PaymentModel{}, err
	}

	m := model.PaymentModel{
		PaymentStudentID: r.PaymentStudentID,
		PaymentAmount:    r.PaymentAmount,
		PaymentMethod:    r.PaymentMethod,
		PaymentStatus:    r.PaymentStatus,
		PaymentFeeCycle:  r.PaymentFeeCycle,
		PaymentDueDate:   due,
	}
	if r.PaymentStatus == model.PaymentStatusPaid {
		m.PaymentPaymentDate = &now
	}
	return m, nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type PaymentResponse struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	PaymentStudentID uuid.UUID `json:"payment_student_id"`

	// Resolved display name; "Unknown Student" when the referenced student
	// no longer exists.
	PaymentStudentName string `json:"payment_student_name"`

	PaymentAmount   float64 `json:"payment_amount"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentFeeCycle string  `json:"payment_fee_cycle"`

	PaymentDueDate     time.Time  `json:"payment_due_date"`
	PaymentPaymentDate *time.Time `json:"payment_payment_date,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

const UnknownStudentName = "Unknown Student"

func NewPaymentResponse(m model.PaymentModel, studentName string) PaymentResponse {
	if studentName == "" {
		studentName = UnknownStudentName
	}
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentStudentID:   m.PaymentStudentID,
		PaymentStudentName: studentName,
		PaymentAmount:      m.PaymentAmount,
		PaymentMethod:      m.PaymentMethod,
		PaymentStatus:      m.PaymentStatus,
		PaymentFeeCycle:    m.PaymentFeeCycle,
		PaymentDueDate:     m.PaymentDueDate,
		PaymentPaymentDate: m.PaymentPaymentDate,
		PaymentCreatedAt:   m.PaymentCreatedAt,
	}
}
