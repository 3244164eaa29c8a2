package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash       = "cash"
	PaymentMethodUPI        = "upi"
	PaymentMethodNetBanking = "net_banking"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	// Never set automatically anywhere; accepted on input for forward
	// compatibility only. See DESIGN.md.
	PaymentStatusOverdue = "overdue"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"type:uuid;not null;column:payment_student_id;index" json:"payment_student_id"`

	PaymentAmount   float64 `gorm:"not null;column:payment_amount"                     json:"payment_amount"`
	PaymentMethod   string  `gorm:"type:varchar(20);not null;column:payment_method"    json:"payment_method"`
	PaymentStatus   string  `gorm:"type:varchar(20);not null;column:payment_status"    json:"payment_status"`
	PaymentFeeCycle string  `gorm:"type:varchar(20);not null;column:payment_fee_cycle" json:"payment_fee_cycle"`

	PaymentDueDate     time.Time  `gorm:"type:date;not null;column:payment_due_date" json:"payment_due_date"`
	PaymentPaymentDate *time.Time `gorm:"column:payment_payment_date"                json:"payment_payment_date,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index"          json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
