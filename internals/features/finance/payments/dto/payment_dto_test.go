package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tuitionku_backend/internals/features/finance/payments/model"
)

var validate = validator.New()

func validPaymentRequest() CreatePaymentRequest {
	return CreatePaymentRequest{
		PaymentStudentID: uuid.New(),
		PaymentAmount:    1500,
		PaymentMethod:    "upi",
		PaymentStatus:    "pending",
		PaymentFeeCycle:  "monthly",
		PaymentStartDate: "2024-04-01",
	}
}

func TestCreatePaymentRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePaymentRequest)
		wantOK bool
	}{
		{"valid", func(r *CreatePaymentRequest) {}, true},
		{"missing method", func(r *CreatePaymentRequest) { r.PaymentMethod = "" }, false},
		{"bad method", func(r *CreatePaymentRequest) { r.PaymentMethod = "cheque" }, false},
		{"bad status", func(r *CreatePaymentRequest) { r.PaymentStatus = "done" }, false},
		{"bad cycle", func(r *CreatePaymentRequest) { r.PaymentFeeCycle = "weekly" }, false},
		{"zero amount", func(r *CreatePaymentRequest) { r.PaymentAmount = 0 }, false},
		{"negative amount", func(r *CreatePaymentRequest) { r.PaymentAmount = -100 }, false},
		{"bad start date", func(r *CreatePaymentRequest) { r.PaymentStartDate = "01-04-2024" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPaymentRequest()
			tt.mutate(&req)
			err := validate.Struct(req)
			if tt.wantOK && err != nil {
				t.Errorf("Struct() error = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("Struct() error = nil, want validation failure")
			}
		})
	}
}

func TestCreatePaymentRequestToModel(t *testing.T) {
	now := time.Date(2024, time.April, 2, 10, 0, 0, 0, time.UTC)

	t.Run("pending leaves payment date empty", func(t *testing.T) {
		req := validPaymentRequest()
		m, err := req.ToModel(now)
		if err != nil {
			t.Fatalf("ToModel() error: %v", err)
		}
		if m.PaymentPaymentDate != nil {
			t.Errorf("PaymentPaymentDate = %v, want nil", m.PaymentPaymentDate)
		}
		want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
		if !m.PaymentDueDate.Equal(want) {
			t.Errorf("PaymentDueDate = %s, want %s", m.PaymentDueDate, want)
		}
	})

	t.Run("paid stamps payment date", func(t *testing.T) {
		req := validPaymentRequest()
		req.PaymentStatus = model.PaymentStatusPaid
		m, err := req.ToModel(now)
		if err != nil {
			t.Fatalf("ToModel() error: %v", err)
		}
		if m.PaymentPaymentDate == nil || !m.PaymentPaymentDate.Equal(now) {
			t.Errorf("PaymentPaymentDate = %v, want %s", m.PaymentPaymentDate, now)
		}
	})

	t.Run("unknown cycle errors", func(t *testing.T) {
		req := validPaymentRequest()
		req.PaymentFeeCycle = "fortnightly"
		if _, err := req.ToModel(now); err == nil {
			t.Error("ToModel() error = nil, want unknown cycle error")
		}
	})
}

func TestNewPaymentResponseNameFallback(t *testing.T) {
	m := model.PaymentModel{PaymentID: uuid.New()}
	if got := NewPaymentResponse(m, "").PaymentStudentName; got != UnknownStudentName {
		t.Errorf("PaymentStudentName = %q, want %q", got, UnknownStudentName)
	}
	if got := NewPaymentResponse(m, "Priya Sharma").PaymentStudentName; got != "Priya Sharma" {
		t.Errorf("PaymentStudentName = %q", got)
	}
}
