package service

import (
	"testing"
	"time"

	"tuitionku_backend/internals/features/finance/payments/model"
)

func payment(status string, amount float64, due time.Time) model.PaymentModel {
	return model.PaymentModel{
		PaymentStatus:  status,
		PaymentAmount:  amount,
		PaymentDueDate: due,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalRevenue != 0 || s.PendingAmount != 0 || s.PendingCount != 0 || s.NextDueCount != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero stats", s)
	}
	if s.NextDueDate != nil {
		t.Errorf("Summarize(nil).NextDueDate = %v, want nil", s.NextDueDate)
	}
}

func TestSummarize(t *testing.T) {
	d1 := date(2024, time.March, 5)
	d2 := date(2024, time.March, 10)

	payments := []model.PaymentModel{
		payment(model.PaymentStatusPaid, 1500, date(2024, time.February, 1)),
		payment(model.PaymentStatusPaid, 2000, date(2024, time.February, 15)),
		payment(model.PaymentStatusPending, 1200, d2),
		payment(model.PaymentStatusPending, 800, d1),
		payment(model.PaymentStatusPending, 500, d1),
	}

	s := Summarize(payments)
	if s.TotalRevenue != 3500 {
		t.Errorf("TotalRevenue = %v, want 3500", s.TotalRevenue)
	}
	if s.PendingAmount != 2500 {
		t.Errorf("PendingAmount = %v, want 2500", s.PendingAmount)
	}
	if s.PendingCount != 3 {
		t.Errorf("PendingCount = %d, want 3", s.PendingCount)
	}
	if s.NextDueDate == nil || !s.NextDueDate.Equal(d1) {
		t.Errorf("NextDueDate = %v, want %s", s.NextDueDate, d1.Format("2006-01-02"))
	}
	if s.NextDueCount != 2 {
		t.Errorf("NextDueCount = %d, want 2", s.NextDueCount)
	}
}

// The earliest due date must win regardless of where it sits in the slice.
func TestSummarizeOrderIndependent(t *testing.T) {
	early := date(2024, time.January, 2)
	late := date(2024, time.June, 30)

	forward := []model.PaymentModel{
		payment(model.PaymentStatusPending, 100, early),
		payment(model.PaymentStatusPending, 200, late),
	}
	reversed := []model.PaymentModel{forward[1], forward[0]}

	a, b := Summarize(forward), Summarize(reversed)
	if a.NextDueDate == nil || b.NextDueDate == nil || !a.NextDueDate.Equal(*b.NextDueDate) {
		t.Fatalf("NextDueDate differs by order: %v vs %v", a.NextDueDate, b.NextDueDate)
	}
	if !a.NextDueDate.Equal(early) {
		t.Errorf("NextDueDate = %v, want %s", a.NextDueDate, early.Format("2006-01-02"))
	}
	if a.NextDueCount != b.NextDueCount {
		t.Errorf("NextDueCount differs by order: %d vs %d", a.NextDueCount, b.NextDueCount)
	}
}

func TestSummarizeIgnoresOverdue(t *testing.T) {
	payments := []model.PaymentModel{
		payment(model.PaymentStatusOverdue, 999, date(2024, time.January, 1)),
		payment(model.PaymentStatusPaid, 100, date(2024, time.January, 1)),
	}
	s := Summarize(payments)
	if s.TotalRevenue != 100 {
		t.Errorf("TotalRevenue = %v, want 100", s.TotalRevenue)
	}
	if s.PendingCount != 0 || s.NextDueDate != nil {
		t.Errorf("overdue rows leaked into pending stats: %+v", s)
	}
}
