package service

import (
	"time"

	"tuitionku_backend/internals/features/finance/payments/model"
)

// PaymentStats feeds the dashboard cards on the payments screen.
type PaymentStats struct {
	TotalRevenue  float64    `json:"total_revenue"`
	PendingAmount float64    `json:"pending_amount"`
	PendingCount  int        `json:"pending_count"`
	NextDueDate   *time.Time `json:"next_due_date,omitempty"`
	NextDueCount  int        `json:"next_due_count"`
}

// Summarize reduces a payment set in a single pass. Paid amounts feed
// revenue, pending amounts feed the pending bucket, and the earliest pending
// due date wins with a count of how many pending payments share that exact
// date. Order of the input does not matter.
func Summarize(payments []model.PaymentModel) PaymentStats {
	var s PaymentStats
	for i := range payments {
		p := &payments[i]
		switch p.PaymentStatus {
		case model.PaymentStatusPaid:
			s.TotalRevenue += p.PaymentAmount
		case model.PaymentStatusPending:
			s.PendingAmount += p.PaymentAmount
			s.PendingCount++

			due := p.PaymentDueDate
			switch {
			case s.NextDueDate == nil || due.Before(*s.NextDueDate):
				d := due
				s.NextDueDate = &d
				s.NextDueCount = 1
			case due.Equal(*s.NextDueDate):
				s.NextDueCount++
			}
		}
	}
	return s
}
