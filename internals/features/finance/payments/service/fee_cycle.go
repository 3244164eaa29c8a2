package service

import (
	"errors"
	"time"
)

const (
	FeeCycleBiweekly  = "biweekly"
	FeeCycleTriweekly = "triweekly"
	FeeCycleMonthly   = "monthly"
	FeeCycleQuarterly = "quarterly"
	FeeCycleYearly    = "yearly"
)

var ErrUnknownFeeCycle = errors.New("unknown fee cycle")

// FeeCycles lists the accepted cycle values, in display order.
var FeeCycles = []string{
	FeeCycleBiweekly,
	FeeCycleTriweekly,
	FeeCycleMonthly,
	FeeCycleQuarterly,
	FeeCycleYearly,
}

// NextDueDate maps a fee cycle plus an anchor date to the next due date.
//
// Biweekly and triweekly are 13 and 16 days, not 14/21. That is the
// center's own billing rule, keep it exactly. Month/quarter/year arithmetic
// follows time.AddDate, so a month-end anchor rolls over the way the
// calendar does (Jan 31 + 1 month lands in early March).
func NextDueDate(cycle string, anchor time.Time) (time.Time, error) {
	switch cycle {
	case FeeCycleBiweekly:
		return anchor.AddDate(0, 0, 13), nil
	case FeeCycleTriweekly:
		return anchor.AddDate(0, 0, 16), nil
	case FeeCycleMonthly:
		return anchor.AddDate(0, 1, 0), nil
	case FeeCycleQuarterly:
		return anchor.AddDate(0, 3, 0), nil
	case FeeCycleYearly:
		return anchor.AddDate(1, 0, 0), nil
	}
	return time.Time{}, ErrUnknownFeeCycle
}
