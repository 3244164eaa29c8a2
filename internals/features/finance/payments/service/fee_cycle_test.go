package service

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name   string
		cycle  string
		anchor time.Time
		want   time.Time
	}{
		{"biweekly is 13 days", FeeCycleBiweekly, date(2024, time.January, 1), date(2024, time.January, 14)},
		{"triweekly is 16 days", FeeCycleTriweekly, date(2024, time.January, 1), date(2024, time.January, 17)},
		{"monthly", FeeCycleMonthly, date(2024, time.April, 10), date(2024, time.May, 10)},
		{"monthly rolls over month end", FeeCycleMonthly, date(2024, time.January, 31), date(2024, time.March, 2)},
		{"quarterly", FeeCycleQuarterly, date(2024, time.February, 15), date(2024, time.May, 15)},
		{"yearly", FeeCycleYearly, date(2024, time.June, 1), date(2025, time.June, 1)},
		{"yearly over leap day", FeeCycleYearly, date(2024, time.February, 29), date(2025, time.March, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDate(tt.cycle, tt.anchor)
			if err != nil {
				t.Fatalf("NextDueDate(%q) error: %v", tt.cycle, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate(%q, %s) = %s, want %s", tt.cycle, tt.anchor.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextDueDateUnknownCycle(t *testing.T) {
	for _, cycle := range []string{"", "weekly", "BIWEEKLY"} {
		if _, err := NextDueDate(cycle, date(2024, time.January, 1)); !errors.Is(err, ErrUnknownFeeCycle) {
			t.Errorf("NextDueDate(%q) error = %v, want ErrUnknownFeeCycle", cycle, err)
		}
	}
}
