package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/attendance/model"
)

const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterThisWeek  = "this-week"
)

var ErrUnknownDateFilter = errors.New("unknown date filter")

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FilterFrom resolves a date keyword to the inclusive lower bound of the
// query range. There is no upper bound: "yesterday" means "from the start of
// yesterday onward", which is how the dashboard filters have always behaved.
//
// Session dates are stored as UTC midnights, so the boundary is computed in
// UTC no matter what zone now carries; otherwise a server west of UTC would
// exclude sessions dated today.
func FilterFrom(keyword string, now time.Time) (time.Time, error) {
	today := StartOfDay(now.UTC())
	switch keyword {
	case FilterToday:
		return today, nil
	case FilterYesterday:
		return today.AddDate(0, 0, -1), nil
	case FilterThisWeek:
		return today.AddDate(0, 0, -7), nil
	}
	return time.Time{}, ErrUnknownDateFilter
}

// MissingStudents reports which enrolled students have no entry in a
// submitted session. Required only when the class was actually taken.
func MissingStudents(entries []model.AttendanceEntry, enrolled []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		seen[e.StudentID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range enrolled {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
