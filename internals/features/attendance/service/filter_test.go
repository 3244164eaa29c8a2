package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/attendance/model"
)

func TestFilterFrom(t *testing.T) {
	// mid-afternoon so day truncation is actually exercised
	now := time.Date(2024, time.April, 10, 15, 42, 7, 0, time.UTC)

	tests := []struct {
		keyword string
		want    time.Time
	}{
		{FilterToday, time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)},
		{FilterYesterday, time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC)},
		{FilterThisWeek, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := FilterFrom(tt.keyword, now)
			if err != nil {
				t.Fatalf("FilterFrom(%q) error: %v", tt.keyword, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FilterFrom(%q) = %s, want %s", tt.keyword, got, tt.want)
			}
		})
	}
}

// Stored session dates are UTC midnights; the bound must be computed in UTC
// even when the server clock runs in another zone, or a session dated today
// slips below the today bound on servers west of UTC.
func TestFilterFromNonUTCServerClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	now := time.Date(2024, time.April, 10, 10, 0, 0, 0, loc)

	from, err := FilterFrom(FilterToday, now)
	if err != nil {
		t.Fatalf("FilterFrom error: %v", err)
	}

	// a session recorded today, parsed the way the create path parses dates
	session, err := time.Parse("2006-01-02", "2024-04-10")
	if err != nil {
		t.Fatal(err)
	}
	if session.Before(from) {
		t.Errorf("session dated today (%s) excluded by today bound %s", session, from)
	}

	want := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	if !from.Equal(want) {
		t.Errorf("FilterFrom(today) = %s, want %s", from, want)
	}
}

func TestFilterFromUnknownKeyword(t *testing.T) {
	for _, keyword := range []string{"", "last-week", "Today"} {
		if _, err := FilterFrom(keyword, time.Now()); !errors.Is(err, ErrUnknownDateFilter) {
			t.Errorf("FilterFrom(%q) error = %v, want ErrUnknownDateFilter", keyword, err)
		}
	}
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	in := time.Date(2024, time.April, 10, 23, 59, 59, 0, loc)
	got := StartOfDay(in)
	if got.Location() != loc {
		t.Errorf("StartOfDay changed location to %v", got.Location())
	}
	if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("StartOfDay = %s, want midnight", got)
	}
}

func TestMissingStudents(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name     string
		entries  []model.AttendanceEntry
		enrolled []uuid.UUID
		want     int
	}{
		{
			"all covered",
			[]model.AttendanceEntry{{StudentID: a, Present: true}, {StudentID: b, Present: false}},
			[]uuid.UUID{a, b},
			0,
		},
		{
			"one missing",
			[]model.AttendanceEntry{{StudentID: a, Present: true}},
			[]uuid.UUID{a, b},
			1,
		},
		{
			"absent entries still count as covered",
			[]model.AttendanceEntry{{StudentID: a, Present: false}, {StudentID: b, Present: false}, {StudentID: c, Present: false}},
			[]uuid.UUID{a, b, c},
			0,
		},
		{
			"no entries at all",
			nil,
			[]uuid.UUID{a, b},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingStudents(tt.entries, tt.enrolled); len(got) != tt.want {
				t.Errorf("MissingStudents = %v (%d), want %d missing", got, len(got), tt.want)
			}
		})
	}
}
