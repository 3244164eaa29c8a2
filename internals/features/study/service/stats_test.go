package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/study/model"
)

func record(student uuid.UUID, progress int, hours float64, lastStudied time.Time) model.StudyTrackingModel {
	return model.StudyTrackingModel{
		StudyTrackingStudentID:   student,
		StudyTrackingProgress:    progress,
		StudyTrackingStudyHours:  hours,
		StudyTrackingLastStudied: lastStudied,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	if s.OverallProgress != 0 || s.ActiveStudents != 0 || s.TotalHours != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero stats", s)
	}
}

func TestSummarizeProgressRounding(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		records []model.StudyTrackingModel
		want    int
	}{
		{
			"rounds half up",
			[]model.StudyTrackingModel{
				record(a, 50, 0, now),
				record(b, 55, 0, now),
			},
			53, // 52.5 rounds to 53
		},
		{
			"rounds down below half",
			[]model.StudyTrackingModel{
				record(a, 10, 0, now),
				record(b, 11, 0, now),
				record(b, 11, 0, now),
			},
			11, // 10.66...
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.records, now).OverallProgress; got != tt.want {
				t.Errorf("OverallProgress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarizeActiveStudents(t *testing.T) {
	now := time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC)
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	records := []model.StudyTrackingModel{
		record(a, 0, 0, now.Add(-time.Hour)),            // active
		record(a, 0, 0, now.Add(-48*time.Hour)),         // same student, still one
		record(b, 0, 0, now.Add(-7*24*time.Hour)),       // exactly 7 days, not active
		record(c, 0, 0, now.Add(-7*24*time.Hour+time.Minute)), // just inside the window
	}

	if got := Summarize(records, now).ActiveStudents; got != 2 {
		t.Errorf("ActiveStudents = %d, want 2", got)
	}
}

func TestSummarizeTotalHours(t *testing.T) {
	now := time.Now()
	records := []model.StudyTrackingModel{
		record(uuid.New(), 10, 1.5, now),
		record(uuid.New(), 20, 2.25, now),
	}
	if got := Summarize(records, now).TotalHours; got != 3.75 {
		t.Errorf("TotalHours = %v, want 3.75", got)
	}
}
