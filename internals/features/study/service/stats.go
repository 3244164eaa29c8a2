package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"tuitionku_backend/internals/features/study/model"
)

// activeWindow: a student counts as active while less than 7 full days have
// elapsed since their latest study entry.
const activeWindow = 7 * 24 * time.Hour

// StudyStats feeds the dashboard cards on the study-tracking screen.
type StudyStats struct {
	OverallProgress int     `json:"overall_progress"`
	ActiveStudents  int     `json:"active_students"`
	TotalHours      float64 `json:"total_hours"`
}

// Summarize reduces the tracking set in one pass: mean progress rounded to
// the nearest integer (0 when empty), distinct recently-active students, and
// summed study hours. Input order does not matter.
func Summarize(records []model.StudyTrackingModel, now time.Time) StudyStats {
	var s StudyStats
	if len(records) == 0 {
		return s
	}

	progressSum := 0
	active := make(map[uuid.UUID]struct{})
	for i := range records {
		r := &records[i]
		progressSum += r.StudyTrackingProgress
		s.TotalHours += r.StudyTrackingStudyHours

		if now.Sub(r.StudyTrackingLastStudied) < activeWindow {
			active[r.StudyTrackingStudentID] = struct{}{}
		}
	}

	s.OverallProgress = int(math.Round(float64(progressSum) / float64(len(records))))
	s.ActiveStudents = len(active)
	return s
}
