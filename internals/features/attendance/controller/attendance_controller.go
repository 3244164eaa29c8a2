package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitionku_backend/internals/features/attendance/dto"
	"tuitionku_backend/internals/features/attendance/model"
	"tuitionku_backend/internals/features/attendance/service"
	batchModel "tuitionku_backend/internals/features/batches/model"
	studentModel "tuitionku_backend/internals/features/students/model"
	helpers "tuitionku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/attendance
//
// Append-only: there is no update or delete route for sessions. When the
// class was taken, the submitted entries must cover every student currently
// enrolled in the batch.
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", req.AttendanceSessionBatchID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Batch not found")
	}

	if req.AttendanceSessionClassTaken {
		var enrolled []uuid.UUID
		if err := ctrl.DB.Model(&studentModel.StudentModel{}).
			Where("student_batch_id = ?", req.AttendanceSessionBatchID).
			Pluck("student_id", &enrolled).Error; err != nil {
			log.Printf("[ERROR] fetch enrolled students: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
		}
		if missing := service.MissingStudents(req.Entries(), enrolled); len(missing) > 0 {
			return helpers.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Attendance entries missing for %d enrolled student(s)", len(missing)))
		}
	}

	m, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create attendance session: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helpers.JsonCreated(c, "Attendance recorded successfully",
		dto.NewAttendanceSessionResponse(m, batch.BatchName))
}

/* ===================== LIST ===================== */
// GET /api/a/attendance?batch_id=&date=today|yesterday|this-week
//
// Date keywords resolve to an inclusive start-of-day lower bound; newest
// session first.
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	var filter dto.FilterAttendanceRequest
	if err := c.QueryParser(&filter); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(filter); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	q := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Order("attendance_session_date DESC")

	if filter.BatchID != nil {
		q = q.Where("attendance_session_batch_id = ?", *filter.BatchID)
	}
	if filter.Date != nil {
		from, err := service.FilterFrom(*filter.Date, time.Now())
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("attendance_session_date >= ?", from)
	}

	var sessions []model.AttendanceSessionModel
	if err := q.Find(&sessions).Error; err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance records")
	}

	batchNames := ctrl.batchNames(sessions)
	out := make([]dto.AttendanceSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, dto.NewAttendanceSessionResponse(s, batchNames[s.AttendanceSessionBatchID]))
	}
	return helpers.JsonList(c, "OK", out, nil)
}

// batchNames resolves display names in one query instead of per-row lookups.
func (ctrl *AttendanceController) batchNames(sessions []model.AttendanceSessionModel) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(sessions))
	seen := map[uuid.UUID]struct{}{}
	for _, s := range sessions {
		if _, ok := seen[s.AttendanceSessionBatchID]; !ok {
			seen[s.AttendanceSessionBatchID] = struct{}{}
			ids = append(ids, s.AttendanceSessionBatchID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	var batches []batchModel.BatchModel
	if err := ctrl.DB.Where("batch_id IN ?", ids).Find(&batches).Error; err != nil {
		log.Printf("[ERROR] resolve batch names: %v", err)
		return names
	}
	for _, b := range batches {
		names[b.BatchID] = b.BatchName
	}
	return names
}
