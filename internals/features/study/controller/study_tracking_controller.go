package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "tuitionku_backend/internals/features/batches/model"
	studentModel "tuitionku_backend/internals/features/students/model"
	"tuitionku_backend/internals/features/study/dto"
	"tuitionku_backend/internals/features/study/model"
	"tuitionku_backend/internals/features/study/service"
	helpers "tuitionku_backend/internals/helpers"
)

type StudyTrackingController struct {
	DB *gorm.DB
}

func NewStudyTrackingController(db *gorm.DB) *StudyTrackingController {
	return &StudyTrackingController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/study-tracking
func (ctrl *StudyTrackingController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudyTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m := req.ToModel(time.Now())
	if err := ctrl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create study tracking: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to record study progress")
	}

	return helpers.JsonCreated(c, "Study progress recorded successfully",
		dto.NewStudyTrackingResponse(m, ctrl.studentName(m.StudyTrackingStudentID)))
}

/* ===================== LIST + STATS ===================== */
// GET /api/a/study-tracking, most recently studied first, with the summary attached
func (ctrl *StudyTrackingController) List(c *fiber.Ctx) error {
	var records []model.StudyTrackingModel
	if err := ctrl.DB.Order("study_tracking_last_studied DESC").Find(&records).Error; err != nil {
		log.Printf("[ERROR] list study tracking: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch study tracking data")
	}

	names := ctrl.studentNames(records)
	out := make([]dto.StudyTrackingResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewStudyTrackingResponse(r, names[r.StudyTrackingStudentID]))
	}

	return helpers.JsonList(c, "OK", out, service.Summarize(records, time.Now()))
}

/* ===================== SUBJECTS ===================== */
// GET /api/a/study-tracking/subjects, distinct union of subjects across batches
func (ctrl *StudyTrackingController) Subjects(c *fiber.Ctx) error {
	var batches []batchModel.BatchModel
	if err := ctrl.DB.Find(&batches).Error; err != nil {
		log.Printf("[ERROR] list batches for subjects: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	seen := map[string]struct{}{}
	subjects := []string{}
	for _, b := range batches {
		for _, s := range b.BatchSubjects {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				subjects = append(subjects, s)
			}
		}
	}
	return helpers.JsonOK(c, "OK", subjects)
}

/* ===================== NAME RESOLUTION ===================== */

func (ctrl *StudyTrackingController) studentNames(records []model.StudyTrackingModel) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(records))
	seen := map[uuid.UUID]struct{}{}
	for _, r := range records {
		if _, ok := seen[r.StudyTrackingStudentID]; !ok {
			seen[r.StudyTrackingStudentID] = struct{}{}
			ids = append(ids, r.StudyTrackingStudentID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.Where("student_id IN ?", ids).Find(&students).Error; err != nil {
		log.Printf("[ERROR] resolve student names: %v", err)
		return names
	}
	for _, s := range students {
		names[s.StudentID] = s.FullName()
	}
	return names
}

func (ctrl *StudyTrackingController) studentName(id uuid.UUID) string {
	var s studentModel.StudentModel
	if err := ctrl.DB.First(&s, "student_id = ?", id).Error; err != nil {
		return ""
	}
	return s.FullName()
}
