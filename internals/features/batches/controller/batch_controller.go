package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitionku_backend/internals/features/batches/dto"
	"tuitionku_backend/internals/features/batches/model"
	helpers "tuitionku_backend/internals/helpers"
)

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

var validate = validator.New()

// subjectOptions maps board and class level to curriculum subjects. The
// frontend builds its subject picker from this.
var subjectOptions = map[string]map[string][]string{
	"CBSE": {
		"9":  {"Mathematics", "Science", "Social Science", "English", "Hindi"},
		"10": {"Mathematics", "Science", "Social Science", "English", "Hindi"},
		"11": {"Physics", "Chemistry", "Mathematics", "Biology", "Computer Science"},
		"12": {"Physics", "Chemistry", "Mathematics", "Biology", "Computer Science"},
	},
	"ASSEB": {
		"9":  {"Mathematics", "General Science", "Social Studies", "English", "Assamese"},
		"10": {"Mathematics", "General Science", "Social Studies", "English", "Assamese"},
		"11": {"Physics", "Chemistry", "Mathematics", "Biology", "Computer Science"},
		"12": {"Physics", "Chemistry", "Mathematics", "Biology", "Computer Science"},
	},
}

/* ===================== CREATE ===================== */
// POST /api/a/batches
func (ctrl *BatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create batch: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create batch")
	}

	return helpers.JsonCreated(c, "Batch created successfully", dto.NewBatchResponse(m))
}

/* ===================== LIST ===================== */
// GET /api/a/batches, newest first
func (ctrl *BatchController) List(c *fiber.Ctx) error {
	var batches []model.BatchModel
	if err := ctrl.DB.Order("batch_created_at DESC").Find(&batches).Error; err != nil {
		log.Printf("[ERROR] list batches: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batches")
	}

	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.NewBatchResponse(b))
	}
	return helpers.JsonList(c, "OK", out, nil)
}

/* ===================== DETAIL ===================== */
// GET /api/a/batches/:id
func (ctrl *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	var m model.BatchModel
	if err := ctrl.DB.First(&m, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batch")
	}
	return helpers.JsonOK(c, "OK", dto.NewBatchResponse(m))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/batches/:id
func (ctrl *BatchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var current model.BatchModel
	if err := ctrl.DB.First(&current, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batch")
	}

	patch, err := req.ApplyTo()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(patch) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	// recheck the date range against whichever side the patch leaves alone
	start := current.BatchStartDate
	if v, ok := patch["batch_start_date"].(time.Time); ok {
		start = v
	}
	end := current.BatchEndDate
	if v, ok := patch["batch_end_date"]; ok {
		if t, isTime := v.(time.Time); isTime {
			end = &t
		} else {
			end = nil
		}
	}
	if end != nil && end.Before(start) {
		return helpers.JsonError(c, fiber.StatusBadRequest, dto.ErrEndBeforeStart.Error())
	}

	if err := ctrl.DB.Model(&model.BatchModel{}).
		Where("batch_id = ?", id).
		Updates(patch).Error; err != nil {
		log.Printf("[ERROR] update batch: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update batch")
	}

	var m model.BatchModel
	if err := ctrl.DB.First(&m, "batch_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batch")
	}
	return helpers.JsonUpdated(c, "Batch updated successfully", dto.NewBatchResponse(m))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/batches/:id (soft delete)
func (ctrl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	res := ctrl.DB.Delete(&model.BatchModel{}, "batch_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete batch: %v", res.Error)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete batch")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	return helpers.JsonDeleted(c, "Batch deleted successfully", fiber.Map{"batch_id": id})
}

/* ===================== SUBJECT OPTIONS ===================== */
// GET /api/a/batches/subject-options
func (ctrl *BatchController) SubjectOptions(c *fiber.Ctx) error {
	return helpers.JsonOK(c, "OK", subjectOptions)
}
