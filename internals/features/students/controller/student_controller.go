package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitionku_backend/internals/features/students/dto"
	"tuitionku_backend/internals/features/students/model"
	helpers "tuitionku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
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
		log.Printf("[ERROR] create student: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to add student")
	}

	return helpers.JsonCreated(c, "Student added successfully", dto.NewStudentResponse(m))
}

/* ===================== LIST ===================== */
// GET /api/a/students, newest first
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ctrl.DB.Order("student_created_at DESC").Find(&students).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, dto.NewStudentResponse(s))
	}
	return helpers.JsonList(c, "OK", out, nil)
}

/* ===================== DETAIL ===================== */
// GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helpers.JsonOK(c, "OK", dto.NewStudentResponse(m))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/students/:id, contact and fee fields only
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	patch := req.ApplyTo()
	if len(patch) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		log.Printf("[ERROR] update student: %v", res.Error)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helpers.JsonUpdated(c, "Student updated successfully", dto.NewStudentResponse(m))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/students/:id (soft delete)
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctrl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete student: %v", res.Error)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helpers.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}
