package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitionku_backend/internals/features/finance/payments/dto"
	"tuitionku_backend/internals/features/finance/payments/model"
	"tuitionku_backend/internals/features/finance/payments/service"
	studentModel "tuitionku_backend/internals/features/students/model"
	helpers "tuitionku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/payments
//
// Validation happens before any write: a missing method, amount, cycle or
// student rejects the request with no side effects. The due date is always
// computed server-side from the cycle and start date.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m, err := req.ToModel(time.Now())
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helpers.JsonCreated(c, "Payment recorded successfully",
		dto.NewPaymentResponse(m, ctrl.studentName(m.PaymentStudentID)))
}

/* ===================== LIST + STATS ===================== */
// GET /api/a/payments, newest first, with the dashboard summary attached
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	var payments []model.PaymentModel
	if err := ctrl.DB.Order("payment_created_at DESC").Find(&payments).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	names := ctrl.studentNames(payments)
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.NewPaymentResponse(p, names[p.PaymentStudentID]))
	}

	return helpers.JsonList(c, "OK", out, service.Summarize(payments))
}

/* ===================== MARK PAID ===================== */
// PATCH /api/a/payments/:id/paid, the manual pending to paid transition
func (ctrl *PaymentController) MarkPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var m model.PaymentModel
	if err := ctrl.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payment")
	}
	if m.PaymentStatus == model.PaymentStatusPaid {
		return helpers.JsonError(c, fiber.StatusConflict, "Payment is already paid")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&m).Updates(map[string]any{
		"payment_status":       model.PaymentStatusPaid,
		"payment_payment_date": now,
	}).Error; err != nil {
		log.Printf("[ERROR] mark payment paid: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	m.PaymentStatus = model.PaymentStatusPaid
	m.PaymentPaymentDate = &now
	return helpers.JsonUpdated(c, "Payment marked as paid",
		dto.NewPaymentResponse(m, ctrl.studentName(m.PaymentStudentID)))
}

/* ===================== NAME RESOLUTION ===================== */

// studentNames resolves display names in one query. Payments whose student
// is gone keep the "Unknown Student" placeholder instead of failing.
func (ctrl *PaymentController) studentNames(payments []model.PaymentModel) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(payments))
	seen := map[uuid.UUID]struct{}{}
	for _, p := range payments {
		if _, ok := seen[p.PaymentStudentID]; !ok {
			seen[p.PaymentStudentID] = struct{}{}
			ids = append(ids, p.PaymentStudentID)
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

func (ctrl *PaymentController) studentName(id uuid.UUID) string {
	var s studentModel.StudentModel
	if err := ctrl.DB.First(&s, "student_id = ?", id).Error; err != nil {
		return ""
	}
	return s.FullName()
}
