package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pcontroller "tuitionku_backend/internals/features/finance/payments/controller"
)

// Prefix: /api/a/payments
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := pcontroller.NewPaymentController(db)

	payments := admin.Group("/payments")
	payments.Post("/", ctrl.Create)
	payments.Get("/", ctrl.List)
	payments.Patch("/:id/paid", ctrl.MarkPaid)
}
