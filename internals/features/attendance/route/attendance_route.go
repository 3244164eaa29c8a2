package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acontroller "tuitionku_backend/internals/features/attendance/controller"
)

// Prefix: /api/a/attendance
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := acontroller.NewAttendanceController(db)

	attendance := admin.Group("/attendance")
	attendance.Post("/", ctrl.Create)
	attendance.Get("/", ctrl.List) // ?batch_id=&date=today|yesterday|this-week
}
