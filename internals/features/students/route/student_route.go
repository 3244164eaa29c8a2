package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scontroller "tuitionku_backend/internals/features/students/controller"
)

// Prefix: /api/a/students
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := scontroller.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete) // soft delete
}
