package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stcontroller "tuitionku_backend/internals/features/study/controller"
)

// Prefix: /api/a/study-tracking
func StudyTrackingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := stcontroller.NewStudyTrackingController(db)

	study := admin.Group("/study-tracking")
	study.Post("/", ctrl.Create)
	study.Get("/", ctrl.List)
	study.Get("/subjects", ctrl.Subjects)
}
