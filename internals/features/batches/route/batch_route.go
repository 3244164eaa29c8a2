package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bcontroller "tuitionku_backend/internals/features/batches/controller"
)

// Prefix: /api/a/batches
func BatchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := bcontroller.NewBatchController(db)

	batches := admin.Group("/batches")
	batches.Post("/", ctrl.Create)
	batches.Get("/", ctrl.List)
	batches.Get("/subject-options", ctrl.SubjectOptions) // before /:id
	batches.Get("/:id", ctrl.GetByID)
	batches.Patch("/:id", ctrl.Update)
	batches.Delete("/:id", ctrl.Delete)
}
