package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	setcontroller "tuitionku_backend/internals/features/settings/controller"
)

// Prefix: /api/a/settings
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := setcontroller.NewSettingsController(db)

	settings := admin.Group("/settings")
	settings.Get("/", ctrl.Get)
	settings.Put("/", ctrl.Update)
	settings.Post("/logo", ctrl.UploadLogo)
	settings.Delete("/logo", ctrl.RemoveLogo)
}
