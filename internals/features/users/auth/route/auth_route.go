package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "tuitionku_backend/internals/features/users/auth/controller"
	"tuitionku_backend/internals/middlewares"
)

// Prefix: /api/auth (public, login is rate limited)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)
}

// Prefix: /api/a/auth (requires a valid access token)
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	auth := admin.Group("/auth")
	auth.Get("/me", ctrl.Me)
}
