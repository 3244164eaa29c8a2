package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitionku_backend/internals/configs"
	attendanceRoute "tuitionku_backend/internals/features/attendance/route"
	batchRoute "tuitionku_backend/internals/features/batches/route"
	paymentRoute "tuitionku_backend/internals/features/finance/payments/route"
	settingsRoute "tuitionku_backend/internals/features/settings/route"
	studentRoute "tuitionku_backend/internals/features/students/route"
	studyRoute "tuitionku_backend/internals/features/study/route"
	authRoute "tuitionku_backend/internals/features/users/auth/route"
	auth "tuitionku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH (PUBLIC) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Batch routes...")
	batchRoute.BatchAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Study Tracking routes...")
	studyRoute.StudyTrackingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Settings routes...")
	settingsRoute.SettingsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Me route...")
	authRoute.AuthAdminRoutes(admin, db)
}
