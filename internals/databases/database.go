package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tuitionku_backend/internals/configs"
	attendanceModel "tuitionku_backend/internals/features/attendance/model"
	batchModel "tuitionku_backend/internals/features/batches/model"
	paymentModel "tuitionku_backend/internals/features/finance/payments/model"
	settingsModel "tuitionku_backend/internals/features/settings/model"
	studentModel "tuitionku_backend/internals/features/students/model"
	studyModel "tuitionku_backend/internals/features/study/model"
	userModel "tuitionku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnvOr("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tuitionku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: dsn,
		// PgBouncer (transaction pooling) friendly
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate keeps the schema in sync with the models. There are no
// cross-table foreign keys; references are by id only, so a deleted student
// leaves its payments and study records behind for the display fallback.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&batchModel.BatchModel{},
		&attendanceModel.AttendanceSessionModel{},
		&paymentModel.PaymentModel{},
		&studyModel.StudyTrackingModel{},
		&settingsModel.SettingsModel{},
	); err != nil {
		log.Fatalf("[FATAL] automigrate failed: %v", err)
	}
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
