package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName     string `gorm:"not null;column:user_name"                        json:"user_name"`
	UserEmail    string `gorm:"uniqueIndex;not null;column:user_email"           json:"user_email"`
	UserPassword string `gorm:"not null;column:user_password"                    json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;default:'admin';column:user_role" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
