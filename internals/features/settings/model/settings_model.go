package model

import (
	"time"
)

// SettingsID is the fixed key of the singleton settings row (the original
// dashboard keeps one "general" document).
const SettingsID = "general"

type SettingsModel struct {
	SettingsID string `gorm:"type:varchar(32);primaryKey;column:settings_id" json:"settings_id"`

	SettingsInstituteName  string `gorm:"not null;column:settings_institute_name" json:"settings_institute_name"`
	SettingsEmail          string `gorm:"column:settings_email"                   json:"settings_email"`
	SettingsPhone          string `gorm:"column:settings_phone"                   json:"settings_phone"`
	SettingsAddress        string `gorm:"column:settings_address"                 json:"settings_address"`
	SettingsCurrentSession string `gorm:"type:varchar(10);column:settings_current_session" json:"settings_current_session"`

	SettingsLogoURL string `gorm:"column:settings_logo_url" json:"settings_logo_url"`

	SettingsEmailNotifications bool `gorm:"not null;default:true;column:settings_email_notifications"  json:"settings_email_notifications"`
	SettingsPaymentReminders   bool `gorm:"not null;default:true;column:settings_payment_reminders"    json:"settings_payment_reminders"`
	SettingsAttendanceReports  bool `gorm:"not null;default:true;column:settings_attendance_reports"   json:"settings_attendance_reports"`
	SettingsDarkMode           bool `gorm:"not null;default:false;column:settings_dark_mode"           json:"settings_dark_mode"`
	SettingsAutomaticBackups   bool `gorm:"not null;default:true;column:settings_automatic_backups"    json:"settings_automatic_backups"`

	SettingsCreatedAt time.Time  `gorm:"column:settings_created_at;autoCreateTime" json:"settings_created_at"`
	SettingsUpdatedAt *time.Time `gorm:"column:settings_updated_at;autoUpdateTime" json:"settings_updated_at,omitempty"`
}

func (SettingsModel) TableName() string { return "settings" }

// DefaultSettings is written on first read when no row exists yet.
func DefaultSettings() SettingsModel {
	return SettingsModel{
		SettingsID:                 SettingsID,
		SettingsInstituteName:      "Anini Learning Center",
		SettingsCurrentSession:     "2024-25",
		SettingsEmailNotifications: true,
		SettingsPaymentReminders:   true,
		SettingsAttendanceReports:  true,
		SettingsDarkMode:           false,
		SettingsAutomaticBackups:   true,
	}
}
