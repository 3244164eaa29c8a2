package dto

// UpdateSettingsRequest is a partial update of the singleton settings row.
type UpdateSettingsRequest struct {
	SettingsInstituteName  *string `json:"settings_institute_name"  validate:"omitempty,max=200"`
	SettingsEmail          *string `json:"settings_email"           validate:"omitempty,email"`
	SettingsPhone          *string `json:"settings_phone"           validate:"omitempty,max=20"`
	SettingsAddress        *string `json:"settings_address"         validate:"omitempty,max=500"`
	SettingsCurrentSession *string `json:"settings_current_session" validate:"omitempty,max=10"`

	SettingsEmailNotifications *bool `json:"settings_email_notifications"`
	SettingsPaymentReminders   *bool `json:"settings_payment_reminders"`
	SettingsAttendanceReports  *bool `json:"settings_attendance_reports"`
	SettingsDarkMode           *bool `json:"settings_dark_mode"`
	SettingsAutomaticBackups   *bool `json:"settings_automatic_backups"`
}

func (r UpdateSettingsRequest) ApplyTo() map[string]any {
	patch := map[string]any{}
	if r.SettingsInstituteName != nil {
		patch["settings_institute_name"] = *r.SettingsInstituteName
	}
	if r.SettingsEmail != nil {
		patch["settings_email"] = *r.SettingsEmail
	}
	if r.SettingsPhone != nil {
		patch["settings_phone"] = *r.SettingsPhone
	}
	if r.SettingsAddress != nil {
		patch["settings_address"] = *r.SettingsAddress
	}
	if r.SettingsCurrentSession != nil {
		patch["settings_current_session"] = *r.SettingsCurrentSession
	}
	if r.SettingsEmailNotifications != nil {
		patch["settings_email_notifications"] = *r.SettingsEmailNotifications
	}
	if r.SettingsPaymentReminders != nil {
		patch["settings_payment_reminders"] = *r.SettingsPaymentReminders
	}
	if r.SettingsAttendanceReports != nil {
		patch["settings_attendance_reports"] = *r.SettingsAttendanceReports
	}
	if r.SettingsDarkMode != nil {
		patch["settings_dark_mode"] = *r.SettingsDarkMode
	}
	if r.SettingsAutomaticBackups != nil {
		patch["settings_automatic_backups"] = *r.SettingsAutomaticBackups
	}
	return patch
}
