package dto

import "testing"

func TestUpdateSettingsRequestApplyTo(t *testing.T) {
	t.Run("empty request patches nothing", func(t *testing.T) {
		if patch := (UpdateSettingsRequest{}).ApplyTo(); len(patch) != 0 {
			t.Errorf("ApplyTo() = %v, want empty", patch)
		}
	})

	t.Run("false toggle is still a patch", func(t *testing.T) {
		off := false
		req := UpdateSettingsRequest{SettingsPaymentReminders: &off}
		patch := req.ApplyTo()
		if v, ok := patch["settings_payment_reminders"]; !ok || v != false {
			t.Errorf("settings_payment_reminders = %v (present=%v), want false", v, ok)
		}
	})

	t.Run("mixed fields", func(t *testing.T) {
		name := "Anini Learning Center"
		dark := true
		req := UpdateSettingsRequest{
			SettingsInstituteName: &name,
			SettingsDarkMode:      &dark,
		}
		patch := req.ApplyTo()
		if len(patch) != 2 {
			t.Fatalf("ApplyTo() has %d entries: %v", len(patch), patch)
		}
		if patch["settings_institute_name"] != name {
			t.Errorf("settings_institute_name = %v", patch["settings_institute_name"])
		}
		if patch["settings_dark_mode"] != true {
			t.Errorf("settings_dark_mode = %v", patch["settings_dark_mode"])
		}
	})
}
