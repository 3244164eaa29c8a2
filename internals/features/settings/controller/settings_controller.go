package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitionku_backend/internals/features/settings/dto"
	"tuitionku_backend/internals/features/settings/model"
	helpers "tuitionku_backend/internals/helpers"
	oss "tuitionku_backend/internals/helpers/oss"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

var validate = validator.New()

// load fetches the singleton row, creating it with defaults on first read.
func (ctrl *SettingsController) load() (model.SettingsModel, error) {
	var m model.SettingsModel
	err := ctrl.DB.First(&m, "settings_id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.DefaultSettings()
		if err := ctrl.DB.Create(&m).Error; err != nil {
			return m, err
		}
		return m, nil
	}
	return m, err
}

/* ===================== GET ===================== */
// GET /api/a/settings
func (ctrl *SettingsController) Get(c *fiber.Ctx) error {
	m, err := ctrl.load()
	if err != nil {
		log.Printf("[ERROR] load settings: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helpers.JsonOK(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PUT /api/a/settings, partial update of the singleton
func (ctrl *SettingsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	if _, err := ctrl.load(); err != nil {
		log.Printf("[ERROR] load settings: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	patch := req.ApplyTo()
	if len(patch) > 0 {
		if err := ctrl.DB.Model(&model.SettingsModel{}).
			Where("settings_id = ?", model.SettingsID).
			Updates(patch).Error; err != nil {
			log.Printf("[ERROR] update settings: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to save settings")
		}
	}

	m, err := ctrl.load()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helpers.JsonUpdated(c, "Settings saved successfully", m)
}

/* ===================== LOGO ===================== */
// POST /api/a/settings/logo (multipart field "logo")
//
// Image types only, 5MB ceiling. The previous logo object is deleted from
// storage before the new URL is persisted.
func (ctrl *SettingsController) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No logo file provided")
	}
	if err := oss.ValidateImageUpload(fh); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := ctrl.load()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	if m.SettingsLogoURL != "" {
		if err := oss.DeleteByPublicURL(m.SettingsLogoURL); err != nil {
			// old object may already be gone; keep going
			log.Printf("[WARN] delete old logo: %v", err)
		}
	}

	url, err := oss.UploadLogoWebP(fh)
	if err != nil {
		log.Printf("[ERROR] upload logo: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to upload logo")
	}

	if err := ctrl.DB.Model(&model.SettingsModel{}).
		Where("settings_id = ?", model.SettingsID).
		Update("settings_logo_url", url).Error; err != nil {
		log.Printf("[ERROR] persist logo url: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to upload logo")
	}

	return helpers.JsonOK(c, "Logo uploaded successfully", fiber.Map{"settings_logo_url": url})
}

// DELETE /api/a/settings/logo
func (ctrl *SettingsController) RemoveLogo(c *fiber.Ctx) error {
	m, err := ctrl.load()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	if m.SettingsLogoURL == "" {
		return helpers.JsonError(c, fiber.StatusNotFound, "No logo to remove")
	}

	if err := oss.DeleteByPublicURL(m.SettingsLogoURL); err != nil {
		log.Printf("[ERROR] delete logo: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to remove logo")
	}

	if err := ctrl.DB.Model(&model.SettingsModel{}).
		Where("settings_id = ?", model.SettingsID).
		Update("settings_logo_url", "").Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to remove logo")
	}

	return helpers.JsonDeleted(c, "Logo removed successfully", nil)
}
