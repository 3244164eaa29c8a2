package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tuitionku_backend/internals/configs"
	"tuitionku_backend/internals/features/users/auth/dto"
	"tuitionku_backend/internals/features/users/auth/model"
	helpers "tuitionku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	refreshCookieName = "refresh_token"
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func signToken(u model.UserModel, secret string, ttl time.Duration, typ string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"role":    u.UserRole,
		"typ":     typ,
		"iat":     nowUTC().Unix(),
		"exp":     nowUTC().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

/* ==========================
   REGISTER
========================== */

// Register creates a staff account. Intended for bootstrapping the first
// staff login; the rate limiter on the auth group still applies.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helpers.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	return helpers.JsonCreated(c, "Account created", fiber.Map{
		"user_id":    user.UserID,
		"user_name":  user.UserName,
		"user_email": user.UserEmail,
		"user_role":  user.UserRole,
	})
}

/* ==========================
   LOGIN / REFRESH / LOGOUT
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := db.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	accessSecret, err := getJWTSecret()
	if err != nil {
		return err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	access, err := signToken(user, accessSecret, accessTTLDefault, "access")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	refresh, err := signToken(user, refreshSecret, refreshTTLDefault, "refresh")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    refresh,
		Expires:  nowUTC().Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helpers.JsonOK(c, "Signed in", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"user_id":    user.UserID,
			"user_name":  user.UserName,
			"user_email": user.UserEmail,
			"user_role":  user.UserRole,
		},
	})
}

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := c.Cookies(refreshCookieName)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	userID, _ := claims["user_id"].(string)

	var user model.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists")
	}

	accessSecret, err := getJWTSecret()
	if err != nil {
		return err
	}
	access, err := signToken(user, accessSecret, accessTTLDefault, "access")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh session")
	}

	return helpers.JsonOK(c, "Session refreshed", fiber.Map{"access_token": access})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Expires:  nowUTC().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helpers.JsonOK(c, "Signed out", nil)
}
