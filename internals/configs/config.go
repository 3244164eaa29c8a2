package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	OSSEndpoint  string
	OSSAccessKey string
	OSSSecretKey string
	OSSBucket    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	OSSAccessKey = GetEnv("OSS_ACCESS_KEY_ID")
	OSSSecretKey = GetEnv("OSS_ACCESS_KEY_SECRET")
	OSSBucket = GetEnv("OSS_BUCKET")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[WARN] JWT_REFRESH_SECRET is not set")
	}
	if OSSBucket == "" {
		log.Println("[WARN] OSS_BUCKET is not set, logo upload disabled")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
