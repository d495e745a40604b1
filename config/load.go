package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	if os.Getenv("APP_ENV") != "prod" {
		_ = godotenv.Load()
	}

	cfg := App{
		Port:          getenv("APP_PORT", "8080"),
		JWTSecret:     getenv("JWT_SECRET", "mysupersecretkey"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@library.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		Env:           getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
