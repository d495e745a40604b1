package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	JWTSecret     string `env:"JWT_SECRET"`
	AdminEmail    string `env:"ADMIN_EMAIL" default:"admin@library.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" default:"admin123"`
	Env           string `env:"APP_ENV" default:"dev"`
}
