package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads the environment (an optional .env first). A missing
// DATABASE_URL is not an error: the service then runs in demo mode.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@milanocafe.uz"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
