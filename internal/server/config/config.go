package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	JWTSecret         string
	GoogleAuthBaseURL string
	OAuthRedirectURL  string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		JWTSecret:         jwtSecret,
		GoogleAuthBaseURL: getEnv("GOOGLE_AUTH_BASE_URL", "https://accounts.google.com/o/oauth2/v2/auth"),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/api/auth/callback"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
