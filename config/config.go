package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment.
// Loaded once in main and passed by reference into the handlers;
// nothing reads the environment after startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	CORSOrigin string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		DBHost:     mustEnv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     mustEnv("DB_USER"),
		DBPassword: mustEnv("DB_PASSWORD"),
		DBName:     mustEnv("DB_NAME"),

		JWTSecret: getEnv("JWT_SECRET", "secret"),

		S3Endpoint:  mustEnv("S3_ENDPOINT"),
		S3Region:    getEnv("S3_REGION", ""),
		S3AccessKey: mustEnv("S3_ACCESS_KEY"),
		S3SecretKey: mustEnv("S3_SECRET_KEY"),
		S3Bucket:    mustEnv("S3_BUCKET"),
		S3UseSSL:    getEnv("S3_USE_SSL", "true") == "true",

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
