package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	PublicDir string
	MediaDir  string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("ENV", "development"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "alligator"),
		JWTSecret: getEnv("JWT_SECRET", "secretkey"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),
		MediaDir:  getEnv("MEDIA_DIR", "public/images"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
