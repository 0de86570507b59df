package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL    string
	DBName      string
	Port        string
	CORSOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "cafeteria"),
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
