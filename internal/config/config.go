package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DB_HOST       string
	DB_PORT       string
	DB_USER       string
	DB_PASSWORD   string
	DB_NAME       string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
	JWT_SECRET    string
	KAFKA_ADDRESS string
	UPLOAD_DIR    string
	PORT          string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		UPLOAD_DIR:    os.Getenv("UPLOAD_DIR"),
		PORT:          os.Getenv("PORT"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
	}

	if config.UPLOAD_DIR == "" {
		config.UPLOAD_DIR = "uploads"
	}
	if config.PORT == "" {
		config.PORT = "8080"
	}
	if config.JWT_SECRET == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return config, nil
}

// PostgresDSN pins the session timezone to UTC so date bucketing in
// aggregation queries is independent of the server locale.
func PostgresDSN(configuration *Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&TimeZone=UTC",
		configuration.DB_USER,
		configuration.DB_PASSWORD,
		configuration.DB_HOST,
		configuration.DB_PORT,
		configuration.DB_NAME,
	)
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(PostgresDSN(configuration)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
