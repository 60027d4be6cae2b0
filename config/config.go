package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ✅ Global constants (accessible from other packages)
var UploadPath = "./public/uploads"
var BaseURL = "http://localhost:8080"

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTAccessSecret    string
	JWTRefreshSecret   string
	JWTAccessTTLHours  int
	JWTRefreshTTLHours int

	// ✅ Redis Config
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config
	KafkaBrokers    string
	KafkaAuditTopic string

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Upload handling
	UploadDir     string
	MaxUploadSize int64 // bytes
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(os.Getenv("JWT_ACCESS_TTL_HOURS"))
	refreshTTL, _ := strconv.Atoi(os.Getenv("JWT_REFRESH_TTL_HOURS"))
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTAccessSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:   os.Getenv("JWT_REFRESH_SECRET"),
		JWTAccessTTLHours:  accessTTL,
		JWTRefreshTTLHours: refreshTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers:    os.Getenv("KAFKA_BROKERS"),
		KafkaAuditTopic: os.Getenv("KAFKA_AUDIT_TOPIC"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		UploadDir:     os.Getenv("UPLOAD_DIR"),
		MaxUploadSize: 5 * 1024 * 1024,
	}

	// Sensible defaults so local dev works without a full .env
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTAccessTTLHours == 0 {
		cfg.JWTAccessTTLHours = 24
	}
	if cfg.JWTRefreshTTLHours == 0 {
		cfg.JWTRefreshTTLHours = 168
	}
	if cfg.KafkaAuditTopic == "" {
		cfg.KafkaAuditTopic = "audit-events"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = UploadPath
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		BaseURL = baseURL
	}

	return cfg
}
