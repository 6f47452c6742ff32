package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	// Persistence: "file" (default) or "postgres"
	StoreBackend string
	DataDir      string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	AdminUser string
	AdminPass string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	EmailFrom    string
	ContactEmail string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string
}

var AppConfig Config

func LoadConfig() {
	// Try loading .env from different locations
	envLocations := []string{
		".env",              // project root
		"config/.env",       // config subdirectory
		"../config/.env",    // one level up
		"../../config/.env", // two levels up
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		ListenAddr: getEnvWithDefault("LISTEN_ADDR", ":8080"),

		StoreBackend: getEnvWithDefault("STORE_BACKEND", "file"),
		DataDir:      getEnvWithDefault("DATA_DIR", "data"),

		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvWithDefault("DB_PORT", "5432"),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "postgres"),

		AdminUser: getEnvWithDefault("ADMIN_USER", "admin"),
		AdminPass: os.Getenv("ADMIN_PASS"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		SMTPHost:     getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),

		// Kafka settings (comma-separated brokers, empty disables eventing)
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnvWithDefault("KAFKA_TOPIC", "trainings.events"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDBConnString() string {
	return "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=disable"
}
