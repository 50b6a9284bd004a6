package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// JWT Settings
	JWTSecret     string
	JWTExpiration string

	// Marketplace Settings
	CommissionRate decimal.Decimal
	PublicBaseURL  string
	UploadDir      string

	// Mail Settings
	SMTPHost    string
	SMTPPort    string
	FromEmail   string
	AdminEmails []string
}

func LoadConfig() *Config {
	// .env is optional; system environment wins when absent
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: getEnv("JWT_EXPIRES_IN", "72h"),

		CommissionRate: commissionRate(),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),

		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getEnv("SMTP_PORT", "25"),
		FromEmail:   getEnv("DEFAULT_FROM_EMAIL", "noreply@dealstash.local"),
		AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
	}

	return config
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// commissionRate reads COMMISSION_RATE, defaulting to 0.10. Values outside
// [0,1] are rejected at startup rather than at order time.
func commissionRate() decimal.Decimal {
	raw := os.Getenv("COMMISSION_RATE")
	if raw == "" {
		return decimal.NewFromFloat(0.10)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("Invalid COMMISSION_RATE %q: %v", raw, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		log.Fatalf("COMMISSION_RATE %s out of range [0,1]", rate)
	}
	return rate
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
