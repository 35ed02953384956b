package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	ResendAPIKey   string
	ResendFrom     string
	OrderToEmail   string
	OrderPhone     string
	InquiryPhone   string
	CartTTL        time.Duration
}

func LoadConfig() *Config {
	// Load .env for local development only; in production the variables
	// come from the environment.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		ResendFrom:     getEnv("RESEND_FROM_EMAIL", "noreply@kamano.ma"),
		OrderToEmail:   getEnv("ORDER_TO_EMAIL", "orders@kamano.ma"),
		OrderPhone:     getEnv("WHATSAPP_ORDER_PHONE", "+212643874852"),
		InquiryPhone:   getEnv("WHATSAPP_INQUIRY_PHONE", "+212704749027"),
		CartTTL:        getDuration("CART_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ Invalid %s value %q, using default", key, value)
		return fallback
	}
	return d
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
