package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"huakai/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, convErr := strconv.Atoi(getEnvWithDefault("SMTP_PORT", "587"))
	if convErr != nil {
		log.Printf("Invalid SMTP_PORT, falling back to 587")
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port, // 587 for STARTTLS; use 465 with SMTP_USE_SSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       getEnvWithDefault("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		FromName:   getEnvWithDefault("SMTP_FROM_NAME", "Huakai"),
		UseSSL:     os.Getenv("SMTP_USE_SSL") == "true",
		RequireTLS: getEnvWithDefault("SMTP_REQUIRE_TLS", "true") == "true",

		AppName: getEnvWithDefault("APP_NAME", "Huakai"),
	}

	if cfg.Host == "" {
		log.Println("SMTP_HOST not set, itinerary email delivery is disabled")
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
