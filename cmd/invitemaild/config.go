package main

import (
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Host        string
	Port        int
	Environment string
	LogLevel    string

	// SMTP settings. User and Pass are optional: when either is absent
	// the mailer is not constructed and the service starts degraded.
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string

	// Sender identity
	FromName  string
	FromEmail string
	ReplyTo   string

	// Shared-secret for the send endpoint. Empty disables authorization.
	APIKey string

	// CORS allow-list. A "*" entry anywhere allows any origin.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig(getenv func(string) string) (*Config, error) {
	smtpPort := envInt(getenv, "SMTP_PORT", 587)
	smtpUser := envString(getenv, "SMTP_USER", "")

	cfg := &Config{
		// Server settings
		Host:        envString(getenv, "SERVER_HOST", ""),
		Port:        envInt(getenv, "PORT", 8787),
		Environment: envString(getenv, "ENVIRONMENT", "dev"),
		LogLevel:    envString(getenv, "LOG_LEVEL", "info"),

		// SMTP settings. Implicit TLS is assumed on port 465 unless
		// SMTP_SECURE says otherwise.
		SMTPHost:   envString(getenv, "SMTP_HOST", "localhost"),
		SMTPPort:   smtpPort,
		SMTPSecure: envBool(getenv, "SMTP_SECURE", smtpPort == 465),
		SMTPUser:   smtpUser,
		SMTPPass:   envString(getenv, "SMTP_PASS", ""),

		// Sender identity. The sender address falls back to the SMTP user.
		FromName:  envString(getenv, "MAIL_FROM_NAME", "Attendance Platform"),
		FromEmail: envString(getenv, "MAIL_FROM_EMAIL", smtpUser),
		ReplyTo:   envString(getenv, "MAIL_REPLY_TO", ""),

		APIKey: envString(getenv, "INVITE_API_KEY", ""),

		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS")),
	}

	return cfg, nil
}

// splitOrigins parses the comma-separated CORS allow-list.
func splitOrigins(value string) []string {
	if value == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Helper functions for loading environment variables with defaults.

func envString(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(getenv func(string) string, key string, defaultValue int) int {
	if value := getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func envBool(getenv func(string) string, key string, defaultValue bool) bool {
	if value := getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
