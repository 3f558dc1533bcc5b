package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Refund    RefundPolicyConfig
	CORS      CORSConfig
	Admin     AdminConfig
	Mailer    MailerConfig
	Events    EventsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RateLimitConfig struct {
	MaxRequests   int
	WindowSeconds int
	SweepSeconds  int
}

// RefundPolicyConfig drives the time-based cancellation refund computation.
type RefundPolicyConfig struct {
	FullRefundDays       int
	PartialRefundDays    int
	PartialRefundPercent int
}

type CORSConfig struct {
	AllowedOrigins []string
	DefaultOrigin  string
}

type AdminConfig struct {
	// bcrypt hash of the staff API key; plaintext key is never stored
	APIKeyHash string
}

type MailerConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
}

type EventsConfig struct {
	NATSURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("RATE_LIMIT_SWEEP_SECONDS", 300)
	viper.SetDefault("FULL_REFUND_DAYS", 7)
	viper.SetDefault("PARTIAL_REFUND_DAYS", 3)
	viper.SetDefault("PARTIAL_REFUND_PERCENT", 50)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_DEFAULT_ORIGIN", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   viper.GetInt("RATE_LIMIT_MAX_REQUESTS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
			SweepSeconds:  viper.GetInt("RATE_LIMIT_SWEEP_SECONDS"),
		},
		Refund: RefundPolicyConfig{
			FullRefundDays:       viper.GetInt("FULL_REFUND_DAYS"),
			PartialRefundDays:    viper.GetInt("PARTIAL_REFUND_DAYS"),
			PartialRefundPercent: viper.GetInt("PARTIAL_REFUND_PERCENT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS")),
			DefaultOrigin:  viper.GetString("CORS_DEFAULT_ORIGIN"),
		},
		Admin: AdminConfig{
			APIKeyHash: viper.GetString("ADMIN_API_KEY_HASH"),
		},
		Mailer: MailerConfig{
			APIKey:    viper.GetString("MAILERSEND_API_KEY"),
			FromName:  viper.GetString("MAILER_FROM_NAME"),
			FromEmail: viper.GetString("MAILER_FROM_EMAIL"),
		},
		Events: EventsConfig{
			NATSURL: viper.GetString("NATS_URL"),
		},
	}

	return config, nil
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
