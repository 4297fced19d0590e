package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`

	// Audit event stream; events are dropped when brokers are empty.
	KafkaBrokers    []string `mapstructure:"KAFKA_BROKERS"`
	KafkaAuditTopic string   `mapstructure:"KAFKA_AUDIT_TOPIC"`

	// Purchase photo storage
	GCSBucketName string `mapstructure:"GCS_BUCKET_NAME"`

	// Rate limiting for auth endpoints, e.g. "10-M" for 10 per minute.
	AuthRateLimit string `mapstructure:"AUTH_RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "vendor-khata-app")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("KAFKA_BROKERS", []string{})
	viper.SetDefault("KAFKA_AUDIT_TOPIC", "vendor-khata-audit")
	viper.SetDefault("GCS_BUCKET_NAME", "")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Warning: Google OAuth credentials not set. Google sign-in will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.KafkaBrokers = viper.GetStringSlice("KAFKA_BROKERS")
	cfg.KafkaAuditTopic = viper.GetString("KAFKA_AUDIT_TOPIC")
	cfg.GCSBucketName = viper.GetString("GCS_BUCKET_NAME")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
