package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Stripe secret key for invoice payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// SMTP relay for reminder emails.
	SMTPAddr string `mapstructure:"SMTP_ADDR"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	// Booking window and slot shape. Times are wall-clock "HH:MM".
	MaxAdvanceBookingMonths int    `mapstructure:"MAX_ADVANCE_BOOKING_MONTHS"`
	DefaultOpenTime         string `mapstructure:"DEFAULT_OPEN_TIME"`
	DefaultCloseTime        string `mapstructure:"DEFAULT_CLOSE_TIME"`
	SlotDurationMinutes     int    `mapstructure:"SLOT_DURATION_MINUTES"`
	BufferMinutes           int    `mapstructure:"BUFFER_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("SMTP_ADDR", "localhost:1025")
	viper.SetDefault("SMTP_FROM", "reminders@noushy.com.au")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("MAX_ADVANCE_BOOKING_MONTHS", 1)
	viper.SetDefault("DEFAULT_OPEN_TIME", "08:00")
	viper.SetDefault("DEFAULT_CLOSE_TIME", "19:00")
	viper.SetDefault("SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("BUFFER_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
