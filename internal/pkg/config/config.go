package config

import (
	"log"
	"os"
	"strconv"

	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "jualin")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config. The secret has no default; main fails fast when it is
	// missing.
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "jualin")

	// OTP thresholds
	configs.OTP.ExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)
	configs.OTP.MaxFailedAttempts = GetEnvAsInt("OTP_MAX_FAILED_ATTEMPTS", 3)
	configs.OTP.MaxResendAttempts = GetEnvAsInt("OTP_MAX_RESEND_ATTEMPTS", 3)
	configs.OTP.ResendCooldownMinutes = GetEnvAsInt("OTP_RESEND_COOLDOWN_MINUTES", 1)
	configs.OTP.DebugReturnCode = GetEnvAsBool("OTP_DEBUG_RETURN_CODE", false)

	// SMS provider config
	configs.SMS.APIKey = GetEnv("SMS_API_KEY", "")
	configs.SMS.Sender = GetEnv("SMS_SENDER", "jualin")
	configs.SMS.BaseURL = GetEnv("SMS_BASE_URL", "https://gateway.seven.io/api")
	configs.SMS.TimeoutSeconds = GetEnvAsInt("SMS_TIMEOUT_SECONDS", 5)

	// SMTP config
	configs.SMTP.Host = GetEnv("SMTP_HOST", "")
	configs.SMTP.Port = GetEnvAsInt("SMTP_PORT", 587)
	configs.SMTP.Username = GetEnv("SMTP_USERNAME", "")
	configs.SMTP.Password = GetEnv("SMTP_PASSWORD", "")
	configs.SMTP.From = GetEnv("SMTP_FROM", "")

	// Invite config
	configs.Invite.BaseURL = GetEnv("INVITE_BASE_URL", "https://jualin.app/invite")
	configs.Invite.TokenLength = GetEnvAsInt("INVITE_TOKEN_LENGTH", 32)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
