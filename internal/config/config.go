package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// MFAConfig tunes the challenge engine.
type MFAConfig struct {
	// Issuer is the name shown in authenticator apps (otpauth URI issuer).
	Issuer string
	// ChallengeExpiry bounds how long a challenge can be verified.
	ChallengeExpiry time.Duration
	// MaxAttempts is the verification attempt budget per challenge.
	MaxAttempts int
	// BackupCodeCount is how many codes a fresh backup set contains.
	BackupCodeCount int
	// CleanupInterval defines how often the expired-challenge sweep runs.
	CleanupInterval time.Duration
}

type RedisSettings struct {
	Address  string
	Password string
	DB       int
}

type SmtpConfig struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     string `mapstructure:"SMTP_PORT"`
	User     string `mapstructure:"SMTP_USER"`
	Password string `mapstructure:"SMTP_PASSWORD"`
	NOTLS    bool   `mapstructure:"SMTP_NOTLS"`
}

// SMSConfig configures the SMS OTP gateway client.
type SMSConfig struct {
	APIKey  string
	BaseURL string
	Sender  string
}

type Config struct {
	// Server port
	Port      string
	AppEnv    string
	LogLevel  string
	JWTSecret string
	// sqlite3 or postgres
	DatabaseDriver string
	// host=<host> port=<port> user=<user> dbname=<database> password=<pass> sslmode=<enable/disable>
	DatabaseSettings string
	RedisSettings    RedisSettings
	SMTP             SmtpConfig `mapstructure:",squash"`
	SMS              SMSConfig
	MFA              MFAConfig
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Load configuration
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables")
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// JWT Secret
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" || jwtSecret == "a_very_secret_key_change_me" {
		fmt.Println("Warning: Using default JWT secret. Set JWT_SECRET environment variable or in config file.")
		jwtSecret = "a_very_secret_key_change_me"
	}

	// MFA Configuration
	issuer := viper.GetString("MFA_ISSUER")
	if issuer == "" {
		issuer = "SCS"
	}

	expirySeconds := viper.GetInt("MFA_CHALLENGE_EXPIRY_SECONDS")
	if expirySeconds <= 0 {
		expirySeconds = 300
	}

	maxAttempts := viper.GetInt("MFA_MAX_ATTEMPTS")
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	backupCodeCount := viper.GetInt("MFA_BACKUP_CODE_COUNT")
	if backupCodeCount <= 0 {
		backupCodeCount = 10
	}

	cleanupSeconds := viper.GetInt("MFA_CLEANUP_INTERVAL_SECONDS")
	if cleanupSeconds <= 0 {
		cleanupSeconds = 60
	}

	// Database Configuration
	databaseDriver := viper.GetString("DATABASE_DRIVER")
	var databaseSettings string
	if databaseDriver == "" {
		databaseDriver = "sqlite3"
	}
	if databaseDriver == "sqlite3" {
		databaseSettings = "file:ent?mode=memory&cache=shared&_fk=1"
	} else {
		databaseSettings = fmt.Sprintf(
			"host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
			viper.GetString("DB_HOST"),
			viper.GetInt("DB_PORT"),
			viper.GetString("DB_USER"),
			viper.GetString("DB_NAME"),
			viper.GetString("DB_PASS"),
			viper.GetString("DB_SSL_MODE"),
		)
	}

	return &Config{
		Port:             viper.GetString("APP_PORT"),
		AppEnv:           viper.GetString("APP_ENV"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		JWTSecret:        jwtSecret,
		DatabaseDriver:   databaseDriver,
		DatabaseSettings: databaseSettings,
		RedisSettings: RedisSettings{
			Address:  viper.GetString("REDIS_ADDRESS"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		SMTP: SmtpConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetString("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			NOTLS:    viper.GetBool("SMTP_NOTLS"),
		},
		SMS: SMSConfig{
			APIKey:  viper.GetString("SMS_API_KEY"),
			BaseURL: viper.GetString("SMS_BASE_URL"),
			Sender:  viper.GetString("SMS_SENDER"),
		},
		MFA: MFAConfig{
			Issuer:          issuer,
			ChallengeExpiry: time.Duration(expirySeconds) * time.Second,
			MaxAttempts:     maxAttempts,
			BackupCodeCount: backupCodeCount,
			CleanupInterval: time.Duration(cleanupSeconds) * time.Second,
		},
	}, nil
}
