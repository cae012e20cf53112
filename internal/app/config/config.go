package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	FrontendURL string
	DatabaseURL string

	SMTP   SMTPConfig
	IMAP   IMAPConfig
	Gemini GeminiConfig
	MinIO  MinIOConfig
	Poll   PollConfig
}

// SMTPConfig is the outbound mail transport.
type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Secure bool // implicit TLS instead of STARTTLS
}

// IMAPConfig is the inbox the ingestion pipeline polls.
type IMAPConfig struct {
	Host string
	Port int
	User string
	Pass string
	TLS  bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// MinIOConfig is the attachment blob store. Leaving Endpoint empty
// disables attachment uploads.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type PollConfig struct {
	Interval  time.Duration
	AutoCheck bool
}

const (
	envSMTPHost   = "SMTP_HOST"
	envSMTPPort   = "SMTP_PORT"
	envSMTPUser   = "SMTP_USER"
	envSMTPPass   = "SMTP_PASS"
	envSMTPSecure = "SMTP_SECURE"

	envIMAPHost = "IMAP_HOST"
	envIMAPPort = "IMAP_PORT"
	envIMAPUser = "IMAP_USER"
	envIMAPPass = "IMAP_PASS"
	envIMAPTLS  = "IMAP_TLS"

	envGeminiKey   = "GEMINI_API_KEY"
	envGeminiModel = "GEMINI_MODEL"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"

	envPollInterval = "EMAIL_POLL_INTERVAL"
	envAutoCheck    = "AUTO_CHECK_EMAILS"
	envFrontendURL  = "FRONTEND_URL"
	envDatabaseURL  = "DATABASE_URL"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	cfg.FrontendURL = envString(envFrontendURL, "http://localhost:5175")
	if dsn := os.Getenv(envDatabaseURL); dsn != "" {
		cfg.DatabaseURL = dsn
	}

	cfg.SMTP.Host = os.Getenv(envSMTPHost)
	cfg.SMTP.Port, err = envInt(envSMTPPort, 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTP.User = os.Getenv(envSMTPUser)
	cfg.SMTP.Pass = os.Getenv(envSMTPPass)
	cfg.SMTP.Secure = envBool(envSMTPSecure)

	cfg.IMAP.Host = os.Getenv(envIMAPHost)
	cfg.IMAP.Port, err = envInt(envIMAPPort, 993)
	if err != nil {
		return nil, err
	}
	cfg.IMAP.User = os.Getenv(envIMAPUser)
	cfg.IMAP.Pass = os.Getenv(envIMAPPass)
	cfg.IMAP.TLS = envBool(envIMAPTLS)

	cfg.Gemini.APIKey = os.Getenv(envGeminiKey)
	cfg.Gemini.Model = envString(envGeminiModel, "gemini-2.0-flash")

	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = envString(envMinIOBucket, "rfp-attachments")
	cfg.MinIO.UseSSL = envBool(envMinIOUseSSL)

	pollMs, err := envInt(envPollInterval, 60000)
	if err != nil {
		return nil, err
	}
	cfg.Poll.Interval = time.Duration(pollMs) * time.Millisecond
	cfg.Poll.AutoCheck = envBool(envAutoCheck)

	log.Info("config parsed")

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an int value: %w", key, err)
	}
	return n, nil
}

func envBool(key string) bool {
	return os.Getenv(key) == "true"
}
