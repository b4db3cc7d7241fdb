package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type StorageConfig struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type NotifierConfig struct {
	APIKey      string `yaml:"api_key"`
	SenderEmail string `yaml:"sender_email"`
	SenderName  string `yaml:"sender_name"`
}

type ReaperConfig struct {
	Interval string `yaml:"interval"`
}

type ConfigFile struct {
	App           AppConfig      `yaml:"app"`
	Database      DatabaseConfig `yaml:"database"`
	Redis         RedisConfig    `yaml:"redis"`
	OTP           OTPConfig      `yaml:"otp"`
	Storage       StorageConfig  `yaml:"storage"`
	Notifier      NotifierConfig `yaml:"notifier"`
	Reaper        ReaperConfig   `yaml:"reaper"`
	OperatorEmail string         `yaml:"operator_email"`
	AdminPattern  string         `yaml:"admin_pattern"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	OTP_TTL       time.Duration
	OTP_Length    int
	S3Region      string
	S3Endpoint    string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	BrevoAPIKey   string
	SenderEmail   string
	SenderName    string
	ReapInterval  time.Duration
	OperatorEmail string
	// AdminPattern is the shared secret for privileged pattern login.
	// Empty means pattern login is unavailable, not a load-time error.
	AdminPattern string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads config/config.yml when present and lets environment
// variables override individual values. A missing file is not fatal so
// the service can run from environment alone.
func Load() (*Config, error) {
	file := &ConfigFile{}
	if loaded, err := loadConfigFile("config/config.yml"); err == nil {
		file = loaded
	}

	if file.OTP.TTL == "" {
		file.OTP.TTL = "5m"
	}
	if file.OTP.Length == 0 {
		file.OTP.Length = 6
	}
	if file.Reaper.Interval == "" {
		file.Reaper.Interval = "5m"
	}
	if file.App.Port == 0 {
		file.App.Port = 5000
	}

	otpTTL, err := time.ParseDuration(file.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	reapInterval, err := time.ParseDuration(file.Reaper.Interval)
	if err != nil {
		return nil, fmt.Errorf("invalid reaper interval: %w", err)
	}

	return &Config{
		Port:          env("PORT", strconv.Itoa(file.App.Port)),
		GinMode:       env("GIN_MODE", file.App.GinMode),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", orDefault(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),
		OTP_TTL:       otpTTL,
		OTP_Length:    file.OTP.Length,
		S3Region:      env("S3_REGION", orDefault(file.Storage.Region, "us-east-1")),
		S3Endpoint:    env("S3_ENDPOINT", file.Storage.Endpoint),
		S3Bucket:      env("S3_BUCKET", orDefault(file.Storage.Bucket, "vault-files")),
		S3AccessKey:   env("S3_ACCESS_KEY", file.Storage.AccessKey),
		S3SecretKey:   env("S3_SECRET_KEY", file.Storage.SecretKey),
		BrevoAPIKey:   env("BREVO_API_KEY", file.Notifier.APIKey),
		SenderEmail:   env("EMAIL_USER", file.Notifier.SenderEmail),
		SenderName:    env("EMAIL_SENDER_NAME", orDefault(file.Notifier.SenderName, "Vault Security")),
		ReapInterval:  reapInterval,
		OperatorEmail: env("ADMIN_EMAIL", file.OperatorEmail),
		AdminPattern:  env("ADMIN_PATTERN", file.AdminPattern),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
