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

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type StorageConfig struct {
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PhotoBucket   string `yaml:"photo_bucket"`
	RecipeBucket  string `yaml:"recipe_bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Redis   RedisConfig   `yaml:"redis"`
	JWT     JWTConfig     `yaml:"jwt"`
	OTP     OTPConfig     `yaml:"otp"`
	Storage StorageConfig `yaml:"storage"`
	SMTP    SMTPConfig    `yaml:"smtp"`
}

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	OTPTTL           time.Duration
	S3Region         string
	S3Endpoint       string
	S3AccessKey      string
	S3SecretKey      string
	PhotoBucket      string
	RecipeBucket     string
	PublicBaseURL    string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and falls back to environment variables
// for anything the file leaves empty. The token and OTP windows are
// fixed in configuration so the documented durations (7 days, 10
// minutes) live in one place.
func Load() (*Config, error) {
	configFile, err := loadConfigFile("config/config.yml")
	if err != nil {
		// No config file is fine for containerized deployments that
		// configure everything through the environment.
		configFile = &ConfigFile{}
	}

	tokenTTL, err := parseDuration(configFile.JWT.TokenTTL, env("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	otpTTL, err := parseDuration(configFile.OTP.TTL, env("OTP_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" && redisDB == 0 {
		redisDB, _ = strconv.Atoi(v)
	}

	smtpPort := configFile.SMTP.Port
	if v := os.Getenv("SMTP_PORT"); v != "" && smtpPort == 0 {
		smtpPort, _ = strconv.Atoi(v)
	}
	if smtpPort == 0 {
		smtpPort = 587
	}

	port := env("PORT", "8080")
	if configFile.App.Port != 0 {
		port = strconv.Itoa(configFile.App.Port)
	}

	cfg := &Config{
		Port:            port,
		GinMode:         first(configFile.App.GinMode, env("GIN_MODE", "release")),
		MongoURI:        first(configFile.Mongo.URI, env("MONGO_URL", "mongodb://localhost:27017")),
		MongoDatabase:   first(configFile.Mongo.Database, env("MONGO_DB", "rasadhana")),
		RedisAddr:       first(configFile.Redis.Addr, env("REDIS_ADDR", "localhost:6379")),
		RedisPassword:   first(configFile.Redis.Password, env("REDIS_PASSWORD", "")),
		RedisDB:         redisDB,
		JWTSecret:       first(configFile.JWT.Secret, os.Getenv("JWT_SECRET")),
		JWTIssuer:       first(configFile.JWT.Issuer, env("JWT_ISSUER", "be-rasadhana")),
		TokenTTL:        tokenTTL,
		OTPTTL:          otpTTL,
		S3Region:        first(configFile.Storage.Region, env("STORAGE_REGION", "us-east-1")),
		S3Endpoint:      first(configFile.Storage.Endpoint, env("STORAGE_ENDPOINT", "")),
		S3AccessKey:     first(configFile.Storage.AccessKey, os.Getenv("STORAGE_ACCESS_KEY")),
		S3SecretKey:     first(configFile.Storage.SecretKey, os.Getenv("STORAGE_SECRET_KEY")),
		PhotoBucket:     first(configFile.Storage.PhotoBucket, env("STORAGE_BUCKET_USER_PROFILE", "")),
		RecipeBucket:    first(configFile.Storage.RecipeBucket, env("STORAGE_BUCKET_RECIPES", "")),
		PublicBaseURL:   trimSlash(first(configFile.Storage.PublicBaseURL, env("STORAGE_PUBLIC_BASE_URL", ""))),
		SMTPHost:        first(configFile.SMTP.Host, env("SMTP_HOST", "smtp.gmail.com")),
		SMTPPort:        smtpPort,
		SMTPUsername:    first(configFile.SMTP.Username, os.Getenv("EMAIL")),
		SMTPPassword:    first(configFile.SMTP.Password, os.Getenv("PASSWORD_EMAIL")),
		SMTPFrom:        first(configFile.SMTP.From, os.Getenv("EMAIL")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return cfg, nil
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

func parseDuration(fromFile, fromEnv string) (time.Duration, error) {
	s := fromFile
	if s == "" {
		s = fromEnv
	}
	return time.ParseDuration(s)
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
