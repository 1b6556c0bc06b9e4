package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ten days
	defaultJWTTTL = 240 * time.Hour

	minProdSecretLen = 32
)

type (
	APP struct {
		Name           string
		Host           string
		Port           string
		Env            string
		JWTSecret      string
		JWTTTL         time.Duration
		CORSOrigins    []string
		TrustedProxies []string
		LoginRate      float64
		LoginBurst     int
		AdminTypeNames []string
	}
	DB struct {
		User           string
		Password       string
		Name           string
		Host           string
		Port           string
		SSLMode        string
		MigrateOnStart bool
	}
	S3 struct {
		Region        string
		BucketUploads string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Log struct {
		Debug      bool
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
	Seed struct {
		Enabled       bool
		AdminName     string
		AdminEmail    string
		AdminPassword string
		AdminPhone    string
	}

	Config struct {
		App  APP
		DB   DB
		S3   S3
		MQ   MQ
		Log  Log
		Seed Seed
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return def
}

func getEnvList(key string, def []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Load() Config {
	app := APP{
		Name:           getEnv("SERVICE_NAME", "fooddelivery"),
		Host:           getEnv("SERVICE_HOST", ""),
		Port:           getEnv("SERVICE_PORT", "8080"),
		Env:            getEnv("SERVICE_ENV", ""),
		JWTSecret:      getEnv("SERVICE_JWT_SECRET", ""),
		JWTTTL:         getEnvDuration("SERVICE_JWT_TTL", defaultJWTTTL),
		CORSOrigins:    getEnvList("SERVICE_CORS_ORIGINS", nil),
		TrustedProxies: getEnvList("SERVICE_TRUSTED_PROXIES", nil),
		LoginRate:      getEnvFloat("SERVICE_LOGIN_RATE", 1),
		LoginBurst:     getEnvInt("SERVICE_LOGIN_BURST", 5),
		AdminTypeNames: getEnvList("SERVICE_ADMIN_TYPE_NAMES", []string{"Administrador"}),
	}
	db := DB{
		User:           getEnv("POSTGRES_USER", ""),
		Password:       getEnv("POSTGRES_PASSWORD", ""),
		Name:           getEnv("POSTGRES_DB", ""),
		Host:           getEnv("POSTGRES_HOST", ""),
		Port:           getEnv("POSTGRES_PORT", "5432"),
		SSLMode:        getEnv("POSTGRES_SSLMODE", "disable"),
		MigrateOnStart: getEnvBool("POSTGRES_MIGRATE", true),
	}
	s3 := S3{
		Region:        getEnv("S3_REGION", ""),
		BucketUploads: getEnv("S3_BUCKET_UPLOADS", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "fooddelivery.events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "fooddelivery.audit"),
	}
	lg := Log{
		Debug:      getEnvBool("LOG_DEBUG", false),
		File:       getEnv("LOG_FILE", ""),
		MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
		MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}
	seed := Seed{
		Enabled:       getEnvBool("SEED_ENABLED", false),
		AdminName:     getEnv("SEED_ADMIN_NAME", "Administrador do Sistema"),
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@sistema.com"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		AdminPhone:    getEnv("SEED_ADMIN_PHONE", "(11) 99999-0000"),
	}

	return Config{
		App:  app,
		DB:   db,
		S3:   s3,
		MQ:   mq,
		Log:  lg,
		Seed: seed,
	}
}

func (c Config) IsProduction() bool {
	switch c.App.Env {
	case "release", "prod", "production":
		return true
	}
	return false
}

// Validate rejects configurations the process must not start with.
func (c Config) Validate() error {
	if c.App.JWTSecret == "" {
		return fmt.Errorf("SERVICE_JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.App.JWTSecret) < minProdSecretLen {
		return fmt.Errorf("SERVICE_JWT_SECRET must be at least %d bytes in production", minProdSecretLen)
	}
	if c.Seed.Enabled && c.Seed.AdminPassword == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required when SEED_ENABLED is set")
	}
	return nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
		c.DB.SSLMode,
	), nil
}

// MQEnabled reports whether event publishing is configured.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
