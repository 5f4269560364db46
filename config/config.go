package config

import (
	"fmt"
	"luxefurnish/domain"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	OTPStoreRedis  = "redis"
	OTPStoreMemory = "memory"

	UploadDriverDisk = "disk"
	UploadDriverS3   = "s3"

	minJWTSecretLen = 32
)

type Config struct {
	AppEnv       string   `env:"APP_ENV" envDefault:"production"`
	AppPort      string   `env:"APP_PORT" envDefault:"5000"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173,http://localhost:5174"`
	MaxBodyBytes int64    `env:"MAX_BODY_BYTES" envDefault:"52428800"`
	BcryptCost   int      `env:"BCRYPT_COST" envDefault:"10"`

	DB        Database  `envPrefix:"DB_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	JWT       JWT       `envPrefix:"JWT_"`
	SMTP      SMTP      `envPrefix:"SMTP_"`
	OTP       OTP       `envPrefix:"OTP_"`
	Upload    Upload    `envPrefix:"UPLOAD_"`
	S3        S3        `envPrefix:"S3_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"luxefurnish"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type JWT struct {
	Secret    string        `env:"SECRET"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"1h"`
}

type SMTP struct {
	Host     string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM"`
}

type OTP struct {
	Store string        `env:"STORE" envDefault:"redis"`
	TTL   time.Duration `env:"TTL" envDefault:"1m"`
}

type Upload struct {
	Driver    string `env:"DRIVER" envDefault:"disk"`
	Dir       string `env:"DIR" envDefault:"./uploads"`
	URLPrefix string `env:"URL_PREFIX" envDefault:"/uploads"`
}

type S3 struct {
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	Bucket       string `env:"BUCKET"`
	Region       string `env:"REGION" envDefault:"us-east-1"`
	BaseEndpoint string `env:"BASE_ENDPOINT"`
	PublicURL    string `env:"PUBLIC_URL"`
}

type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"ORDER_TOPIC" envDefault:"orders"`
}

type Admin struct {
	Name     string `env:"NAME" envDefault:"Administrator"`
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

type RateLimit struct {
	Requests int           `env:"REQUESTS" envDefault:"5"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
}

// Load reads an optional .env file, then the process environment, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return domain.NewError(domain.ErrConfig, "JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < minJWTSecretLen {
		return domain.NewError(domain.ErrConfig, "JWT_SECRET must be at least %d characters", minJWTSecretLen)
	}
	if c.JWT.ExpiresIn <= 0 {
		return domain.NewError(domain.ErrConfig, "JWT_EXPIRES_IN must be positive")
	}
	if c.BcryptCost < bcrypt.DefaultCost || c.BcryptCost > bcrypt.MaxCost {
		return domain.NewError(domain.ErrConfig, "BCRYPT_COST must be between %d and %d", bcrypt.DefaultCost, bcrypt.MaxCost)
	}
	if c.OTP.TTL <= 0 {
		return domain.NewError(domain.ErrConfig, "OTP_TTL must be positive")
	}
	switch strings.ToLower(c.OTP.Store) {
	case OTPStoreRedis, OTPStoreMemory:
	default:
		return domain.NewError(domain.ErrConfig, "OTP_STORE must be %q or %q", OTPStoreRedis, OTPStoreMemory)
	}
	switch strings.ToLower(c.Upload.Driver) {
	case UploadDriverDisk:
	case UploadDriverS3:
		if c.S3.Bucket == "" {
			return domain.NewError(domain.ErrConfig, "S3_BUCKET is required when UPLOAD_DRIVER=s3")
		}
	default:
		return domain.NewError(domain.ErrConfig, "UPLOAD_DRIVER must be %q or %q", UploadDriverDisk, UploadDriverS3)
	}
	if c.MaxBodyBytes <= 0 {
		return domain.NewError(domain.ErrConfig, "MAX_BODY_BYTES must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
