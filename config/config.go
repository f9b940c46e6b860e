package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret signs admin tokens when JWT_SECRET is unset in development.
const DevJWTSecret = "clave_secreta_temporal"

const (
	StoreMongo    = "mongo"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	NotifyNone     = "none"
	NotifyEmail    = "email"
	NotifyWhatsApp = "whatsapp"

	MailSMTP     = "smtp"
	MailMailgun  = "mailgun"
	MailSendGrid = "sendgrid"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Auth      AuthConfig
	Mail      MailConfig
	Notify    NotifyConfig
	KeepAlive KeepAliveConfig
	App       AppConfig
}

type ServerConfig struct {
	Port     string
	SitePort string

	// APIBaseURL is where the site reaches the API service, e.g. http://localhost:5000/api.
	APIBaseURL      string
	APITimeout      time.Duration
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver   string
	Mongo    MongoConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	JWTSecret     string
	AdminPassword string
}

type MailConfig struct {
	Provider string
	From     string
	To       string
	SMTP     SMTPConfig
	Mailgun  MailgunConfig
	SendGrid SendGridConfig
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type MailgunConfig struct {
	Domain  string
	APIKey  string
	APIBase string
}

type SendGridConfig struct {
	APIKey string
	Host   string
}

type NotifyConfig struct {
	Strategy       string
	WhatsAppNumber string
}

type KeepAliveConfig struct {
	URL      string
	Schedule string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	CORSOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			SitePort:        getEnv("SITE_PORT", "3000"),
			APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
			APITimeout:      getEnvAsDuration("API_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("CONTENT_STORE", StoreMongo)),
			Mongo: MongoConfig{
				URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
				Database: getEnv("MONGO_DB", "empreweb"),
			},
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
			},
			Database: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvAsInt("DB_PORT", 5432),
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Name:     getEnv("DB_NAME", "empreweb"),
			},
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Mail: MailConfig{
			Provider: strings.ToLower(getEnv("MAIL_PROVIDER", "")),
			From:     getEnv("MAIL_FROM", ""),
			To:       getEnv("MAIL_TO", ""),
			SMTP: SMTPConfig{
				Host:     getEnv("SMTP_HOST", ""),
				Port:     getEnv("SMTP_PORT", "587"),
				Username: getEnv("SMTP_USER", ""),
				Password: getEnv("SMTP_PASSWORD", ""),
			},
			Mailgun: MailgunConfig{
				Domain:  getEnv("MAILGUN_DOMAIN", ""),
				APIKey:  getEnv("MAILGUN_API_KEY", ""),
				APIBase: getEnv("MAILGUN_API_BASE", ""),
			},
			SendGrid: SendGridConfig{
				APIKey: getEnv("SENDGRID_API_KEY", ""),
				Host:   getEnv("SENDGRID_HOST", ""),
			},
		},
		Notify: NotifyConfig{
			Strategy:       strings.ToLower(getEnv("NOTIFY_STRATEGY", NotifyNone)),
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),
		},
		KeepAlive: KeepAliveConfig{
			URL:      strings.TrimRight(getEnv("KEEPALIVE_URL", ""), "/"),
			Schedule: getEnv("KEEPALIVE_SCHEDULE", "@every 13m"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Auth.JWTSecret == "" {
		if c.App.Environment == "production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		log.Println("Warning: JWT_SECRET not set, using development secret")
		c.Auth.JWTSecret = DevJWTSecret
	}

	switch c.Store.Driver {
	case StoreMongo:
		if c.Store.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	case StorePostgres:
		if c.Store.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	default:
		return fmt.Errorf("unknown CONTENT_STORE %q", c.Store.Driver)
	}

	switch c.Notify.Strategy {
	case NotifyNone, NotifyWhatsApp:
	case NotifyEmail:
		switch c.Mail.Provider {
		case MailSMTP, MailMailgun, MailSendGrid:
		case "":
			return fmt.Errorf("MAIL_PROVIDER is required when NOTIFY_STRATEGY=email")
		default:
			return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
		}
		if c.Mail.To == "" {
			return fmt.Errorf("MAIL_TO is required when NOTIFY_STRATEGY=email")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_STRATEGY %q", c.Notify.Strategy)
	}

	if c.Notify.Strategy == NotifyWhatsApp && c.Notify.WhatsAppNumber == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required when NOTIFY_STRATEGY=whatsapp")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
