package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally from a file).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	SMTP SMTPConfig
	GST  GSTConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// GSTConfig business-level GST settings.
type GSTConfig struct {
	// HomeState is the seller's place of business. Customers in the same
	// state get CGST+SGST; everyone else gets IGST.
	HomeState string
	// BusinessName/Address/GSTIN appear on invoice PDFs.
	BusinessName    string
	BusinessAddress string
	GSTIN           string
	// WebhookSecret is the secret path segment on the public intake routes.
	WebhookSecret string
}

// SMTPConfig outbound mail settings. DevRecipient, when set, overrides every
// recipient (development mode).
type SMTPConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	DevRecipient string
}

// DBConfig PostgreSQL settings. If DatabaseURL is non-empty it is used as
// the full connection string.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DatabaseURL when set, otherwise
// one built from the discrete fields.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string with URL encoding for special
// characters in the password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig session-token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from env vars (and optionally from .env /
// config.env files). Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional file

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gstbook-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gstbook"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 12*60),
			Issuer:     getString(v, "JWT_ISSUER", "gstbook"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMTP: SMTPConfig{
			Host:         getString(v, "SMTP_HOST", ""),
			Port:         getInt(v, "SMTP_PORT", 587),
			User:         getString(v, "SMTP_USER", ""),
			Password:     getString(v, "SMTP_PASSWORD", ""),
			From:         getString(v, "SMTP_FROM", ""),
			DevRecipient: getString(v, "SMTP_DEV_RECIPIENT", ""),
		},
		GST: GSTConfig{
			HomeState:       getString(v, "GST_HOME_STATE", "Maharashtra"),
			BusinessName:    getString(v, "GST_BUSINESS_NAME", ""),
			BusinessAddress: getString(v, "GST_BUSINESS_ADDRESS", ""),
			GSTIN:           getString(v, "GST_GSTIN", ""),
			WebhookSecret:   getString(v, "WEBHOOK_SECRET", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
