package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends accepted by USER_STORE.
const (
	StoreFile    = "file"
	StoreSurreal = "surreal"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface so tests can supply a
// partial mock.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetUserStore() string
	GetUserStorePath() string
	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	LogFormat     string
	LogLevel      string
	UserStore     string
	UserStorePath string
	DBUrl         string
	DBNs          string
	DBDb          string
	DBUser        string
	DBPass        string
	EmailProvider string
	EmailAPIKey   string
	EmailSender   string
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	return &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		UserStore:     strings.ToLower(getEnv("USER_STORE", StoreFile)),
		UserStorePath: getEnv("USER_STORE_PATH", "data/users.json"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		EmailProvider: getEnv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
	}
}

// Validate reports every required value that is missing.
func (c *Config) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is not set"))
	}
	switch c.UserStore {
	case StoreFile:
		if c.UserStorePath == "" {
			errs = append(errs, errors.New("USER_STORE_PATH is not set"))
		}
	case StoreSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			errs = append(errs, errors.New("SURREAL_URL, SURREAL_NS and SURREAL_DB are required when USER_STORE=surreal"))
		}
	default:
		errs = append(errs, errors.New("USER_STORE must be one of: file, surreal"))
	}
	return errors.Join(errs...)
}

func (c *Config) GetServerAddr() string    { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) GetUserStore() string     { return c.UserStore }
func (c *Config) GetUserStorePath() string { return c.UserStorePath }
func (c *Config) GetDBUrl() string         { return c.DBUrl }
func (c *Config) GetDBNs() string          { return c.DBNs }
func (c *Config) GetDBDb() string          { return c.DBDb }
func (c *Config) GetDBUser() string        { return c.DBUser }
func (c *Config) GetDBPass() string        { return c.DBPass }
func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string   { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string   { return c.EmailSender }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
