// Package config holds the process-wide configuration for tickpanel.
// All values are read from the environment exactly once at startup;
// business logic receives the resulting Config and never touches env vars.
package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// SMTPConfig carries the credentials for the outgoing mail collaborator.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config is the immutable process configuration, built once by Load.
type Config struct {
	Listen      string
	Port        int
	DBPath      string
	JWTSecret   string
	FrontendURL string
	SMTP        SMTPConfig
	Debug       bool
	LogLevel    LogLevel
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present. An empty JWT secret is not
// an error here: the token service fails closed when asked to sign.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Listen:      envString("TICKPANEL_LISTEN", ""),
		Port:        envInt("TICKPANEL_PORT", 5005),
		DBPath:      envString("TICKPANEL_DB_PATH", defaultDBPath()),
		JWTSecret:   os.Getenv("TICKPANEL_JWT_SECRET"),
		FrontendURL: envString("TICKPANEL_FRONTEND_URL", "http://localhost:3000"),
		SMTP: SMTPConfig{
			Host:     envString("TICKPANEL_SMTP_HOST", ""),
			Port:     envInt("TICKPANEL_SMTP_PORT", 587),
			Username: os.Getenv("TICKPANEL_SMTP_USER"),
			Password: os.Getenv("TICKPANEL_SMTP_PASSWORD"),
			From:     envString("TICKPANEL_SMTP_FROM", os.Getenv("TICKPANEL_SMTP_USER")),
		},
		Debug:    os.Getenv("TICKPANEL_DEBUG") == "true",
		LogLevel: loadLogLevel(),
	}
}

func loadLogLevel() LogLevel {
	if os.Getenv("TICKPANEL_DEBUG") == "true" {
		return Debug
	}
	level := os.Getenv("TICKPANEL_LOG_LEVEL")
	if level == "" {
		return Info
	}
	return LogLevel(level)
}

func defaultDBPath() string {
	if os.Getenv("TICKPANEL_DEBUG") == "true" {
		return "db/" + GetName() + ".db"
	}
	return "/etc/tickpanel/" + GetName() + ".db"
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("TICKPANEL_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
