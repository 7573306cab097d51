package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// SMTP configuration for outbound mail
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// JWT configuration
type JWTConfig struct {
	Secret   string
	TTLHours int
}

// Bootstrap admin account configuration
type AdminConfig struct {
	Username string
	Password string
	Branch   string
}

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Mongo         MongoConfig
	SMTP          SMTPConfig
	JWT           JWTConfig
	Admin         AdminConfig
	OTPTTLSeconds int
	BCryptCost    int
	SeedEnabled   bool
}

// Default configuration values
const (
	DefaultServerPort    = "5000"
	DefaultServerHost    = ""
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDB       = "ticketing_system"
	DefaultSMTPHost      = "localhost"
	DefaultSMTPPort      = "465"
	DefaultJWTSecret     = "change-me"
	DefaultJWTTTLHours   = 24
	DefaultAdminUsername = "admin@local"
	DefaultAdminBranch   = "Chennai"
	DefaultOTPTTLSeconds = 300
	DefaultBCryptCost    = 10
	DefaultSeedEnabled   = true
)

// Input limits shared by handlers
const (
	MaxEmailLength       = 254
	MaxTitleLength       = 200
	MaxDescriptionLength = 4000
)

// New returns a new Config with default values
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", DefaultSMTPHost),
			Port:     getEnv("SMTP_PORT", DefaultSMTPPort),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", DefaultJWTSecret),
			TTLHours: getEnvInt("JWT_TTL_HOURS", DefaultJWTTTLHours),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", DefaultAdminUsername),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Branch:   getEnv("ADMIN_BRANCH", DefaultAdminBranch),
		},
		OTPTTLSeconds: getEnvInt("OTP_TTL_SECONDS", DefaultOTPTTLSeconds),
		BCryptCost:    getEnvInt("BCRYPT_COST", DefaultBCryptCost),
		SeedEnabled:   getEnvBool("SEED_ENABLED", DefaultSeedEnabled),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Addr returns host:port for the SMTP server
func (c *SMTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
