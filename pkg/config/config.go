package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	Cache     CacheConfig     `envconfig:"CACHE"`
	RecordAPI RecordAPIConfig `envconfig:"RECORD_API"`
	Planner   PlannerConfig   `envconfig:"PLANNER"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host          string `envconfig:"HOST" default:"localhost"`
	Port          string `envconfig:"PORT" default:"5432"`
	User          string `envconfig:"USER" default:"postgres"`
	Password      string `envconfig:"PASSWORD" default:"postgres"`
	Name          string `envconfig:"NAME" default:"meeting_planner"`
	SSLMode       string `envconfig:"SSLMODE" default:"disable"`
	MaxConns      int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns      int    `envconfig:"MIN_CONNS" default:"5"`
	AutoMigrate   bool   `envconfig:"AUTO_MIGRATE" default:"true"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// CacheConfig selects the store behind the meeting list cache.
type CacheConfig struct {
	Driver      string        `envconfig:"DRIVER" default:"memory"`
	MeetingsTTL time.Duration `envconfig:"MEETINGS_TTL" default:"30s"`
}

// RecordAPIConfig points the planner at the server of record.
type RecordAPIConfig struct {
	URL string `envconfig:"URL" default:"http://localhost:8080/api"`
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout              time.Duration `envconfig:"TIMEOUT" default:"0s"`
	FetchMaxElapsed      time.Duration `envconfig:"FETCH_MAX_ELAPSED" default:"5s"`
	FetchInitialInterval time.Duration `envconfig:"FETCH_INITIAL_INTERVAL" default:"200ms"`
}

// PlannerConfig holds settings of the editing workspace.
type PlannerConfig struct {
	SlotInterval   int           `envconfig:"SLOT_INTERVAL" default:"15"`
	BannerTTL      time.Duration `envconfig:"BANNER_TTL" default:"3s"`
	RefreshOnStart bool          `envconfig:"REFRESH_ON_START" default:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv binds the process environment without reading a .env file.
func FromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planner.SlotInterval <= 0 {
		return fmt.Errorf("PLANNER_SLOT_INTERVAL must be positive")
	}
	if 1440%c.Planner.SlotInterval != 0 {
		return fmt.Errorf("PLANNER_SLOT_INTERVAL must divide 1440, got %d", c.Planner.SlotInterval)
	}
	if c.Planner.BannerTTL <= 0 {
		return fmt.Errorf("PLANNER_BANNER_TTL must be positive")
	}
	if strings.TrimSpace(c.RecordAPI.URL) == "" {
		return fmt.Errorf("RECORD_API_URL is required")
	}
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.Cache.Driver)
	}
	return nil
}

// GetDatabaseDSN returns PostgreSQL connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction checks if running in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
