// internal/config/config.go
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath    = "config/app.yaml"
	DefaultRecomputeCron = "0 3 * * *"
	DefaultSlotStartHour = 6
	DefaultSlotEndHour   = 21
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type ScoringConfig struct {
	AttendanceWeight float64 `yaml:"attendance_weight"`
	PaymentWeight    float64 `yaml:"payment_weight"`
	RecomputeCron    string  `yaml:"recompute_cron"`
	// Manual recompute limits per player
	RecomputeCooldown   time.Duration `yaml:"recompute_cooldown"`
	RecomputeMaxPerHour int           `yaml:"recompute_max_per_hour"`
}

// CalendarConfig bounds the bookable hours of a day. Both hours are slot
// start hours and inclusive, so 6..21 yields 16 slots ending at 22:00.
type CalendarConfig struct {
	SlotStartHour int `yaml:"slot_start_hour"`
	SlotEndHour   int `yaml:"slot_end_hour"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		Timezone    string `yaml:"timezone"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Calendar CalendarConfig `yaml:"calendar"`

	Features struct {
		EnableMetrics   bool `yaml:"enable_metrics"`
		EnableScheduler bool `yaml:"enable_scheduler"`
		EnableDebug     bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// PathFromEnv returns CONFIG_PATH or the default config location.
func PathFromEnv() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return DefaultConfigPath
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and environment
// overrides, then validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if filename := os.Getenv("DATABASE_FILENAME"); filename != "" {
		cfg.Database.Filename = filename
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.App.Timezone == "" {
		c.App.Timezone = "UTC"
	}
	if c.Scoring.AttendanceWeight == 0 && c.Scoring.PaymentWeight == 0 {
		c.Scoring.AttendanceWeight = 0.5
		c.Scoring.PaymentWeight = 0.5
	}
	if c.Scoring.RecomputeCron == "" {
		c.Scoring.RecomputeCron = DefaultRecomputeCron
	}
	if c.Scoring.RecomputeCooldown == 0 {
		c.Scoring.RecomputeCooldown = 30 * time.Second
	}
	if c.Scoring.RecomputeMaxPerHour == 0 {
		c.Scoring.RecomputeMaxPerHour = 20
	}
	if c.Calendar.SlotStartHour == 0 && c.Calendar.SlotEndHour == 0 {
		c.Calendar.SlotStartHour = DefaultSlotStartHour
		c.Calendar.SlotEndHour = DefaultSlotEndHour
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app timezone %q is invalid: %w", c.App.Timezone, err)
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Scoring.AttendanceWeight < 0 || c.Scoring.PaymentWeight < 0 {
		return fmt.Errorf("scoring weights must be 0 or greater")
	}
	if math.Abs(c.Scoring.AttendanceWeight+c.Scoring.PaymentWeight-1) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1")
	}
	if _, err := cron.ParseStandard(c.Scoring.RecomputeCron); err != nil {
		return fmt.Errorf("scoring recompute_cron is invalid: %w", err)
	}
	if c.Scoring.RecomputeCooldown < 0 || c.Scoring.RecomputeMaxPerHour < 0 {
		return fmt.Errorf("scoring recompute limits must be 0 or greater")
	}

	if c.Calendar.SlotStartHour < 0 || c.Calendar.SlotEndHour > 23 {
		return fmt.Errorf("calendar slot hours must be between 0 and 23")
	}
	if c.Calendar.SlotStartHour > c.Calendar.SlotEndHour {
		return fmt.Errorf("calendar slot_start_hour must not be after slot_end_hour")
	}

	return nil
}

// Location returns the configured application time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
