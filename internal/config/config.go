package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Geofence GeofenceConfig
	Shift    ShiftConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int      `env:"APP_PORT" envDefault:"8080"`
	Env         string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME" envDefault:"cmlabs-hris"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns        int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET_KEY"`
	AccessTTL time.Duration `env:"JWT_ACCESS_EXPIRATION_TIME" envDefault:"1h"`
}

// RedisConfig is optional; an empty Addr disables the office location cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	Prefix   string        `env:"REDIS_PREFIX" envDefault:"hris"`
	TTL      time.Duration `env:"REDIS_OFFICE_TTL" envDefault:"10m"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type GeofenceConfig struct {
	DefaultRadiusMeters float64 `env:"GEOFENCE_DEFAULT_RADIUS_METERS" envDefault:"200"`
}

// ShiftConfig carries the raw shift policy settings. PolicyFile, when set,
// points to a YAML document whose fields override the environment.
type ShiftConfig struct {
	Start                 string  `env:"SHIFT_START" envDefault:"09:00" yaml:"shift_start"`
	End                   string  `env:"SHIFT_END" envDefault:"17:00" yaml:"shift_end"`
	LateToleranceMinutes  int     `env:"SHIFT_LATE_TOLERANCE_MINUTES" envDefault:"15" yaml:"late_tolerance_minutes"`
	EarlyToleranceMinutes int     `env:"SHIFT_EARLY_TOLERANCE_MINUTES" envDefault:"15" yaml:"early_tolerance_minutes"`
	NormalWorkHoursPerDay float64 `env:"SHIFT_NORMAL_WORK_HOURS" envDefault:"8" yaml:"normal_work_hours_per_day"`
	Timezone              string  `env:"SHIFT_TIMEZONE" envDefault:"Asia/Jakarta" yaml:"timezone"`
	PolicyFile            string  `env:"SHIFT_POLICY_FILE" yaml:"-"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("cannot load .env file, using environment variables", "error", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if config.Shift.PolicyFile != "" {
		if err := config.Shift.applyFile(config.Shift.PolicyFile); err != nil {
			return nil, err
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// applyFile overlays the YAML document at path onto s. Keys absent from the
// document keep their environment values.
func (s *ShiftConfig) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read shift policy file: %w", err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("parse shift policy file: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Geofence.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_DEFAULT_RADIUS_METERS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if _, err := c.ShiftPolicy(); err != nil {
		return err
	}
	return nil
}

// ShiftPolicy builds the validated policy handed to the attendance service.
func (c *Config) ShiftPolicy() (attendance.ShiftPolicy, error) {
	start, err := attendance.ParseClockTime(c.Shift.Start)
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("SHIFT_START: %w", err)
	}
	end, err := attendance.ParseClockTime(c.Shift.End)
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("SHIFT_END: %w", err)
	}
	loc, err := time.LoadLocation(c.Shift.Timezone)
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("SHIFT_TIMEZONE: %w", err)
	}

	policy := attendance.ShiftPolicy{
		ShiftStart:            start,
		ShiftEnd:              end,
		LateToleranceMinutes:  c.Shift.LateToleranceMinutes,
		EarlyToleranceMinutes: c.Shift.EarlyToleranceMinutes,
		NormalWorkHoursPerDay: c.Shift.NormalWorkHoursPerDay,
		Location:              loc,
	}
	if err := policy.Validate(); err != nil {
		return attendance.ShiftPolicy{}, errors.Join(errors.New("invalid shift policy"), err)
	}
	return policy, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
