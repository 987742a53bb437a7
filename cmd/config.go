package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/jobs"
	"restaurant/internal/pkg/errs"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const maxCapacity = 10_000

// Config holds every setting of the server and the console clients.
// Precedence, lowest first: defaults, the YAML file, .env, process env.
type Config struct {
	GRPCPort string `yaml:"grpc_port"`
	HTTPPort string `yaml:"http_port"`

	QueueCapacity    int           `yaml:"queue_capacity"`
	VehicleCapacity  int           `yaml:"vehicle_capacity"`
	DeliveryTimeUnit time.Duration `yaml:"delivery_time_unit"`
	LeaseGrace       time.Duration `yaml:"lease_grace"`

	StaleSweepSpec string  `yaml:"stale_sweep_spec"`
	StatsSpec      string  `yaml:"stats_spec"`
	IntakeRate     float64 `yaml:"intake_rate"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ServerAddress string `yaml:"server_address"`
}

func DefaultConfig() Config {
	return Config{
		GRPCPort:         "5000",
		HTTPPort:         "8080",
		QueueCapacity:    10,
		VehicleCapacity:  2,
		DeliveryTimeUnit: time.Second,
		LeaseGrace:       30 * time.Second,
		StaleSweepSpec:   jobs.DefaultStaleSweepSpec,
		StatsSpec:        jobs.DefaultStatsSpec,
		IntakeRate:       20,
		DBPort:           "5432",
		DBSslMode:        "disable",
		LogLevel:         "info",
		LogFormat:        "text",
		ServerAddress:    "localhost:5000",
	}
}

// LoadConfig reads .env from the working directory when present and builds
// the configuration from configPath (may be empty) and the process env.
func LoadConfig(configPath string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadConfigFrom(configPath, os.LookupEnv)
}

// LoadConfigFrom builds the configuration from configPath and lookup.
func LoadConfigFrom(configPath string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		*dst = n
		return nil
	}
	duration := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		*dst = d
		return nil
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		*dst = f
		return nil
	}

	str("GRPC_PORT", &c.GRPCPort)
	str("HTTP_PORT", &c.HTTPPort)
	str("STALE_SWEEP_SPEC", &c.StaleSweepSpec)
	str("STATS_SPEC", &c.StatsSpec)
	str("DB_HOST", &c.DBHost)
	str("DB_PORT", &c.DBPort)
	str("DB_USER", &c.DBUser)
	str("DB_PASSWORD", &c.DBPassword)
	str("DB_NAME", &c.DBName)
	str("DB_SSLMODE", &c.DBSslMode)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("SERVER_ADDRESS", &c.ServerAddress)

	return errors.Join(
		integer("QUEUE_CAPACITY", &c.QueueCapacity),
		integer("VEHICLE_CAPACITY", &c.VehicleCapacity),
		duration("DELIVERY_TIME_UNIT", &c.DeliveryTimeUnit),
		duration("LEASE_GRACE", &c.LeaseGrace),
		float("INTAKE_RATE", &c.IntakeRate),
	)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	if c.QueueCapacity < 1 || c.QueueCapacity > maxCapacity {
		problems = append(problems, errs.NewValueIsOutOfRangeError("queue capacity", c.QueueCapacity, 1, maxCapacity))
	}
	if c.VehicleCapacity < 1 || c.VehicleCapacity > maxCapacity {
		problems = append(problems, errs.NewValueIsOutOfRangeError("vehicle capacity", c.VehicleCapacity, 1, maxCapacity))
	}
	if c.DeliveryTimeUnit <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("delivery time unit must be positive"))
	}
	if c.LeaseGrace < 0 {
		problems = append(problems, errs.NewValueIsInvalidError("lease grace must not be negative"))
	}
	if c.IntakeRate < 0 {
		problems = append(problems, errs.NewValueIsInvalidError("intake rate must not be negative"))
	}
	for name, port := range map[string]string{"grpc port": c.GRPCPort, "http port": c.HTTPPort} {
		if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(name, port, 1, 65535))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("log format",
			fmt.Errorf("%q is neither text nor json", c.LogFormat)))
	}

	return errors.Join(problems...)
}

// JournalInDatabase tells whether delivery events go to PostgreSQL.
func (c Config) JournalInDatabase() bool {
	return c.DBHost != ""
}

// DSN is the PostgreSQL connection string of the journal.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
