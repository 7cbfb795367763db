package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML config file.
const ConfigFileEnv = "ROI_CONFIG_FILE"

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort         string `koanf:"http_port"`
	LogLevel         string `koanf:"log_level"`
	OperatorWorkers  int    `koanf:"operator_workers"`
	DefaultTimeFrame int    `koanf:"default_time_frame"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres_address":   "localhost",
	"postgres_port":      "5433",
	"postgres_db":        "postgres",
	"postgres_username":  "postgres",
	"postgres_password":  "testpassword",
	"http_port":          "9446",
	"log_level":          "info",
	"operator_workers":   4,
	"default_time_frame": 12,
}

// ProcessEnvironmentVariables loads the defaults, then the optional YAML file
// named by ROI_CONFIG_FILE, then environment variables, and validates the result.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(name string, value string) (string, interface{}) {
		key := strings.ToLower(name)
		if _, ok := defaults[key]; !ok || value == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http_port %q: must be between 1 and 65535", c.HTTPPort))
	}
	if port, err := strconv.Atoi(c.PostgresPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid postgres_port %q: must be between 1 and 65535", c.PostgresPort))
	}
	if c.PostgresAddress == "" {
		errs = append(errs, errors.New("postgres_address cannot be empty"))
	}
	if c.PostgresDB == "" {
		errs = append(errs, errors.New("postgres_db cannot be empty"))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("invalid operator_workers %d: must be at least 1", c.OperatorWorkers))
	}
	if c.DefaultTimeFrame < 1 {
		errs = append(errs, fmt.Errorf("invalid default_time_frame %d: must be at least 1", c.DefaultTimeFrame))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level: %w", err))
	}

	return errors.Join(errs...)
}

// PostgresDSN returns the connection URL for the configured database.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
