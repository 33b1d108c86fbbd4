// Central package for mockresponse config.
package configs

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied to missing config values
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "TEXT"
	DefaultMaxIdle   = 16
)

// Config for the test harness.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Pool    PoolConfig    `yaml:"pool"`
}

// LoggingConfig selects level and format of the logrus standard logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PoolConfig configures the recorder pool.
// MaxIdle is the number of released recorders kept for reuse, 0 disables reuse.
type PoolConfig struct {
	MaxIdle *int `yaml:"max-idle"`
}

// Idle returns the configured number of idle recorders or the default.
func (p PoolConfig) Idle() int {
	if p.MaxIdle == nil {
		return DefaultMaxIdle
	}
	return *p.MaxIdle
}

// Default returns the configuration used if no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// ConfigLoader is the interface that wraps the functionality of loading the configuration.
//
// Load loads the configuration from a predefined source.
// It returns the loaded configuration and any error encountered that caused the Loader to stop early.
type ConfigLoader interface {
	Load() (*Config, error)
}

// ByteConfigLoader implements configs.ConfigLoader by loading config from a byte slice.
type ByteConfigLoader struct {
	ConfigBytes []byte
}

// Implementing Load from configs.ConfigLoader by using the properties of the ByteConfigLoader.
func (l ByteConfigLoader) Load() (*Config, error) {
	if l.ConfigBytes == nil {
		return nil, errors.Errorf("ConfigBytes must not be nil!")
	}

	result := Default()
	// Expand config with environment variables
	expanded := []byte(os.ExpandEnv(string(l.ConfigBytes)))
	if err := yaml.Unmarshal(expanded, result); err != nil {
		return nil, errors.Wrap(err, "Unable to parse config")
	}

	if err := result.validate(); err != nil {
		return nil, errors.Wrap(err, "Loaded invalid config")
	}
	return result, nil
}

// FileConfigLoader implements configs.ConfigLoader by loading config from
// a file located at the given path.
type FileConfigLoader struct {
	FilePath string
}

// Implementing Load from configs.ConfigLoader by using the properties of the FileConfigLoader.
func (l FileConfigLoader) Load() (*Config, error) {
	if l.FilePath == "" {
		return nil, errors.Errorf("FilePath must not be empty!")
	}

	configBytes, err := os.ReadFile(l.FilePath)
	if err != nil {
		return nil, err
	}
	return ByteConfigLoader{ConfigBytes: configBytes}.Load()
}

func (c *Config) validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return errors.Errorf("Unknown log level %q! Must be one of [DEBUG, INFO, WARN, ERROR]", c.Logging.Level)
	}
	switch strings.ToUpper(c.Logging.Format) {
	case "TEXT", "JSON":
	default:
		return errors.Errorf("Unknown log format %q! Must be one of [TEXT, JSON]", c.Logging.Format)
	}
	if c.Pool.MaxIdle != nil && *c.Pool.MaxIdle < 0 {
		return errors.Errorf("Pool max-idle must not be negative but was %d!", *c.Pool.MaxIdle)
	}
	return nil
}
