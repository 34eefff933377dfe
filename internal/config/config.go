package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// CaseInsensitiveEnv disables case-sensitive matching when present, whatever its value.
	CaseInsensitiveEnv = "CASE_INSENSITIVE"
	logLevelEnv        = "MINIGREP_LOG_LEVEL"
	logFileEnv         = "MINIGREP_LOG_FILE"

	defaultLogLevel = "warn"
)

var validate = validator.New()

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
	LogLevel      string `validate:"oneof=debug info warn error"`
	LogFile       string
}

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	IgnoreCase *bool  `yaml:"ignore_case"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	IgnoreCase bool
	LogLevel   *string
	LogFile    *string
	Lookup     LookupFunc
}

// New builds a Config from the process arguments, where args[0] is the
// program name. Extra arguments after the filename are ignored.
func New(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrMissingArguments
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	_, insensitive := lookup(CaseInsensitiveEnv)

	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !insensitive,
		LogLevel:      defaultLogLevel,
	}, nil
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(args []string, overrides *CLIOverrides) (Config, error) {
	var lookup LookupFunc
	if overrides != nil {
		lookup = overrides.Lookup
	}

	cfg, err := New(args, lookup)
	if err != nil {
		return Config{}, err
	}

	applyEnvConfig(&cfg, lookup)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.IgnoreCase != nil {
		cfg.CaseSensitive = !*yamlCfg.IgnoreCase
	}

	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if file := strings.TrimSpace(yamlCfg.LogFile); file != "" {
		cfg.LogFile = file
	}
}

// applyEnvConfig applies the logging environment variables. CASE_INSENSITIVE
// is already handled by New.
func applyEnvConfig(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if level, ok := lookup(logLevelEnv); ok && strings.TrimSpace(level) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}

	if file, ok := lookup(logFileEnv); ok && strings.TrimSpace(file) != "" {
		cfg.LogFile = strings.TrimSpace(file)
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	// An unset --ignore-case leaves lower-precedence sources alone.
	if overrides.IgnoreCase {
		cfg.CaseSensitive = false
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}

	if overrides.LogFile != nil && *overrides.LogFile != "" {
		cfg.LogFile = *overrides.LogFile
	}
}

func validateConfig(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
