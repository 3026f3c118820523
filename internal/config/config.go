// Package config provides configuration loading and validation for EasyHosts.
//
// Configuration comes from an optional YAML file, then environment variable
// overrides, then Validate, which fills defaults and parses durations.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "EASYHOSTS_CONFIG"

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "easyhosts.db"},
		API: APIConfig{
			Enabled: true,
			Host:    "127.0.0.1",
			Port:    8787,
		},
		Remote: RemoteConfig{
			TimeoutRaw: "30s",
			MaxBytes:   8 << 20,
		},
		SSID: SSIDConfig{
			PollIntervalRaw: "30s",
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// ResolveConfigPath returns the flag value if set, else EASYHOSTS_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads the YAML file at path (if non-empty), applies environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("EASYHOSTS_HOSTS_PATH"); ok {
		cfg.Hosts.Path = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_BACKUP_DIR"); ok {
		cfg.Hosts.BackupDir = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_AUTO_FLUSH_DNS"); ok {
		cfg.Hosts.AutoFlushDNS = envBool(v, cfg.Hosts.AutoFlushDNS)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_DB_PATH"); ok && strings.TrimSpace(v) != "" {
		cfg.Database.Path = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_API_HOST"); ok && strings.TrimSpace(v) != "" {
		cfg.API.Host = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_API_PORT"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.API.Port = n
		}
	}
	if v, ok := os.LookupEnv("EASYHOSTS_API_KEY"); ok {
		cfg.API.APIKey = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("EASYHOSTS_SSID_AUTO_SWITCH"); ok {
		cfg.SSID.AutoSwitch = envBool(v, cfg.SSID.AutoSwitch)
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && strings.TrimSpace(v) != "" {
		cfg.Logging.Level = strings.TrimSpace(v)
	}
}

// envBool interprets common truthy/falsy spellings, falling back to def.
func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Enabled {
		// 0 asks the kernel for a free port.
		if cfg.API.Port < 0 || cfg.API.Port > 65535 {
			return errors.New("api.port must be 0..65535")
		}
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "easyhosts.db"
	}

	// Normalize remote fetching
	if cfg.Remote.TimeoutRaw == "" {
		cfg.Remote.TimeoutRaw = "30s"
	}
	timeout, err := time.ParseDuration(cfg.Remote.TimeoutRaw)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("remote.timeout must be a positive duration, got %q", cfg.Remote.TimeoutRaw)
	}
	cfg.Remote.Timeout = timeout
	if cfg.Remote.MaxBytes <= 0 {
		cfg.Remote.MaxBytes = 8 << 20
	}

	// Normalize SSID polling
	if cfg.SSID.PollIntervalRaw == "" {
		cfg.SSID.PollIntervalRaw = "30s"
	}
	interval, err := time.ParseDuration(cfg.SSID.PollIntervalRaw)
	if err != nil || interval < time.Second {
		return fmt.Errorf("ssid.poll_interval must be at least 1s, got %q", cfg.SSID.PollIntervalRaw)
	}
	cfg.SSID.PollInterval = interval

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
