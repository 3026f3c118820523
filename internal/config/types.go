package config

import "time"

// HostsConfig locates the hosts file and controls what happens after writes.
type HostsConfig struct {
	// Path is the hosts file. Empty selects the platform default.
	Path string `yaml:"path" json:"path"`
	// BackupDir holds hosts.bak_* files. Empty means the hosts file's directory.
	BackupDir string `yaml:"backup_dir" json:"backup_dir"`
	// AutoFlushDNS flushes the OS resolver cache after every successful save.
	AutoFlushDNS bool `yaml:"auto_flush_dns" json:"auto_flush_dns"`
}

// DatabaseConfig points at the SQLite file holding profiles and sources.
type DatabaseConfig struct {
	Path string `yaml:"path" json:"path"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is treated as a secret and is never returned by API endpoints.
type APIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	APIKey  string `yaml:"api_key" json:"api_key,omitempty"`
}

// RemoteConfig controls fetching of remote hosts sources.
type RemoteConfig struct {
	TimeoutRaw string        `yaml:"timeout" json:"timeout"` // e.g. "30s"
	Timeout    time.Duration `yaml:"-" json:"-"`
	MaxBytes   int64         `yaml:"max_bytes" json:"max_bytes"`
}

// SSIDConfig controls automatic profile switching by Wi-Fi network.
type SSIDConfig struct {
	AutoSwitch      bool          `yaml:"auto_switch" json:"auto_switch"`
	PollIntervalRaw string        `yaml:"poll_interval" json:"poll_interval"`
	PollInterval    time.Duration `yaml:"-" json:"-"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields" json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Hosts    HostsConfig    `yaml:"hosts" json:"hosts"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	API      APIConfig      `yaml:"api" json:"api"`
	Remote   RemoteConfig   `yaml:"remote" json:"remote"`
	SSID     SSIDConfig     `yaml:"ssid" json:"ssid"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}
