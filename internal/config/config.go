package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model: where the backend lives,
// where client state persists, and the knobs for polling and uploads.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Account       AccountConfig       `yaml:"account"`
	Storage       StorageConfig       `yaml:"storage"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Media         MediaConfig         `yaml:"media"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

type ServerConfig struct {
	// Base URL of the REST backend, e.g. http://localhost:8000
	BaseURL string `yaml:"baseURL"`
	// Requests per second and burst for the client-side limiter
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type AccountConfig struct {
	Username string `yaml:"username"`
}

type StorageConfig struct {
	// Path of the sqlite file holding the token, theme flag and event log
	DBPath string `yaml:"dbPath"`
}

type NotificationsConfig struct {
	// Unread-count poll interval; the panel itself is fetched lazily
	PollInterval time.Duration `yaml:"pollInterval"`
}

type MediaConfig struct {
	// Upload size cap in bytes; validation happens before submission
	MaxUploadBytes int64 `yaml:"maxUploadBytes"`
}

type MetricsConfig struct {
	// If set (e.g. ":9090"), a /metrics endpoint is served
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Server:        ServerConfig{BaseURL: "http://localhost:8000", RPS: 5, Burst: 10},
		Account:       AccountConfig{Username: ""},
		Storage:       StorageConfig{DBPath: "./warbler.db"},
		Notifications: NotificationsConfig{PollInterval: 30 * time.Second},
		Media:         MediaConfig{MaxUploadBytes: 10 << 20},
		Metrics:       MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = os.Getenv("WARBLER_SERVER_URL")
	}
	if c.Account.Username == "" {
		c.Account.Username = os.Getenv("WARBLER_USERNAME")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("WARBLER_METRICS_ADDR")
	}
	if c.Notifications.PollInterval <= 0 {
		c.Notifications.PollInterval = 30 * time.Second
	}
	if c.Media.MaxUploadBytes <= 0 {
		c.Media.MaxUploadBytes = 10 << 20
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
