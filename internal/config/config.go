// Package config provides configuration loading and structs for the resumecua tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	NER     NERConfig     `yaml:"ner"`
	Parse   ParseConfig   `yaml:"parse"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// MaxUploadFiles caps the number of files per parse request.
	MaxUploadFiles int `yaml:"max_upload_files"`
	// MaxUploadBytes caps the size of each uploaded file.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// RequestTimeout is a Go duration string, e.g. "60s".
	RequestTimeout string `yaml:"request_timeout"`
}

// StorageConfig holds paths for the candidate database and search index.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
	IndexPath    string `yaml:"index_path"`
}

// NERConfig describes the optional token classification model.
type NERConfig struct {
	Enabled    bool     `yaml:"enabled"`
	ModelPath  string   `yaml:"model_path"`
	VocabPath  string   `yaml:"vocab_path"`
	Labels     []string `yaml:"labels"`
	MaxTokens  int      `yaml:"max_tokens"`
	Lowercase  bool     `yaml:"lowercase"`
	OutputName string   `yaml:"output_name"`
	CacheSize  int      `yaml:"cache_size"`
}

// ParseConfig holds batch parsing settings.
type ParseConfig struct {
	Workers        int      `yaml:"workers"`
	Extensions     []string `yaml:"extensions"`
	Keywords       []string `yaml:"keywords"`
	UseNER         bool     `yaml:"use_ner"`
	IncludeDetails bool     `yaml:"include_details"`
}

// WatchConfig holds inbox watch settings.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Recursive   *bool    `yaml:"recursive"`
	// Store persists parsed candidates to the database and index.
	Store *bool `yaml:"store"`
}

// RecursiveOrDefault returns whether to watch recursively; defaults to true when unset.
func (w *WatchConfig) RecursiveOrDefault() bool {
	if w.Recursive != nil {
		return *w.Recursive
	}
	return true
}

// StoreOrDefault returns whether watched resumes are stored; defaults to true when unset.
func (w *WatchConfig) StoreOrDefault() bool {
	if w.Store != nil {
		return *w.Store
	}
	return true
}

// Default returns a config with every default applied, for runs without a config file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Storage.IndexPath = expandPath(cfg.Storage.IndexPath, configDir)
	if cfg.NER.ModelPath != "" {
		cfg.NER.ModelPath = expandPath(cfg.NER.ModelPath, configDir)
	}
	if cfg.NER.VocabPath != "" {
		cfg.NER.VocabPath = expandPath(cfg.NER.VocabPath, configDir)
	}
	for i := range cfg.Watch.Directories {
		cfg.Watch.Directories[i] = expandPath(cfg.Watch.Directories[i], configDir)
	}

	return &cfg, nil
}

// IsNotExist reports whether err came from a missing config file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Save writes the config to path. The init command uses it to write the defaults.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
