// Package config loads the YAML application configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lexsim/internal/weighting"
)

// CorpusConfig points at the corpus CSV and the vocabulary file.
type CorpusConfig struct {
	Path      string `yaml:"path"`
	VocabPath string `yaml:"vocab_path"`
}

// WeightingConfig carries the matrix weighting parameters.
type WeightingConfig struct {
	WindowSize int     `yaml:"window_size"` // context radius in tokens
	Epsilon    float64 `yaml:"epsilon"`     // idf zero-guard
}

// QueryConfig sets the defaults for similarity queries.
type QueryConfig struct {
	Metric string `yaml:"metric"`
	TopK   int    `yaml:"top_k"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Weighting WeightingConfig `yaml:"weighting"`
	Query     QueryConfig     `yaml:"query"`
	LogLevel  string          `yaml:"log_level"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/lexsim/config.yaml.
// If neither exists, it writes defaults to ~/.config/lexsim/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lexsim", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = "will_play_text.csv"
	}
	if cfg.Corpus.VocabPath == "" {
		cfg.Corpus.VocabPath = "vocab.txt"
	}
	if cfg.Weighting.WindowSize <= 0 {
		cfg.Weighting.WindowSize = 4
	}
	if cfg.Weighting.Epsilon <= 0 {
		cfg.Weighting.Epsilon = weighting.DefaultEpsilon
	}
	if cfg.Query.Metric == "" {
		cfg.Query.Metric = "cosine"
	}
	if cfg.Query.TopK <= 0 {
		cfg.Query.TopK = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
