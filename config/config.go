package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the pratika tool.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Rank    RankConfig    `yaml:"rank"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the recognized search options.
type SearchConfig struct {
	CaseSensitive bool `yaml:"case_sensitive"`
	ContextLength int  `yaml:"context_length"`
	EnableSandhi  bool `yaml:"enable_sandhi"`
	MaxResults    int  `yaml:"max_results"`
}

// CorpusConfig holds corpus walking configuration.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// RankConfig holds BM25 parameters for document ranking.
type RankConfig struct {
	K1 float64 `yaml:"k1"`
	B  float64 `yaml:"b"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			CaseSensitive: false,
			ContextLength: 50,
			EnableSandhi:  true,
			MaxResults:    100,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.pratika/**"},
		},
		Rank: RankConfig{
			K1: 1.2,
			B:  0.75,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, applying defaults for
// anything unset. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory, looking for
// pratika.yaml, then .pratika/config.yaml, then falling back to
// defaults.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "pratika.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	path = filepath.Join(dir, ".pratika", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the index database under dir.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".pratika", "index.db")
}

// EnsureDir ensures the .pratika directory exists under dir.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".pratika"), 0755)
}
