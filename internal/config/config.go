package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "JAUNDICE_CONFIG"
	httpAddrEnv       = "JAUNDICE_HTTP_ADDR"
	logLevelEnv       = "JAUNDICE_LOG_LEVEL"
	chargedFilesEnv   = "JAUNDICE_CHARGED_FILES"
	morphDictEnv      = "JAUNDICE_MORPH_DICTIONARY"
	fetchTimeoutEnv   = "JAUNDICE_FETCH_TIMEOUT"
	splitTimeoutEnv   = "JAUNDICE_SPLIT_TIMEOUT"
	defaultJobTimeout = 3 * time.Second
	defaultMaxURLs    = 10
)

// Config holds high-level settings required across the application.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Charged  ChargedConfig  `yaml:"charged"`
	Morph    MorphConfig    `yaml:"morph"`
	Sites    []SiteConfig   `yaml:"sites"`
}

// HTTPConfig describes the request surface.
type HTTPConfig struct {
	Addr    string `yaml:"addr"`
	MaxURLs int    `yaml:"maxUrls"`
}

// LoggingConfig selects the slog level and output format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AnalysisConfig holds per-job budgets. Fetch and split budgets are independent.
type AnalysisConfig struct {
	FetchTimeout Duration `yaml:"fetchTimeout"`
	SplitTimeout Duration `yaml:"splitTimeout"`
	UserAgent    string   `yaml:"userAgent"`
}

// ChargedConfig lists newline separated vocabulary files.
type ChargedConfig struct {
	Files []string `yaml:"files"`
}

// MorphConfig points to an optional form→lemma dictionary.
type MorphConfig struct {
	Dictionary string `yaml:"dictionary"`
}

// SiteConfig binds hosts to an extractor strategy.
type SiteConfig struct {
	Name      string            `yaml:"name"`
	Hosts     []string          `yaml:"hosts"`
	Extractor string            `yaml:"extractor"`
	Options   map[string]string `yaml:"options"`
}

// Duration decodes Go duration strings ("3s", "250ms") from YAML.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		fileCfg, err := ReadFile(path)
		if err != nil {
			log.Printf("config: %v (falling back to defaults)", err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

// ReadFile parses a YAML config file without applying defaults.
func ReadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return fileCfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(chargedFilesEnv); v != "" {
		c.Charged.Files = splitList(v)
	}

	if v := os.Getenv(morphDictEnv); v != "" {
		c.Morph.Dictionary = v
	}

	if v := os.Getenv(fetchTimeoutEnv); v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			log.Printf("config: invalid %s=%q: %v", fetchTimeoutEnv, v, err)
		} else {
			c.Analysis.FetchTimeout.Duration = d
		}
	}

	if v := os.Getenv(splitTimeoutEnv); v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			log.Printf("config: invalid %s=%q: %v", splitTimeoutEnv, v, err)
		} else {
			c.Analysis.SplitTimeout.Duration = d
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.HTTP.Addr != "" {
		base.HTTP.Addr = override.HTTP.Addr
	}
	if override.HTTP.MaxURLs > 0 {
		base.HTTP.MaxURLs = override.HTTP.MaxURLs
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Analysis.FetchTimeout.Duration > 0 {
		base.Analysis.FetchTimeout = override.Analysis.FetchTimeout
	}
	if override.Analysis.SplitTimeout.Duration > 0 {
		base.Analysis.SplitTimeout = override.Analysis.SplitTimeout
	}
	if override.Analysis.UserAgent != "" {
		base.Analysis.UserAgent = override.Analysis.UserAgent
	}

	if len(override.Charged.Files) > 0 {
		base.Charged.Files = override.Charged.Files
	}

	if override.Morph.Dictionary != "" {
		base.Morph.Dictionary = override.Morph.Dictionary
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func defaultConfig() Config {
	return Config{
		HTTP:    HTTPConfig{Addr: ":8080", MaxURLs: defaultMaxURLs},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Analysis: AnalysisConfig{
			FetchTimeout: Duration{defaultJobTimeout},
			SplitTimeout: Duration{defaultJobTimeout},
			UserAgent:    "JaundiceAnalyzer/1.0",
		},
		Charged: ChargedConfig{
			Files: []string{
				"charged_dict/negative_words.txt",
				"charged_dict/positive_words.txt",
			},
		},
		Morph: MorphConfig{Dictionary: "charged_dict/lemmas.tsv"},
		Sites: []SiteConfig{
			{
				Name:      "inosmi",
				Hosts:     []string{"inosmi.ru"},
				Extractor: "inosmi",
			},
		},
	}
}
