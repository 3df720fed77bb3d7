package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SourceConfig holds the connection parameters of a single source
type SourceConfig struct {
	ParseURL      string  `yaml:"parse_url"`
	IsActive      bool    `yaml:"is_active"`
	SecretKey     string  `yaml:"secret_key"`
	Version       string  `yaml:"version"`
	AccessToken   string  `yaml:"access_token"`
	CookiesFile   string  `yaml:"cookies_file"`
	UserAgent     string  `yaml:"user_agent"`
	Query         string  `yaml:"query"`
	Area          string  `yaml:"area"`
	Town          string  `yaml:"town"`
	PageSize      int     `yaml:"page_size"`
	MaxItems      int     `yaml:"max_items"`
	RatePerSecond float64 `yaml:"rate_per_second"`
}

// Config is the parsed sources file
type Config struct {
	UserAgent string                  `yaml:"user_agent"`
	Sources   map[Source]SourceConfig `yaml:"sources"`
}

// LoadConfig reads a sources file, expanding ${VAR} references from the environment
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes a sources document. Unknown fields and unknown source
// names are rejected.
func ParseConfig(raw []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(raw))

	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode sources config: %w", err)
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	for name, sc := range cfg.Sources {
		if _, ok := factories[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		if sc.ParseURL == "" {
			return nil, fmt.Errorf("%w: %s.parse_url", ErrMissingOption, name)
		}
		if sc.UserAgent == "" {
			sc.UserAgent = cfg.UserAgent
			cfg.Sources[name] = sc
		}
	}

	return &cfg, nil
}

// Names returns the configured source names in lexical order
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
