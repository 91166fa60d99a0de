// Package config loads tinyc settings from a TOML or YAML file.
//
// The format is picked from the file extension: .toml, .yaml or .yml.
// Missing keys keep their defaults, which reproduce the reference grammar
// exactly (no strict checks, info-level text logging).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/metaphox/tinyc/lexer"
	"github.com/metaphox/tinyc/parser"
)

// EnvPath names the environment variable consulted by LoadFromEnv.
const EnvPath = "TINYC_CONFIG"

// Config holds the complete tool configuration.
type Config struct {
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// LexerConfig holds lexer strictness switches.
type LexerConfig struct {
	StrictCharLiterals bool `toml:"strict_char_literals" yaml:"strict_char_literals"`
}

// ParserConfig holds parser strictness switches.
type ParserConfig struct {
	StrictPutc bool `toml:"strict_putc" yaml:"strict_putc"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by TINYC_CONFIG, or returns Default when
// the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate rejects unknown log levels and formats.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// LexerOptions converts the lexer section into lexer options.
func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{StrictCharLiterals: c.Lexer.StrictCharLiterals}
}

// ParserOptions converts the parser section into parser options.
// The logger is left for the caller to attach.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{StrictPutc: c.Parser.StrictPutc}
}
