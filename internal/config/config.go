package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the sentilex configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	NLP       NLPConfig       `yaml:"nlp"`
	ResultLog ResultLogConfig `yaml:"result_log"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
	MaxBodyBytes    int `yaml:"max_body_bytes"`
}

// LexiconConfig lists the dictionaries merged into the lexicon, in merge order.
type LexiconConfig struct {
	Dictionaries []DictionaryConfig `yaml:"dictionaries"`
	MatchOn      string             `yaml:"match_on"` // form (default), lemma
}

// DictionaryConfig names one dictionary file. Relative paths are resolved
// against the directory of the config file.
type DictionaryConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// NLPConfig selects the sentence splitter and POS tagger.
type NLPConfig struct {
	Engine string `yaml:"engine"` // prose (default), rules
}

// ResultLogConfig holds the result log sink settings.
type ResultLogConfig struct {
	Driver           string   `yaml:"driver"` // file (default), redis, sqlite, none
	Path             string   `yaml:"path"`   // file and sqlite
	Addrs            []string `yaml:"addrs"`  // redis
	Password         string   `yaml:"password"`
	Key              string   `yaml:"key"`
	MaxEntries       int64    `yaml:"max_entries"` // redis, 0 = unbounded
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.resolvePaths(filepath.Dir(configPath))
	return cfg, nil
}

// Parse decodes, defaults and validates configuration from YAML bytes.
// Relative paths are left as they are.
func Parse(data []byte) (Config, error) {
	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 3212
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	keys := c.Auth.APIKeys[:0]
	for _, k := range c.Auth.APIKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	c.Auth.APIKeys = keys
	if c.Lexicon.MatchOn == "" {
		c.Lexicon.MatchOn = "form"
	}
	if c.NLP.Engine == "" {
		c.NLP.Engine = "prose"
	}
	if c.ResultLog.Driver == "" {
		c.ResultLog.Driver = "file"
	}
	if c.ResultLog.Path == "" {
		switch c.ResultLog.Driver {
		case "file":
			c.ResultLog.Path = "results.txt"
		case "sqlite":
			c.ResultLog.Path = "sentilex.db"
		}
	}
	if c.ResultLog.Key == "" {
		c.ResultLog.Key = "sentilex:results"
	}
	if c.ResultLog.ReadinessTimeout <= 0 {
		c.ResultLog.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Lexicon.Dictionaries) == 0 {
		return fmt.Errorf("lexicon.dictionaries is required")
	}
	for i, d := range c.Lexicon.Dictionaries {
		if d.Path == "" {
			return fmt.Errorf("lexicon.dictionaries[%d].path is required", i)
		}
	}
	switch c.Lexicon.MatchOn {
	case "form", "lemma":
	default:
		return fmt.Errorf("lexicon.match_on must be \"form\" or \"lemma\", got %q", c.Lexicon.MatchOn)
	}
	switch c.NLP.Engine {
	case "prose", "rules":
	default:
		return fmt.Errorf("nlp.engine must be \"prose\" or \"rules\", got %q", c.NLP.Engine)
	}
	switch c.ResultLog.Driver {
	case "file", "sqlite", "none":
	case "redis":
		if len(c.ResultLog.Addrs) == 0 {
			return fmt.Errorf("result_log.addrs is required for the redis driver")
		}
	default:
		return fmt.Errorf("result_log.driver must be one of file, redis, sqlite, none, got %q", c.ResultLog.Driver)
	}
	if c.ResultLog.MaxEntries < 0 {
		return fmt.Errorf("result_log.max_entries must not be negative, got %d", c.ResultLog.MaxEntries)
	}
	return nil
}

// resolvePaths makes relative file paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	for i := range c.Lexicon.Dictionaries {
		c.Lexicon.Dictionaries[i].Path = resolve(dir, c.Lexicon.Dictionaries[i].Path)
	}
	if c.ResultLog.Path != "" {
		c.ResultLog.Path = resolve(dir, c.ResultLog.Path)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
