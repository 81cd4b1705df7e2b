package meta

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"othello/searcher"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one decision. Values are layered: defaults,
// then the YAML file, then OTHELLO_* environment variables, then flags.
type Config struct {
	Duration    time.Duration `yaml:"duration"`
	Episodes    int           `yaml:"episodes"`
	Exploration float64       `yaml:"exploration"`
	// Seed fixes the rollout random source. Zero seeds from the clock.
	Seed      uint64 `yaml:"seed"`
	StatsFile string `yaml:"stats_file"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func Default() Config {
	return Config{
		Duration:    DURATION,
		Episodes:    EPISODES,
		Exploration: EXPLORATION,
		LogLevel:    LOG_LEVEL,
		LogFormat:   LOG_FORMAT,
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides the fields whose OTHELLO_* variable is set. Unparsable
// values are ignored.
func (c *Config) ApplyEnv() {
	c.Duration = getEnvDurationOrDefault(ENV_PREFIX+"DURATION", c.Duration)
	c.Episodes = getEnvIntOrDefault(ENV_PREFIX+"EPISODES", c.Episodes)
	c.Exploration = getEnvFloatOrDefault(ENV_PREFIX+"EXPLORATION", c.Exploration)
	c.Seed = getEnvUintOrDefault(ENV_PREFIX+"SEED", c.Seed)
	c.StatsFile = getEnvOrDefault(ENV_PREFIX+"STATS", c.StatsFile)
	c.LogLevel = getEnvOrDefault(ENV_PREFIX+"LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault(ENV_PREFIX+"LOG_FORMAT", c.LogFormat)
}

func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, c.Duration)
	}
	if c.Episodes < 0 {
		return fmt.Errorf("%w: episodes must not be negative, got %d", ErrInvalidConfig, c.Episodes)
	}
	if c.Exploration < 0 {
		return fmt.Errorf("%w: exploration must not be negative, got %g", ErrInvalidConfig, c.Exploration)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Options translates the config into searcher options.
func (c Config) Options() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDuration(c.Duration),
		searcher.WithExploration(c.Exploration),
		searcher.WithMetrics(),
	}
	if c.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(c.Episodes))
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed))
	}
	return options
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUintOrDefault(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		var u uint64
		if _, err := fmt.Sscanf(val, "%d", &u); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		var f float64
		if _, err := fmt.Sscanf(val, "%g", &f); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
