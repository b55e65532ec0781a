package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
)

type Config struct {
	Port          string
	LogLevel      string
	LocalTimezone string
	GraphCellSize int
	GitHub        GitHubConfig
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration from v, which callers may have bound to flags.
func LoadFrom(v *viper.Viper) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	setDefaults(v)
	v.AutomaticEnv()

	timeout := v.GetDuration("GITHUB_REQUEST_TIMEOUT")
	if timeout <= 0 {
		return nil, errors.NewConfigError("GITHUB_REQUEST_TIMEOUT", "must be a positive duration such as 10s")
	}

	return &Config{
		Port:          v.GetString("PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LocalTimezone: v.GetString("LOCAL_TIMEZONE"),
		GraphCellSize: v.GetInt("GRAPH_CELL_SIZE"),
		GitHub: GitHubConfig{
			Token:          v.GetString("GITHUB_TOKEN"),
			APIBaseURL:     v.GetString("GITHUB_API_URL"),
			RequestTimeout: timeout,
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultGitHubConfig()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOCAL_TIMEZONE", "")
	v.SetDefault("GRAPH_CELL_SIZE", 24)
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("GITHUB_API_URL", defaults.APIBaseURL)
	v.SetDefault("GITHUB_REQUEST_TIMEOUT", defaults.RequestTimeout)
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return errors.NewConfigError("GITHUB_TOKEN", "GitHub token is required")
	}
	if c.GraphCellSize <= 0 {
		return errors.NewConfigError("GRAPH_CELL_SIZE", "must be positive")
	}
	return nil
}

// RequestTimeout is a convenience accessor for the upstream timeout.
func (c *Config) RequestTimeout() time.Duration {
	return c.GitHub.RequestTimeout
}
