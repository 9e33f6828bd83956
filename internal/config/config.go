package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Suggest SuggestConfig `mapstructure:"suggest"`
}

// ServerConfig holds HTTP server settings for `analyzer serve`.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	RateLimit    float64       `mapstructure:"rate_limit"`
	RateBurst    int           `mapstructure:"rate_burst"`
}

// ScanConfig holds scan-side settings.
type ScanConfig struct {
	CheckRobots bool `mapstructure:"check_robots"`
}

// SuggestConfig holds generative-provider credentials. Absent credentials
// simply skip that provider; the local fallback needs nothing.
type SuggestConfig struct {
	HFToken     string `mapstructure:"hf_token"`
	HFModel     string `mapstructure:"hf_model"`
	OpenAIKey   string `mapstructure:"openai_key"`
	OpenAIModel string `mapstructure:"openai_model"`
}

// Load reads configuration from file (optional) and environment.
func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.accessibility-analyzer")
	}

	setDefaults()
	bindEnvVars()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env carry the load.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "120s")
	viper.SetDefault("server.rate_limit", 1.0)
	viper.SetDefault("server.rate_burst", 5)

	viper.SetDefault("scan.check_robots", true)

	viper.SetDefault("suggest.hf_model", "gpt2")
	viper.SetDefault("suggest.openai_model", "gpt-4o-mini")
}

func bindEnvVars() {
	viper.SetEnvPrefix("ANALYZER")
	viper.AutomaticEnv()

	viper.BindEnv("suggest.hf_token", "HF_API_TOKEN")
	viper.BindEnv("suggest.hf_model", "HF_MODEL")
	viper.BindEnv("suggest.openai_key", "OPENAI_API_KEY")
	viper.BindEnv("suggest.openai_model", "AI_MODEL")
}

// Validate checks ranges on the values the server actually relies on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535]")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be positive")
	}
	return nil
}
