package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from path (optional; missing files fall back to
// defaults) and from LINKSCOPE_-prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		_ = v.ReadInConfig()
	}

	v.SetDefault("app.name", "linkscope")
	v.SetDefault("app.env", "dev")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.graceful_timeout", "15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("history.limit", 20)

	v.SetDefault("scorer.header_verdict", "pass")
	v.SetDefault("scorer.simulated_latency", "0s")

	v.SetEnvPrefix("LINKSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Scorer.HeaderVerdict != "pass" && cfg.Scorer.HeaderVerdict != "fail" {
		return nil, fmt.Errorf("config: header_verdict must be \"pass\" or \"fail\", got %q", cfg.Scorer.HeaderVerdict)
	}
	if cfg.History.Limit < 1 {
		return nil, fmt.Errorf("config: history.limit must be positive, got %d", cfg.History.Limit)
	}
	return &cfg, nil
}
