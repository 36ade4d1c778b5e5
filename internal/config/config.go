// Package config loads the daemon configuration from an optional YAML file
// with environment-variable overrides layered on top.
package config

import "time"

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	History HistoryConfig `mapstructure:"history"`
	Scorer  ScorerConfig  `mapstructure:"scorer"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type HistoryConfig struct {
	Limit int `mapstructure:"limit"`
}

type ScorerConfig struct {
	// HeaderVerdict is "pass" or "fail"; it fixes the security-headers
	// rule since no real header inspection happens.
	HeaderVerdict string `mapstructure:"header_verdict"`

	// SimulatedLatency delays each scan to mimic a remote inspection.
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
}
