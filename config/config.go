// Package config loads cosmoskeyd settings.
//
// Values come from (lowest to highest precedence) built-in defaults, an
// optional config file (any format viper reads: yaml, json, toml) and
// COSMOSKEYD_* environment variables, e.g. COSMOSKEYD_LISTEN or
// COSMOSKEYD_LOG_LEVEL.
//
// Example:
//
//	listen: 127.0.0.1:7788
//	log_level: debug
//	log_format: json
//	max_msg_bytes: 65536
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "COSMOSKEYD"

const (
	DefaultListen    = "127.0.0.1:7788"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

type Config struct {
	Listen      string `mapstructure:"listen"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	MaxMsgBytes int    `mapstructure:"max_msg_bytes"`
}

// New returns a viper instance with defaults and env bindings installed.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("max_msg_bytes", 0)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if non-empty) into v and returns the validated Config.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("config: listen address is required")
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("config: invalid listen address %q: %w", c.Listen, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log_format %q", c.LogFormat)
	}
	if c.MaxMsgBytes < 0 {
		return fmt.Errorf("config: max_msg_bytes must be >= 0, got %d", c.MaxMsgBytes)
	}
	return nil
}

// Logger builds a logrus logger per the logging settings. Validate first.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
