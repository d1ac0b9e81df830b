// Package config layers CLI flags, a config file, and PC3_-prefixed
// environment variables into a single immutable Config via
// github.com/spf13/viper, the pattern the teacher's own gallery-so
// cmd/userpref/main.go uses for its own cobra+viper wiring.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved, read-only program configuration passed
// down from cmd/pc3-recommend's root command to the rest of the
// program. No package below internal/config reaches back into viper.
type Config struct {
	InputFile string

	Workers   int
	K         int
	TopN      int
	LogLevel  string
	LogFormat string

	MetricsAddr string
}

const envPrefix = "PC3"

// Load resolves a Config from cobra flags, an optional config file, and
// PC3_-prefixed environment variables, in flag > env > file > default
// precedence order.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("k", 30)
	v.SetDefault("top-n", 0)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("metrics-addr", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return &Config{
		Workers:     v.GetInt("workers"),
		K:           v.GetInt("k"),
		TopN:        v.GetInt("top-n"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		MetricsAddr: v.GetString("metrics-addr"),
	}, nil
}
