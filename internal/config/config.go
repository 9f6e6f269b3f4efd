// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the settings of the hwgen command.
//
// Settings are read, by order of precedence, from command line flags,
// HWGEN_* environment variables, a config file and built-in defaults.
//
package config

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the base name of the config file looked up in the working
	// directory when no explicit path is given.
	FileName = "hwgen"
	// EnvPrefix prefixes environment variable names.
	EnvPrefix = "HWGEN"
)

// Config holds the settings of a generation run.
//
type Config struct {
	OutputDir string `mapstructure:"output_dir"`
	Top       string `mapstructure:"top"`
	Unchecked bool   `mapstructure:"unchecked"`
	Jobs      int    `mapstructure:"jobs"`
	LogLevel  string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
//
func Default() Config {
	return Config{
		OutputDir: "out",
		Top:       "top",
		LogLevel:  "info",
	}
}

// Level returns the parsed log level.
//
func (c *Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// flag names bound to config keys.
var flagKeys = map[string]string{
	"out":       "output_dir",
	"top":       "top",
	"unchecked": "unchecked",
	"jobs":      "jobs",
	"log-level": "log_level",
}

// Load loads the settings. If path is empty, the optional file hwgen.toml (or
// any other extension supported by viper) is looked up in the working
// directory. Flags of fs that have been set override every other source; fs
// may be nil.
//
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("top", d.Top)
	v.SetDefault("unchecked", d.Unchecked)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.Top == "" {
		return errors.New("top must not be empty")
	}
	if c.Jobs < 0 {
		return errors.Errorf("invalid jobs count %d", c.Jobs)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}
