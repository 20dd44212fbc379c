// Package config merges command-line flags, ALN_REPLACE_HEADERS_* environment
// variables and an optional YAML file into one Settings value.
//
// Precedence: flag > environment > config file > flag default.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended (with an underscore) to every environment key.
const EnvPrefix = "ALN_REPLACE_HEADERS"

// ConfigFlag names the flag holding the optional config file path.
const ConfigFlag = "config"

// Settings is the merged run configuration.
type Settings struct {
	Headers string `mapstructure:"headers"`
	Seqs    string `mapstructure:"seqs"`
	Output  string `mapstructure:"output"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load builds Settings from flags, the environment and the file named by
// the --config flag, if any.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Settings{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFlag); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}
