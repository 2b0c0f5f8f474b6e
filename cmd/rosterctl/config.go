package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmcdole/rosterctl/pkg/console"
	"github.com/mmcdole/rosterctl/pkg/logging"
	"github.com/mmcdole/rosterctl/pkg/roster"
)

// envPrefix prefixes every environment override, e.g. ROSTERCTL_DATA_FILE
const envPrefix = "ROSTERCTL"

// Config holds the rosterctl configuration
type Config struct {
	DataFile string           // Path to the roster file
	LogPath  string           // Optional: path to the application log
	LogLevel logging.LogLevel // debug, info, warn, error
	Color    string           // auto, always, never
	Seed     uint64           // Fixed seed for imposter draws, 0 draws randomly
}

// configKeys maps config file / env keys to their flags
var configKeys = map[string]string{
	"data_file": "data-file",
	"log_path":  "log-path",
	"log_level": "log-level",
	"color":     "color",
	"seed":      "seed",
}

// pathKeys are resolved against the config file directory when relative
var pathKeys = []string{"data_file", "log_path"}

// LoadConfig resolves configuration with precedence flag > environment >
// config file > flag default. cfgFile may be empty.
func LoadConfig(flags *pflag.FlagSet, cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, flagName := range configKeys {
		f := flags.Lookup(flagName)
		if f == nil {
			return nil, fmt.Errorf("missing flag %q", flagName)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("binding flag %q: %w", flagName, err)
		}
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %q: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	level, err := logging.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		DataFile: v.GetString("data_file"),
		LogPath:  v.GetString("log_path"),
		LogLevel: level,
		Color:    strings.ToLower(v.GetString("color")),
		Seed:     v.GetUint64("seed"),
	}

	// Relative paths from the config file are relative to that file
	if cfgFile != "" {
		configDir := filepath.Dir(cfgFile)
		for _, key := range pathKeys {
			if !fromConfigFile(v, flags, key) {
				continue
			}
			p := config.path(key)
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(configDir, *p)
			}
		}
	}

	if config.DataFile == "" {
		config.DataFile = roster.DefaultPath
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// fromConfigFile reports whether key's value was taken from the config file
func fromConfigFile(v *viper.Viper, flags *pflag.FlagSet, key string) bool {
	if flags.Changed(configKeys[key]) {
		return false
	}
	if _, ok := os.LookupEnv(envPrefix + "_" + strings.ToUpper(key)); ok {
		return false
	}
	return v.InConfig(key)
}

func (c *Config) path(key string) *string {
	switch key {
	case "data_file":
		return &c.DataFile
	case "log_path":
		return &c.LogPath
	default:
		return new(string)
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case console.ColorAuto, console.ColorAlways, console.ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (must be auto, always or never)", c.Color)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("data file path must not be empty")
	}
	return nil
}
