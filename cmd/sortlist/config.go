package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/sortlist/sortlist"
	"github.com/arthur-debert/sortlist/types"
)

// defaultSeed is used when no seed file is configured.
var defaultSeed = []string{"Apple", "Banana", "Cherry", "Dates", "Elderberry"}

// historyWindow is how many recent entries the demo renders. It never
// exceeds the engine's configured capacity.
const historyWindow = sortlist.DefaultHistoryCapacity

// demoConfig is everything the demo needs, resolved from (in order of
// precedence) flags, SORTLIST_* environment variables and an optional
// config.yaml in the user config dir.
type demoConfig struct {
	Mode            types.ReferenceMode
	HistoryCapacity int
	IDStrategy      string
	IDLength        int
	Seed            []string
	LogLevel        string
	LogStdout       bool
}

// seedFile is the YAML shape of a seed list:
//
//	items:
//	  - Apple
//	  - Banana
type seedFile struct {
	Items []string `yaml:"items"`
}

func loadConfig(flags *rootFlags) (*demoConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "sortlist"))
	}
	v.SetEnvPrefix("SORTLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", types.ByID.String())
	v.SetDefault("history-capacity", sortlist.DefaultHistoryCapacity)
	v.SetDefault("id-strategy", sortlist.StrategyUUID)
	v.SetDefault("id-length", sortlist.DefaultRandomIDLength)
	v.SetDefault("log-level", "warn")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Flags win over config file and environment.
	if flags.mode != "" {
		v.Set("mode", flags.mode)
	}
	if flags.capacity > 0 {
		v.Set("history-capacity", flags.capacity)
	}
	if flags.strategy != "" {
		v.Set("id-strategy", flags.strategy)
	}
	if flags.seedFile != "" {
		v.Set("seed-file", flags.seedFile)
	}
	if flags.logLevel != "" {
		v.Set("log-level", flags.logLevel)
	}
	if flags.logStdout {
		v.Set("log-stdout", true)
	}

	mode, ok := types.ParseReferenceMode(v.GetString("mode"))
	if !ok {
		return nil, fmt.Errorf("unknown reference mode %q (want by-id or by-index)", v.GetString("mode"))
	}

	seed := defaultSeed
	if path := v.GetString("seed-file"); path != "" {
		loaded, err := loadSeedFile(path)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	return &demoConfig{
		Mode:            mode,
		HistoryCapacity: v.GetInt("history-capacity"),
		IDStrategy:      v.GetString("id-strategy"),
		IDLength:        v.GetInt("id-length"),
		Seed:            seed,
		LogLevel:        v.GetString("log-level"),
		LogStdout:       v.GetBool("log-stdout"),
	}, nil
}

func loadSeedFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(sf.Items) == 0 {
		return nil, fmt.Errorf("seed file %s contains no items", path)
	}
	return sf.Items, nil
}

// newList builds the engine instance from the resolved configuration.
func (c *demoConfig) newList(logger *slog.Logger) (*sortlist.List, error) {
	return sortlist.New(sortlist.Config{
		Mode:            c.Mode,
		HistoryCapacity: c.HistoryCapacity,
		IDStrategy:      c.IDStrategy,
		IDLength:        c.IDLength,
		Seed:            c.Seed,
		Logger:          logger,
	})
}
