// Package config loads scrollcal settings from a .scrollcal config file,
// environment variables, or defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/scrollcal/pkg/timeutil"
	"tableflip.dev/scrollcal/pkg/week"
)

// Config carries the window and viewport tunables.
type Config struct {
	// Capacity is the maximum number of resident weeks.
	Capacity int
	// Batch is the number of weeks loaded per extension.
	Batch int
	// Margin expands the viewport region the sentinels watch, in lines.
	// Zero derives the margin from the viewport height.
	Margin int
	// WeekStart aligns every week to this weekday.
	WeekStart time.Weekday
}

// WindowOptions converts the config into week.Options.
func (c Config) WindowOptions() week.Options {
	return week.Options{
		Capacity:  c.Capacity,
		Batch:     c.Batch,
		WeekStart: c.WeekStart,
	}
}

// Load reads the .scrollcal config (yaml implicit), walking the override
// path from SCROLLCAL_CONFIG_PATH first, then the working directory, then
// the home directory. Missing files are fine; unparsable ones are not.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("capacity", week.DefaultCapacity)
	v.SetDefault("batch", week.DefaultBatch)
	v.SetDefault("margin", 0)
	v.SetDefault("weekstart", "monday")

	v.SetConfigName(".scrollcal")
	v.SetEnvPrefix("SCROLLCAL")
	v.AutomaticEnv()

	if override := os.Getenv("SCROLLCAL_CONFIG_PATH"); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			v.AddConfigPath(expanded)
		} else {
			v.AddConfigPath(override)
		}
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	weekStart, err := timeutil.ParseWeekday(v.GetString("weekstart"))
	if err != nil {
		return Config{}, fmt.Errorf("config weekstart: %w", err)
	}

	cfg := Config{
		Capacity:  v.GetInt("capacity"),
		Batch:     v.GetInt("batch"),
		Margin:    v.GetInt("margin"),
		WeekStart: weekStart,
	}
	return cfg, nil
}

// Default returns the built-in tunables without touching disk.
func Default() Config {
	return Config{
		Capacity:  week.DefaultCapacity,
		Batch:     week.DefaultBatch,
		Margin:    0,
		WeekStart: time.Monday,
	}
}
