// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nathancharlesjones/ttsky-verilog-digital-alarm-clock/clklib"
)

// Config describes one simulation run. Times are programmed into the
// model through its buttons, the way a user would set the real device.
type Config struct {
	Time       string `yaml:"time"`       // initial time, "HH:MM"
	Alarm      string `yaml:"alarm"`      // alarm time, "HH:MM"
	Armed      bool   `yaml:"armed"`      // arm the alarm after programming
	Brightness int    `yaml:"brightness"` // display preset, 0-7
	Debounce   int    `yaml:"debounce"`   // button sample depth, 1-64
	Seconds    int    `yaml:"seconds"`    // simulated run time
}

// DefaultConfig returns the configuration of a freshly powered-on clock.
func DefaultConfig() *Config {
	return &Config{
		Time:       "00:00",
		Alarm:      "00:00",
		Brightness: clklib.DefaultBrightness,
		Debounce:   clklib.DebounceDepth,
		Seconds:    60,
	}
}

// LoadConfig reads and validates a yaml configuration file. Fields not
// present in the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if _, _, err := parseHHMM(cfg.Time); err != nil {
		return errors.Wrap(err, "time")
	}
	if _, _, err := parseHHMM(cfg.Alarm); err != nil {
		return errors.Wrap(err, "alarm")
	}
	if cfg.Brightness < 0 || cfg.Brightness > 7 {
		return errors.Errorf("brightness preset must be in [0,7], got %d", cfg.Brightness)
	}
	if cfg.Debounce < 1 || cfg.Debounce > 64 {
		return errors.Errorf("debounce depth must be in [1,64], got %d", cfg.Debounce)
	}
	if cfg.Seconds < 1 {
		return errors.Errorf("run time must be at least 1 second, got %d", cfg.Seconds)
	}
	return nil
}

// parseHHMM parses a 24-hour "HH:MM" time.
func parseHHMM(s string) (hour, minute int, err error) {
	bad := len(s) != 5 || s[2] != ':'
	for _, i := range []int{0, 1, 3, 4} {
		bad = bad || len(s) != 5 || s[i] < '0' || s[i] > '9'
	}
	if bad {
		return 0, 0, errors.Errorf("invalid time %q, want HH:MM", s)
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, errors.Errorf("time %q out of range", s)
	}
	return hour, minute, nil
}
