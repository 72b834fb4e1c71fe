// Package config provides persistent configuration for the prayer-times CLI.
//
// Configuration is stored as JSON at ~/.config/prayer-times/config.json
// (XDG-compliant). Values may be overridden by PRAYER_TIMES_<KEY>
// environment variables, optionally read from a .env file. The merge
// priority is: CLI flags > environment > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

const (
	configDirName  = "prayer-times"
	configFileName = "config.json"
)

// EnvPrefix is prepended to the upper-cased key name to form the
// environment variable that overrides it, e.g. PRAYER_TIMES_LATITUDE.
const EnvPrefix = "PRAYER_TIMES_"

// DotEnvFile is the file ApplyEnv reads by default.
const DotEnvFile = ".env"

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"latitude", "longitude", "timezone",
	"method", "asr", "high_lat",
	"time_format",
	"dhuhr_minutes",
	"fajr_angle",
	"maghrib_angle", "maghrib_minutes",
	"isha_angle", "isha_minutes",
	"prayers",
}

// Config holds all user-configurable settings.
// Nil pointers and empty strings mean "not set" (use defaults).
type Config struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	TimeZone  *float64 `json:"timezone,omitempty"` // hours east of UTC; nil uses the system offset

	Method     *int   `json:"method,omitempty"`
	Asr        *int   `json:"asr,omitempty"`
	HighLat    *int   `json:"high_lat,omitempty"`
	TimeFormat string `json:"time_format,omitempty"` // "24h", "12h", "12hNS" or "float"

	DhuhrMinutes   *float64 `json:"dhuhr_minutes,omitempty"`
	FajrAngle      *float64 `json:"fajr_angle,omitempty"`
	MaghribAngle   *float64 `json:"maghrib_angle,omitempty"`
	MaghribMinutes *float64 `json:"maghrib_minutes,omitempty"`
	IshaAngle      *float64 `json:"isha_angle,omitempty"`
	IshaMinutes    *float64 `json:"isha_minutes,omitempty"`

	Prayers string `json:"prayers,omitempty"` // comma-separated list
}

// Defaults returns a Config with the engine defaults spelled out.
func Defaults() Config {
	def := praytime.DefaultConfig()
	method := int(def.Method)
	asr := int(def.Asr)
	highLat := int(def.HighLat)
	return Config{
		Method:     &method,
		Asr:        &asr,
		HighLat:    &highLat,
		TimeFormat: def.Format.String(),
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns an empty Config (not an error).
// If the file exists but is invalid JSON, it returns an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// ApplyEnv overrides keys from PRAYER_TIMES_* variables. Variables in the
// dotenv file are read first; the process environment wins over them.
// A missing dotenv file is not an error.
func (c *Config) ApplyEnv(dotenv string) error {
	vars := map[string]string{}
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", dotenv, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for _, key := range ValidKeys {
		name := EnvName(key)
		if v, ok := os.LookupEnv(name); ok {
			vars[name] = v
		}
	}

	for _, pair := range exclusiveKeys {
		a, b := EnvName(pair[0]), EnvName(pair[1])
		if vars[a] != "" && vars[b] != "" {
			return fmt.Errorf("%s and %s are mutually exclusive", a, b)
		}
	}

	for _, key := range ValidKeys {
		v, ok := vars[EnvName(key)]
		if !ok || v == "" {
			continue
		}
		if err := c.Set(key, v); err != nil {
			return fmt.Errorf("%s: %w", EnvName(key), err)
		}
	}
	return nil
}

// exclusiveKeys are the angle and minutes forms of the same parameter.
var exclusiveKeys = [][2]string{
	{"maghrib_angle", "maghrib_minutes"},
	{"isha_angle", "isha_minutes"},
}

func parseRange(key, value string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", key, value)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("invalid %s %q: must be between %g and %g", key, value, lo, hi)
	}
	return v, nil
}

// setRange stores the parsed value in *dst, leaving it untouched on error.
func setRange(dst **float64, key, value string, lo, hi float64) error {
	v, err := parseRange(key, value, lo, hi)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}

// Set sets a config key to the given value.
// It validates the key name and parses the value into the correct type.
// Setting an angle for Maghrib or Isha clears the matching minutes and
// vice versa.
func (c *Config) Set(key, value string) error {
	switch key {
	case "latitude":
		return setRange(&c.Latitude, key, value, -90, 90)
	case "longitude":
		return setRange(&c.Longitude, key, value, -180, 180)
	case "timezone":
		return setRange(&c.TimeZone, key, value, -12, 14)
	case "method":
		m, err := praytime.ParseMethod(value)
		if err != nil {
			return fmt.Errorf("invalid method %q: %w", value, err)
		}
		v := int(m)
		c.Method = &v
	case "asr":
		a, err := praytime.ParseAsrMethod(value)
		if err != nil {
			return fmt.Errorf("invalid asr %q: %w", value, err)
		}
		v := int(a)
		c.Asr = &v
	case "high_lat":
		h, err := praytime.ParseHighLatMethod(value)
		if err != nil {
			return fmt.Errorf("invalid high_lat %q: %w", value, err)
		}
		v := int(h)
		c.HighLat = &v
	case "time_format":
		f, err := praytime.ParseTimeFormat(value)
		if err != nil {
			return fmt.Errorf("invalid time_format %q: %w", value, err)
		}
		c.TimeFormat = f.String()
	case "dhuhr_minutes":
		return setRange(&c.DhuhrMinutes, key, value, 0, 120)
	case "fajr_angle":
		return setRange(&c.FajrAngle, key, value, 0, 90)
	case "maghrib_angle":
		if err := setRange(&c.MaghribAngle, key, value, 0, 90); err != nil {
			return err
		}
		c.MaghribMinutes = nil
	case "maghrib_minutes":
		if err := setRange(&c.MaghribMinutes, key, value, 0, 240); err != nil {
			return err
		}
		c.MaghribAngle = nil
	case "isha_angle":
		if err := setRange(&c.IshaAngle, key, value, 0, 90); err != nil {
			return err
		}
		c.IshaMinutes = nil
	case "isha_minutes":
		if err := setRange(&c.IshaMinutes, key, value, 0, 240); err != nil {
			return err
		}
		c.IshaAngle = nil
	case "prayers":
		names := strings.Split(value, ",")
		for i, n := range names {
			e, err := praytime.ParseEvent(n)
			if err != nil {
				return fmt.Errorf("invalid prayer name %q in prayers list", strings.TrimSpace(n))
			}
			names[i] = e.String()
		}
		c.Prayers = strings.Join(names, ",")
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "latitude":
		return formatFloat(c.Latitude), nil
	case "longitude":
		return formatFloat(c.Longitude), nil
	case "timezone":
		return formatFloat(c.TimeZone), nil
	case "method":
		return formatInt(c.Method), nil
	case "asr":
		return formatInt(c.Asr), nil
	case "high_lat":
		return formatInt(c.HighLat), nil
	case "time_format":
		return c.TimeFormat, nil
	case "dhuhr_minutes":
		return formatFloat(c.DhuhrMinutes), nil
	case "fajr_angle":
		return formatFloat(c.FajrAngle), nil
	case "maghrib_angle":
		return formatFloat(c.MaghribAngle), nil
	case "maghrib_minutes":
		return formatFloat(c.MaghribMinutes), nil
	case "isha_angle":
		return formatFloat(c.IshaAngle), nil
	case "isha_minutes":
		return formatFloat(c.IshaMinutes), nil
	case "prayers":
		return c.Prayers, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// HasLocation reports whether both coordinates are set.
func (c *Config) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Engine builds the engine configuration. Any custom angle or minutes
// switches the method to Custom, layered over the configured method.
func (c *Config) Engine() (praytime.Config, error) {
	cfg := praytime.DefaultConfig()
	if c.Method != nil {
		cfg = cfg.WithMethod(praytime.Method(*c.Method))
	}
	if c.Asr != nil {
		cfg.Asr = praytime.AsrMethod(*c.Asr)
	}
	if c.HighLat != nil {
		cfg = cfg.WithHighLatMethod(praytime.HighLatMethod(*c.HighLat))
	}
	if c.TimeFormat != "" {
		f, err := praytime.ParseTimeFormat(c.TimeFormat)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithTimeFormat(f)
	}
	if c.DhuhrMinutes != nil {
		cfg = cfg.WithDhuhrMinutes(*c.DhuhrMinutes)
	}

	if o := c.override(); !o.IsZero() {
		cfg = cfg.WithCustom(o)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// override collects the custom twilight parameters. Set keeps one of an
// angle and a minutes value per prayer; if a hand-edited file holds both,
// the angle wins.
func (c *Config) override() praytime.Override {
	angle, minutes := praytime.Angle, praytime.Minutes
	o := praytime.Override{FajrAngle: c.FajrAngle}
	switch {
	case c.MaghribAngle != nil:
		o.MaghribSelector, o.MaghribValue = &angle, c.MaghribAngle
	case c.MaghribMinutes != nil:
		o.MaghribSelector, o.MaghribValue = &minutes, c.MaghribMinutes
	}
	switch {
	case c.IshaAngle != nil:
		o.IshaSelector, o.IshaValue = &angle, c.IshaAngle
	case c.IshaMinutes != nil:
		o.IshaSelector, o.IshaValue = &minutes, c.IshaMinutes
	}
	return o
}

// PrayerList returns the configured prayer names, or def when unset.
func (c *Config) PrayerList(def []string) []string {
	if c.Prayers == "" {
		return def
	}
	return strings.Split(c.Prayers, ",")
}
