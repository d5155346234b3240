package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. VIRACER_LAPS
	EnvPrefix = "VIRACER"

	// FileName is the config file searched in the working and home directories
	FileName = ".vi-racer"

	// FileType is the config file format
	FileType = "toml"
)

// Color modes accepted by --color
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

var colorModes = []string{ColorAuto, ColorOn, ColorOff}

// Config holds the resolved application settings from flags, file and environment
type Config struct {
	Players int    `mapstructure:"players"`
	Seed    int    `mapstructure:"seed"`
	Feature int    `mapstructure:"feature"`
	Laps    int    `mapstructure:"laps"`
	Ghost   bool   `mapstructure:"ghost"`
	Mute    bool   `mapstructure:"mute"`
	Debug   bool   `mapstructure:"debug"`
	DataDir string `mapstructure:"data-dir"` // Best lap files, one per track
	LogDir  string `mapstructure:"log-dir"`
	Color   string `mapstructure:"color"` // auto, on, off
}

// Default returns the settings used when nothing overrides them
func Default() Config {
	race := engine.DefaultConfig()
	return Config{
		Players: race.Players,
		Seed:    race.Seed,
		Feature: race.Feature,
		Laps:    race.Laps,
		Ghost:   race.Ghost,
		DataDir: DefaultDataDir(),
		LogDir:  "logs",
		Color:   ColorAuto,
	}
}

// DefaultDataDir is the per-user directory for best lap files
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vi-racer")
	}
	return "data"
}

// NewViper returns a viper instance with defaults and environment binding set up
func NewViper() *viper.Viper {
	v := viper.New()
	def := Default()
	v.SetDefault("players", def.Players)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("feature", def.Feature)
	v.SetDefault("laps", def.Laps)
	v.SetDefault("ghost", def.Ghost)
	v.SetDefault("mute", def.Mute)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("data-dir", def.DataDir)
	v.SetDefault("log-dir", def.LogDir)
	v.SetDefault("color", def.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or searches the working and home directories when path is empty
// A missing searched file is not an error
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(FileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals the resolved values and clamps them into range
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	c.Players = lo.Clamp(c.Players, parameter.MinPlayers, parameter.MaxPlayers)
	c.Laps = lo.Clamp(c.Laps, 1, parameter.MaxLaps)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if !lo.Contains(colorModes, c.Color) {
		return Config{}, fmt.Errorf("invalid color mode %q, want one of %s", c.Color, strings.Join(colorModes, ", "))
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	return c, nil
}

// Race converts the settings into the race setup
func (c Config) Race() engine.Config {
	return engine.Config{
		Players: c.Players,
		Seed:    c.Seed,
		Feature: c.Feature,
		Laps:    c.Laps,
		Ghost:   c.Ghost,
	}.Normalize()
}

// UseColor resolves the color mode against the terminal's reported color count
func (c Config) UseColor(terminalColors int) bool {
	switch c.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return terminalColors >= 256
	}
}
