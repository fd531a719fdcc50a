// Package config resolves startup settings from defaults, an optional settings
// file, BLOCKFALL_* environment variables and command-line flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
)

// AppName names the config directory and the environment prefix
const AppName = "blockfall"

// Setting keys, shared with flag binding
const (
	KeyCols        = "cols"
	KeyRows        = "rows"
	KeySeed        = "seed"
	KeyShadow      = "shadow"
	KeyAudio       = "audio.enabled"
	KeyVolume      = "audio.volume"
	KeyDebug       = "debug"
	KeyMetricsAddr = "metrics_addr"
	KeyInputRate   = "input_rate"
	KeyInputBurst  = "input_burst"
)

var (
	ErrVolumeRange = errors.New("volume must be within [0, 1]")
	ErrInputRate   = errors.New("input rate must be positive")
	ErrInputBurst  = errors.New("input burst must be at least 1")
)

// AudioConfig controls the sound collaborator
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config is the validated startup configuration
type Config struct {
	Cols   int    `mapstructure:"cols"`
	Rows   int    `mapstructure:"rows"`
	Seed   uint64 `mapstructure:"seed"` // 0 selects a time-derived seed at startup
	Shadow bool   `mapstructure:"shadow"`

	Audio AudioConfig `mapstructure:"audio"`

	Debug       bool   `mapstructure:"debug"`
	MetricsAddr string `mapstructure:"metrics_addr"` // Empty disables the listener

	InputRate  float64 `mapstructure:"input_rate"` // Commands per second
	InputBurst int     `mapstructure:"input_burst"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Cols:   constants.DefaultBoardCols,
		Rows:   constants.DefaultBoardRows,
		Shadow: true,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		InputRate:  constants.DefaultInputRate,
		InputBurst: constants.DefaultInputBurst,
	}
}

// SetDefaults registers Default() values on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyCols, d.Cols)
	v.SetDefault(KeyRows, d.Rows)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyShadow, d.Shadow)
	v.SetDefault(KeyAudio, d.Audio.Enabled)
	v.SetDefault(KeyVolume, d.Audio.Volume)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyMetricsAddr, d.MetricsAddr)
	v.SetDefault(KeyInputRate, d.InputRate)
	v.SetDefault(KeyInputBurst, d.InputBurst)
}

// Dir returns the default settings directory
func Dir() string {
	return configdir.LocalConfig(AppName)
}

// Load reads the layered configuration into a validated Config
// path names an explicit settings file; when empty, settings.{toml,json,yaml}
// is looked up in Dir() and its absence is not an error
// Flags must already be bound on v
func Load(v *viper.Viper, path string) (*Config, error) {
	return load(v, path, Dir())
}

func load(v *viper.Viper, path, searchDir string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("settings")
		v.AddConfigPath(searchDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	cfg, err := decode(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode converts viper's merged map; environment values arrive as strings
func decode(settings map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("settings decoder: %w", err)
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration before any game state exists
func (c *Config) Validate() error {
	if err := board.ValidateDimensions(c.Cols, c.Rows); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: %w: got %v", ErrVolumeRange, c.Audio.Volume)
	}
	if c.InputRate <= 0 {
		return fmt.Errorf("config: %w: got %v", ErrInputRate, c.InputRate)
	}
	if c.InputBurst < 1 {
		return fmt.Errorf("config: %w: got %d", ErrInputBurst, c.InputBurst)
	}
	return nil
}
