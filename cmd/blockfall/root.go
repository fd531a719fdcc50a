package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/blockfall/config"
)

// Flag names that differ from their setting keys
const (
	flagConfig      = "config"
	flagAudio       = "audio"
	flagVolume      = "volume"
	flagMetricsAddr = "metrics-addr"
	flagInputRate   = "input-rate"
	flagInputBurst  = "input-burst"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "blockfall",
		Short: "Falling-block puzzle for the terminal",
		Long: "Falling-block puzzle for the terminal.\n\n" +
			"Settings are read from " + config.Dir() + "/settings.{toml,json,yaml},\n" +
			"then BLOCKFALL_* environment variables, then flags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVar(&configPath, flagConfig, "", "settings file overriding the default location")
	f.Int(config.KeyCols, d.Cols, "board width in cells")
	f.Int(config.KeyRows, d.Rows, "board height in cells")
	f.Uint64(config.KeySeed, d.Seed, "piece generator seed, 0 derives one from the clock")
	f.Bool(config.KeyShadow, d.Shadow, "project the drop shadow of the falling piece")
	f.Bool(flagAudio, d.Audio.Enabled, "play sound effects")
	f.Float64(flagVolume, d.Audio.Volume, "master volume between 0 and 1")
	f.Bool(config.KeyDebug, d.Debug, "write logs to "+logDir+"/"+logFileName)
	f.String(flagMetricsAddr, d.MetricsAddr, "serve prometheus metrics on this address, e.g. 127.0.0.1:9464")
	f.Float64(flagInputRate, d.InputRate, "maximum key commands per second")
	f.Int(flagInputBurst, d.InputBurst, "key command burst allowance")

	bindings := map[string]string{
		config.KeyCols:        config.KeyCols,
		config.KeyRows:        config.KeyRows,
		config.KeySeed:        config.KeySeed,
		config.KeyShadow:      config.KeyShadow,
		config.KeyAudio:       flagAudio,
		config.KeyVolume:      flagVolume,
		config.KeyDebug:       config.KeyDebug,
		config.KeyMetricsAddr: flagMetricsAddr,
		config.KeyInputRate:   flagInputRate,
		config.KeyInputBurst:  flagInputBurst,
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, f.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	return cmd
}
