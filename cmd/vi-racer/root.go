package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/ghost"
	"github.com/lixenwraith/vi-racer/log"
)

// newRootCmd builds the command; flags bind to viper so file and VIRACER_ env values apply when unset
func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "vi-racer",
		Short:        "Top-down arcade racing in the terminal, up to four players on one keyboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.vi-racer.toml or $HOME/.vi-racer.toml)")
	flags.Int("players", def.Players, "number of players sharing the keyboard (1-4)")
	flags.Int("seed", def.Seed, "track seed")
	flags.Int("feature", def.Feature, "track corner preset")
	flags.Int("laps", def.Laps, "laps to win")
	flags.Bool("ghost", def.Ghost, "replay the best lap of this track")
	flags.Bool("mute", def.Mute, "start with sound muted")
	flags.Bool("debug", def.Debug, "write a development log to the log directory")
	flags.String("data-dir", def.DataDir, "directory for best lap files")
	flags.String("log-dir", def.LogDir, "directory for the debug log")
	flags.String("color", def.Color, "color mode: auto, on, off")

	bindFlags(flags, v)
	return cmd
}

// bindFlags binds every flag except --config to the viper key of the same name
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			fmt.Fprintf(os.Stderr, "could not bind flag %s: %v\n", f.Name, err)
		}
	})
}

// resolveConfig layers the config file under env and explicitly set flags
func resolveConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// run owns the terminal and audio for the lifetime of one session
func run(cfg config.Config) error {
	logger, err := log.New(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal first so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", zap.Any("panic", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-RACER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the race runs without sound
		logger.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Mute)

	logger.Info("session starting",
		zap.Int("players", cfg.Players),
		zap.Int("seed", cfg.Seed),
		zap.Int("feature", cfg.Feature),
		zap.Int("laps", cfg.Laps),
		zap.String("data_dir", cfg.DataDir),
	)

	g := newGame(cfg, screen, engine.NewPausableClock(nil), ghost.NewFileStore(cfg.DataDir), sound, logger)
	g.run()
	return nil
}
