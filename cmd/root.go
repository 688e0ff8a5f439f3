package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/personview/internal/config"
	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/tui"
	"github.com/trknhr/personview/internal/viewmodel"
)

type rootFlags struct {
	configPath string
	delay      time.Duration
	logFile    string
	logLevel   string
	plain      bool
	asJSON     bool
}

func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "personview",
		Short:         "Show a person record loaded through an observable view-model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if flags.plain || flags.asJSON {
				if err := logger.Init(cfg.LogFile, cfg.LogLevel); err != nil {
					return err
				}
				return runPlain(cmd.Context(), cfg, cmd.OutOrStdout(), flags.asJSON)
			}
			return runTUI(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a TOML config file")
	cmd.Flags().DurationVar(&flags.delay, "delay", viewmodel.DefaultDelay, "simulated load latency")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file (TUI default: user cache dir)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug,info,warn,error,none)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print each render to stdout instead of starting the TUI")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the loaded record as JSON (implies --plain)")

	return cmd
}

// resolveConfig decodes the config file, applies explicitly set flags on top
// and validates the merged result.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Decode(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = flags.delay
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, cfg config.Config) error {
	logFile := cfg.LogFile
	if logFile == "" {
		path, err := config.DefaultLogFile()
		if err != nil {
			logger.WarnOnce(err.Error())
		}
		logFile = path
	}
	if logFile == "" {
		logger.SetOutput(io.Discard)
	} else if err := logger.Init(logFile, cfg.LogLevel); err != nil {
		logger.WarnOnce(fmt.Sprintf("logging disabled: %v", err))
		logger.SetOutput(io.Discard)
	}

	sched := tui.NewScheduler()
	vm := viewmodel.New(sched,
		viewmodel.WithSource(cfg.Placeholder()),
		viewmodel.WithDelay(cfg.Delay),
	)
	model := tui.NewTuiModel(vm, sched)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
