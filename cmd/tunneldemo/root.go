package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/tunnel/app"
	"github.com/jask/tunnel/core"
	"github.com/jask/tunnel/internal/config"
	"github.com/jask/tunnel/internal/logging"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tunneldemo",
		Short:         "Terminal demo of tunnelled toolbar content",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return run(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $TUNNELDEMO_CONFIG or ~/.config/tunneldemo/config.toml)")

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			printConfig(cmd, config.Path(configPath), cfg)
			return nil
		},
	})
	return root
}

func run(cfg config.Config) error {
	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	m := newModel(cfg, log)
	log.Info("tunneldemo: starting", "start_tab", cfg.UI.StartTab, "replay_toolbar", cfg.UI.ReplayToolbar)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	fm, ok := final.(core.Model)
	if !ok {
		return nil
	}
	fm.Close()
	if err := fm.Err(); err != nil {
		return err
	}
	log.Info("tunneldemo: stopped")
	return nil
}

func bindings() []core.KeyBinding {
	return append(core.DefaultKeyBindings(), app.KeyBindings()...)
}

func newModel(cfg config.Config, log *slog.Logger) core.Model {
	keys := core.ApplyActionKeybindings(bindings(), cfg.Keys)
	return core.NewModel(app.Tabs(), core.NewKeyRegistry(keys), core.Options{
		StartTab:      cfg.UI.StartTab,
		Width:         cfg.UI.Width,
		Height:        cfg.UI.Height,
		ReplayToolbar: cfg.UI.ReplayToolbar,
		Logger:        log,
	})
}

func printConfig(cmd *cobra.Command, path string, cfg config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config:         %s\n", path)
	fmt.Fprintf(out, "Start tab:      %s\n", cfg.UI.StartTab)
	fmt.Fprintf(out, "Size:           %dx%d\n", cfg.UI.Width, cfg.UI.Height)
	fmt.Fprintf(out, "Replay toolbar: %t\n", cfg.UI.ReplayToolbar)
	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = "(disabled)"
	}
	fmt.Fprintf(out, "Log:            %s [%s]\n", logPath, cfg.Log.Level)
	if len(cfg.Keys) == 0 {
		return
	}
	known := core.Actions(bindings())
	fmt.Fprintln(out, "Key overrides:")
	for _, action := range slices.Sorted(maps.Keys(cfg.Keys)) {
		note := ""
		if !slices.Contains(known, action) {
			note = " (unknown action)"
		}
		fmt.Fprintf(out, "  %-20s %v%s\n", action, cfg.Keys[action], note)
	}
}
