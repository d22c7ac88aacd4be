// Package main provides the CLI entrypoint for autoalias.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/autoalias/internal/aliasfile"
	"github.com/verte-zerg/autoalias/internal/config"
	"github.com/verte-zerg/autoalias/internal/engine"
	"github.com/verte-zerg/autoalias/internal/install"
	"github.com/verte-zerg/autoalias/internal/journal"
	"github.com/verte-zerg/autoalias/internal/logging"
	"github.com/verte-zerg/autoalias/internal/prompt"
	"github.com/verte-zerg/autoalias/internal/report"
	"github.com/verte-zerg/autoalias/internal/statsui"
	"github.com/verte-zerg/autoalias/internal/store"
	"github.com/verte-zerg/autoalias/internal/tracker"
)

var (
	statsLast int
	statsUI   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "autoalias",
		Short:         "Automatic shell aliases from command-not-found corrections",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return fmt.Errorf("no command specified")
		},
	}

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newIgnoreCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// app bundles the shared wiring every subcommand needs. The logger is
// best-effort: if it cannot be built the commands run with a nop logger.
type app struct {
	dir    string
	logger *zap.Logger
	store  *store.Store
}

func newApp() *app {
	dir := config.DefaultDir()
	logger, err := logging.New(dir)
	if err != nil {
		logErrf("failed to initialize logger: %v\n", err)
		logger = zap.NewNop()
	}
	return &app{
		dir:    dir,
		logger: logger,
		store:  store.New(dir, logger),
	}
}

func (a *app) close() {
	// Flush any buffered log entries.
	_ = a.logger.Sync()
}

func (a *app) aliases() *aliasfile.Store {
	return aliasfile.New(config.AliasesPath(a.dir))
}

func newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "record <wrong> <correct>",
		Short:  "Record a correction (called by the shell hook)",
		Hidden: true,
		Args:   cobra.ExactArgs(2),
		RunE:   runRecordCmd,
	}
}

// runRecordCmd never fails: the shell hook must not surface errors into
// the user's interactive session.
func runRecordCmd(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	var events tracker.Journal
	jrnl, err := journal.Open(config.JournalPath(a.dir))
	if err != nil {
		a.logger.Warn("failed to open journal", zap.Error(err))
	} else {
		events = jrnl
		defer func() {
			if cerr := jrnl.Close(); cerr != nil {
				a.logger.Warn("failed to close journal", zap.Error(cerr))
			}
		}()
	}

	eng := engine.New(a.store, a.aliases(), prompt.New(), cmd.OutOrStdout(), a.logger)
	trk := tracker.New(a.store, eng, events, a.logger)
	trk.RecordCorrection(context.Background(), args[0], args[1])
	return nil
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the shell hook",
		Args:  cobra.NoArgs,
		RunE:  runInstallCmd,
	}
}

func runInstallCmd(cmd *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	path, err := install.Install(a.dir)
	if err != nil {
		return fmt.Errorf("failed to install hook: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Hook installed: %s\n", path)
	fmt.Fprintln(out, "Add this line to your shell rc (~/.bashrc or ~/.zshrc):")
	fmt.Fprintf(out, "  source %q\n", path)
	return nil
}

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Enable correction tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setEnabled(cmd, true)
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Disable correction tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setEnabled(cmd, false)
		},
	}
}

func setEnabled(cmd *cobra.Command, enabled bool) error {
	a := newApp()
	defer a.close()

	cfg := a.store.LoadConfig()
	cfg.Enabled = enabled
	a.store.SaveConfig(cfg)
	if enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ autoalias enabled")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ autoalias disabled")
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show alias candidates",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "also show the last N recorded corrections")
	cmd.Flags().BoolVar(&statsUI, "ui", false, "browse candidates interactively")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	cfg := a.store.LoadConfig()
	stats := a.store.LoadStats()
	ignore := a.store.LoadIgnore()
	aliases, err := a.aliases().List()
	if err != nil {
		return fmt.Errorf("failed to list aliases: %w", err)
	}
	candidates := report.BuildCandidates(cfg, stats, ignore, aliases)

	if statsUI {
		model := statsui.NewModel(candidates, aliases, ignore)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run stats UI: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if err := report.RenderCandidates(out, candidates); err != nil {
		return fmt.Errorf("failed to render candidates: %w", err)
	}
	if statsLast > 0 {
		events, err := recentEvents(cmd.Context(), a, statsLast)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := report.RenderEvents(out, events); err != nil {
			return fmt.Errorf("failed to render recent activity: %w", err)
		}
	}
	return nil
}

func recentEvents(ctx context.Context, a *app, limit int) ([]journal.Event, error) {
	jrnl, err := journal.Open(config.JournalPath(a.dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if cerr := jrnl.Close(); cerr != nil {
			a.logger.Warn("failed to close journal", zap.Error(cerr))
		}
	}()
	events, err := jrnl.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return events, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show created aliases",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	aliases, err := a.aliases().List()
	if err != nil {
		return fmt.Errorf("failed to list aliases: %w", err)
	}
	if err := report.RenderAliases(cmd.OutOrStdout(), aliases); err != nil {
		return fmt.Errorf("failed to render aliases: %w", err)
	}
	return nil
}

func newIgnoreCmd() *cobra.Command {
	ignoreCmd := &cobra.Command{
		Use:   "ignore",
		Short: "Manage the ignore list",
	}
	ignoreCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show ignored aliases and commands",
		Args:  cobra.NoArgs,
		RunE:  runIgnoreListCmd,
	})
	ignoreCmd.AddCommand(&cobra.Command{
		Use:   "remove <item>",
		Short: "Remove an item from the ignore list",
		Args:  cobra.ExactArgs(1),
		RunE:  runIgnoreRemoveCmd,
	})
	return ignoreCmd
}

func runIgnoreListCmd(cmd *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	if err := report.RenderIgnore(cmd.OutOrStdout(), a.store.LoadIgnore()); err != nil {
		return fmt.Errorf("failed to render ignore list: %w", err)
	}
	return nil
}

func runIgnoreRemoveCmd(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	item := args[0]
	ignore := a.store.LoadIgnore()
	if ignore.Remove(item) {
		a.store.SaveIgnore(ignore)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed '%s' from ignore list\n", item)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "'%s' not found in ignore list\n", item)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset correction statistics",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	a.store.SaveStats(config.Stats{})
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Statistics reset")
	return nil
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <alias>",
		Short: "Remove a created alias",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemoveCmd,
	}
}

func runRemoveCmd(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	name := args[0]
	removed, err := a.aliases().Remove(name)
	if err != nil {
		return fmt.Errorf("failed to remove alias: %w", err)
	}
	if removed {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed alias: %s\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Alias '%s' not found\n", name)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open the config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	a := newApp()
	defer a.close()

	path := config.ConfigPath(a.dir)
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		a.store.SaveConfig(config.Default())
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
