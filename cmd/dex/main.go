package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/dex/internal/api"
	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/cmd"
	"github.com/gravitrone/dex/internal/config"
	"github.com/gravitrone/dex/internal/ui"
)

var errNotInteractive = errors.New("dex needs an interactive terminal; try 'dex list'")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dex",
		Short: "dex - creature catalog browser",
		Long:  "dex browses the public creature-data API: filter by type, page through results and open entry details.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.ShowCmd())
	root.AddCommand(cmd.TagsCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errNotInteractive
	}

	logger, closeLog, err := cfg.TUILogger()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	client := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout())
	gateway := catalog.NewAPIGateway(client, cfg.EntryLimit, logger)
	app := ui.NewApp(gateway, cfg, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
