package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/gravitrone/dex/internal/config"
)

// ConfigCmd returns the `dex config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()

			source := config.Path()
			if _, err := os.Stat(source); errors.Is(err, os.ErrNotExist) {
				source += " (not found, using defaults)"
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("path", source)
			tbl.AddRow("base_url", cfg.BaseURL)
			tbl.AddRow("page_size", strconv.Itoa(cfg.PageSize))
			tbl.AddRow("entry_limit", strconv.Itoa(cfg.EntryLimit))
			tbl.AddRow("fetch_concurrency", strconv.Itoa(cfg.FetchConcurrency))
			tbl.AddRow("timeout", cfg.HTTPTimeout().String())
			tbl.AddRow("log_file", valueOrNone(cfg.LogFile))
			tbl.AddRow("log_level", cfg.LogLevel)
			fmt.Fprintln(out, tbl)
			return nil
		},
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Default().Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
