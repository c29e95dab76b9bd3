package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/dex/internal/api"
	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/config"
	"github.com/gravitrone/dex/internal/ui/components"
)

// runtime bundles what every catalog command needs.
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	gateway *catalog.APIGateway
	close   func()
}

// loadRuntime reads the config and builds a logger on the command's stderr
// and a gateway against the configured API.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, closer, err := cfg.CLILogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	client := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout())
	return &runtime{
		cfg:     cfg,
		logger:  logger,
		gateway: catalog.NewAPIGateway(client, cfg.EntryLimit, logger),
		close:   closer,
	}, nil
}

// cell strips control sequences from remote text before it reaches stdout.
func cell(s string) string {
	return components.SanitizeOneLine(s)
}

func cellList(items []string) string {
	cleaned := make([]string, len(items))
	for i, item := range items {
		cleaned[i] = cell(item)
	}
	return strings.Join(cleaned, ", ")
}
