package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/gravitrone/dex/internal/api"
	"github.com/gravitrone/dex/internal/catalog"
	"github.com/gravitrone/dex/internal/ui"
)

// ShowCmd returns the `dex show` command.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one entry's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			detail, err := rt.gateway.FetchByName(args[0])
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("no entry named %q", args[0])
				}
				return err
			}
			renderDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}
}

func renderDetail(w io.Writer, d *catalog.EntryDetail) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", fmt.Sprintf("%03d", d.ID))
	tbl.AddRow("Name", cell(d.Name))
	tbl.AddRow("Types", cellList(d.Tags))
	tbl.AddRow("Abilities", cellList(d.Attributes))
	tbl.AddRow("Height", ui.FormatHeight(d.Height))
	tbl.AddRow("Weight", ui.FormatWeight(d.Weight))
	if d.BaseExperience > 0 {
		tbl.AddRow("Base exp", humanize.Comma(int64(d.BaseExperience)))
	}
	if d.ImageRef != "" {
		tbl.AddRow("Image", cell(d.ImageRef))
	}
	fmt.Fprintln(w, tbl)

	if len(d.Stats) == 0 {
		return
	}
	stats := uitable.New()
	stats.Separator = "  "
	stats.AddRow("STAT", "BASE")
	for _, s := range d.Stats {
		stats.AddRow(cell(s.Name), strconv.Itoa(s.Value))
	}
	stats.RightAlign(1)
	fmt.Fprintln(w)
	fmt.Fprintln(w, stats)
}
