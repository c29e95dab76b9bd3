package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/gravitrone/dex/internal/catalog"
)

// ListCmd returns the `dex list` command.
func ListCmd() *cobra.Command {
	var (
		tags []string
		page int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, optionally filtered by tag",
		Long: "List one page of the catalog. Repeat --tag to keep entries that carry " +
			"any of the given tags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			entries, err := rt.gateway.ListEntries()
			if err != nil {
				return err
			}
			store := catalog.NewStore(rt.gateway, rt.logger)
			store.Populate(entries)
			pipeline := catalog.NewPipeline(store, rt.cfg.PageSize)

			var (
				req     catalog.FilterRequest
				pending bool
			)
			for _, tag := range tags {
				tag = strings.ToLower(strings.TrimSpace(tag))
				if tag == "" || pipeline.IsSelected(tag) {
					continue
				}
				req = pipeline.ToggleTag(tag)
				pending = true
			}
			if pending {
				pipeline.ApplyFilter(req.Run(store, rt.cfg.FetchConcurrency))
			}

			pipeline.SetPage(page)
			pipeline.ApplyPage(pipeline.CurrentPageRequest().Run(store))

			renderList(cmd.OutOrStdout(), pipeline.Current())
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "keep entries with any of these tags (repeatable)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	return cmd
}

func renderList(w io.Writer, v catalog.View) {
	if len(v.Cards) == 0 {
		switch {
		case v.FilteredCount == 0 && len(v.Selected) > 0:
			fmt.Fprintln(w, "no entries match the selected tags")
		case v.FilteredCount == 0:
			fmt.Fprintln(w, "no entries")
		default:
			fmt.Fprintln(w, "no details available for this page")
		}
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("#", "NAME", "TYPES")
		for _, card := range v.Cards {
			tbl.AddRow(fmt.Sprintf("%03d", card.Detail.ID), cell(card.Detail.Name), cellList(card.Detail.Tags))
		}
		tbl.RightAlign(0)
		fmt.Fprintln(w, tbl)
	}

	fmt.Fprintf(w, "\nShowing %s of %s", humanize.Comma(int64(len(v.Page.Slice))), humanize.Comma(int64(v.FilteredCount)))
	if len(v.Selected) > 0 {
		fmt.Fprintf(w, " · %s", cellList(v.Selected))
	}
	fmt.Fprintf(w, "\npage %d of %d  %s\n", v.Page.Number, v.Page.TotalPages, pageBar(v.Page))
}

// pageBar renders the page window with the current page bracketed.
func pageBar(p catalog.Page) string {
	parts := make([]string, 0, len(p.VisiblePages))
	for _, n := range p.VisiblePages {
		label := strconv.Itoa(n)
		if n == p.Number {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
