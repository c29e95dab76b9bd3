package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

// TagsCmd returns the `dex tags` command.
func TagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags entries can be filtered by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			tags, err := rt.gateway.ListTags()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tags) == 0 {
				fmt.Fprintln(out, "no tags found")
				return nil
			}

			// Four tags per row keeps the vocabulary on one screen.
			tbl := uitable.New()
			tbl.Separator = "  "
			row := make([]interface{}, 0, 4)
			for _, tag := range tags {
				row = append(row, cell(tag))
				if len(row) == 4 {
					tbl.AddRow(row...)
					row = row[:0]
				}
			}
			if len(row) > 0 {
				tbl.AddRow(row...)
			}
			fmt.Fprintln(out, tbl)
			fmt.Fprintf(out, "\n%d tags\n", len(tags))
			return nil
		},
	}
}
