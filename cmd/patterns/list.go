package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/patternkit/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered pattern demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := catalog.Default().List()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tBRIEF")
			for _, d := range demos {
				if category != "" && category != string(d.Category()) {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name(), d.Category(), d.Brief())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (behavioral, creational, structural)")

	return cmd
}
