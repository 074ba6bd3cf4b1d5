package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/patternkit/catalog"
	"github.com/kbukum/patternkit/errors"
)

func newRunCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [name]...",
		Short: "Run one or more pattern demos",
		Long:  "Run the named pattern demos and print their output.\nUse --all to run every registered demo in catalogue order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				if len(args) > 0 {
					return errors.InvalidInput("name", "cannot combine --all with explicit names")
				}
				names = catalog.Default().Names()
			}
			if len(names) == 0 {
				return errors.MissingField("name")
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "=== %s ===\n", name)
				if err := catalog.Run(cmd.Context(), name, out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every registered demo")

	// Complete demo names for the shell.
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, name := range catalog.Default().Names() {
			if strings.HasPrefix(name, toComplete) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}

	return cmd
}
