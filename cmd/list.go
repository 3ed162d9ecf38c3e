package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trknhr/ghostfaker/internal/action"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var showLabels bool

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List providers matching a query (at most 20)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			out := cmd.OutOrStdout()
			for _, item := range a.ext.OnQuery(query).Items {
				custom, ok := item.OnEnter.(action.ExtensionCustom)
				if !ok {
					// the "no results" item
					fmt.Fprintln(cmd.ErrOrStderr(), item.Name)
					continue
				}
				if showLabels {
					fmt.Fprintf(out, "%s\t%s\n", custom.Data, item.Name)
				} else {
					fmt.Fprintln(out, custom.Data)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLabels, "labels", false, "also print the display label")
	return cmd
}
