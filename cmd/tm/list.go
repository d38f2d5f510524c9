package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ezrec/tm/library"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for name, m := range library.All() {
				fmt.Fprintf(tw, "%s\t%d states\t%s\n", name, len(m.States()), library.Doc(name))
			}
			return tw.Flush()
		},
	}
}
