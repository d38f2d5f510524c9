package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/tm/library"
	"github.com/ezrec/tm/machine"
)

func lookup(name string) (m *machine.Machine, err error) {
	m, ok := library.Lookup(name)
	if !ok {
		err = ErrMachineUnknown(name)
	}
	return
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show MACHINE",
		Short: "Print the transition table of a built-in machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s: %s\n", args[0], library.Doc(args[0]))
			fmt.Fprint(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
}
