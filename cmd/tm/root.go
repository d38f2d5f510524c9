package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/tm/translate"
)

// Version of the tm command.
const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:           "tm",
		Short:         "tm simulates deterministic single-tape Turing machines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(lang) != 0 {
				translate.Use(lang)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&lang, "lang", "", "Message locale (default from the environment)")

	cmd.AddCommand(
		newRunCmd(),
		newListCmd(),
		newShowCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tm",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tm version %s\n", Version)
		},
	}
}
