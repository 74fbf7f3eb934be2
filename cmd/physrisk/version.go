package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of physrisk",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "physrisk version %s\n", physrisk.Version)
		},
	}
}
