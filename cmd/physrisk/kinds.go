package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk/pkg/domain"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the payload kinds that can be validated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tENTITY\tFIELDS")
			for _, k := range domain.Kinds() {
				policy := "closed"
				if k.Schema.Open() {
					policy = "open"
				}
				fmt.Fprintf(w, "%s\t%s\t%d (%s)\n", k.Name, k.Schema.Name(), len(k.Schema.Fields()), policy)
			}
			return w.Flush()
		},
	}
}
