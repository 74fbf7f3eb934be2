package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk/pkg/domain"
	"github.com/aretw0/physrisk/pkg/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [kind...]",
		Short: "Print entity schemas as OpenAPI 3 components",
		Long:  `Prints the OpenAPI 3 component schemas of the given kinds, or of every kind when none is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := selectSchemas(args)
			if err != nil {
				return err
			}
			a.logger.Debug("exporting schemas", "count", len(objects))

			doc := map[string]any{
				"components": map[string]any{"schemas": schema.Components(objects...)},
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schemas: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}
}

func selectSchemas(kinds []string) ([]*schema.Object, error) {
	if len(kinds) == 0 {
		return domain.Schemas(), nil
	}
	out := make([]*schema.Object, 0, len(kinds))
	for _, name := range kinds {
		k, err := domain.LookupKind(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k.Schema)
	}
	return out, nil
}
