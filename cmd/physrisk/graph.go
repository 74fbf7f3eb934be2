package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk/internal/presentation/graph"
	"github.com/aretw0/physrisk/pkg/domain"
	"github.com/aretw0/physrisk/pkg/schema"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [kind...]",
		Short: "Print how entities compose as a Mermaid flowchart",
		Long: `Prints a Mermaid flowchart of the entities reachable from the given kinds.
With --check, the payload is validated against the single given kind and
the entities holding offending fields are highlighted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := selectSchemas(args)
			if err != nil {
				return err
			}

			var overlay *graph.Overlay
			if path, _ := cmd.Flags().GetString("check"); path != "" {
				if len(args) != 1 {
					return fmt.Errorf("--check needs exactly one kind")
				}
				overlay, err = a.checkOverlay(cmd, args[0], objects[0], path)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(objects, overlay))
			return err
		},
	}
	cmd.Flags().String("check", "", "Payload file to validate and highlight on the graph")
	cmd.Flags().StringP("format", "f", "", "Format of the --check payload: json or yaml")
	return cmd
}

func (a *app) checkOverlay(cmd *cobra.Command, kindName string, root *schema.Object, path string) (*graph.Overlay, error) {
	in, closeIn, err := openSource(cmd, path)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	format, err := payloadFormat(cmd, path)
	if err != nil {
		return nil, err
	}
	kind, err := domain.LookupKind(kindName)
	if err != nil {
		return nil, err
	}

	overlay := &graph.Overlay{Root: root.Name()}
	_, err = decodePayload(kind, format, in)
	if err == nil {
		return overlay, nil
	}
	var aggr *schema.AggregateError
	if !errors.As(err, &aggr) {
		return nil, err
	}
	overlay.Failed = graph.FailedObjects(root, aggr.Fields())
	a.logger.Debug("payload checked", "kind", kindName, "failed", overlay.Failed)
	return overlay, nil
}
