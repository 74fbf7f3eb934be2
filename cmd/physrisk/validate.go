package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk/internal/presentation/report"
	"github.com/aretw0/physrisk/pkg/codec"
	"github.com/aretw0/physrisk/pkg/domain"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate --kind KIND [file|-]",
		Short: "Validate a payload against an entity schema",
		Long: `Reads a JSON or YAML payload from a file (or stdin when the file is "-" or
omitted), validates it against the schema of KIND and reports every
offending field. Exits with status 1 when the payload is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args)
		},
	}
	cmd.Flags().StringP("kind", "k", "", "Payload kind (see 'physrisk kinds')")
	cmd.Flags().StringP("format", "f", "", "Payload format: json or yaml (default: from file extension, json for stdin)")
	cmd.Flags().String("emit", "", "On success, print the validated entity as json or yaml instead of the report")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, err := domain.LookupKind(kindName)
	if err != nil {
		return err
	}

	source := "-"
	if len(args) > 0 {
		source = args[0]
	}
	format, err := payloadFormat(cmd, source)
	if err != nil {
		return err
	}
	var emit codec.Format
	if name, _ := cmd.Flags().GetString("emit"); name != "" {
		if emit, err = codec.ParseFormat(name); err != nil {
			return err
		}
	}

	in, closeIn, err := openSource(cmd, source)
	if err != nil {
		return err
	}
	defer closeIn()

	a.logger.Debug("validating payload", "kind", kind.Name, "source", source, "format", format)
	start := a.clock.Now()
	entity, err := decodePayload(kind, format, in)
	elapsed := a.clock.Since(start)

	out := cmd.OutOrStdout()
	if err == nil && emit != "" {
		return codec.Encode(emit, out, entity)
	}

	rep := report.New(kind.Name, source, err).Timed(start, elapsed)
	if renderErr := report.Render(out, rep, report.Options{Output: a.cfg.Output, TTY: report.IsTerminal(out)}); renderErr != nil {
		return renderErr
	}
	if err != nil {
		a.logger.Info("payload rejected", "kind", kind.Name, "source", source, "issues", len(rep.Issues), "error", err)
		return errInvalidPayload
	}
	a.logger.Debug("payload accepted", "kind", kind.Name, "source", source)
	return nil
}

func decodePayload(kind domain.Kind, format codec.Format, in io.Reader) (any, error) {
	raw, err := codec.Decode(format, in)
	if err != nil {
		return nil, err
	}
	return kind.Decode(raw)
}

func payloadFormat(cmd *cobra.Command, source string) (codec.Format, error) {
	if name, _ := cmd.Flags().GetString("format"); name != "" {
		return codec.ParseFormat(name)
	}
	return codec.DetectFormat(source), nil
}

func openSource(cmd *cobra.Command, source string) (io.Reader, func(), error) {
	if source == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open payload: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
