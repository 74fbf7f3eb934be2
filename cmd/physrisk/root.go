package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/aretw0/physrisk/internal/config"
	"github.com/aretw0/physrisk/internal/logging"
)

// errInvalidPayload signals a payload that failed validation. The report
// has already been printed, so only the exit code remains.
var errInvalidPayload = errors.New("payload is invalid")

// app carries the settings resolved before a command runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	clock  clockwork.Clock
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithClock(clockwork.NewRealClock())
}

func newRootCmdWithClock(clock clockwork.Clock) *cobra.Command {
	a := &app{logger: logging.NewNop(), clock: clock}

	rootCmd := &cobra.Command{
		Use:   "physrisk",
		Short: "Validate climate physical-risk payloads",
		Long: `physrisk checks assets, hazard curves, vulnerability data and exposure
requests against their schemas and reports every offending field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (env PHYSRISK_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (env PHYSRISK_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Report output: auto, markdown, plain or json (env PHYSRISK_OUTPUT)")
	rootCmd.PersistentFlags().String("env-file", "", "Read settings from a dotenv file")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newSchemaCmd(a),
		newGraphCmd(a),
		newKindsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the environment, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("env-file"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		name, _ := cmd.Flags().GetString("log-level")
		if cfg.LogLevel, err = logging.ParseLevel(name); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
	}
	if cmd.Flags().Changed("output") {
		out, _ := cmd.Flags().GetString("output")
		cfg.Output = config.Output(out)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	return nil
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidPayload) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
