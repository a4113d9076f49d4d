// SPDX-License-Identifier: AGPL-3.0-or-later

/*
OMG Devtools - developer tooling for the OMG package manager.
It prepares commit-message enhancement templates for changelog work and
gates benchmark reports against stored performance baselines.

Copyright (C) 2025  OMG Contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

// NewRootCmd constructs the omg-dev root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("OMG_DEV_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "omg-dev",
		Short:         "omg-dev - Developer tooling for the OMG package manager",
		Long:          "omg-dev prepares commit-message enhancement templates and gates benchmark reports against performance baselines.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of omg-dev",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "omg-dev version %s\n", version)
		},
	})

	cmd.AddCommand(NewEnhanceCommand())
	cmd.AddCommand(NewPerfCommand())

	return cmd
}
