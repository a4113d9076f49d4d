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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omgpkg/omg-devtools/cmd/omg-dev/internal/clierr"
	"github.com/omgpkg/omg-devtools/internal/perfgate"
	"github.com/omgpkg/omg-devtools/internal/projectroot"
	"github.com/omgpkg/omg-devtools/internal/toolcfg"
	"github.com/omgpkg/omg-devtools/internal/ui"
)

// NewPerfCommand returns the `omg-dev perf` command group.
func NewPerfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Benchmark regression tooling",
	}
	cmd.AddCommand(newPerfCheckCommand())
	return cmd
}

func newPerfCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Gate the current benchmark report against the stored baseline",
		Long: `Compares the search timing in the benchmark report against the stored
baseline with a 15% tolerance.

A missing or invalid baseline skips the check and exits 0; a report that
cannot be parsed, or a detected regression, exits 1.`,
		RunE: runPerfCheck,
	}

	defaults := toolcfg.Default()
	cmd.Flags().String("baseline", defaults.Perf.Baseline, "Baseline summary file")
	cmd.Flags().String("report", defaults.Perf.Report, "Benchmark report file")

	return cmd
}

func runPerfCheck(cmd *cobra.Command, args []string) error {
	baselinePath, _ := cmd.Flags().GetString("baseline")
	reportPath, _ := cmd.Flags().GetString("report")

	// Path overrides from .omg-dev.yaml apply when the repo root is
	// discoverable and the flags were left at their defaults. Outside a
	// repo (plain CI workspace) the flags alone decide.
	if repoRoot, err := projectroot.Find("."); err == nil {
		cfg, err := toolcfg.Load(repoRoot)
		if err != nil {
			return clierr.Wrap(1, "perf check: loading config", err)
		}
		if !cmd.Flags().Changed("baseline") {
			baselinePath = cfg.Perf.Baseline
		}
		if !cmd.Flags().Changed("report") {
			reportPath = cfg.Perf.Report
		}
	}

	out := cmd.OutOrStdout()

	res, err := perfgate.Check(baselinePath, reportPath)
	if err != nil {
		fmt.Fprintf(out, "%s Could not extract search performance: %v\n", ui.Error.Render("✗"), err)
		return clierr.Wrap(1, "perf check", err)
	}

	switch res.Outcome {
	case perfgate.OutcomeNoBaseline:
		logger.Debug("regression check skipped", zap.String("reason", res.Note))
		fmt.Fprintln(out, "No baseline found. Skipping regression check.")
		return nil

	case perfgate.OutcomeInvalidBaseline:
		logger.Debug("regression check skipped", zap.String("reason", res.Note))
		fmt.Fprintln(out, "Invalid baseline search time.")
		return nil

	case perfgate.OutcomeRegression:
		fmt.Fprintf(out, "Baseline Search: %gms\n", res.BaselineMs)
		fmt.Fprintf(out, "Current Search: %gms\n", res.CurrentMs)
		fmt.Fprintf(out, "%s PERFORMANCE REGRESSION DETECTED!\n", ui.Error.Render("✗"))
		fmt.Fprintf(out, "Search time increased by %.2f%% (exceeds 15%% threshold)\n", res.DiffPercent)
		return clierr.New(1, "perf check: performance regression detected")

	default:
		fmt.Fprintf(out, "Baseline Search: %gms\n", res.BaselineMs)
		fmt.Fprintf(out, "Current Search: %gms\n", res.CurrentMs)
		fmt.Fprintf(out, "%s Performance check passed.\n", ui.Success.Render("✓"))
		return nil
	}
}
