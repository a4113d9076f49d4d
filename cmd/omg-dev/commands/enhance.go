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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omgpkg/omg-devtools/cmd/omg-dev/internal/clierr"
	"github.com/omgpkg/omg-devtools/internal/enhance"
	"github.com/omgpkg/omg-devtools/internal/gitlog"
	"github.com/omgpkg/omg-devtools/internal/projectroot"
	"github.com/omgpkg/omg-devtools/internal/toolcfg"
	"github.com/omgpkg/omg-devtools/internal/ui"
)

// NewEnhanceCommand returns the `omg-dev enhance` command.
func NewEnhanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Preview terse commits with enhancement templates",
		Long: `Scans a commit range for terse messages and prints enhancement templates
for rewriting them into user-focused changelog entries.

The command only previews; it never rewrites history. Use the templates
with your AI of choice, then apply via interactive rebase.`,
		RunE: runEnhance,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().Bool("dry-run", false, "Preview only (the default and only behavior; kept for workflow compatibility)")
	cmd.Flags().String("format", "text", "Output format: text (default) or json")
	cmd.Flags().String("from", "", "Starting commit/tag (default: last tag)")
	cmd.Flags().Bool("interactive", false, "Pause after each candidate template")
	cmd.Flags().Int("limit", 10, "Maximum commits to preview (default: 10, 0 = unlimited)")
	cmd.Flags().String("to", "HEAD", "Ending commit/tag (default: HEAD)")

	return cmd
}

// enhanceReport is the JSON output shape of `enhance --format json`.
type enhanceReport struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	Commits    int                `json:"commits"`
	Candidates []enhanceCandidate `json:"candidates"`
}

type enhanceCandidate struct {
	Hash         string `json:"hash"`
	Subject      string `json:"subject"`
	FilesChanged int    `json:"files_changed"`
	Template     string `json:"template"`
}

func runEnhance(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	limitFlag, _ := cmd.Flags().GetInt("limit")
	interactiveFlag, _ := cmd.Flags().GetBool("interactive")
	dryRunFlag, _ := cmd.Flags().GetBool("dry-run")

	if formatFlag != "text" && formatFlag != "json" {
		return clierr.Newf(2, "invalid format: %s (must be 'text' or 'json')", formatFlag)
	}

	repoRoot, err := projectroot.Find(".")
	if err != nil {
		return clierr.Wrap(1, "enhance: finding repo root", err)
	}

	cfg, err := toolcfg.Load(repoRoot)
	if err != nil {
		return clierr.Wrap(1, "enhance: loading config", err)
	}

	ctx := cmd.Context()
	client := gitlog.NewClient(&gitlog.ExecRunner{Dir: repoRoot})

	from := fromFlag
	if from == "" {
		from, err = client.LastTag(ctx)
		if err != nil {
			return clierr.New(1, "enhance: could not find last tag; specify --from manually")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Analyzing commits from %s to %s\n", ui.Info.Render("ℹ"), from, toFlag)

	recs, err := client.Commits(ctx, from, toFlag)
	if err != nil {
		return clierr.Wrap(1, "enhance: git command failed", err)
	}
	logger.Debug("parsed commit range",
		zap.String("from", from),
		zap.String("to", toFlag),
		zap.Int("commits", len(recs)),
		zap.Bool("dry_run", dryRunFlag),
	)

	fmt.Fprintf(out, "%s Found %d commits\n", ui.Success.Render("✓"), len(recs))

	gen := enhance.Generator{
		Instructions: enhance.DefaultInstructions,
		Context:      enhance.ProjectContext(repoRoot, cfg.Context),
	}

	if formatFlag == "json" {
		report := enhanceReport{From: from, To: toFlag, Commits: len(recs)}
		for _, rec := range enhance.Candidates(recs, limitFlag) {
			report.Candidates = append(report.Candidates, enhanceCandidate{
				Hash:         rec.Hash,
				Subject:      rec.Subject,
				FilesChanged: len(rec.FilesChanged),
				Template:     gen.Template(rec),
			})
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("writing JSON output: %w", err)
		}
		return nil
	}

	enhance.Preview(out, recs, gen, enhance.PreviewOptions{
		Limit:       limitFlag,
		Interactive: interactiveFlag,
		In:          cmd.InOrStdin(),
	})
	return nil
}
