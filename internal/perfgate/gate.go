// SPDX-License-Identifier: AGPL-3.0-or-later

/*
OMG Devtools - developer tooling for the OMG package manager.
It prepares commit-message enhancement templates for changelog work and
gates benchmark reports against stored performance baselines.

Copyright (C) 2025  OMG Contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package perfgate compares a fresh benchmark report against a stored
// baseline and decides whether search performance regressed.
package perfgate

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tolerance is the accepted slowdown over the baseline before the gate
// fails (15%).
const Tolerance = 1.15

// searchRowMarker identifies the benchmark table row holding the search
// timing.
const searchRowMarker = "| search |"

// ErrNoSearchRow is returned when the report has no search timing row.
var ErrNoSearchRow = errors.New("no '| search |' row in report")

// Outcome is the terminal state of one gate run.
type Outcome int

const (
	// OutcomeNoBaseline means no usable baseline file: nothing to check.
	OutcomeNoBaseline Outcome = iota
	// OutcomeInvalidBaseline means the baseline lacks a positive search_ms.
	OutcomeInvalidBaseline
	// OutcomePass means the current measurement is within tolerance.
	OutcomePass
	// OutcomeRegression means the current measurement exceeds tolerance.
	OutcomeRegression
)

// Result captures the gate decision plus the numbers behind it.
type Result struct {
	Outcome     Outcome
	BaselineMs  float64
	CurrentMs   float64
	DiffPercent float64
	// Note explains skip outcomes for logging.
	Note string
}

// Failed reports whether the outcome maps to a non-zero exit.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeRegression
}

// Baseline is the stored benchmark summary.
type Baseline struct {
	SearchMs float64 `json:"search_ms"`
}

// Check runs the full gate: baseline load, report extraction, threshold
// comparison. A missing or unreadable baseline skips the check; a report
// that cannot be parsed is an error.
func Check(baselinePath, reportPath string) (Result, error) {
	baseline, note, ok := loadBaseline(baselinePath)
	if !ok {
		return Result{Outcome: OutcomeNoBaseline, Note: note}, nil
	}

	current, err := extractSearchMs(reportPath)
	if err != nil {
		return Result{}, err
	}

	if baseline.SearchMs == 0 {
		return Result{
			Outcome:   OutcomeInvalidBaseline,
			CurrentMs: current,
			Note:      "baseline search_ms missing or zero",
		}, nil
	}

	res := Result{
		BaselineMs: baseline.SearchMs,
		CurrentMs:  current,
	}
	if current > baseline.SearchMs*Tolerance {
		res.Outcome = OutcomeRegression
		res.DiffPercent = (current/baseline.SearchMs - 1) * 100
		return res, nil
	}
	res.Outcome = OutcomePass
	return res, nil
}

// loadBaseline reads the summary file. Any failure here disables the gate
// rather than failing it: an absent baseline is "no check configured".
func loadBaseline(path string) (Baseline, string, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: caller-chosen baseline path
	if err != nil {
		return Baseline{}, fmt.Sprintf("no baseline: %v", err), false
	}
	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return Baseline{}, fmt.Sprintf("unreadable baseline: %v", err), false
	}
	return b, "", true
}

// extractSearchMs pulls the current search timing out of the markdown
// report: first row containing the search marker, third pipe cell, "ms"
// suffix stripped.
func extractSearchMs(path string) (float64, error) {
	f, err := os.Open(path) //nolint:gosec // G304: caller-chosen report path
	if err != nil {
		return 0, fmt.Errorf("reading report: %w", err)
	}
	defer func() { _ = f.Close() }()
	return scanSearchMs(f)
}

func scanSearchMs(r io.Reader) (float64, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, searchRowMarker) {
			continue
		}
		cells := strings.Split(line, "|")
		if len(cells) < 3 {
			return 0, fmt.Errorf("malformed search row: %q", line)
		}
		val := strings.TrimSpace(strings.ReplaceAll(cells[2], "ms", ""))
		ms, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing search cell %q: %w", cells[2], err)
		}
		return ms, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading report: %w", err)
	}
	return 0, ErrNoSearchRow
}
