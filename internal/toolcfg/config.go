// SPDX-License-Identifier: AGPL-3.0-or-later

/*
OMG Devtools - developer tooling for the OMG package manager.
It prepares commit-message enhancement templates for changelog work and
gates benchmark reports against stored performance baselines.

Copyright (C) 2025  OMG Contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package toolcfg loads the optional .omg-dev.yaml tool configuration.
package toolcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file expected at the repository root.
const FileName = ".omg-dev.yaml"

// Config tunes omg-dev. Every field is optional; zero values fall back to
// built-in defaults.
type Config struct {
	// Context overrides the project blurb embedded in enhancement
	// templates.
	Context string `yaml:"context"`
	Perf    Perf   `yaml:"perf"`
}

// Perf holds regression-gate path overrides.
type Perf struct {
	Baseline string `yaml:"baseline"`
	Report   string `yaml:"report"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Perf: Perf{
			Baseline: "benchmarks/summary.json",
			Report:   "benchmark_report.md",
		},
	}
}

// Load reads the configuration from repoRoot, merging over defaults.
// A missing file is not an error; malformed YAML is.
func Load(repoRoot string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if loaded.Context != "" {
		cfg.Context = loaded.Context
	}
	if loaded.Perf.Baseline != "" {
		cfg.Perf.Baseline = loaded.Perf.Baseline
	}
	if loaded.Perf.Report != "" {
		cfg.Perf.Report = loaded.Perf.Report
	}
	return cfg, nil
}
