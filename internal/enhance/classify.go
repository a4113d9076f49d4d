// SPDX-License-Identifier: AGPL-3.0-or-later

/*
OMG Devtools - developer tooling for the OMG package manager.
It prepares commit-message enhancement templates for changelog work and
gates benchmark reports against stored performance baselines.

Copyright (C) 2025  OMG Contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package enhance classifies terse commits and renders enhancement
// templates for changelog rewriting.
package enhance

import (
	"strings"

	"github.com/omgpkg/omg-devtools/internal/gitlog"
)

const (
	// Bodies longer than this are considered already detailed.
	detailedBodyLen = 200
	// Subjects at or above this length carry enough information as-is.
	terseSubjectLen = 60
)

// terseVerbs are the low-information subject openers that mark a commit
// for enhancement, either bare or in conventional-commit form ("fix:",
// "fix(scope)").
var terseVerbs = []string{
	"fix", "update", "add", "remove", "chore",
	"refactor", "notes", "wip", "tmp",
}

// releasePrefixes exempt release bookkeeping commits regardless of brevity.
var releasePrefixes = []string{"Release v", "Bump version"}

// IsCandidate reports whether a commit message qualifies for enhancement.
// Pure and deterministic; it never errors, ambiguous shapes are treated
// as not-a-candidate.
func IsCandidate(rec gitlog.CommitRecord) bool {
	if len(rec.Body) > detailedBodyLen {
		return false
	}

	for _, p := range releasePrefixes {
		if strings.HasPrefix(rec.Subject, p) {
			return false
		}
	}

	subject := strings.ToLower(rec.Subject)
	for _, verb := range terseVerbs {
		if subject == verb ||
			strings.HasPrefix(subject, verb+":") ||
			strings.HasPrefix(subject, verb+"(") {
			return len(rec.Subject) < terseSubjectLen
		}
	}

	return false
}

// Candidates filters the first limit records down to enhancement
// candidates, preserving order. limit <= 0 means no cap.
func Candidates(recs []gitlog.CommitRecord, limit int) []gitlog.CommitRecord {
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	var out []gitlog.CommitRecord
	for _, rec := range recs {
		if IsCandidate(rec) {
			out = append(out, rec)
		}
	}
	return out
}
