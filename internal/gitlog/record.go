// SPDX-License-Identifier: AGPL-3.0-or-later

/*
OMG Devtools - developer tooling for the OMG package manager.
It prepares commit-message enhancement templates for changelog work and
gates benchmark reports against stored performance baselines.

Copyright (C) 2025  OMG Contributors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package gitlog retrieves and parses commit history from the git binary.
package gitlog

// CommitRecord is one parsed commit from a log range query.
// Records are immutable once parsed; consumers read them as-is.
type CommitRecord struct {
	// Hash is the full commit id.
	Hash string
	// Subject is the first line of the commit message.
	Subject string
	// Body is the remainder of the message, trimmed.
	Body string
	// FilesChanged lists the changed paths in log order.
	FilesChanged []string
	// DiffStats is the raw `git show --stat` summary, possibly empty.
	DiffStats string
}
