package enhance

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/omgpkg/omg-devtools/internal/gitlog"
	"github.com/omgpkg/omg-devtools/internal/ui"
)

const (
	previewTemplateLen = 500
	previewRule        = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// PreviewOptions controls candidate preview rendering.
type PreviewOptions struct {
	// Limit caps how many commits are considered; <= 0 means all.
	Limit int
	// Interactive pauses after each candidate, reading from In.
	Interactive bool
	In          io.Reader
}

// Preview renders the enhancement templates for every candidate within
// the limit window and returns the candidate count. The record slice is
// expected newest-first, as produced by gitlog.
func Preview(w io.Writer, recs []gitlog.CommitRecord, gen Generator, opts PreviewOptions) int {
	fmt.Fprintf(w, "\n%s\n\n", ui.Bold.Render("Commits that could be enhanced:"))

	var in *bufio.Scanner
	if opts.Interactive && opts.In != nil {
		in = bufio.NewScanner(opts.In)
	}

	window := recs
	if opts.Limit > 0 && len(window) > opts.Limit {
		window = window[:opts.Limit]
	}

	count := 0
	for _, rec := range window {
		if !IsCandidate(rec) {
			continue
		}
		count++

		fmt.Fprintln(w, ui.Warning.Render(previewRule))
		fmt.Fprintf(w, "%s %s\n", ui.Label.Render("Hash:"), shortHash(rec.Hash))
		fmt.Fprintf(w, "%s %s\n", ui.Label.Render("Current:"), rec.Subject)
		fmt.Fprintf(w, "%s %d changed\n", ui.Label.Render("Files:"), len(rec.FilesChanged))
		fmt.Fprintf(w, "\n%s\n", ui.Accent.Render("Enhancement template:"))

		tmpl := gen.Template(rec)
		if len(tmpl) > previewTemplateLen {
			tmpl = tmpl[:previewTemplateLen] + "..."
		}
		fmt.Fprintln(w, tmpl)
		fmt.Fprintln(w)

		if in != nil {
			fmt.Fprint(w, "Press Enter for next candidate (q to quit): ")
			if !in.Scan() || strings.TrimSpace(in.Text()) == "q" {
				break
			}
		}
	}

	fmt.Fprintln(w, ui.Warning.Render(previewRule))
	fmt.Fprintf(w, "\n%s Found %d commits that could be enhanced\n", ui.Success.Render("✓"), count)

	if count > 0 && len(recs) > 0 {
		oldest := recs[len(recs)-1]
		fmt.Fprintf(w, "\n%s To apply enhancements:\n", ui.Info.Render("Tip:"))
		fmt.Fprintln(w, "  1. Use the enhancement templates above with Claude/ChatGPT")
		fmt.Fprintf(w, "  2. Apply via: git rebase -i %s~1\n", oldest.Hash)
		fmt.Fprintln(w, "  3. Mark commits as 'reword' and paste enhanced messages")
	}
	return count
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
