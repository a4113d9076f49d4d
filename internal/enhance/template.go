package enhance

import (
	"fmt"
	"strings"

	"github.com/omgpkg/omg-devtools/internal/gitlog"
)

const (
	// Caps applied when embedding dynamic fields into a template.
	maxTemplateFiles   = 10
	maxTemplateStats   = 500
	maxTemplateContext = 500
)

// DefaultInstructions is the static rewrite guidance embedded in every
// enhancement template.
const DefaultInstructions = `Rewrite this commit as a user-focused changelog entry:

1. Focus on USER IMPACT, not implementation details
2. Explain WHAT changed (for users) and WHY it matters
3. Use clear, jargon-free language
4. Format: "<type>(<scope>): <clear description>"
5. Types: feat, fix, perf, docs, refactor, test, chore
6. Add a detailed body if needed explaining the benefit`

// exampleMessages are worked examples of the desired output shape.
const exampleMessages = `- "feat(debian): incremental index updates for 3-5x faster package operations"
- "fix(cli): ensure sudo prompts work correctly in interactive mode"
- "perf(search): switch to LZ4 compression for 60% smaller cache and faster I/O"`

// Generator renders enhancement templates. The instruction and context
// strings are fixed per run; everything else comes from the record.
type Generator struct {
	Instructions string
	Context      string
}

// Template produces the instructional text block for one candidate commit.
// Deterministic: same record and configuration, same output.
func (g Generator) Template(rec gitlog.CommitRecord) string {
	files := rec.FilesChanged
	if len(files) > maxTemplateFiles {
		files = files[:maxTemplateFiles]
	}
	fileLines := make([]string, 0, len(files))
	for _, f := range files {
		fileLines = append(fileLines, "  - "+f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Original: %s\n\n", rec.Subject)
	fmt.Fprintf(&b, "Files changed:\n%s\n\n", strings.Join(fileLines, "\n"))
	fmt.Fprintf(&b, "Diff stats:\n%s\n\n", truncate(rec.DiffStats, maxTemplateStats))
	fmt.Fprintf(&b, "[AI Enhancement Instructions]\n%s\n\n", g.Instructions)
	fmt.Fprintf(&b, "Context about OMG:\n%s\n\n", truncate(g.Context, maxTemplateContext))
	fmt.Fprintf(&b, "Example good messages:\n%s\n\n", exampleMessages)
	b.WriteString("Generate enhanced commit message:\n")
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
