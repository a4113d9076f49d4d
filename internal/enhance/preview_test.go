package enhance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omgpkg/omg-devtools/internal/gitlog"
)

func previewRecs() []gitlog.CommitRecord {
	return []gitlog.CommitRecord{
		{Hash: "aaaa1111bbbb", Subject: "wip", FilesChanged: []string{"src/lib.rs"}},
		{Hash: "cccc2222dddd", Subject: "Release v0.2.0"},
		{Hash: "eeee3333ffff", Subject: "fix: typo", FilesChanged: []string{"docs/index.md"}},
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	gen := Generator{Instructions: DefaultInstructions, Context: "ctx"}

	count := Preview(&buf, previewRecs(), gen, PreviewOptions{Limit: 10})
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "Commits that could be enhanced:")
	assert.Contains(t, out, "aaaa1111")
	assert.NotContains(t, out, "aaaa1111bbbb\n") // hash is shortened in the header line
	assert.Contains(t, out, "fix: typo")
	assert.NotContains(t, out, "Release v0.2.0")
	assert.Contains(t, out, "Found 2 commits that could be enhanced")
	// Rebase tip targets the oldest commit in the range, enhanced or not.
	assert.Contains(t, out, "git rebase -i eeee3333ffff~1")
}

func TestPreview_LimitWindow(t *testing.T) {
	var buf bytes.Buffer
	gen := Generator{Instructions: DefaultInstructions, Context: "ctx"}

	count := Preview(&buf, previewRecs(), gen, PreviewOptions{Limit: 2})
	assert.Equal(t, 1, count)
	assert.NotContains(t, buf.String(), "fix: typo")
}

func TestPreview_NoCandidates(t *testing.T) {
	var buf bytes.Buffer
	gen := Generator{Instructions: DefaultInstructions, Context: "ctx"}

	count := Preview(&buf, []gitlog.CommitRecord{{Hash: "ab", Subject: "Release v1"}}, gen, PreviewOptions{})
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "Found 0 commits")
	assert.NotContains(t, buf.String(), "Tip:")
}

func TestPreview_InteractiveQuit(t *testing.T) {
	var buf bytes.Buffer
	gen := Generator{Instructions: DefaultInstructions, Context: "ctx"}

	count := Preview(&buf, previewRecs(), gen, PreviewOptions{
		Interactive: true,
		In:          strings.NewReader("q\n"),
	})
	// Quit after the first candidate; the second is never rendered.
	assert.Equal(t, 1, count)
	assert.NotContains(t, buf.String(), "fix: typo")
}
