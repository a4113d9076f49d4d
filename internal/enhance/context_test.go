package enhance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectContext_Defaults(t *testing.T) {
	got := ProjectContext(t.TempDir(), "")
	assert.Contains(t, got, "OMG is a unified package manager")
	assert.NotContains(t, got, "README excerpt:")
}

func TestProjectContext_Override(t *testing.T) {
	got := ProjectContext(t.TempDir(), "custom blurb")
	assert.Equal(t, "custom blurb", got)
}

func TestProjectContext_ReadmeExcerpt(t *testing.T) {
	dir := t.TempDir()
	readme := "# OMG\n" + strings.Repeat("x", 3000)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o600))

	got := ProjectContext(dir, "")
	assert.Contains(t, got, "README excerpt:\n# OMG")
	// Excerpt capped at 2000 characters.
	idx := strings.Index(got, "README excerpt:\n")
	require.GreaterOrEqual(t, idx, 0)
	assert.Len(t, got[idx+len("README excerpt:\n"):], 2000)
}
