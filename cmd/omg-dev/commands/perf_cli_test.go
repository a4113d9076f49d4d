package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgpkg/omg-devtools/cmd/omg-dev/internal/clierr"
)

func runPerf(t *testing.T, baseline, report string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	bp := filepath.Join(dir, "summary.json")
	rp := filepath.Join(dir, "report.md")
	if baseline != "" {
		require.NoError(t, os.WriteFile(bp, []byte(baseline), 0o600))
	}
	if report != "" {
		require.NoError(t, os.WriteFile(rp, []byte(report), 0o600))
	}

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"perf", "check", "--baseline", bp, "--report", rp})
	err := cmd.Execute()
	return b.String(), err
}

func TestPerfCheck_Pass(t *testing.T) {
	out, err := runPerf(t,
		`{"search_ms": 100}`,
		"| search | 110.00ms | 133ms | 140ms | 1.2x |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline Search: 100ms")
	assert.Contains(t, out, "Current Search: 110ms")
	assert.Contains(t, out, "Performance check passed.")
}

func TestPerfCheck_Regression(t *testing.T) {
	out, err := runPerf(t,
		`{"search_ms": 100}`,
		"| search | 120.00ms | 133ms | 140ms | 1.1x |\n")
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, out, "PERFORMANCE REGRESSION DETECTED!")
	assert.Contains(t, out, "increased by 20.00%")
}

func TestPerfCheck_NoBaselineSkips(t *testing.T) {
	out, err := runPerf(t, "", "| search | 120.00ms |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "No baseline found. Skipping regression check.")
}

func TestPerfCheck_InvalidBaselineSkips(t *testing.T) {
	out, err := runPerf(t, `{"search_ms": 0}`, "| search | 120.00ms | - |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid baseline search time.")
}

func TestPerfCheck_MalformedReportFails(t *testing.T) {
	out, err := runPerf(t, `{"search_ms": 100}`, "| install | 5ms |\n")
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, out, "Could not extract search performance")
}

func TestEnhance_InvalidFormat(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(bytes.NewBufferString(""))
	cmd.SetArgs([]string{"enhance", "--format", "yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, 2, clierr.ExitCodeOf(err))
}
