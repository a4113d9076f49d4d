package enhance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omgpkg/omg-devtools/internal/gitlog"
)

func rec(subject, body string) gitlog.CommitRecord {
	return gitlog.CommitRecord{Hash: "deadbeef", Subject: subject, Body: body}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    bool
	}{
		{"bare terse verb", "wip", "", true},
		{"conventional colon", "wip: daemon", "", true},
		{"conventional scope", "wip(daemon): socket", "", true},
		{"fix with scope", "fix(cli): typo", "", true},
		{"uppercase verb normalized", "Fix: typo", "", true},
		{"verb not at a boundary", "fixture cleanup", "", false},
		{"descriptive subject", "Teach the resolver about split archives", "", false},
		{"release prefix", "Release v0.1.140", "", false},
		{"bump prefix", "Bump version to 0.1.141", "", false},
		{"terse release stays exempt", "Release v0.1.140", "", false},
		{"long subject not terse", "fix: " + strings.Repeat("x", 60), "", false},
		{"detailed body wins", "wip", strings.Repeat("b", 201), false},
		{"body at threshold still terse", "wip", strings.Repeat("b", 200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCandidate(rec(tt.subject, tt.body)))
		})
	}
}

func TestIsCandidate_SubjectLengthBoundary(t *testing.T) {
	// 59 raw characters qualifies, 60 does not.
	at59 := "fix: " + strings.Repeat("y", 54)
	at60 := "fix: " + strings.Repeat("y", 55)
	assert.Len(t, at59, 59)
	assert.True(t, IsCandidate(rec(at59, "")))
	assert.False(t, IsCandidate(rec(at60, "")))
}

func TestCandidates_LimitWindow(t *testing.T) {
	recs := []gitlog.CommitRecord{
		rec("wip", ""),
		rec("Release v1.0.0", ""),
		rec("update: lockfile", ""),
		rec("tmp", ""),
	}

	got := Candidates(recs, 3)
	assert.Len(t, got, 2)
	assert.Equal(t, "wip", got[0].Subject)
	assert.Equal(t, "update: lockfile", got[1].Subject)

	// Unlimited keeps the trailing candidate too.
	assert.Len(t, Candidates(recs, 0), 3)
}
