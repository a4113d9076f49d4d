package gitlog

import (
	"context"
	"fmt"
	"strings"
)

const (
	fieldSeparator  = "|||"
	commitSeparator = "|||END_COMMIT"
	logFormat       = "%H" + fieldSeparator + "%s" + fieldSeparator + "%b" + fieldSeparator + "END_COMMIT"
)

// Client reads commit history through a Runner.
type Client struct {
	runner Runner
}

// NewClient creates a Client backed by the given runner.
func NewClient(r Runner) *Client {
	return &Client{runner: r}
}

// Commits returns the commits in the half-open range from..to, newest first.
// Each record is enriched with diff stats on a best-effort basis. A failed
// log query is an error; an empty range yields an empty slice.
func (c *Client) Commits(ctx context.Context, from, to string) ([]CommitRecord, error) {
	out, err := c.runner.Run(ctx,
		"log",
		fmt.Sprintf("%s..%s", from, to),
		"--format="+logFormat,
		"--name-only",
	)
	if err != nil {
		return nil, fmt.Errorf("log %s..%s: %w", from, to, err)
	}

	recs := parseLog(out)
	for i := range recs {
		recs[i].DiffStats = c.diffStats(ctx, recs[i].Hash)
	}
	return recs, nil
}

// LastTag returns the most recent reachable tag.
func (c *Client) LastTag(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", fmt.Errorf("describe: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// diffStats fetches the stat summary for one commit. Enrichment only:
// any failure degrades to an empty string rather than failing the parse.
func (c *Client) diffStats(ctx context.Context, hash string) string {
	out, err := c.runner.Run(ctx, "show", "--stat", "--format=", hash)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// parseLog splits the raw log stream into commit records.
// Blocks without all three fields are dropped as malformed.
func parseLog(raw string) []CommitRecord {
	var recs []CommitRecord
	for _, block := range strings.Split(raw, commitSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		parts := strings.Split(block, fieldSeparator)
		if len(parts) < 3 {
			continue
		}

		body, files := splitBodyFiles(parts[2])
		recs = append(recs, CommitRecord{
			Hash:         strings.TrimSpace(parts[0]),
			Subject:      strings.TrimSpace(parts[1]),
			Body:         body,
			FilesChanged: files,
		})
	}
	return recs
}
