package gitlog

import "strings"

// The third log field interleaves free-text body lines with the trailing
// --name-only file list; nothing in the format separates them. The scanner
// below classifies lines with a one-way two-state machine: it stays in body
// mode until a line starts with a known top-level path prefix, then treats
// every remaining line as a file path. A changed path outside the known
// prefixes is folded into the body; that loss is accepted.

type scanMode int

const (
	modeBody scanMode = iota
	modeFiles
)

var filePrefixes = []string{
	"src/",
	"docs/",
	"tests/",
	"Cargo.",
	"scripts/",
}

type bodyFileScanner struct {
	mode  scanMode
	body  []string
	files []string
}

func (s *bodyFileScanner) feed(line string) {
	if s.mode == modeBody && hasFilePrefix(line) {
		s.mode = modeFiles
	}
	switch s.mode {
	case modeBody:
		s.body = append(s.body, line)
	case modeFiles:
		if strings.TrimSpace(line) != "" {
			s.files = append(s.files, line)
		}
	}
}

func hasFilePrefix(line string) bool {
	for _, p := range filePrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// splitBodyFiles separates a body+files field into the trimmed commit body
// and the ordered file list.
func splitBodyFiles(field string) (string, []string) {
	sc := &bodyFileScanner{}
	for _, line := range strings.Split(field, "\n") {
		sc.feed(line)
	}
	return strings.TrimSpace(strings.Join(sc.body, "\n")), sc.files
}
