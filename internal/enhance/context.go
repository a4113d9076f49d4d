package enhance

import (
	"os"
	"path/filepath"
)

// defaultProjectContext describes OMG for whoever (or whatever) performs
// the rewrite. Overridable through tool configuration.
const defaultProjectContext = `OMG is a unified package manager for Linux that replaces multiple tools:
- System packages: pacman, yay, apt
- Runtime managers: nvm, pyenv, rustup, rbenv, jenv

Key features:
- 22x faster searches than pacman (6ms vs 133ms)
- 59-483x faster than apt-cache on Debian/Ubuntu
- Unified CLI for system packages + 8 language runtimes
- Enterprise security: SLSA, PGP, SBOM, audit logs
- Team synchronization with omg.lock files

Target audience: Developers and DevOps engineers who want speed and simplicity.`

const readmeExcerptLen = 2000

// ProjectContext assembles the context blurb handed to the template
// generator. An explicit override wins; otherwise the built-in blurb is
// used, extended with a README excerpt when one exists at the repo root.
func ProjectContext(repoRoot, override string) string {
	ctx := override
	if ctx == "" {
		ctx = defaultProjectContext
	}

	readme, err := os.ReadFile(filepath.Join(repoRoot, "README.md"))
	if err != nil {
		return ctx
	}
	excerpt := string(readme)
	if len(excerpt) > readmeExcerptLen {
		excerpt = excerpt[:readmeExcerptLen]
	}
	return ctx + "\n\nREADME excerpt:\n" + excerpt
}
