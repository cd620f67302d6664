// Package buildinfo carries version details stamped into the binary.
package buildinfo

import "fmt"

// Set via -ldflags at build time
var (
	Version    = "dev"
	CommitHash string // short git commit hash
	BuildTime  string // when the binary was compiled
)

// String renders a one-line version banner for the CLI.
func String() string {
	s := "tgconvertor " + Version
	if CommitHash != "" {
		s += fmt.Sprintf(" (%s)", CommitHash)
	}
	if BuildTime != "" {
		s += " built " + BuildTime
	}
	return s
}
