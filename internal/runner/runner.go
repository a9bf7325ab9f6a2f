// Package runner executes administrative command lines and captures their
// output as trimmed text lines.
//
// The Result type distinguishes "ran but printed nothing" from "failed to
// run"; most callers treat both as no data, but mode detection cares about
// the difference.
package runner

import (
	"context"
	"strings"
)

// Result is the captured outcome of one command invocation.
type Result struct {
	// Lines holds the trimmed lines of stdout, in output order.
	Lines []string
	// Failed is true when the command could not be started, exited non-zero,
	// or timed out. Output captured before the failure is kept in Lines.
	Failed bool
}

// Empty reports whether the result carries no usable output: either the
// command failed or every captured line is blank.
func (r Result) Empty() bool {
	if r.Failed {
		return true
	}
	for _, line := range r.Lines {
		if line != "" {
			return false
		}
	}
	return true
}

// First returns the first line of output, or "" when there is none.
func (r Result) First() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return r.Lines[0]
}

// NonEmpty returns the non-blank lines in output order.
func (r Result) NonEmpty() []string {
	var out []string
	for _, line := range r.Lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Runner executes one argument vector and captures its stdout.
type Runner interface {
	Run(ctx context.Context, argv ...string) Result
}

// splitLines turns raw command output into trimmed lines.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimSpace(line))
	}
	// Drop a single trailing blank produced by the final newline.
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return out
}
