// Package testutil provides shared helpers for golden-file tests.
package testutil

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns "" when got and want match, otherwise a line-oriented
// unified-style diff suitable for a test failure message.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	out := "rendering mismatch (-want +got):\n"
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			out += prefixLines("-", d.Text)
		case diffpatch.DiffInsert:
			out += prefixLines("+", d.Text)
		case diffpatch.DiffEqual:
			out += prefixLines(" ", d.Text)
		}
	}
	return out
}

func prefixLines(prefix, text string) string {
	out := ""
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out += fmt.Sprintf("%s%s\n", prefix, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		out += fmt.Sprintf("%s%s\n", prefix, text[start:])
	}
	return out
}
