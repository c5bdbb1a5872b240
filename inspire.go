package main

import (
	_ "embed"
	"strings"
)

//go:embed inspire.txt
var inspireSource string

// defaultInspirations splits the embedded quotation pool into one entry per
// line, skipping blanks -- the teacher's thirdKernel embeds a program as a
// resource the same way; here we embed data instead of code.
func defaultInspirations() []string {
	lines := strings.Split(inspireSource, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
