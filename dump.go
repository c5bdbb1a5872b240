package main

import (
	"fmt"
	"io"
	"strings"
)

// dumpState renders the full context stack and dictionary to w in a
// human-scannable form, the `--dump` ambient feature mirroring the
// teacher's dumper.go (there: memory cells and return stack; here: nested
// working stacks and dictionary names).
func (m *Machine) dumpState(w io.Writer) {
	frames := m.nest.Items()
	fmt.Fprintf(w, "context stack (%d frame(s)):\n", len(frames))
	for i, frame := range frames {
		fmt.Fprintf(w, "  [%d] depth=%d:", i, frame.Len())
		for _, v := range frame.Items() {
			fmt.Fprintf(w, " %s", Display(v))
		}
		fmt.Fprintln(w)
	}

	names := m.dict.Names()
	fmt.Fprintf(w, "dictionary (%d name(s)):\n", len(names))
	for _, name := range names {
		entry, _ := m.dict.Lookup(name)
		if entry == nil {
			continue
		}
		if entry.Description != "" {
			fmt.Fprintf(w, "  %-16s %s\n", name, entry.Description)
		} else {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

// dotSString renders just the current top context, the stack-effect `.s`
// uses (§4.5 "stack" group) -- backed by the same Display formatting as
// dump.
func (m *Machine) dotSString() string {
	var sb strings.Builder
	for _, v := range m.top().Items() {
		sb.WriteString(Display(v))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
