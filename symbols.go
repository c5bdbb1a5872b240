package main

// symbols interns identifier strings so that repeated terms (the common
// case: the same command name dispatched over and over in a loop) share one
// backing string instead of allocating a fresh one per token. Adapted from
// the teacher's string-storage table, which served the same interning role
// for FIRST's dictionary names.
type symbols struct {
	table map[string]string
}

func (sym *symbols) intern(s string) string {
	if sym.table == nil {
		sym.table = make(map[string]string)
	}
	if canon, ok := sym.table[s]; ok {
		return canon
	}
	sym.table[s] = s
	return s
}
