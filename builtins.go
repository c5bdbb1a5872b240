package main

// registerBuiltins populates a root dictionary with the standard vocabulary
// of §4.5, grouped by the same headings the spec uses.
func registerBuiltins(dict *Dict) {
	registerStackBuiltins(dict)
	registerDictBuiltins(dict)
	registerEvalBuiltins(dict)
	registerArithBuiltins(dict)
	registerCmpBuiltins(dict)
	registerStringBuiltins(dict)
	registerQuoteBuiltins(dict)
	registerCoerceBuiltins(dict)
	registerIOBuiltins(dict)
}

// def registers a single builtin, the one-line form used throughout the
// builtins_*.go files: name, stack-effect-bearing description, Go function.
func def(dict *Dict, name, desc string, fn BuiltinFunc) {
	dict.Define(name, &DictEntry{Name: name, Description: desc, Builtin: fn})
}

// rewind restores popped arguments on the current working stack -- the
// rewind discipline every argument-popping command follows on failure
// (§4.2 "Rewind discipline", §8 property 1).
func rewind(m *Machine, vs []Value) {
	m.pushAll(vs)
}
