package main

// Interpret tokenizes src and dispatches each token against the machine in
// turn (§4.1 data flow: source bytes -> tokenizer -> token stream ->
// dispatch). It is the core of both whole-program execution and the eval
// builtin.
func (m *Machine) Interpret(src string) error {
	lx := NewLexerString(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			return err
		}
		if tok.Kind == TokNone {
			return nil
		}
		if err := m.dispatch(tok); err != nil {
			return err
		}
	}
}

// dispatch implements the per-token interpreter actions of §4.2.
func (m *Machine) dispatch(tok Token) error {
	switch tok.Kind {
	case TokLeftBracket:
		m.openContext()
		return nil
	case TokRightBracket:
		return m.closeContext()
	case TokBool:
		m.push(Bool(tok.Bool))
		return nil
	case TokInt:
		m.push(Int(tok.Int))
		return nil
	case TokFloat:
		m.push(Float(tok.Float))
		return nil
	case TokString:
		m.push(Str(tok.Str))
		return nil
	case TokDeferredTerm:
		m.push(DeferredCmd(tok.Str))
		return nil
	case TokTerm:
		// A term read while the context stack is deeper than the root
		// (a `[ ... ]` literal is still under construction) is data: it
		// becomes a command reference stored in the resulting quote,
		// resolved only later when that quote is invoked (handleVal). A
		// term read at the root context executes immediately (§4.2 rule
		// 5) -- this is what lets `[2 *] map`'s `*` run once per element
		// instead of once while `[2 *]` itself is being parsed. The test
		// is the depth of the whole context stack, so a bracket left open
		// by an earlier Interpret call (a REPL line) counts, and so does a
		// context opened by doin or map/filter/any?: eval run inside one
		// of those stores its terms rather than executing them.
		if m.nest.Len() > 1 {
			m.push(Cmd(tok.Str))
			return nil
		}
		m.diagf("dispatch %s", tok.Str)
		return m.execNamed(tok.Str)
	}
	return nil
}

// handleVal implements handleVal(v): commands resolve and execute now
// (possibly recursing into a quote body); every other value is simply
// pushed.
func (m *Machine) handleVal(v Value) error {
	if v.kind == KindCommand {
		return m.execNamed(v.s)
	}
	m.push(v)
	return nil
}

// execNamed looks up name in the dictionary and executes its action,
// surfacing CommandUndefined if absent.
func (m *Machine) execNamed(name string) error {
	entry, ok := m.dict.Lookup(name)
	if !ok {
		return &MachineError{Kind: ErrCommandUndefined, Command: name}
	}
	return m.execEntry(entry)
}

// execEntry runs a dictionary entry's action: a builtin is invoked
// directly; a quote action is interpreted element-by-element via
// handleVal, which is what lets a user-defined word recurse into further
// command dispatch.
func (m *Machine) execEntry(entry *DictEntry) error {
	if entry.Builtin != nil {
		return entry.Builtin(m)
	}
	for _, elem := range entry.Action.q {
		if err := m.handleVal(elem); err != nil {
			return err
		}
	}
	return nil
}

// execAction runs a value as an action the way do!/do do: a
// command/string/deferred_command is invoked by name, a quote has its
// elements interpreted in order, and anything else is simply pushed back
// (mirroring handleVal's fallback).
func (m *Machine) execAction(v Value) error {
	switch v.kind {
	case KindCommand, KindString, KindDeferred:
		return m.execNamed(v.s)
	case KindQuote:
		for _, elem := range v.q {
			if err := m.handleVal(elem); err != nil {
				return err
			}
		}
		return nil
	default:
		m.push(v)
		return nil
	}
}
