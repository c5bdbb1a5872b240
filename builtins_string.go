package main

import "strings"

func registerStringBuiltins(dict *Dict) {
	def(dict, "split", "( s delim -- [substr...] )", bSplit)
	def(dict, "join", "( [s...] delim -- s )", bJoin)
	def(dict, "upcase", "( s -- s )", bUpcase)
	def(dict, "downcase", "( s -- s )", bDowncase)
	def(dict, "starts-with?", "( a b -- bool )", bStartsWith)
	def(dict, "ends-with?", "( a b -- bool )", bEndsWith)
	def(dict, "contains?", "( a b -- bool )", bContains)
}

func bSplit(m *Machine) error {
	vs, err := m.popN("split", 2)
	if err != nil {
		return err
	}
	sVal, delimVal := vs[0], vs[1]
	s, err := IntoString(sVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	delim, err := IntoString(delimVal)
	if err != nil {
		rewind(m, vs)
		return err
	}

	var parts []string
	if delim == "" {
		parts = make([]string, len(s))
		for i := 0; i < len(s); i++ {
			parts[i] = s[i : i+1]
		}
	} else {
		parts = strings.Split(s, delim)
	}
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = Str(p)
	}
	m.push(Quote(elems))
	return nil
}

func bJoin(m *Machine) error {
	vs, err := m.popN("join", 2)
	if err != nil {
		return err
	}
	listVal, delimVal := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "join", Message: "expected a quote of strings"}
	}
	delim, err := IntoString(delimVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	parts := make([]string, len(listVal.q))
	for i, e := range listVal.q {
		s, err := IntoString(e)
		if err != nil {
			rewind(m, vs)
			return err
		}
		parts[i] = s
	}
	m.push(Str(strings.Join(parts, delim)))
	return nil
}

// asciiUpper/asciiLower implement the ASCII-only casing §1 restricts us to
// (no Unicode-aware casing).
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func bUpcase(m *Machine) error {
	v, err := m.pop("upcase")
	if err != nil {
		return err
	}
	s, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(Str(asciiUpper(s)))
	return nil
}

func bDowncase(m *Machine) error {
	v, err := m.pop("downcase")
	if err != nil {
		return err
	}
	s, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(Str(asciiLower(s)))
	return nil
}

func bStartsWith(m *Machine) error {
	return stringOrElemSearch(m, "starts-with?", func(s, needle string) bool { return strings.HasPrefix(s, needle) },
		func(elems []Value, needle Value) bool { return len(elems) > 0 && Eq(elems[0], needle) })
}

func bEndsWith(m *Machine) error {
	return stringOrElemSearch(m, "ends-with?", func(s, needle string) bool { return strings.HasSuffix(s, needle) },
		func(elems []Value, needle Value) bool { return len(elems) > 0 && Eq(elems[len(elems)-1], needle) })
}

func bContains(m *Machine) error {
	return stringOrElemSearch(m, "contains?", func(s, needle string) bool { return strings.Contains(s, needle) },
		func(elems []Value, needle Value) bool {
			for _, e := range elems {
				if Eq(e, needle) {
					return true
				}
			}
			return false
		})
}

func stringOrElemSearch(m *Machine, name string, strFn func(s, needle string) bool, quoteFn func(elems []Value, needle Value) bool) error {
	vs, err := m.popN(name, 2)
	if err != nil {
		return err
	}
	haystack, needle := vs[0], vs[1]
	switch haystack.kind {
	case KindString:
		n, err := IntoString(needle)
		if err != nil {
			rewind(m, vs)
			return err
		}
		m.push(Bool(strFn(haystack.s, n)))
		return nil
	case KindQuote:
		m.push(Bool(quoteFn(haystack.q, needle)))
		return nil
	default:
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: name, Message: "expected a string or quote"}
	}
}
