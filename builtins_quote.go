package main

import "sort"

func registerQuoteBuiltins(dict *Dict) {
	def(dict, "map", "( [a...] f -- [b...] )", bMap)
	def(dict, "filter", "( [a...] f -- [a...] )", bFilter)
	def(dict, "any?", "( [a...] f -- bool )", bAnyHuh)
	def(dict, "len", "( a -- n )", bLen)
	def(dict, "...", "( [a...] -- a... )", bUnpack)
	def(dict, "rev", "( a -- a )", bRev)
	def(dict, "sort", "( a -- a )", bSort)
	def(dict, "concat", "( [a...] [b...] -- [a... b...] )", bConcat)
	def(dict, "push", "( [a...] v -- [a... v] )", bPush)
	def(dict, "pop", "( [a... v] -- [a...] v )", bPop)
	def(dict, "enq", "( [a...] v -- [v a...] )", bEnq)
	def(dict, "deq", "( [v a...] -- [a...] v )", bDeq)
}

// invokeOn runs f in a jailed child machine seeded with a single value,
// elem, and returns that jail's final working-stack contents -- the
// mechanism map/filter/any? all share (§4.5 "invoke f via do (jailed)").
func (m *Machine) invokeOn(elem Value, f Value) ([]Value, error) {
	m.openContext()
	m.push(elem)
	runErr := m.childDict(func() error { return m.execAction(f) })
	frame, _ := m.nest.Pop()
	if runErr != nil {
		return nil, runErr
	}
	return append([]Value(nil), frame.Items()...), nil
}

func bMap(m *Machine) error {
	vs, err := m.popN("map", 2)
	if err != nil {
		return err
	}
	listVal, f := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "map", Message: "expected a quote"}
	}
	var out []Value
	for _, elem := range listVal.q {
		res, err := m.invokeOn(elem, f)
		if err != nil {
			rewind(m, vs)
			return err
		}
		out = append(out, res...)
	}
	m.push(Quote(out))
	return nil
}

func bFilter(m *Machine) error {
	vs, err := m.popN("filter", 2)
	if err != nil {
		return err
	}
	listVal, f := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "filter", Message: "expected a quote"}
	}
	var out []Value
	for _, elem := range listVal.q {
		res, err := m.invokeOn(elem, f)
		if err != nil {
			rewind(m, vs)
			return err
		}
		keep := len(res) > 0 && IntoBool(res[len(res)-1])
		if keep {
			out = append(out, elem)
		}
	}
	m.push(Quote(out))
	return nil
}

func bAnyHuh(m *Machine) error {
	vs, err := m.popN("any?", 2)
	if err != nil {
		return err
	}
	listVal, f := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "any?", Message: "expected a quote"}
	}
	for _, elem := range listVal.q {
		res, err := m.invokeOn(elem, f)
		if err != nil {
			rewind(m, vs)
			return err
		}
		if len(res) > 0 && IntoBool(res[len(res)-1]) {
			m.push(Bool(true))
			return nil
		}
	}
	m.push(Bool(false))
	return nil
}

func bLen(m *Machine) error {
	v, err := m.pop("len")
	if err != nil {
		return err
	}
	switch v.kind {
	case KindString:
		m.push(Int(int64(len(v.s))))
	case KindQuote:
		m.push(Int(int64(len(v.q))))
	default:
		m.push(Int(1))
	}
	return nil
}

func bUnpack(m *Machine) error {
	v, err := m.pop("...")
	if err != nil {
		return err
	}
	if v.kind != KindQuote {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrWrongType, Command: "...", Message: "expected a quote"}
	}
	m.pushAll(v.q)
	return nil
}

func bRev(m *Machine) error {
	v, err := m.pop("rev")
	if err != nil {
		return err
	}
	switch v.kind {
	case KindString:
		b := []byte(v.s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		m.push(Str(string(b)))
	case KindQuote:
		n := len(v.q)
		out := make([]Value, n)
		for i, e := range v.q {
			out[n-1-i] = e
		}
		m.push(Quote(out))
	default:
		m.push(v)
	}
	return nil
}

func bSort(m *Machine) error {
	v, err := m.pop("sort")
	if err != nil {
		return err
	}
	if v.kind != KindQuote {
		m.push(v)
		return nil
	}
	out := append([]Value(nil), v.q...)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	m.push(Quote(out))
	return nil
}

func bConcat(m *Machine) error {
	vs, err := m.popN("concat", 2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]
	if a.kind != KindQuote || b.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "concat", Message: "expected two quotes"}
	}
	out := make([]Value, 0, len(a.q)+len(b.q))
	out = append(out, a.q...)
	out = append(out, b.q...)
	m.push(Quote(out))
	return nil
}

func bPush(m *Machine) error {
	vs, err := m.popN("push", 2)
	if err != nil {
		return err
	}
	listVal, elem := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "push", Message: "expected a quote"}
	}
	out := append(append([]Value(nil), listVal.q...), elem)
	m.push(Quote(out))
	return nil
}

func bPop(m *Machine) error {
	v, err := m.pop("pop")
	if err != nil {
		return err
	}
	if v.kind != KindQuote || len(v.q) == 0 {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrStackUnderflow, Command: "pop", Message: "quote is empty"}
	}
	last := v.q[len(v.q)-1]
	m.push(Quote(append([]Value(nil), v.q[:len(v.q)-1]...)))
	m.push(last)
	return nil
}

func bEnq(m *Machine) error {
	vs, err := m.popN("enq", 2)
	if err != nil {
		return err
	}
	listVal, elem := vs[0], vs[1]
	if listVal.kind != KindQuote {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "enq", Message: "expected a quote"}
	}
	out := make([]Value, 0, len(listVal.q)+1)
	out = append(out, elem)
	out = append(out, listVal.q...)
	m.push(Quote(out))
	return nil
}

func bDeq(m *Machine) error {
	v, err := m.pop("deq")
	if err != nil {
		return err
	}
	if v.kind != KindQuote || len(v.q) == 0 {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrStackUnderflow, Command: "deq", Message: "quote is empty"}
	}
	first := v.q[0]
	m.push(Quote(append([]Value(nil), v.q[1:]...)))
	m.push(first)
	return nil
}
