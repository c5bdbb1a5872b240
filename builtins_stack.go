package main


func registerStackBuiltins(dict *Dict) {
	def(dict, "dup", "( a -- a a )", bDup)
	def(dict, "drop", "( a -- )", bDrop)
	def(dict, "swap", "( a b -- b a )", bSwap)
	def(dict, "rot", "( a b c -- c a b )", bRot)
	def(dict, ".s", "( -- ) print the current working stack", bDotS)
	def(dict, "quote", "( a -- [a] )", bQuote)
	def(dict, "quote-all", "( ... -- [...] )", bQuoteAll)
	def(dict, "anything?", "( -- bool )", bAnything)
}

func bDup(m *Machine) error {
	v, err := m.pop("dup")
	if err != nil {
		return err
	}
	m.push(v)
	m.push(v.cloneQuote())
	return nil
}

func bDrop(m *Machine) error {
	_, err := m.pop("drop")
	return err
}

func bSwap(m *Machine) error {
	vs, err := m.popN("swap", 2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]
	m.push(b)
	m.push(a)
	return nil
}

func bRot(m *Machine) error {
	vs, err := m.popN("rot", 3)
	if err != nil {
		return err
	}
	a, b, c := vs[0], vs[1], vs[2]
	m.push(c)
	m.push(a)
	m.push(b)
	return nil
}

// bDotS prints the current working stack like ep/enl do: through the Host,
// never by writing m.err directly, so an embedder's Host remains the sole
// source of side effects (§5).
func bDotS(m *Machine) error {
	_, err := m.host.Write(StreamStderr, []byte(m.dotSString()))
	return err
}

func bQuote(m *Machine) error {
	v, err := m.pop("quote")
	if err != nil {
		return err
	}
	m.push(Quote([]Value{v}))
	return nil
}

func bQuoteAll(m *Machine) error {
	top := m.top()
	items := append([]Value(nil), top.Items()...)
	top.Reset()
	top.Push(Quote(items))
	return nil
}

func bAnything(m *Machine) error {
	m.push(Bool(m.top().Len() > 0))
	return nil
}
