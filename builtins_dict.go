package main

func registerDictBuiltins(dict *Dict) {
	def(dict, "def!", "( action name -- )", bDefBang)
	def(dict, "def?", "( name -- bool )", bDefHuh)
	def(dict, "defs", "( -- [name...] )", bDefs)
	def(dict, "usage", "( name -- description )", bUsage)
	def(dict, "def-usage", "( name desc -- )", bDefUsage)
	def(dict, ":", "( val name -- ) or ( v1 ... vk [n1 ... nk] -- )", bColon)
}

func bDefBang(m *Machine) error {
	vs, err := m.popN("def!", 2)
	if err != nil {
		return err
	}
	action, nameVal := vs[0], vs[1]
	name, ok := identOf(nameVal)
	if !ok {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "def!", Message: "name must be string, command, or deferred_command"}
	}
	m.dict.Define(name, &DictEntry{Name: name, Action: Quote(IntoQuote(action))})
	return nil
}

func bDefHuh(m *Machine) error {
	v, err := m.pop("def?")
	if err != nil {
		return err
	}
	name, ok := identOf(v)
	if !ok {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrWrongType, Command: "def?", Message: "name must be string, command, or deferred_command"}
	}
	m.push(Bool(m.dict.Has(name)))
	return nil
}

func bDefs(m *Machine) error {
	names := m.dict.Names()
	elems := make([]Value, len(names))
	for i, n := range names {
		elems[i] = Str(n)
	}
	m.push(Quote(elems))
	return nil
}

func bUsage(m *Machine) error {
	v, err := m.pop("usage")
	if err != nil {
		return err
	}
	name, ok := identOf(v)
	if !ok {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrWrongType, Command: "usage", Message: "name must be string, command, or deferred_command"}
	}
	entry, found := m.dict.Lookup(name)
	if !found {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrCommandUndefined, Command: "usage", Message: name}
	}
	m.push(Str(entry.Description))
	return nil
}

func bDefUsage(m *Machine) error {
	vs, err := m.popN("def-usage", 2)
	if err != nil {
		return err
	}
	nameVal, descVal := vs[0], vs[1]
	name, ok := identOf(nameVal)
	if !ok {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: "def-usage", Message: "name must be string, command, or deferred_command"}
	}
	desc, err := IntoString(descVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	entry, found := m.dict.Lookup(name)
	if !found {
		rewind(m, vs)
		return &MachineError{Kind: ErrCommandUndefined, Command: "def-usage", Message: name}
	}
	entry.Description = desc
	return nil
}

// bColon implements both forms of `:` (§4.5 Dictionary), discriminated by
// whether the top of stack is a name (single-term form) or a quote of
// names (multi-term form).
func bColon(m *Machine) error {
	top, ok := m.top().Peek()
	if !ok {
		return &MachineError{Kind: ErrStackUnderflow, Command: ":"}
	}

	if top.kind != KindQuote {
		vs, err := m.popN(":", 2)
		if err != nil {
			return err
		}
		val, nameVal := vs[0], vs[1]
		name, ok := identOf(nameVal)
		if !ok {
			rewind(m, vs)
			return &MachineError{Kind: ErrWrongType, Command: ":", Message: "name must be string, command, or deferred_command"}
		}
		m.dict.Define(name, &DictEntry{Name: name, Action: Quote([]Value{val})})
		return nil
	}

	namesVal, _ := m.pop(":")
	names := namesVal.q
	vals, err := m.popN(":", len(names))
	if err != nil {
		rewind(m, []Value{namesVal})
		return err
	}
	for _, nameVal := range names {
		if _, ok := identOf(nameVal); !ok {
			rewind(m, vals)
			rewind(m, []Value{namesVal})
			return &MachineError{Kind: ErrWrongType, Command: ":", Message: "name must be string, command, or deferred_command"}
		}
	}
	for i, nameVal := range names {
		name, _ := identOf(nameVal)
		m.dict.Define(name, &DictEntry{Name: name, Action: Quote([]Value{vals[i]})})
	}
	return nil
}
