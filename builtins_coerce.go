package main

func registerCoerceBuiltins(dict *Dict) {
	def(dict, "to-bool", "( a -- bool )", bToBool)
	def(dict, "to-int", "( a -- int )", bToInt)
	def(dict, "to-float", "( a -- float )", bToFloat)
	def(dict, "to-string", "( a -- string )", bToString)
	def(dict, "to-cmd", "( a -- command )", bToCmd)
	def(dict, "to-def", "( a -- deferred_command )", bToDef)
	def(dict, "to-quote", "( a -- quote )", bToQuote)
}

func bToBool(m *Machine) error {
	v, err := m.pop("to-bool")
	if err != nil {
		return err
	}
	m.push(Bool(IntoBool(v)))
	return nil
}

func bToInt(m *Machine) error {
	v, err := m.pop("to-int")
	if err != nil {
		return err
	}
	n, err := IntoInt(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(Int(n))
	return nil
}

func bToFloat(m *Machine) error {
	v, err := m.pop("to-float")
	if err != nil {
		return err
	}
	f, err := IntoFloat(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(Float(f))
	return nil
}

func bToString(m *Machine) error {
	v, err := m.pop("to-string")
	if err != nil {
		return err
	}
	s, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(Str(s))
	return nil
}

func bToCmd(m *Machine) error {
	v, err := m.pop("to-cmd")
	if err != nil {
		return err
	}
	c, err := IntoCommand(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(c)
	return nil
}

func bToDef(m *Machine) error {
	v, err := m.pop("to-def")
	if err != nil {
		return err
	}
	d, err := IntoDeferred(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	m.push(d)
	return nil
}

func bToQuote(m *Machine) error {
	v, err := m.pop("to-quote")
	if err != nil {
		return err
	}
	m.push(Quote(IntoQuote(v)))
	return nil
}
