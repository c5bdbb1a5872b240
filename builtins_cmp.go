package main

func registerCmpBuiltins(dict *Dict) {
	def(dict, "eq?", "( a b -- bool )", bEqHuh)
	def(dict, "gt?", "( a b -- bool )", bGtHuh)
	def(dict, "gte?", "( a b -- bool )", bGteHuh)
	def(dict, "lt?", "( a b -- bool )", bLtHuh)
	def(dict, "lte?", "( a b -- bool )", bLteHuh)
	def(dict, "and", "( a b -- bool )", bAnd)
	def(dict, "or", "( a b -- bool )", bOr)
	def(dict, "not", "( a -- bool )", bNot)
}

func popPair(m *Machine, name string) (a, b Value, err error) {
	vs, err := m.popN(name, 2)
	if err != nil {
		return Value{}, Value{}, err
	}
	return vs[0], vs[1], nil
}

func bEqHuh(m *Machine) error {
	a, b, err := popPair(m, "eq?")
	if err != nil {
		return err
	}
	m.push(Bool(Eq(a, b)))
	return nil
}

func bGtHuh(m *Machine) error {
	a, b, err := popPair(m, "gt?")
	if err != nil {
		return err
	}
	m.push(Bool(Less(b, a)))
	return nil
}

func bGteHuh(m *Machine) error {
	a, b, err := popPair(m, "gte?")
	if err != nil {
		return err
	}
	m.push(Bool(!Less(a, b)))
	return nil
}

func bLtHuh(m *Machine) error {
	a, b, err := popPair(m, "lt?")
	if err != nil {
		return err
	}
	m.push(Bool(Less(a, b)))
	return nil
}

func bLteHuh(m *Machine) error {
	a, b, err := popPair(m, "lte?")
	if err != nil {
		return err
	}
	m.push(Bool(!Less(b, a)))
	return nil
}

func bAnd(m *Machine) error {
	a, b, err := popPair(m, "and")
	if err != nil {
		return err
	}
	m.push(Bool(IntoBool(a) && IntoBool(b)))
	return nil
}

func bOr(m *Machine) error {
	a, b, err := popPair(m, "or")
	if err != nil {
		return err
	}
	m.push(Bool(IntoBool(a) || IntoBool(b)))
	return nil
}

func bNot(m *Machine) error {
	v, err := m.pop("not")
	if err != nil {
		return err
	}
	m.push(Bool(!IntoBool(v)))
	return nil
}
