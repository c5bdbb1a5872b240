package main

func registerEvalBuiltins(dict *Dict) {
	def(dict, "do!", "( action -- ? )", bDoBang)
	def(dict, "do", "( action -- ? )", bDo)
	def(dict, "do!?", "( action cond -- ? )", bDoBangHuh)
	def(dict, "do?", "( action cond -- ? )", bDoHuh)
	def(dict, "doin", "( ctx action -- quote )", bDoin)
	def(dict, "loop", "( action -- )", bLoop)
	def(dict, "eval", "( code -- ? )", bEval)
}

func bDoBang(m *Machine) error {
	action, err := m.pop("do!")
	if err != nil {
		return err
	}
	return m.execAction(action)
}

func bDo(m *Machine) error {
	action, err := m.pop("do")
	if err != nil {
		return err
	}
	return m.childDict(func() error { return m.execAction(action) })
}

func bDoBangHuh(m *Machine) error {
	vs, err := m.popN("do!?", 2)
	if err != nil {
		return err
	}
	action, cond := vs[0], vs[1]
	if !IntoBool(cond) {
		return nil
	}
	return m.execAction(action)
}

func bDoHuh(m *Machine) error {
	vs, err := m.popN("do?", 2)
	if err != nil {
		return err
	}
	action, cond := vs[0], vs[1]
	if !IntoBool(cond) {
		return nil
	}
	return m.childDict(func() error { return m.execAction(action) })
}

func bDoin(m *Machine) error {
	vs, err := m.popN("doin", 2)
	if err != nil {
		return err
	}
	ctxVal, actionVal := vs[0], vs[1]

	m.openContext()
	m.pushAll(IntoQuote(ctxVal))

	runErr := m.childDict(func() error { return m.execAction(actionVal) })
	resultFrame, _ := m.nest.Pop()

	if runErr != nil {
		rewind(m, vs)
		return runErr
	}
	m.push(Quote(append([]Value(nil), resultFrame.Items()...)))
	return nil
}

// bLoop repeats action until it fails; the terminating error is swallowed,
// a bug-compatible default per §9's open question.
func bLoop(m *Machine) error {
	action, err := m.pop("loop")
	if err != nil {
		return err
	}
	for {
		if err := m.execAction(action); err != nil {
			return nil
		}
	}
}

func bEval(m *Machine) error {
	v, err := m.pop("eval")
	if err != nil {
		return err
	}
	code, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	return m.Interpret(code)
}
