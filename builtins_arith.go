package main

import "math"

func registerArithBuiltins(dict *Dict) {
	def(dict, "+", "( a b -- a+b )", bAdd)
	def(dict, "-", "( a b -- a-b )", bSub)
	def(dict, "*", "( a b -- a*b )", bMul)
	def(dict, "/", "( a b -- a/b )", bDiv)
	def(dict, "%", "( a b -- a%b )", bMod)
	def(dict, "abs", "( a -- |a| )", bAbs)
	def(dict, "rand", "( -- i )", bRand)
}

// binaryArith implements the two-numeric dispatch common to +, -, *, /, %:
// checked int arithmetic when both operands are int, float arithmetic
// (after coercing both operands) otherwise.
func binaryArith(m *Machine, name string, intFn func(a, b int64) (int64, error), floatFn func(a, b float64) (float64, error)) error {
	vs, err := m.popN(name, 2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]
	if !a.IsNumeric() || !b.IsNumeric() {
		rewind(m, vs)
		return &MachineError{Kind: ErrWrongType, Command: name, Message: "expected two numerics"}
	}
	if a.kind == KindInt && b.kind == KindInt {
		r, err := intFn(a.i, b.i)
		if err != nil {
			rewind(m, vs)
			return err
		}
		m.push(Int(r))
		return nil
	}
	af, _ := IntoFloat(a)
	bf, _ := IntoFloat(b)
	r, err := floatFn(af, bf)
	if err != nil {
		rewind(m, vs)
		return err
	}
	m.push(Float(r))
	return nil
}

func bAdd(m *Machine) error {
	return binaryArith(m, "+", checkedAddInt, func(a, b float64) (float64, error) { return a + b, nil })
}

func bSub(m *Machine) error {
	return binaryArith(m, "-", checkedSubInt, func(a, b float64) (float64, error) { return a - b, nil })
}

func bMul(m *Machine) error {
	return binaryArith(m, "*", checkedMulInt, func(a, b float64) (float64, error) { return a * b, nil })
}

func bDiv(m *Machine) error {
	return binaryArith(m, "/", checkedDivInt, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, newErr(ErrDivisionByZero, "/")
		}
		return a / b, nil
	})
}

func bMod(m *Machine) error {
	return binaryArith(m, "%", checkedModInt, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, newErr(ErrDivisionByZero, "%")
		}
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r, nil
	})
}

func checkedAddInt(a, b int64) (int64, error) {
	c := a + b
	if b > 0 && c < a {
		return 0, newErr(ErrIntegerOverflow, "+")
	}
	if b < 0 && c > a {
		return 0, newErr(ErrIntegerUnderflow, "+")
	}
	return c, nil
}

func checkedSubInt(a, b int64) (int64, error) {
	c := a - b
	if b < 0 && c < a {
		return 0, newErr(ErrIntegerOverflow, "-")
	}
	if b > 0 && c > a {
		return 0, newErr(ErrIntegerUnderflow, "-")
	}
	return c, nil
}

func checkedMulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, newErr(ErrIntegerOverflow, "*")
	}
	c := a * b
	if c/b != a {
		if (a > 0) == (b > 0) {
			return 0, newErr(ErrIntegerOverflow, "*")
		}
		return 0, newErr(ErrIntegerUnderflow, "*")
	}
	return c, nil
}

func checkedDivInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, newErr(ErrDivisionByZero, "/")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, newErr(ErrIntegerOverflow, "/")
	}
	return a / b, nil
}

func checkedModInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, newErr(ErrDivisionByZero, "%")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, nil
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

func bAbs(m *Machine) error {
	v, err := m.pop("abs")
	if err != nil {
		return err
	}
	switch v.kind {
	case KindInt:
		if v.i == math.MinInt64 {
			rewind(m, []Value{v})
			return newErr(ErrIntegerOverflow, "abs")
		}
		if v.i < 0 {
			m.push(Int(-v.i))
		} else {
			m.push(v)
		}
		return nil
	case KindFloat:
		m.push(Float(math.Abs(v.f)))
		return nil
	default:
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrWrongType, Command: "abs", Message: "expected a numeric"}
	}
}

func bRand(m *Machine) error {
	m.push(Int(int64(m.rng.Uint64())))
	return nil
}
