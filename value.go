package main

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the tagged value union. Ordering of the constants
// matches the total order imposed by Less: bool < int/float < string <
// command < deferred_command < quote.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindCommand
	KindDeferred
	KindQuote
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindCommand:
		return "command"
	case KindDeferred:
		return "deferred_command"
	case KindQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// Value is the single tagged union that flows through the machine's stacks.
// Zero value is the boolean false.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string  // string payload, or identifier bytes for command/deferred
	q    []Value // quote elements
}

func Bool(b bool) Value             { return Value{kind: KindBool, b: b} }
func Int(i int64) Value             { return Value{kind: KindInt, i: i} }
func Float(f float64) Value         { return Value{kind: KindFloat, f: f} }
func Str(s string) Value            { return Value{kind: KindString, s: s} }
func Cmd(name string) Value         { return Value{kind: KindCommand, s: name} }
func DeferredCmd(name string) Value { return Value{kind: KindDeferred, s: name} }
func Quote(elems []Value) Value     { return Value{kind: KindQuote, q: elems} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() bool      { return v.b }
func (v Value) Int() int64      { return v.i }
func (v Value) Float() float64  { return v.f }
func (v Value) Ident() string   { return v.s }
func (v Value) Elems() []Value  { return v.q }
func (v Value) IsQuote() bool   { return v.kind == KindQuote }
func (v Value) IsString() bool  { return v.kind == KindString }
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// cloneQuote performs the logical copy required by the ownership invariant:
// a quote popped by one context must not alias a quote still reachable from
// another.
func (v Value) cloneQuote() Value {
	if v.kind != KindQuote {
		return v
	}
	cp := make([]Value, len(v.q))
	copy(cp, v.q)
	return Value{kind: KindQuote, q: cp}
}

// Eq implements eq?: value equality with numeric cross-coercion and
// string<->command identity comparison by identifier bytes.
func Eq(a, b Value) bool {
	if a.kind == KindQuote && b.kind == KindQuote {
		if len(a.q) != len(b.q) {
			return false
		}
		for i := range a.q {
			if !Eq(a.q[i], b.q[i]) {
				return false
			}
		}
		return true
	}
	if a.IsNumeric() && b.IsNumeric() {
		if a.kind == KindInt && b.kind == KindInt {
			return a.i == b.i
		}
		return numericFloat(a) == numericFloat(b)
	}
	if isIdentKind(a.kind) && isIdentKind(b.kind) {
		// string<->command identity comparison; deferred_command only
		// matches other deferred_commands of the same name (it is a
		// distinct tag from command/string).
		if a.kind == KindDeferred || b.kind == KindDeferred {
			return a.kind == b.kind && a.s == b.s
		}
		return a.s == b.s
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.b == b.b
	}
	return false
}

func isIdentKind(k Kind) bool {
	return k == KindString || k == KindCommand || k == KindDeferred
}

func numericFloat(v Value) float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// tagRank groups int and float into a single numeric rank so that Less
// compares mixed int/float pairs numerically rather than bucketing all ints
// below all floats.
func tagRank(k Kind) int {
	switch k {
	case KindBool:
		return 0
	case KindInt, KindFloat:
		return 1
	case KindString:
		return 2
	case KindCommand:
		return 3
	case KindDeferred:
		return 4
	case KindQuote:
		return 5
	}
	return 6
}

// Less implements isLessThan: a total order across all value types.
func Less(a, b Value) bool {
	ra, rb := tagRank(a.kind), tagRank(b.kind)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		return !a.b && b.b
	case 1:
		return numericFloat(a) < numericFloat(b)
	case 2, 3, 4:
		return a.s < b.s
	case 5:
		return lessQuote(a.q, b.q)
	}
	return false
}

func lessQuote(a, b []Value) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if Less(a[i], b[i]) {
			return true
		}
		if Less(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

// IntoBool implements the intoBool coercion (§4.3).
func IntoBool(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return len(v.s) > 0
	case KindQuote:
		return len(v.q) > 0
	default: // command, deferred_command
		return true
	}
}

// IntoInt implements the intoInt coercion.
func IntoInt(v Value) (int64, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		if v.f != v.f || v.f >= maxIntFloat || v.f < minIntFloat {
			return 0, &MachineError{Kind: ErrWrongType, Message: "float out of int range"}
		}
		return int64(v.f), nil
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, &MachineError{Kind: ErrWrongType, Message: "invalid integer string: " + v.s}
		}
		return n, nil
	default:
		return 0, &MachineError{Kind: ErrWrongType, Message: "cannot coerce " + v.kind.String() + " to int"}
	}
}

const maxIntFloat = float64(math.MaxInt64)
const minIntFloat = float64(math.MinInt64)

// IntoFloat implements the intoFloat coercion.
func IntoFloat(v Value) (float64, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1.0, nil
		}
		return 0.0, nil
	case KindInt:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, &MachineError{Kind: ErrWrongType, Message: "invalid float string: " + v.s}
		}
		return f, nil
	default:
		return 0, &MachineError{Kind: ErrWrongType, Message: "cannot coerce " + v.kind.String() + " to float"}
	}
}

// IntoString implements the intoString coercion.
func IntoString(v Value) (string, error) {
	switch v.kind {
	case KindString:
		return v.s, nil
	case KindCommand, KindDeferred:
		return v.s, nil
	case KindBool:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return canonicalFloat(v.f), nil
	default:
		return "", &MachineError{Kind: ErrWrongType, Message: "cannot coerce quote to string"}
	}
}

// canonicalFloat renders f so that it always contains a decimal point; a
// finite f therefore re-tokenizes as a float literal, satisfying the
// round-trip property for numeric literals. NaN and the infinities render
// as "NaN.0", "+Inf.0" and "-Inf.0", which lex as terms, not floats.
func canonicalFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// IntoQuote implements the intoQuote coercion.
func IntoQuote(v Value) []Value {
	if v.kind == KindQuote {
		return v.q
	}
	return []Value{v}
}

// IntoCommand coerces a value into a command reference, extending the §4.3
// family for the to-cmd builtin.
func IntoCommand(v Value) (Value, error) {
	switch v.kind {
	case KindCommand:
		return v, nil
	case KindString, KindDeferred:
		return Cmd(v.s), nil
	default:
		return Value{}, &MachineError{Kind: ErrWrongType, Message: "cannot coerce " + v.kind.String() + " to command"}
	}
}

// IntoDeferred coerces a value into a deferred command reference, extending
// the §4.3 family for the to-def builtin.
func IntoDeferred(v Value) (Value, error) {
	switch v.kind {
	case KindDeferred:
		return v, nil
	case KindString, KindCommand:
		return DeferredCmd(v.s), nil
	default:
		return Value{}, &MachineError{Kind: ErrWrongType, Message: "cannot coerce " + v.kind.String() + " to deferred command"}
	}
}

// Display renders v the way .s and the --dump state renderer do: strings
// are quoted, deferred commands keep their backslash, quotes render
// bracketed and space-separated.
func Display(v Value) string {
	switch v.kind {
	case KindString:
		return quoteString(v.s)
	case KindDeferred:
		return "\\" + v.s
	case KindQuote:
		var sb strings.Builder
		sb.WriteString("[ ")
		for _, e := range v.q {
			sb.WriteString(Display(e))
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		s, _ := IntoString(v)
		return s
	}
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
