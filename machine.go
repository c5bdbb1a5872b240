package main

import (
	"math/rand"

	"github.com/jcorbin/joist/internal/stack"
)

// Machine holds all of the evaluator's state: the context stack of working
// stacks (§3 "Machine state"), the command dictionary, the host interface,
// and the diagnostic/output streams.
type Machine struct {
	nest *stack.Stack[*stack.Stack[Value]]
	dict *Dict

	host Host

	out flushWriter
	err flushWriter

	logf func(mess string, args ...interface{})

	rng *rand.Rand

	version     string
	interactive bool
	inspire     []string
}

// flushWriter is the minimal interface Machine needs of its output streams;
// satisfied by internal/flushio.WriteFlusher.
type flushWriter interface {
	Write(p []byte) (int, error)
	Flush() error
}

// top returns the live working stack: the top of the context stack.
// Invariant 1 (§3) guarantees nest is never empty during evaluation.
func (m *Machine) top() *stack.Stack[Value] {
	s, ok := m.nest.Peek()
	if !ok {
		panic("joist: context stack invariant violated: empty nest")
	}
	return s
}

// push pushes v onto the current working stack.
func (m *Machine) push(v Value) { m.top().Push(v) }

// pushAll restores vs (in original order) onto the current working stack;
// used by the rewind discipline after a failed command.
func (m *Machine) pushAll(vs []Value) { m.top().PushAll(vs) }

// pop pops one value, or returns StackUnderflow.
func (m *Machine) pop(cmd string) (Value, error) {
	v, ok := m.top().Pop()
	if !ok {
		return Value{}, &MachineError{Kind: ErrStackUnderflow, Command: cmd}
	}
	return v, nil
}

// popN pops n values (bottom-to-top order in the result), all-or-nothing: on
// underflow the stack is left completely untouched.
func (m *Machine) popN(cmd string, n int) ([]Value, error) {
	vs, ok := m.top().PopN(n)
	if !ok {
		return nil, &MachineError{Kind: ErrStackUnderflow, Command: cmd}
	}
	return vs, nil
}

// openContext implements reading a `[`: push a new empty working stack.
func (m *Machine) openContext() {
	m.nest.Push(stack.New[Value](8))
}

// closeContext implements reading a `]`: pop the top working stack and push
// it, materialized as a single quote value, onto the new top. Underflow (no
// matching `[`) is ContextStackUnderflow.
func (m *Machine) closeContext() error {
	if m.nest.Len() <= 1 {
		return &MachineError{Kind: ErrContextStackUnderflow, Command: "]"}
	}
	closed, _ := m.nest.Pop()
	m.push(Quote(closed.Items()))
	return nil
}

// childDict temporarily swaps in an overlay dictionary for the duration of
// f, discarding it on return -- the "jail" used by `do`, `do?`, `doin`,
// and the per-element calls of map/filter/any?.
func (m *Machine) childDict(f func() error) error {
	parent := m.dict
	m.dict = parent.Child()
	defer func() { m.dict = parent }()
	return f()
}

func (m *Machine) diagf(mess string, args ...interface{}) {
	if m.logf != nil {
		m.logf(mess, args...)
	}
}
