package main

import (
	"context"
	"errors"

	"github.com/jcorbin/joist/internal/panicerr"
	"github.com/jcorbin/joist/internal/stack"
)

// New builds a Machine with its root dictionary fully populated, applying
// opts over defaultOptions -- the teacher's functional-options construction
// pattern (options.go), generalized from VM construction to Machine
// construction.
func New(opts ...Option) *Machine {
	var m Machine
	Options(defaultOptions, Options(opts...)).apply(&m)
	m.dict = NewDict()
	registerBuiltins(m.dict)
	m.nest = stack.New[*stack.Stack[Value]](1)
	m.openContext()
	return &m
}

// Run interprets src to completion: a normal end of input, a quit/exit
// request, or an unrecovered command error. A recovered goroutine panic or
// abnormal exit is reported as a plain error rather than propagated as a Go
// panic, matching the teacher's panicerr.Recover discipline (api.go).
func (m *Machine) Run(ctx context.Context, src string) error {
	err := panicerr.Recover("joist", func() error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		return m.Interpret(src)
	})
	m.flush()

	var es exitSignal
	if errors.As(err, &es) {
		m.host.Exit(es.Code)
		return nil
	}
	return err
}

// flush drains both output streams; failures are surfaced via diagf rather
// than returned, since a flush error at shutdown has nowhere useful to go.
func (m *Machine) flush() {
	if m.out != nil {
		if err := m.out.Flush(); err != nil {
			m.diagf("flush out: %v", err)
		}
	}
	if m.err != nil {
		if err := m.err.Flush(); err != nil {
			m.diagf("flush err: %v", err)
		}
	}
}
