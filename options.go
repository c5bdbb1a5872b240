package main

import (
	"io"
	"math/rand"

	"github.com/jcorbin/joist/internal/flushio"
)

// Option configures a Machine at construction time (teacher's options.go
// functional-option pattern, generalized from VM construction to Machine
// construction).
type Option interface{ apply(m *Machine) }

var defaultOptions = Options(
	withHost(newOSHost()),
	withOutput(io.Discard),
	withErrOutput(io.Discard),
	versionOption("dev"),
	inspireOption(defaultInspirations()),
	seedOption(1),
)

// Options combines any number of Option-s into one, flattening nested
// Options and dropping nils, the same way the teacher's VMOptions did.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Machine) {}

type options []Option

func (opts options) apply(m *Machine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

type hostOption struct{ Host }

func withHost(h Host) hostOption { return hostOption{h} }
func WithHost(h Host) Option     { return withHost(h) }

func (o hostOption) apply(m *Machine) { m.host = o.Host }

type outputOption struct{ io.Writer }
type errOutputOption struct{ io.Writer }

func withOutput(w io.Writer) outputOption       { return outputOption{w} }
func withErrOutput(w io.Writer) errOutputOption { return errOutputOption{w} }

// WithOutput sets the Machine's buffered output stream, which Run flushes
// when it returns. p, nl, red, green and norm do not use it: they write
// through the Host.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithErrOutput sets the Machine's buffered error stream, which Run flushes
// when it returns. ep, enl, .s and the driver's diagnostics do not use it:
// they write through the Host.
func WithErrOutput(w io.Writer) Option { return withErrOutput(w) }

func (o outputOption) apply(m *Machine) { m.out = flushio.NewWriteFlusher(o.Writer) }
func (o errOutputOption) apply(m *Machine) {
	m.err = flushio.NewWriteFlusher(o.Writer)
}

type logfOption func(mess string, args ...interface{})

// WithLogf installs a dispatch-trace logging hook (the --trace ambient
// feature); nil disables tracing.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfOption(logfn) }

func (fn logfOption) apply(m *Machine) { m.logf = fn }

type versionOption string

// WithVersion sets the string returned by the version builtin.
func WithVersion(v string) Option { return versionOption(v) }

func (v versionOption) apply(m *Machine) { m.version = string(v) }

type interactiveOption bool

// WithInteractive marks the machine as running an interactive REPL, which
// the interactive? builtin reports.
func WithInteractive(b bool) Option { return interactiveOption(b) }

func (b interactiveOption) apply(m *Machine) { m.interactive = bool(b) }

type seedOption int64

// WithRandSeed pins the seed used by rand and inspire; omitted, the seed is
// 1, so the sequence repeats from run to run.
func WithRandSeed(seed int64) Option { return seedOption(seed) }

func (s seedOption) apply(m *Machine) { m.rng = rand.New(rand.NewSource(int64(s))) }

type inspireOption []string

// WithInspirations overrides the inspiration pool used by inspire.
func WithInspirations(pool []string) Option { return inspireOption(pool) }

func (p inspireOption) apply(m *Machine) { m.inspire = append([]string(nil), p...) }
