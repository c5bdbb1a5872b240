package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/joist/internal/runeio"
)

// registerIOBuiltins wires §4.5's "I/O (delegated to host)" vocabulary onto
// the Host interface (host.go/host_os.go).
func registerIOBuiltins(dict *Dict) {
	def(dict, "p", "( a -- )", bP)
	def(dict, "ep", "( a -- )", bEP)
	def(dict, "nl", "( -- )", bNL)
	def(dict, "enl", "( -- )", bENL)
	def(dict, "red", "( -- )", bRed)
	def(dict, "green", "( -- )", bGreen)
	def(dict, "norm", "( -- )", bNorm)
	def(dict, "rl", "( -- s )", bRL)
	def(dict, "rls", "( -- [s...] )", bRLS)
	def(dict, "cwd", "( -- s )", bCwd)
	def(dict, "cd", "( s -- )", bCd)
	def(dict, "ls", "( s -- [s...] )", bLs)
	def(dict, "readf", "( path -- s )", bReadf)
	def(dict, "writef", "( s path -- )", bWritef)
	def(dict, "appendf", "( s path -- )", bAppendf)
	def(dict, "exec", "( [argv...] -- stdout stderr code )", bExec)
	def(dict, "args", "( -- [s...] )", bArgs)
	def(dict, "procname", "( -- s )", bProcname)
	def(dict, "interactive?", "( -- bool )", bInteractiveHuh)
	def(dict, "version", "( -- s )", bVersion)
	def(dict, "quit", "( -- )", bQuit)
	def(dict, "exit", "( code -- )", bExit)
	def(dict, "inspire", "( -- s )", bInspire)
}

// rawString renders a value the way p/ep do: strings pass through verbatim,
// everything else uses the same literal form `.s`/dump use.
func rawString(v Value) string {
	if v.kind == KindString {
		return v.s
	}
	return Display(v)
}

func bP(m *Machine) error {
	v, err := m.pop("p")
	if err != nil {
		return err
	}
	_, werr := m.host.Write(StreamStdout, []byte(rawString(v)))
	if werr != nil {
		rewind(m, []Value{v})
	}
	return werr
}

func bEP(m *Machine) error {
	v, err := m.pop("ep")
	if err != nil {
		return err
	}
	_, werr := m.host.Write(StreamStderr, []byte(rawString(v)))
	if werr != nil {
		rewind(m, []Value{v})
	}
	return werr
}

func bNL(m *Machine) error {
	_, err := m.host.Write(StreamStdout, []byte{'\n'})
	return err
}

func bENL(m *Machine) error {
	_, err := m.host.Write(StreamStderr, []byte{'\n'})
	return err
}

// writeANSI emits code to stdout, but only when stdout is a terminal -- a
// script piped to a file should never see raw escape bytes.
func writeANSI(m *Machine, code string) error {
	if !m.host.IsTTY(StreamStdout) {
		return nil
	}
	var sb strings.Builder
	if _, err := runeio.WriteANSIString(&sb, code); err != nil {
		return err
	}
	_, err := m.host.Write(StreamStdout, []byte(sb.String()))
	return err
}

func bRed(m *Machine) error   { return writeANSI(m, "\x1b[31m") }
func bGreen(m *Machine) error { return writeANSI(m, "\x1b[32m") }
func bNorm(m *Machine) error  { return writeANSI(m, "\x1b[0m") }

func bRL(m *Machine) error {
	line, err := m.host.ReadLine()
	if err != nil {
		return &MachineError{Kind: ErrIOError, Command: "rl", Err: err}
	}
	m.push(Str(line))
	return nil
}

func bRLS(m *Machine) error {
	var lines []Value
	for {
		line, err := m.host.ReadLine()
		if err != nil {
			break
		}
		lines = append(lines, Str(line))
	}
	m.push(Quote(lines))
	return nil
}

func bCwd(m *Machine) error {
	wd, err := m.host.Getwd()
	if err != nil {
		return &MachineError{Kind: ErrIOError, Command: "cwd", Err: err}
	}
	m.push(Str(wd))
	return nil
}

func bCd(m *Machine) error {
	v, err := m.pop("cd")
	if err != nil {
		return err
	}
	path, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	if err := m.host.Chdir(path); err != nil {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrIOError, Command: "cd", Err: err}
	}
	return nil
}

func bLs(m *Machine) error {
	v, err := m.pop("ls")
	if err != nil {
		return err
	}
	path, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	names, err := m.host.ListDir(path)
	if err != nil {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrIOError, Command: "ls", Err: err}
	}
	elems := make([]Value, len(names))
	for i, n := range names {
		elems[i] = Str(n)
	}
	m.push(Quote(elems))
	return nil
}

func bReadf(m *Machine) error {
	v, err := m.pop("readf")
	if err != nil {
		return err
	}
	path, err := IntoString(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	data, err := m.host.ReadFile(path)
	if err != nil {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrIOError, Command: "readf", Err: err}
	}
	m.push(Str(string(data)))
	return nil
}

func bWritef(m *Machine) error {
	vs, err := m.popN("writef", 2)
	if err != nil {
		return err
	}
	sVal, pathVal := vs[0], vs[1]
	s, err := IntoString(sVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	path, err := IntoString(pathVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	if err := m.host.WriteFile(path, []byte(s)); err != nil {
		rewind(m, vs)
		return &MachineError{Kind: ErrIOError, Command: "writef", Err: err}
	}
	return nil
}

func bAppendf(m *Machine) error {
	vs, err := m.popN("appendf", 2)
	if err != nil {
		return err
	}
	sVal, pathVal := vs[0], vs[1]
	s, err := IntoString(sVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	path, err := IntoString(pathVal)
	if err != nil {
		rewind(m, vs)
		return err
	}
	if err := m.host.AppendFile(path, []byte(s)); err != nil {
		rewind(m, vs)
		return &MachineError{Kind: ErrIOError, Command: "appendf", Err: err}
	}
	return nil
}

func bExec(m *Machine) error {
	v, err := m.pop("exec")
	if err != nil {
		return err
	}
	if v.kind != KindQuote || len(v.q) == 0 {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrWrongType, Command: "exec", Message: "expected a non-empty quote of strings"}
	}
	argv := make([]string, len(v.q))
	for i, e := range v.q {
		s, err := IntoString(e)
		if err != nil {
			rewind(m, []Value{v})
			return err
		}
		argv[i] = s
	}
	res, err := m.host.Spawn(argv)
	if err != nil {
		rewind(m, []Value{v})
		return &MachineError{Kind: ErrProcessNameUnknown, Command: "exec", Err: err}
	}
	m.push(Str(res.Stdout))
	m.push(Str(res.Stderr))
	m.push(Int(int64(res.ExitCode)))
	return nil
}

func bArgs(m *Machine) error {
	args := m.host.Args()
	elems := make([]Value, 0, len(args))
	if len(args) > 0 {
		for _, a := range args[1:] {
			elems = append(elems, Str(a))
		}
	}
	m.push(Quote(elems))
	return nil
}

func bProcname(m *Machine) error {
	args := m.host.Args()
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	m.push(Str(name))
	return nil
}

func bInteractiveHuh(m *Machine) error {
	m.push(Bool(m.interactive))
	return nil
}

func bVersion(m *Machine) error {
	m.push(Str(m.version))
	return nil
}

// bQuit implements `quit`: it warns (but does not fail) if the outer-most
// context still holds unconsumed values, then requests a clean exit.
func bQuit(m *Machine) error {
	root, ok := m.nest.Bottom()
	if ok && root.Len() > 0 {
		msg := fmt.Sprintf("quit: %d value(s) left on the outer stack\n", root.Len())
		_, _ = m.host.Write(StreamStderr, []byte(msg))
	}
	return exitSignal{Code: 0}
}

// bExit implements `exit`: pops and coerces an int exit code, clamping it to
// [0,255] per §6.3, diagnosing the clamp, then requests termination.
func bExit(m *Machine) error {
	v, err := m.pop("exit")
	if err != nil {
		return err
	}
	n, err := IntoInt(v)
	if err != nil {
		rewind(m, []Value{v})
		return err
	}
	code, clamped := clampExitCode(n)
	if clamped {
		msg := fmt.Sprintf("exit: code %d clamped to %d\n", n, code)
		_, _ = m.host.Write(StreamStderr, []byte(msg))
	}
	return exitSignal{Code: code}
}

func bInspire(m *Machine) error {
	if len(m.inspire) == 0 {
		m.push(Str(""))
		return nil
	}
	i := int(m.rng.Uint64() % uint64(len(m.inspire)))
	m.push(Str(m.inspire[i]))
	return nil
}
