package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jcorbin/joist/internal/fileinput"
	"github.com/jcorbin/joist/internal/logio"
	"github.com/jcorbin/joist/internal/runeio"
)

var buildVersion = "dev"

func main() {
	var (
		timeout time.Duration
		trace   bool
		dump    bool
		version bool
		program string
	)
	flag.DurationVar(&timeout, "timeout", 0, "time limit, checked before the program (or each REPL line) starts; a running program is not interrupted")
	flag.BoolVar(&trace, "trace", false, "enable dispatch trace logging")
	flag.BoolVar(&dump, "dump", false, "print a state dump after execution")
	flag.BoolVar(&version, "version", false, "print the version and exit")
	flag.StringVar(&program, "c", "", "run the given program text instead of a script file")
	flag.Parse()

	if version {
		fmt.Println(buildVersion)
		return
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	src, interactive, err := loadSource(program, flag.Args())
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	opts := []Option{
		WithOutput(os.Stdout),
		WithErrOutput(os.Stderr),
		WithVersion(buildVersion),
		WithInteractive(interactive),
		WithRandSeed(time.Now().UnixNano()),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	m := New(opts...)

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer m.dumpState(lw)
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if interactive {
		runREPL(ctx, m)
		return
	}

	log.ErrorIf(m.Run(ctx, src))
}

// loadSource decides the program text to interpret: -c text, a script file
// named by the first positional argument, or (when neither is given and
// stdin is attached to a terminal) nothing at all -- that case is reported
// as interactive and left for runREPL to read line-by-line itself, rather
// than drained up front. Piped/redirected stdin with no script is read to
// completion as a single script, same as a file.
func loadSource(program string, args []string) (src string, interactive bool, err error) {
	if program != "" {
		return program, false, nil
	}
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", false, err
		}
		defer f.Close()
		text, err := drain(namedReader{f, args[0]})
		return text, false, err
	}
	stat, statErr := os.Stdin.Stat()
	if statErr == nil && stat.Mode()&os.ModeCharDevice != 0 {
		return "", true, nil
	}
	text, err := drain(namedReader{os.Stdin, "<stdin>"})
	return text, false, err
}

// runREPL implements spec.md §1's read-evaluate-print loop execution mode:
// each line read from the machine's own Host (the same stdin rl/rls draw
// from, so the two never race over os.Stdin) is run as its own program
// against the persistent Machine -- an unclosed `[` simply carries its
// open context into the next line. Per §7's propagation policy, a
// MachineError is reported as a diagnostic and the loop continues, rather
// than aborting the way script mode does; reading to EOF (or a process
// exit requested by quit/exit, which Run already turns into a host.Exit
// call) is what ends the session.
func runREPL(ctx context.Context, m *Machine) {
	for {
		if err := ctx.Err(); err != nil {
			reportDiagnostic(m, err)
			return
		}
		line, err := m.host.ReadLine()
		if err != nil {
			return
		}
		if runErr := m.Run(ctx, line); runErr != nil {
			reportDiagnostic(m, runErr)
		}
	}
}

// reportDiagnostic writes err to the diagnostic stream through the
// Machine's own Host -- never a separately held writer -- coloring it red
// when that stream is a terminal, matching the red/green/norm builtins'
// own TTY-gating and §7's "diagnostic in red to the diagnostic stream".
func reportDiagnostic(m *Machine, err error) {
	var sb strings.Builder
	if m.host.IsTTY(StreamStderr) {
		runeio.WriteANSIString(&sb, "\x1b[31m")
		fmt.Fprintf(&sb, "ERROR: %v\n", err)
		runeio.WriteANSIString(&sb, "\x1b[0m")
	} else {
		fmt.Fprintf(&sb, "ERROR: %v\n", err)
	}
	_, _ = m.host.Write(StreamStderr, []byte(sb.String()))
}

// drain reads r to completion through fileinput.Input, the teacher's
// line/location-tracking reader, used here purely for its line-accounting
// on the way to a flat source string rather than for rune-at-a-time VM
// stepping.
func drain(r io.Reader) (string, error) {
	var in fileinput.Input
	in.Queue = []io.Reader{r}
	var buf bytes.Buffer
	for {
		c, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return buf.String(), nil
			}
			return buf.String(), err
		}
		buf.WriteRune(c)
	}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
