/*
Command joist runs a small stack-oriented, concatenative command
interpreter.

Source is a stream of whitespace-separated terms, bracketed quotations,
string/int/float/bool literals, and \deferred terms, dispatched against a
dictionary of built-in and user-defined commands. Evaluation state is a
stack of stacks: opening a bracket pushes a fresh working stack, closing
one pops it and pushes its contents back as a single quote value on the
new top.

Commands are either built in (value.go, builtins_*.go) or user-defined via
def!/: as a quote of further commands and literals (dict.go). do/do?/doin
run an action against an overlay "jail" dictionary so that definitions it
makes do not escape back into the caller (dispatch.go).

Everything the interpreter cannot do itself -- reading a line, touching
the filesystem, spawning a process, exiting -- goes through the Host
interface (host.go), so the core evaluator stays free of direct OS calls;
host_os.go is the default implementation backing the joist binary.

Invoked with a script path, joist runs that file and exits. Invoked with
-c, it runs the given program text. Invoked with neither, it reads a
program from standard input, treating it as interactive when standard
input is attached to a terminal.
*/
package main
