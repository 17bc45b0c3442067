// Command cbpv-repl is a reference I/O-interleaving host: a line-at-a-time
// echo loop, written directly with internal's Term constructors (no
// parser), that suspends on every line read via shift/reset and is driven
// one Step call at a time so that the actual terminal read always happens
// between two Step calls rather than from inside one, the way
// daios-ai-msg's cmd/msg REPL drives liner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/brandonbloom/cbpv/internal"
)

const historyFile = ".cbpv_history"

// replHost implements op:request-line and op:print-line, plus op:eq so the
// demo program can recognize "quit". op:request-line never blocks: the
// driver reads the line and stashes it in pending before calling Step, so
// the hook only ever hands back what is already in hand.
type replHost struct {
	internal.DefaultHost
	pending string
}

func (replHost) Literal(payload any) (internal.Value, error) {
	switch payload.(type) {
	case int, bool, string:
		return internal.ScalarValue(payload), nil
	default:
		return internal.Value{}, &internal.BadLiteralError{Payload: payload}
	}
}

func (h *replHost) Op(name string, args []internal.Value) (internal.Value, error) {
	switch name {
	case "op:request-line":
		return internal.ScalarValue(h.pending), nil
	case "op:print-line":
		if len(args) != 1 || !args[0].IsScalar() {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		fmt.Printf("=> %v\n", args[0].Scalar)
		return internal.ScalarValue(true), nil
	case "op:eq":
		if len(args) != 2 || !args[0].IsScalar() || !args[1].IsScalar() {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		return internal.ScalarValue(args[0].Scalar == args[1].Scalar), nil
	}
	return internal.Value{}, &internal.UnknownOpError{Op: name}
}

// echoLoop builds:
//
//	(letrec ((loop (λ (_)
//	                 (let line (reset (shift io (op:request-line)))
//	                   (if (op:eq line "quit")
//	                       0
//	                       (let _ (op:print-line line)
//	                         ((? loop) 0)))))))
//	  ((? loop) 0))
//
// Each pass around loop reads one line via the shift/reset pair (the only
// place this program suspends back to the driver) and echoes it until the
// line "quit" is seen.
func echoLoop() internal.Term {
	body := internal.Let("line",
		internal.Reset(internal.Shift("io", internal.Op("op:request-line"))),
		internal.If(
			internal.Op("op:eq", internal.Sym("line"), internal.Lit("quit")),
			internal.Lit(0),
			internal.Let("_",
				internal.Op("op:print-line", internal.Sym("line")),
				internal.Apply(internal.Resume(internal.Sym("loop")), internal.Lit(0)),
			),
		),
	)
	return internal.Letrec(
		[]internal.LetrecBinding{
			{Name: "loop", Def: internal.Abstract([]string{"_"}, body)},
		},
		internal.Apply(internal.Resume(internal.Sym("loop")), internal.Lit(0)),
	)
}

// awaitingLine reports whether state's control is the request-line op,
// i.e. the next Step call is about to ask the host for a line.
func awaitingLine(state *internal.State) bool {
	op, ok := state.Control.(*internal.OpTerm)
	return ok && op.Op == "op:request-line"
}

func main() {
	trace := flag.Bool("trace", false, "print each control term before it is reduced")
	flag.Parse()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	host := &replHost{}
	m := internal.NewMachine(host)
	m.Trace = *trace

	fmt.Println("cbpv-repl: type lines to echo, \"quit\" to exit")

	state := internal.Inject(echoLoop())
	for {
		if awaitingLine(state) {
			line, err := ln.Prompt("cbpv> ")
			if err != nil {
				if err != io.EOF {
					fmt.Fprintln(os.Stderr, err)
				}
				fmt.Println()
				return
			}
			ln.AppendHistory(line)
			host.pending = line
		}

		result, err := m.Step(state)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		switch r := result.(type) {
		case internal.Done:
			fmt.Println("bye")
			return
		case internal.More:
			state = r.State
		}
	}
}
