// Command cbpv builds a handful of demo programs directly with internal's
// Term constructors (there is no parser) and runs each to completion,
// printing the resulting scalar. It plays the same role the teacher's
// main.go plays for MyGoHVM: a small, hand-built set of demo programs
// exercising the core end to end.
package main

import (
	"fmt"
	"os"

	"github.com/brandonbloom/cbpv/internal"
)

// arithHost implements op:add, op:mul, op:sub, op:eq, op:lt, op:and, op:not
// and op:mod over int and bool scalars, the primitive layer every scenario
// below assumes.
type arithHost struct {
	internal.DefaultHost
}

func (arithHost) Literal(payload any) (internal.Value, error) {
	switch payload.(type) {
	case int, bool:
		return internal.ScalarValue(payload), nil
	default:
		return internal.Value{}, &internal.BadLiteralError{Payload: payload}
	}
}

func (h arithHost) Op(name string, args []internal.Value) (internal.Value, error) {
	switch name {
	case "op:add", "op:mul", "op:sub", "op:mod", "op:eq", "op:lt":
		if len(args) != 2 || !args[0].IsScalar() || !args[1].IsScalar() {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		a, aok := args[0].Scalar.(int)
		b, bok := args[1].Scalar.(int)
		if !aok || !bok {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		switch name {
		case "op:add":
			return internal.ScalarValue(a + b), nil
		case "op:mul":
			return internal.ScalarValue(a * b), nil
		case "op:sub":
			return internal.ScalarValue(a - b), nil
		case "op:mod":
			return internal.ScalarValue(a % b), nil
		case "op:eq":
			return internal.ScalarValue(a == b), nil
		case "op:lt":
			return internal.ScalarValue(a < b), nil
		}
	case "op:and":
		if len(args) != 2 || !args[0].IsScalar() || !args[1].IsScalar() {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		a, aok := args[0].Scalar.(bool)
		b, bok := args[1].Scalar.(bool)
		if !aok || !bok {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		return internal.ScalarValue(a && b), nil
	case "op:not":
		if len(args) != 1 || !args[0].IsScalar() {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		a, ok := args[0].Scalar.(bool)
		if !ok {
			return internal.Value{}, &internal.UnknownOpError{Op: name}
		}
		return internal.ScalarValue(!a), nil
	}
	return internal.Value{}, &internal.UnknownOpError{Op: name}
}

type scenario struct {
	name string
	term internal.Term
	want any
}

func scenarios() []scenario {
	return []scenario{
		// S1: (letrec ((sqr (λ (n) (op:mul n n)))) ((? sqr) 69))
		{
			name: "S1",
			term: internal.Letrec(
				[]internal.LetrecBinding{
					{Name: "sqr", Def: internal.Abstract([]string{"n"},
						internal.Op("op:mul", internal.Sym("n"), internal.Sym("n")))},
				},
				internal.Apply(internal.Resume(internal.Sym("sqr")), internal.Lit(69)),
			),
			want: 4761,
		},
		// S2: (let n (op:add 1 2) (op:mul n 2))
		{
			name: "S2",
			term: internal.Let("n",
				internal.Op("op:add", internal.Lit(1), internal.Lit(2)),
				internal.Op("op:mul", internal.Sym("n"), internal.Lit(2)),
			),
			want: 6,
		},
		// S3: (letrec ((f (λ (n total)
		//                   (if (op:eq n 2) total
		//                       ((? f) (op:sub n 1) (op:mul n total))))))
		//       ((? f) 10 1))
		{
			name: "S3",
			term: internal.Letrec(
				[]internal.LetrecBinding{
					{Name: "f", Def: internal.Abstract([]string{"n", "total"},
						internal.If(
							internal.Op("op:eq", internal.Sym("n"), internal.Lit(2)),
							internal.Sym("total"),
							internal.Apply(internal.Resume(internal.Sym("f")),
								internal.Op("op:sub", internal.Sym("n"), internal.Lit(1)),
								internal.Op("op:mul", internal.Sym("n"), internal.Sym("total")),
							),
						))},
				},
				internal.Apply(internal.Resume(internal.Sym("f")), internal.Lit(10), internal.Lit(1)),
			),
			want: 1814400,
		},
		// S4: (let f (reset (shift k k))
		//       (let n (f (op:add 10 55))
		//         (op:mul 3 n)))
		{
			name: "S4",
			term: internal.Let("f",
				internal.Reset(internal.Shift("k", internal.Sym("k"))),
				internal.Let("n",
					internal.Apply(internal.Sym("f"), internal.Op("op:add", internal.Lit(10), internal.Lit(55))),
					internal.Op("op:mul", internal.Lit(3), internal.Sym("n")),
				),
			),
			want: 195,
		},
		// S5: a generator built from yield/peek/next via shift, one shift
		// frame threading through three yields.
		{
			name: "S5",
			term: internal.Letrec(
				[]internal.LetrecBinding{
					{Name: "yield", Def: internal.Abstract([]string{"v"},
						internal.Shift("k", internal.Suspend(internal.Abstract([]string{"p"},
							internal.Apply(internal.Resume(internal.Sym("p")), internal.Sym("v"), internal.Sym("k")),
						))),
					)},
					{Name: "peek", Def: internal.Abstract([]string{"g"},
						internal.Apply(internal.Resume(internal.Sym("g")),
							internal.Suspend(internal.Abstract([]string{"a", "b"}, internal.Sym("a")))),
					)},
					{Name: "next", Def: internal.Abstract([]string{"g"},
						internal.Let("k",
							internal.Apply(internal.Resume(internal.Sym("g")),
								internal.Suspend(internal.Abstract([]string{"a", "b"}, internal.Sym("b")))),
							internal.Apply(internal.Sym("k"), internal.Sym("_")),
						),
					)},
				},
				internal.Let("gen",
					internal.Reset(internal.Let("_",
						internal.Apply(internal.Resume(internal.Sym("yield")), internal.Lit(1)),
						internal.Let("_",
							internal.Apply(internal.Resume(internal.Sym("yield")), internal.Lit(2)),
							internal.Apply(internal.Resume(internal.Sym("yield")), internal.Lit(3)),
						),
					)),
					internal.Let("n1", internal.Apply(internal.Resume(internal.Sym("peek")), internal.Sym("gen")),
						internal.Let("gen", internal.Apply(internal.Resume(internal.Sym("next")), internal.Sym("gen")),
							internal.Let("n2", internal.Apply(internal.Resume(internal.Sym("peek")), internal.Sym("gen")),
								internal.Let("gen", internal.Apply(internal.Resume(internal.Sym("next")), internal.Sym("gen")),
									internal.Let("n3", internal.Apply(internal.Resume(internal.Sym("peek")), internal.Sym("gen")),
										internal.Op("op:add",
											internal.Op("op:add", internal.Sym("n1"), internal.Sym("n2")),
											internal.Sym("n3"),
										),
									),
								),
							),
						),
					),
				),
			),
			want: 6,
		},
		// S6: factorial of 17, computed in the letrec style of S3, delivered
		// through a captured continuation the same way S4 delivers its
		// operand — a shift-expression wrapper around an otherwise ordinary
		// recursive factorial (see DESIGN.md for why this particular
		// program was chosen).
		{
			name: "S6",
			term: internal.Letrec(
				[]internal.LetrecBinding{
					{Name: "fact", Def: internal.Abstract([]string{"n"},
						internal.If(
							internal.Op("op:eq", internal.Sym("n"), internal.Lit(0)),
							internal.Lit(1),
							internal.Let("m",
								internal.Apply(internal.Resume(internal.Sym("fact")),
									internal.Op("op:sub", internal.Sym("n"), internal.Lit(1))),
								internal.Op("op:mul", internal.Sym("n"), internal.Sym("m"))),
						))},
				},
				internal.Let("f",
					internal.Reset(internal.Shift("k", internal.Sym("k"))),
					internal.Let("r",
						internal.Apply(internal.Resume(internal.Sym("fact")), internal.Lit(17)),
						internal.Apply(internal.Sym("f"), internal.Sym("r")),
					),
				),
			),
			want: 355687428096000,
		},
	}
}

func run(m *internal.Machine, term internal.Term) (internal.Value, error) {
	state := internal.Inject(term)
	for {
		result, err := m.Step(state)
		if err != nil {
			return internal.Value{}, err
		}
		switch r := result.(type) {
		case internal.Done:
			return r.Value, nil
		case internal.More:
			state = r.State
		}
	}
}

func newDemoMachine() *internal.Machine {
	return internal.NewMachine(arithHost{})
}

func main() {
	m := newDemoMachine()
	exit := 0
	for _, sc := range scenarios() {
		v, err := run(m, sc.term)
		if err != nil {
			fmt.Printf("%s: error: %v\n", sc.name, err)
			exit = 1
			continue
		}
		got := v.Scalar
		status := "ok"
		if got != sc.want {
			status = "MISMATCH"
			exit = 1
		}
		fmt.Printf("%s: %v (want %v) [%s]\n", sc.name, got, sc.want, status)
	}
	os.Exit(exit)
}
