package internal

import "testing"

// testHost implements op:add, op:mul, op:sub, op:eq over int, the minimum
// set the scenario tests below exercise.
type testHost struct {
	DefaultHost
	opCalls []string // records the order ops were invoked, for property 8
}

func (h *testHost) Op(name string, args []Value) (Value, error) {
	h.opCalls = append(h.opCalls, name)
	switch name {
	case "op:add", "op:mul", "op:sub":
		a, aok := args[0].Scalar.(int)
		b, bok := args[1].Scalar.(int)
		if !aok || !bok {
			return Value{}, &UnknownOpError{Op: name}
		}
		switch name {
		case "op:add":
			return ScalarValue(a + b), nil
		case "op:mul":
			return ScalarValue(a * b), nil
		case "op:sub":
			return ScalarValue(a - b), nil
		}
	case "op:eq":
		return ScalarValue(args[0].Scalar == args[1].Scalar), nil
	}
	return Value{}, &UnknownOpError{Op: name}
}

func run(t *testing.T, host Host, term Term) Value {
	t.Helper()
	m := NewMachine(host)
	state := Inject(term)
	for {
		result, err := m.Step(state)
		if err != nil {
			t.Fatalf("step error: %v (at %s)", err, Sprint(state.Control))
		}
		switch r := result.(type) {
		case Done:
			return r.Value
		case More:
			state = r.State
		default:
			t.Fatalf("unreachable step result %#v", result)
		}
	}
}

func wantInt(t *testing.T, v Value, want int) {
	t.Helper()
	if !v.IsScalar() {
		t.Fatalf("want scalar %d, got kont value", want)
	}
	got, ok := v.Scalar.(int)
	if !ok || got != want {
		t.Fatalf("want %d, got %#v", want, v.Scalar)
	}
}

// --- property 1: positivity totality -----------------------------------

func TestPositivityTotality(t *testing.T) {
	terms := []Term{
		Lit(1), Sym("x"), Op("op:add", Lit(1), Lit(2)), Suspend(Sym("x")),
		Resume(Sym("x")), Abstract([]string{"x"}, Sym("x")),
		Apply(Sym("f"), Lit(1)), Let("x", Lit(1), Sym("x")),
		Letrec(nil, Lit(1)), Reset(Lit(1)), Shift("k", Sym("k")),
		If(Lit(true), Lit(1), Lit(2)),
	}
	want := []bool{true, true, true, true, false, false, false, false, false, false, false, false}
	for i, term := range terms {
		if got := IsPositive(term); got != want[i] {
			t.Fatalf("term %d (%s): Positive() = %v, want %v", i, Sprint(term), got, want[i])
		}
	}
}

// --- property 2: positive confluence ------------------------------------

func TestPositiveConfluence(t *testing.T) {
	host := &testHost{}
	env := EmptyEnv.BindAddr("x", "a0")
	store := NewStore()
	store.Write("a0", ScalarValue(42))
	term := Op("op:add", Sym("x"), Lit(8))

	v1, err := positive(host, term, env, store)
	if err != nil {
		t.Fatalf("first eval: %v", err)
	}
	v2, err := positive(host, term, env, store)
	if err != nil {
		t.Fatalf("second eval: %v", err)
	}
	if v1.Scalar != v2.Scalar {
		t.Fatalf("not confluent: %#v vs %#v", v1, v2)
	}
}

// --- property 5: reset/shift round trip ----------------------------------

func TestResetShiftRoundTrip(t *testing.T) {
	host := &testHost{}
	term := Reset(Shift("k", Sym("k")))
	v := run(t, host, term)
	if !v.IsKont() {
		t.Fatalf("want a continuation value, got %#v", v)
	}
	if _, ok := v.Kont.(TopK); !ok {
		t.Fatalf("want the captured continuation to be Top (nothing outside the reset), got %#v", v.Kont)
	}
}

// --- property 6: suspend/resume identity ----------------------------------

func TestSuspendResumeIdentity(t *testing.T) {
	host := &testHost{}
	direct := run(t, host, Op("op:add", Lit(1), Lit(2)))
	viaSuspend := run(t, host, Let("x",
		Op("op:add", Lit(1), Lit(2)),
		Resume(Suspend(Sym("x"))),
	))
	wantInt(t, direct, 3)
	wantInt(t, viaSuspend, 3)
}

// --- property 7: let semantics --------------------------------------------

func TestLetBindsAddress(t *testing.T) {
	host := &testHost{}
	v := run(t, host, Let("x", Lit(5), Op("op:mul", Sym("x"), Sym("x"))))
	wantInt(t, v, 25)
}

// --- property 8: op evaluation order ---------------------------------------

func TestOpEvaluatesOperandsLeftToRight(t *testing.T) {
	host := &testHost{}
	// The operands themselves are ops, so each nested op call is recorded
	// in host.opCalls in the order positive() visits them.
	term := Op("op:add", Op("op:add", Lit(1), Lit(1)), Op("op:sub", Lit(5), Lit(1)))
	run(t, host, term)
	want := []string{"op:add", "op:sub", "op:add"}
	if len(host.opCalls) != len(want) {
		t.Fatalf("op call order = %v, want %v", host.opCalls, want)
	}
	for i := range want {
		if host.opCalls[i] != want[i] {
			t.Fatalf("op call order = %v, want %v", host.opCalls, want)
		}
	}
}

// --- end-to-end scenarios ---------------------------------------------------

func TestScenarioSquareViaLetrecAndResume(t *testing.T) {
	host := &testHost{}
	term := Letrec(
		[]LetrecBinding{
			{Name: "sqr", Def: Abstract([]string{"n"}, Op("op:mul", Sym("n"), Sym("n")))},
		},
		Apply(Resume(Sym("sqr")), Lit(69)),
	)
	wantInt(t, run(t, host, term), 4761)
}

func TestScenarioLetThenMul(t *testing.T) {
	host := &testHost{}
	term := Let("n", Op("op:add", Lit(1), Lit(2)), Op("op:mul", Sym("n"), Lit(2)))
	wantInt(t, run(t, host, term), 6)
}

func TestScenarioRecursiveCountdownProduct(t *testing.T) {
	host := &testHost{}
	term := Letrec(
		[]LetrecBinding{
			{Name: "f", Def: Abstract([]string{"n", "total"},
				If(
					Op("op:eq", Sym("n"), Lit(2)),
					Sym("total"),
					Apply(Resume(Sym("f")),
						Op("op:sub", Sym("n"), Lit(1)),
						Op("op:mul", Sym("n"), Sym("total")),
					),
				))},
		},
		Apply(Resume(Sym("f")), Lit(10), Lit(1)),
	)
	wantInt(t, run(t, host, term), 1814400)
}

func TestScenarioShiftCapturesTopContinuation(t *testing.T) {
	host := &testHost{}
	term := Let("f",
		Reset(Shift("k", Sym("k"))),
		Let("n",
			Apply(Sym("f"), Op("op:add", Lit(10), Lit(55))),
			Op("op:mul", Lit(3), Sym("n")),
		),
	)
	wantInt(t, run(t, host, term), 195)
}

func TestScenarioGeneratorViaShift(t *testing.T) {
	host := &testHost{}
	yield := Abstract([]string{"v"},
		Shift("k", Suspend(Abstract([]string{"p"},
			Apply(Resume(Sym("p")), Sym("v"), Sym("k")),
		))),
	)
	peek := Abstract([]string{"g"},
		Apply(Resume(Sym("g")), Suspend(Abstract([]string{"a", "b"}, Sym("a")))),
	)
	next := Abstract([]string{"g"},
		Let("k",
			Apply(Resume(Sym("g")), Suspend(Abstract([]string{"a", "b"}, Sym("b")))),
			Apply(Sym("k"), Sym("_")),
		),
	)
	term := Letrec(
		[]LetrecBinding{
			{Name: "yield", Def: yield},
			{Name: "peek", Def: peek},
			{Name: "next", Def: next},
		},
		Let("gen",
			Reset(Let("_",
				Apply(Resume(Sym("yield")), Lit(1)),
				Let("_",
					Apply(Resume(Sym("yield")), Lit(2)),
					Apply(Resume(Sym("yield")), Lit(3)),
				),
			)),
			Let("n1", Apply(Resume(Sym("peek")), Sym("gen")),
				Let("gen", Apply(Resume(Sym("next")), Sym("gen")),
					Let("n2", Apply(Resume(Sym("peek")), Sym("gen")),
						Let("gen", Apply(Resume(Sym("next")), Sym("gen")),
							Let("n3", Apply(Resume(Sym("peek")), Sym("gen")),
								Op("op:add",
									Op("op:add", Sym("n1"), Sym("n2")),
									Sym("n3"),
								),
							),
						),
					),
				),
			),
		),
	)
	wantInt(t, run(t, host, term), 6)
}

func TestScenarioFactorialThroughShiftExpression(t *testing.T) {
	host := &testHost{}
	term := Letrec(
		[]LetrecBinding{
			{Name: "fact", Def: Abstract([]string{"n"},
				If(
					Op("op:eq", Sym("n"), Lit(0)),
					Lit(1),
					Let("m",
						Apply(Resume(Sym("fact")), Op("op:sub", Sym("n"), Lit(1))),
						Op("op:mul", Sym("n"), Sym("m"))),
				))},
		},
		Let("f",
			Reset(Shift("k", Sym("k"))),
			Let("r",
				Apply(Resume(Sym("fact")), Lit(17)),
				Apply(Sym("f"), Sym("r")),
			),
		),
	)
	wantInt(t, run(t, host, term), 355687428096000)
}

// --- error kinds ------------------------------------------------------------

func TestUnboundSymbolError(t *testing.T) {
	host := &testHost{}
	m := NewMachine(host)
	state := Inject(Sym("nope"))
	_, err := m.Step(state)
	if _, ok := err.(*UnboundSymbolError); !ok {
		t.Fatalf("want *UnboundSymbolError, got %#v", err)
	}
}

func TestIfRequiresBoolError(t *testing.T) {
	host := &testHost{}
	m := NewMachine(host)
	state := Inject(If(Lit(1), Lit(2), Lit(3)))
	_, err := m.Step(state)
	if _, ok := err.(*IfRequiresBoolError); !ok {
		t.Fatalf("want *IfRequiresBoolError, got %#v", err)
	}
}

func TestInvalidPositiveError(t *testing.T) {
	host := &testHost{}
	_, err := positive(host, Apply(Sym("f"), Lit(1)), EmptyEnv, NewStore())
	if _, ok := err.(*InvalidPositiveError); !ok {
		t.Fatalf("want *InvalidPositiveError, got %#v", err)
	}
}

func TestArityOrContextError(t *testing.T) {
	host := &testHost{}
	m := NewMachine(host)
	// An Abstract reached with no pending ArgK frame at all.
	state := Inject(Abstract([]string{"x"}, Sym("x")))
	_, err := m.Step(state)
	if _, ok := err.(*ArityOrContextError); !ok {
		t.Fatalf("want *ArityOrContextError, got %#v", err)
	}
}

func TestUnboundAddressError(t *testing.T) {
	_, err := NewStore().Get("a99")
	if _, ok := err.(*UnboundAddressError); !ok {
		t.Fatalf("want *UnboundAddressError, got %#v", err)
	}
}

func TestExpectedContinuationError(t *testing.T) {
	// Delivering a Scalar into an ArgK frame: only a Kont value can be
	// thrown into a captured continuation.
	_, err := deliverTo(ScalarValue(1), ArgK{Vals: []Value{ScalarValue(1)}, Next: TopK{}}, NewStore(), nil)
	if _, ok := err.(*ExpectedContinuationError); !ok {
		t.Fatalf("want *ExpectedContinuationError, got %#v", err)
	}
}

func TestUnknownOpError(t *testing.T) {
	_, err := DefaultHost{}.Op("op:nope", nil)
	if _, ok := err.(*UnknownOpError); !ok {
		t.Fatalf("want *UnknownOpError, got %#v", err)
	}
}

// badLiteralHost rejects every literal payload, so positive() has to
// propagate whatever error the host hands back.
type badLiteralHost struct {
	DefaultHost
}

func (badLiteralHost) Literal(payload any) (Value, error) {
	return Value{}, &BadLiteralError{Payload: payload}
}

func TestBadLiteralError(t *testing.T) {
	_, err := positive(badLiteralHost{}, Lit("nope"), EmptyEnv, NewStore())
	if _, ok := err.(*BadLiteralError); !ok {
		t.Fatalf("want *BadLiteralError, got %#v", err)
	}
}
