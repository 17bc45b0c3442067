package internal

import "fmt"

// Host is the pair of extension hooks a host implements to supply a
// primitive-op and literal layer. In a language with subclassing, this
// would be an abstract base class the host overrides; in Go it is a small
// interface the host supplies to NewMachine, and the Machine carries it
// from call to call the same way the teacher's *Machine carries its
// rewrite `rules` (see internal/machine.go's Machine{rules}).
type Host interface {
	// Literal maps a raw literal payload into a Scalar value.
	Literal(payload any) (Value, error)
	// Op applies a primitive operation to already-reduced operand values.
	// Primitive ops are not first-class: they only ever appear inside Op
	// terms.
	Op(name string, args []Value) (Value, error)
}

// DefaultHost is the fallback Host implementation: every literal payload
// becomes a Scalar as-is, and every op name is unknown. Embed it in a
// host-defined Host to pick up one hook while overriding the other.
type DefaultHost struct{}

func (DefaultHost) Literal(payload any) (Value, error) {
	return ScalarValue(payload), nil
}

func (DefaultHost) Op(name string, args []Value) (Value, error) {
	return Value{}, &UnknownOpError{Op: name}
}

// Machine drives evaluation. It is the public evaluator: two private
// routines (positive, deliverTo) and one public routine, Step.
type Machine struct {
	Host Host
	// Trace, when set, writes a one-line rendering of each control term
	// before it is reduced. Purely observational; changes no semantics.
	// Named after the teacher's Machine.Trace (internal/machine.go).
	Trace bool
}

// NewMachine returns a Machine extended by host.
func NewMachine(host Host) *Machine {
	return &Machine{Host: host}
}

// Step advances state by one small step. Purely structural negative terms
// (Apply, Let, Letrec) do not themselves yield a new state; they fold into
// the continuation/environment and the loop continues inside Step.
func (m *Machine) Step(s *State) (StepResult, error) {
	control := s.Control
	env := s.Env
	store := s.Store
	kont := s.Kont
	meta := s.Meta

	for {
		if m.Trace {
			fmt.Printf("step: %s\n", Sprint(control))
		}

		switch x := control.(type) {
		case *ApplyTerm:
			vals := make([]Value, len(x.Operand))
			for i, operand := range x.Operand {
				v, err := positive(m.Host, operand, env, store)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			kont = ArgK{Vals: vals, Next: kont}
			control = x.Operator
			continue

		case *LetTerm:
			kont = LetK{Names: []string{x.Name}, Body: x.Body, Env: env, Next: kont}
			control = x.Bound
			continue

		case *LetrecTerm:
			for _, b := range x.Bindings {
				env = env.BindTerm(b.Name, b.Def)
			}
			control = x.Body
			continue

		case *ShiftTerm:
			addr := store.Alloc()
			store.Write(addr, KontValue(kont))
			return More{State: &State{
				Control: x.Body,
				Env:     env.BindAddr(x.Kontinuation, addr),
				Store:   store,
				Kont:    TopK{},
				Meta:    meta,
			}}, nil

		case *ResetTerm:
			return More{State: &State{
				Control: x.Body,
				Env:     env,
				Store:   store,
				Kont:    TopK{},
				Meta:    pushMeta(meta, kont),
			}}, nil

		case *IfTerm:
			v, err := positive(m.Host, x.Cond, env, store)
			if err != nil {
				return nil, err
			}
			b, ok := v.Scalar.(bool)
			if !v.IsScalar() || !ok {
				return nil, &IfRequiresBoolError{Got: v}
			}
			branch := x.Else
			if b {
				branch = x.Then
			}
			return More{State: &State{
				Control: branch,
				Env:     env,
				Store:   store,
				Kont:    kont,
				Meta:    meta,
			}}, nil

		case *ResumeTerm:
			v, err := positive(m.Host, x.Inner, env, store)
			if err != nil {
				return nil, err
			}
			if body, cenv, ok := AsClosure(v); ok {
				return More{State: &State{
					Control: body,
					Env:     cenv,
					Store:   store,
					Kont:    kont,
					Meta:    meta,
				}}, nil
			}
			return deliverTo(v, kont, store, meta)

		case *AbstractTerm:
			ak, ok := kont.(ArgK)
			if !ok || len(ak.Vals) != len(x.Params) {
				return nil, &ArityOrContextError{Kont: kont}
			}
			for i, p := range x.Params {
				addr := store.Alloc()
				store.Write(addr, ak.Vals[i])
				env = env.BindAddr(p, addr)
			}
			return More{State: &State{
				Control: x.Body,
				Env:     env,
				Store:   store,
				Kont:    ak.Next,
				Meta:    meta,
			}}, nil

		default:
			// Positive term: reduce it to a value, then deliver.
			v, err := positive(m.Host, control, env, store)
			if err != nil {
				return nil, err
			}
			return deliverTo(v, kont, store, meta)
		}
	}
}
