package internal

// positive reduces a positive term to a Value in the given environment and
// store, without producing a new machine state. It loops rather than
// recurses on the Suspend case, since a chain of nested Suspends around a
// positive term ("!!x" ≡ "!x") peels off in a fixed number of iterations
// equal to the nesting depth — the teacher's fixpoint-rewrite loop
// (denotational/denotational.go's Rewrite) inspired the loop shape, though
// here it always terminates structurally rather than needing a fuel
// counter.
func positive(host Host, expr Term, env *Env, store *Store) (Value, error) {
	for {
		if !expr.Positive() {
			return Value{}, &InvalidPositiveError{Term: expr}
		}
		switch x := expr.(type) {
		case *LiteralTerm:
			return host.Literal(x.Payload)

		case *SymbolTerm:
			if x.Name == DiscardSymbol {
				return KontValue(TopK{}), nil
			}
			addr, def, isAddr, err := env.Lookup(x.Name)
			if err != nil {
				return Value{}, err
			}
			if isAddr {
				return store.Get(addr)
			}
			return Closure(def, env), nil

		case *OpTerm:
			vals := make([]Value, len(x.Operand))
			for i, operand := range x.Operand {
				v, err := positive(host, operand, env, store)
				if err != nil {
					return Value{}, err
				}
				vals[i] = v
			}
			return host.Op(x.Op, vals)

		case *SuspendTerm:
			if !x.Inner.Positive() {
				return Closure(x.Inner, env), nil
			}
			expr = x.Inner
			continue

		default:
			return Value{}, &InvalidPositiveError{Term: expr}
		}
	}
}
