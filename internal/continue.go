package internal

// deliverTo delivers val to kont, looping until it either yields a new
// State (progress) or the machine halts with a final Value. The function
// is named deliverTo rather than continue because the latter is a Go
// keyword.
//
// Its loop shape mirrors the teacher's Machine.run dequeue loop
// (internal/machine.go), which also keeps processing until there is
// nothing left to do.
func deliverTo(val Value, kont Continuation, store *Store, meta []Continuation) (StepResult, error) {
	for {
		switch k := kont.(type) {
		case ArgK:
			// Throwing a value into a captured continuation: val must
			// itself be a KontVal. The successor K' is deferred onto the
			// meta-stack *before* we switch to the captured continuation,
			// so it is resumed once the captured continuation finishes,
			// and v1 becomes the value now being delivered to it.
			if !val.IsKont() {
				return nil, &ExpectedContinuationError{Got: val}
			}
			if len(k.Vals) == 0 {
				return nil, &ExpectedContinuationError{Got: val}
			}
			meta = pushMeta(meta, k.Next)
			kont = val.Kont
			val = k.Vals[0]
			continue

		case LetK:
			switch len(k.Names) {
			case 0:
				// The closure shape reached through the generic delivery
				// path rather than step's dedicated Resume/jump-into-
				// closure handling: there is no binder site, so the
				// delivered value is simply discarded.
				return More{State: &State{
					Control: k.Body,
					Env:     k.Env,
					Store:   store,
					Kont:    k.Next,
					Meta:    meta,
				}}, nil
			case 1:
				addr := store.Alloc()
				store.Write(addr, val)
				return More{State: &State{
					Control: k.Body,
					Env:     k.Env.BindAddr(k.Names[0], addr),
					Store:   store,
					Kont:    k.Next,
					Meta:    meta,
				}}, nil
			default:
				// Multi-binder let is not implemented (see DESIGN.md).
				// This core's own Let constructor never produces more
				// than one name.
				return nil, &InvalidPositiveError{Term: k.Body}
			}

		case TopK:
			top, rest, ok := popMeta(meta)
			if !ok {
				return Done{Value: val}, nil
			}
			meta = rest
			kont = top
			continue

		default:
			return nil, &ExpectedContinuationError{Got: val}
		}
	}
}
