package internal

// State is the full machine state: the control term, the environment and
// store in force, the current continuation, and the meta-stack of
// continuations saved by Reset.
type State struct {
	Control Term
	Env     *Env
	Store   *Store
	Kont    Continuation
	Meta    []Continuation
}

// Inject builds the initial state for term: empty environment, a fresh
// store, Top as the current continuation, and an empty meta-stack.
func Inject(term Term) *State {
	return &State{
		Control: term,
		Env:     EmptyEnv,
		Store:   NewStore(),
		Kont:    TopK{},
		Meta:    nil,
	}
}

// pushMeta returns the meta-stack with k pushed on top.
func pushMeta(meta []Continuation, k Continuation) []Continuation {
	return append(meta, k)
}

// popMeta returns the top of the meta-stack and the rest, or ok=false if
// empty.
func popMeta(meta []Continuation) (k Continuation, rest []Continuation, ok bool) {
	if len(meta) == 0 {
		return nil, nil, false
	}
	n := len(meta)
	return meta[n-1], meta[:n-1], true
}

// StepResult is the outcome of one Step call: either the run is Done with a
// final Value, or there is More work in a new State.
type StepResult interface {
	isStepResult()
}

// Done carries the final value of a completed run.
type Done struct {
	Value Value
}

// More carries the state to resume from on the next Step call.
type More struct {
	State *State
}

func (Done) isStepResult() {}
func (More) isStepResult() {}
