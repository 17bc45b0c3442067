package internal

// Continuation is a reified representation of the work remaining to be
// done: the call stack turned into a first-class value. It is a closed sum
// type, same shape as Term: one struct per variant.
type Continuation interface {
	isContinuation()
}

// TopK is the bottom of the continuation stack. Reaching it with an empty
// meta-stack halts the machine.
type TopK struct{}

// ArgK is the frame Apply pushes and Abstract consumes: the already-reduced
// operand values, plus the successor continuation to resume afterward.
type ArgK struct {
	Vals []Value
	Next Continuation
}

// LetK is the frame Let pushes: the names to bind, the continuation body,
// the environment captured at the point the frame was created, and the
// successor continuation. A LetK with no Names and Next == TopK{} is the
// closure encoding (see Closure in value.go).
type LetK struct {
	Names []string
	Body  Term
	Env   *Env
	Next  Continuation
}

func (TopK) isContinuation() {}
func (ArgK) isContinuation() {}
func (LetK) isContinuation() {}
