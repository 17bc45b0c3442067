package internal

import "fmt"

// This file gives each evaluator error its own distinct type rather than a
// single error with a kind field, following the retrieved pack's convention
// of small typed error structs carrying just enough context to render a
// useful message (daios-ai-msg's RuntimeError). Unlike that convention,
// these are returned rather than panicked: Step is meant to be called
// repeatedly by a host, not wrapped in one recover().

// UnboundSymbolError is raised by Env.Lookup when a name is not bound.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Name)
}

// UnboundAddressError is raised by Store.Get when an address present in an
// Env has no value in the Store.
type UnboundAddressError struct {
	Addr Address
}

func (e *UnboundAddressError) Error() string {
	return fmt.Sprintf("unbound address: %s", e.Addr)
}

// InvalidPositiveError is raised by positive() when handed a negative
// term.
type InvalidPositiveError struct {
	Term Term
}

func (e *InvalidPositiveError) Error() string {
	return fmt.Sprintf("invalid positive: %s is not a positive term", Sprint(e.Term))
}

// IfRequiresBoolError is raised by the If step when the condition value is
// not a Boolean scalar.
type IfRequiresBoolError struct {
	Got Value
}

func (e *IfRequiresBoolError) Error() string {
	return "if requires a boolean condition"
}

// ExpectedContinuationError is raised by deliverTo at an ArgK frame when
// the delivered value is not a KontVal.
type ExpectedContinuationError struct {
	Got Value
}

func (e *ExpectedContinuationError) Error() string {
	return "expected a continuation value"
}

// ArityOrContextError is raised when Abstract is entered with a current
// continuation that is not an ArgK frame.
type ArityOrContextError struct {
	Kont Continuation
}

func (e *ArityOrContextError) Error() string {
	return "abstract entered outside of an argument context"
}

// UnknownOpError is the default Host.Op behavior: the host did not handle
// the named primitive operation.
type UnknownOpError struct {
	Op string
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown op: %s", e.Op)
}

// BadLiteralError is raised by a Host.Literal implementation when the
// payload is outside the accepted set.
type BadLiteralError struct {
	Payload any
}

func (e *BadLiteralError) Error() string {
	return fmt.Sprintf("bad literal: %v", e.Payload)
}
