package internal

// Term is a CBPV intermediate-language term. It is a closed sum type: the
// only implementations are the twelve variants in this file.
//
// Positive variants (Literal, Symbol, Op, Suspend) are data-like and reduce
// to a Value without a machine step (see Positive, and positive() in
// positive.go). Every other variant is negative: it requires a Step to
// evaluate.
type Term interface {
	// Positive reports whether this term is one of the four positive
	// variants. It is total and side-effect free.
	Positive() bool

	isTerm()
}

// LiteralTerm wraps a host-defined scalar payload, opaque to the core.
type LiteralTerm struct {
	Payload any
}

// SymbolTerm looks a name up in the environment. The distinguished name
// "_" resolves to the top continuation value rather than an env lookup.
type SymbolTerm struct {
	Name string
}

// OpTerm applies a primitive operation. Primitive ops are not first-class:
// they exist only here, never as values.
type OpTerm struct {
	Op      string
	Operand []Term
}

// SuspendTerm freezes a term (possibly negative) into a value, capturing
// the environment in force at the point it is reduced.
type SuspendTerm struct {
	Inner Term
}

// ResumeTerm unpackages a Suspend-produced value, making its term current.
type ResumeTerm struct {
	Inner Term
}

// AbstractTerm is a multi-argument function literal.
type AbstractTerm struct {
	Params []string
	Body   Term
}

// ApplyTerm applies an operator term to operand terms.
type ApplyTerm struct {
	Operator Term
	Operand  []Term
}

// LetTerm binds the value of a term within a body. Only a single binder is
// supported (see DESIGN.md's open-question decisions).
type LetTerm struct {
	Name  string
	Bound Term
	Body  Term
}

// LetrecBinding is one (name, definition) pair of a Letrec.
type LetrecBinding struct {
	Name string
	Def  Term
}

// LetrecTerm introduces mutually-recursive bindings. Names are bound
// directly to their definition terms (not to addresses); no store cycles
// are ever created.
type LetrecTerm struct {
	Bindings []LetrecBinding
	Body     Term
}

// ResetTerm installs a delimiter for a later Shift.
type ResetTerm struct {
	Body Term
}

// ShiftTerm captures the continuation up to the nearest enclosing Reset,
// binding it to Kontinuation and running Body with the delimiter popped.
type ShiftTerm struct {
	Kontinuation string
	Body         Term
}

// IfTerm branches on a Boolean scalar condition.
type IfTerm struct {
	Cond Term
	Then Term
	Else Term
}

func (*LiteralTerm) isTerm()  {}
func (*SymbolTerm) isTerm()   {}
func (*OpTerm) isTerm()       {}
func (*SuspendTerm) isTerm()  {}
func (*ResumeTerm) isTerm()   {}
func (*AbstractTerm) isTerm() {}
func (*ApplyTerm) isTerm()    {}
func (*LetTerm) isTerm()      {}
func (*LetrecTerm) isTerm()   {}
func (*ResetTerm) isTerm()    {}
func (*ShiftTerm) isTerm()    {}
func (*IfTerm) isTerm()       {}

func (*LiteralTerm) Positive() bool  { return true }
func (*SymbolTerm) Positive() bool   { return true }
func (*OpTerm) Positive() bool       { return true }
func (*SuspendTerm) Positive() bool  { return true }
func (*ResumeTerm) Positive() bool   { return false }
func (*AbstractTerm) Positive() bool { return false }
func (*ApplyTerm) Positive() bool    { return false }
func (*LetTerm) Positive() bool      { return false }
func (*LetrecTerm) Positive() bool   { return false }
func (*ResetTerm) Positive() bool    { return false }
func (*ShiftTerm) Positive() bool    { return false }
func (*IfTerm) Positive() bool       { return false }

// IsPositive is the free-standing form of the positivity predicate, for
// callers that don't want to call the method directly.
func IsPositive(t Term) bool { return t.Positive() }

// DiscardSymbol is the distinguished "_" name that resolves to the top
// continuation value rather than performing an environment lookup.
const DiscardSymbol = "_"

// Constructors. These mirror the teacher's one-constructor-per-variant
// style (Lit, App, Let, Lam, ...) so call sites read like the term they
// build.

func Lit(payload any) *LiteralTerm { return &LiteralTerm{Payload: payload} }

func Sym(name string) *SymbolTerm { return &SymbolTerm{Name: name} }

func Op(op string, operand ...Term) *OpTerm {
	return &OpTerm{Op: op, Operand: operand}
}

func Suspend(inner Term) *SuspendTerm { return &SuspendTerm{Inner: inner} }

func Resume(inner Term) *ResumeTerm { return &ResumeTerm{Inner: inner} }

func Abstract(params []string, body Term) *AbstractTerm {
	return &AbstractTerm{Params: params, Body: body}
}

func Apply(op Term, operand ...Term) *ApplyTerm {
	return &ApplyTerm{Operator: op, Operand: operand}
}

func Let(name string, bound Term, body Term) *LetTerm {
	return &LetTerm{Name: name, Bound: bound, Body: body}
}

func Letrec(bindings []LetrecBinding, body Term) *LetrecTerm {
	return &LetrecTerm{Bindings: bindings, Body: body}
}

func Reset(body Term) *ResetTerm { return &ResetTerm{Body: body} }

func Shift(k string, body Term) *ShiftTerm {
	return &ShiftTerm{Kontinuation: k, Body: body}
}

func If(cond, then, els Term) *IfTerm {
	return &IfTerm{Cond: cond, Then: then, Else: els}
}
