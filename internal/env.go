package internal

// Env maps names to either a Store Address or a local term definition. It
// is persistent: Bind never mutates the receiver, it returns a new frame
// whose parent is the old Env — so a continuation that captured an earlier
// Env is unaffected by later pushes.
//
// This is adapted from the parent-linked Env{parent, table} shape seen
// elsewhere in the retrieved pack, changed from mutate-in-place binding to
// a returned-new-frame one so that capture is always a cheap snapshot.
type Env struct {
	parent *Env
	name   string
	addr   Address
	term   Term
	isAddr bool
}

// EmptyEnv is the environment with no bindings.
var EmptyEnv = (*Env)(nil)

// BindAddr returns a new Env identical to e but additionally binding name
// to addr, shadowing any prior binding of the same name.
func (e *Env) BindAddr(name string, addr Address) *Env {
	return &Env{parent: e, name: name, addr: addr, isAddr: true}
}

// BindTerm returns a new Env identical to e but additionally binding name
// to the local term definition def (used by Letrec), shadowing any prior
// binding of the same name.
func (e *Env) BindTerm(name string, def Term) *Env {
	return &Env{parent: e, name: name, term: def, isAddr: false}
}

// Lookup resolves name in e, walking outward through parents. It returns
// UnboundSymbolError if no frame binds the name.
func (e *Env) Lookup(name string) (addr Address, def Term, isAddr bool, err error) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.addr, f.term, f.isAddr, nil
		}
	}
	return "", nil, false, &UnboundSymbolError{Name: name}
}
