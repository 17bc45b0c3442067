package internal

import "fmt"

// Address is a fresh opaque name generated by Store.Alloc. Its format is
// irrelevant to semantics, only its uniqueness within a run matters.
type Address string

// Store maps addresses to values. Writes are never mutated after binding,
// so a Store is safe to share by reference across every State in a run,
// including states reached through captured continuations — the store
// only ever grows.
type Store struct {
	cells map[Address]Value
	next  int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[Address]Value)}
}

// Alloc returns a fresh address. It does not write a value.
func (s *Store) Alloc() Address {
	s.next++
	return Address(fmt.Sprintf("a%d", s.next))
}

// Write binds addr to v. Callers must only ever write each address once.
func (s *Store) Write(addr Address, v Value) {
	s.cells[addr] = v
}

// Get resolves addr, returning UnboundAddressError if nothing was written
// there.
func (s *Store) Get(addr Address) (Value, error) {
	v, ok := s.cells[addr]
	if !ok {
		return Value{}, &UnboundAddressError{Addr: addr}
	}
	return v, nil
}
