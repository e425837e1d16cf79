// ==============================================================================================
// FILE: internal/object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The two-tier object store (spec.md §3 "Ownership & lifecycle", §9 "Float scoping"):
//          a locals map owned by the current execution frame and a globals map that survives
//          across frames. Adapted from the teacher's Environment (store + outer chain) to
//          Babalang's flat two-map model — there is no lexical nesting here, only the
//          locals/globals split and the float-upgrade rule.
// ==============================================================================================

package object

import "babalang/internal/ident"

// Store holds every live binding, split into the current frame's locals and the
// program-lifetime globals ("floating" objects).
type Store struct {
	Locals  map[ident.ID]Object
	Globals map[ident.ID]Object
}

// NewStore creates a fresh empty store.
func NewStore() *Store {
	return &Store{
		Locals:  make(map[ident.ID]Object),
		Globals: make(map[ident.ID]Object),
	}
}

// NewProgramStore creates the top-level store with the reserved sentinel objects in globals.
// Reserved id 2 ("image") is intentionally left unbound at startup: the original source never
// inserts a sentinel there either (spec.md §9, documented quirk) — a program that reads id 2
// before defining it raises ObjectNotDefinedError, which this implementation preserves.
func NewProgramStore() *Store {
	s := NewStore()
	s.Globals[ident.Empty] = &Empty{}
	s.Globals[ident.Level] = &Level{ID: ident.Level}
	return s
}

// Get searches locals first, then globals, per spec.md §9.
func (s *Store) Get(id ident.ID) (Object, bool) {
	if obj, ok := s.Locals[id]; ok {
		return obj, true
	}
	obj, ok := s.Globals[id]
	return obj, ok
}

// Initialize places obj under id following the placement rule in spec.md §4.7: if float, remove
// id from locals first, then insert into globals; otherwise, if id already exists in globals,
// replace it there; else insert into locals.
func (s *Store) Initialize(id ident.ID, obj Object, float bool) {
	if float {
		delete(s.Locals, id)
		s.Globals[id] = obj
		return
	}
	if _, ok := s.Globals[id]; ok {
		s.Globals[id] = obj
		return
	}
	s.Locals[id] = obj
}

// Set overwrites whichever map currently holds id (locals takes priority), without moving it
// between tiers. Used by ops that mutate an existing binding in place (Move, Turn, Shift, ...).
func (s *Store) Set(id ident.ID, obj Object) {
	if _, ok := s.Locals[id]; ok {
		s.Locals[id] = obj
		return
	}
	if _, ok := s.Globals[id]; ok {
		s.Globals[id] = obj
		return
	}
	s.Locals[id] = obj
}

// Clone returns a shallow copy of both maps, used to give a Power call frame pass-by-value
// scopes per spec.md §4.7 ("recursive calls create fresh clones").
func (s *Store) Clone() *Store {
	clone := NewStore()
	for k, v := range s.Locals {
		clone.Locals[k] = v
	}
	for k, v := range s.Globals {
		clone.Globals[k] = v
	}
	return clone
}

// Deref follows a Reference chain transitively until a concrete variant is reached, per
// spec.md §4.7 "Reference resolution". A bounded depth limit guards against pathological
// reference chains (spec.md §9 recommends this; cycle detection is not otherwise required).
const maxDerefDepth = 256

func (s *Store) Deref(id ident.ID) (Object, ident.ID, bool) {
	cur := id
	for depth := 0; depth < maxDerefDepth; depth++ {
		obj, ok := s.Get(cur)
		if !ok {
			return nil, cur, false
		}
		ref, isRef := obj.(*Reference)
		if !isRef {
			return obj, cur, true
		}
		cur = ref.Pointer
	}
	return nil, cur, false
}
