// ==============================================================================================
// FILE: internal/ident/ident.go
// ==============================================================================================
// PACKAGE: ident
// PURPOSE: Process-wide bidirectional mapping between integer identifier IDs and the lowercased
//          source words they name. Reserved IDs are pre-populated at table construction.
// ==============================================================================================

package ident

import "strings"

// ID is a stable integer handle for an interned identifier.
type ID int

// Reserved identifiers, always present from table construction.
const (
	Empty ID = 0
	Level ID = 1
	Image ID = 2

	firstFree ID = 3
)

// Table interns lowercased words to IDs and back. Identifiers are never reclaimed.
type Table struct {
	byName map[string]ID
	byID   []string
}

// NewTable builds a table with the three reserved identifiers already bound.
func NewTable() *Table {
	t := &Table{
		byName: make(map[string]ID),
		byID:   make([]string, 0, firstFree),
	}
	t.reserve("empty", Empty)
	t.reserve("level", Level)
	t.reserve("image", Image)
	return t
}

func (t *Table) reserve(name string, id ID) {
	t.byName[name] = id
	for ID(len(t.byID)) <= id {
		t.byID = append(t.byID, "")
	}
	t.byID[id] = name
}

// Intern returns the ID for word, lowercasing it and allocating a new ID on first sight.
func (t *Table) Intern(word string) ID {
	name := strings.ToLower(word)
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := ID(len(t.byID))
	t.byName[name] = id
	t.byID = append(t.byID, name)
	return id
}

// Lookup returns the ID already bound to name, if any, without allocating.
func (t *Table) Lookup(name string) (ID, bool) {
	id, ok := t.byName[strings.ToLower(name)]
	return id, ok
}

// Name returns the source word an ID was interned from.
func (t *Table) Name(id ID) string {
	if int(id) < 0 || int(id) >= len(t.byID) {
		return "?"
	}
	return t.byID[id]
}
