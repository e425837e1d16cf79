// ==============================================================================================
// FILE: internal/statement/statement.go
// ==============================================================================================
// PACKAGE: statement
// PURPOSE: The flat Statement record the statement-parser DFA produces, and the Target sum type
//          (Noun or Property) statements reference in their condition/action target lists.
// ==============================================================================================

package statement

import (
	"babalang/internal/ident"
	"babalang/internal/token"
)

// Noun is a resolved subject/target noun: one of the four keyword nouns, or an identifier.
type Noun struct {
	Kind token.Noun
	ID   ident.ID // meaningful only when Kind == token.NounIdentifier
}

// Target is either a Noun or a Property — conditions and IS/action lists mix both.
type Target struct {
	IsProperty bool
	Noun       Noun
	Property   token.Property
}

// NounTarget builds a Noun-variant Target.
func NounTarget(n Noun) Target { return Target{Noun: n} }

// PropertyTarget builds a Property-variant Target.
func PropertyTarget(p token.Property) Target { return Target{IsProperty: true, Property: p} }

// Statement is the flat record produced by the statement-parser DFA (spec.md §3 "Statement").
type Statement struct {
	Prefix     *token.Prefix
	PrefixSign bool

	Subject Noun

	CondType    *token.Conditional
	CondSign    bool
	CondTargets []Target

	ActionType Verb

	// Exactly one of the following pairs is populated per statement, per spec.md §3:
	// either a single target (the common case, and always true for the IS-VALUE form and for
	// every non-IS verb), or the parallel-list pair (used only for the IS-SUM form).
	ActionTarget *Target
	ActionSign   bool

	ActionTargets []Target
	ActionSigns   []bool

	// Float is set by the AST builder when it recognizes a "SUBJECT IS FLOAT" / initializer
	// pair (spec.md §4.3) and rewrites the initializer statement to carry the flag through to
	// the validator. Meaningless for any other statement shape.
	Float bool
}

// Verb aliases token.Verb for readability within this package's exported API.
type Verb = token.Verb

// IsSum reports whether this is a multi-target IS-SUM statement (ActionTargets populated)
// rather than the single-target form.
func (s *Statement) IsSum() bool {
	return s.ActionTarget == nil && s.ActionTargets != nil
}
