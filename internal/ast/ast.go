// ==============================================================================================
// FILE: internal/ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The Instruction sum type the evaluator consumes (spec.md §3 "Instruction") and the
//          Op catalogue of leaf operations it wraps (spec.md §4.5). Instruction is expressed as
//          a closed interface with one concrete type per variant, following the same
//          tagged-union-via-interface pattern the teacher uses for object.Object.
// ==============================================================================================

package ast

import (
	"babalang/internal/ident"
	"babalang/internal/statement"
	"babalang/internal/token"
)

// Instruction is the sum type the evaluator walks.
type Instruction interface {
	instructionNode()
}

// NoOp is emitted whenever a statement's NOT sign cancels its own effect (spec.md §4.4).
type NoOp struct{}

func (NoOp) instructionNode() {}

// Simple wraps one leaf Op with no gating condition or prefix.
type Simple struct {
	Op Op
}

func (Simple) instructionNode() {}

// Complex gates a Simple op behind a condition and/or prefix (spec.md §4.6).
type Complex struct {
	Conditions *Conditions
	Prefix     *Prefix
	Op         Op
}

func (Complex) instructionNode() {}

// Tele is a loop with a named break label (spec.md §4.7).
type Tele struct {
	ID   ident.ID
	Body []Instruction
}

func (Tele) instructionNode() {}

// Level is a function definition.
type Level struct {
	ID    ident.ID
	Float bool
	Args  []ident.ID
	Body  []Instruction
}

func (Level) instructionNode() {}

// Image is a class definition.
type Image struct {
	ID          ident.ID
	Float       bool
	Attributes  []ident.ID
	Constructor *Level
}

func (Image) instructionNode() {}

// ---------------------------------------------------------------------------------------------
// Note on Partial* sentinels: spec.md §3 describes validator-emitted "Partial*" markers that the
// AST builder consumes while recognizing scope directives. This implementation instead has
// internal/parser's buildScope inspect statement.Statement values directly (see ast_builder.go)
// before they ever reach internal/validate, so no such intermediate Instruction variant is
// constructed — recognizing "IS TELE/LEVEL/IMAGE/DONE/FLOAT" is a lookahead over the flat
// statement stream, not a validator output. Kept out of this file per the project's "wire it or
// delete it" rule for unused types; see DESIGN.md.
// ---------------------------------------------------------------------------------------------
// Conditions / Prefix — the gating predicates a Complex instruction tests before running.
// ---------------------------------------------------------------------------------------------

// Conditions is the resolved ON/NEAR/FACING/WITHOUT predicate attached to a statement.
type Conditions struct {
	Type    token.Conditional
	Sign    bool
	Targets []statement.Target
}

// Prefix is the resolved IDLE/LONELY predicate attached to a statement's subject.
type Prefix struct {
	Prefix token.Prefix
	Sign   bool
}
