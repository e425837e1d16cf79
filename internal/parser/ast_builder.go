// ==============================================================================================
// FILE: internal/parser/ast_builder.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Walks the flat Statement stream and emits the Instruction tree (spec.md §4.3),
//          recognizing nested scopes (TELE/LEVEL/IMAGE/FLOAT ... DONE) and recursing to build
//          their bodies. Statements that are not scope directives are handed to
//          internal/validate.
// ==============================================================================================

package parser

import (
	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/statement"
	"babalang/internal/token"
	"babalang/internal/validate"
)

// BuildAST converts a complete statement stream into the top-level (program-scope) instruction
// list.
func BuildAST(stmts []*statement.Statement) ([]ast.Instruction, error) {
	instrs, consumed, err := buildScope(stmts, nil)
	if err != nil {
		return nil, err
	}
	if consumed != len(stmts) {
		return nil, diagnostics.New(diagnostics.KindInstructionParserError,
			"trailing statements after program scope closed")
	}
	return instrs, nil
}

// buildScope builds instructions for one scope body (program scope when scope is nil, or a
// nested Tele/Level/Image scope owned by *scope). It returns the instructions belonging to this
// scope and how many leading statements of stmts were consumed constructing it (including its
// closing "IS DONE", for a nested scope).
func buildScope(stmts []*statement.Statement, scope *ident.ID) ([]ast.Instruction, int, error) {
	var out []ast.Instruction
	i := 0

	for i < len(stmts) {
		st := stmts[i]

		if st.ActionType == token.VerbIs && st.ActionTarget != nil && st.ActionTarget.IsProperty {
			switch st.ActionTarget.Property {
			case token.PropDone:
				closes, err := scopeCloses(st.Subject, scope)
				if err != nil {
					return nil, 0, err
				}
				if closes {
					return out, i + 1, nil
				}
				return nil, 0, diagnostics.New(diagnostics.KindInstructionParserError,
					"IS DONE does not match the currently open scope")

			case token.PropTele, token.PropLevel, token.PropImage:
				if st.Subject.Kind != token.NounIdentifier {
					return nil, 0, diagnostics.New(diagnostics.KindInstructionParserError,
						"scope subject must be an identifier")
				}
				ownerID := st.Subject.ID
				instr, consumedInner, err := buildNamedScope(stmts[i+1:], ownerID, st.ActionTarget.Property, st.Float)
				if err != nil {
					return nil, 0, err
				}
				out = append(out, instr)
				i += 1 + consumedInner
				continue

			case token.PropFloat:
				if st.Subject.Kind != token.NounIdentifier {
					return nil, 0, diagnostics.New(diagnostics.KindInstructionParserError,
						"FLOAT subject must be an identifier")
				}
				if i+1 >= len(stmts) {
					return nil, 0, diagnostics.New(diagnostics.KindStatementParserError,
						"unexpected EOF after IS FLOAT")
				}
				next := stmts[i+1]
				if next.Subject.Kind != token.NounIdentifier || next.Subject.ID != st.Subject.ID ||
					!isFloatableInitializer(next) {
					return nil, 0, diagnostics.New(diagnostics.KindInstructionValidationError,
						"IS FLOAT must be followed by a matching initializer for the same identifier")
				}
				// Mark the initializer and let the next iteration handle it, so a floating
				// LEVEL/IMAGE still opens its scope and a YOU/GROUP still reaches the validator.
				next.Float = true
				i++
				continue
			}
		}

		instr, err := validate.Validate(st)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, instr)
		i++
	}

	if scope != nil {
		return nil, 0, diagnostics.New(diagnostics.KindStatementParserError,
			"unexpected EOF: scope never closed with IS DONE")
	}
	return out, i, nil
}

// scopeCloses reports whether an "IS DONE" statement with the given subject closes the scope
// identified by scope (nil = program scope, closed only by "ALL IS DONE").
func scopeCloses(subject statement.Noun, scope *ident.ID) (bool, error) {
	if scope == nil {
		return subject.Kind == token.NounAll, nil
	}
	if subject.Kind == token.NounAll {
		return false, nil
	}
	if subject.Kind != token.NounIdentifier {
		return false, nil
	}
	return subject.ID == *scope, nil
}

func isFloatableInitializer(st *statement.Statement) bool {
	if st.ActionType != token.VerbIs || st.ActionTarget == nil || !st.ActionTarget.IsProperty {
		return false
	}
	switch st.ActionTarget.Property {
	case token.PropYou, token.PropYou2, token.PropGroup, token.PropLevel, token.PropImage, token.PropPower:
		return true
	default:
		return false
	}
}

// buildNamedScope builds a Tele/Level/Image node for the scope just opened by its "SUBJECT IS
// TELE/LEVEL/IMAGE" statement, pulling off leading "SUBJECT HAS target" statements as the
// Level's argument list (or the Image's attribute list) per spec.md §4.3.
func buildNamedScope(rest []*statement.Statement, ownerID ident.ID, kind token.Property, float bool) (ast.Instruction, int, error) {
	switch kind {
	case token.PropTele:
		body, consumed, err := buildScope(rest, &ownerID)
		if err != nil {
			return nil, 0, err
		}
		return ast.Tele{ID: ownerID, Body: body}, consumed, nil

	case token.PropLevel:
		args, peeled := peelHasArgs(rest, ownerID)
		body, consumed, err := buildScope(rest[peeled:], &ownerID)
		if err != nil {
			return nil, 0, err
		}
		body = appendImplicitReturn(body, ownerID, args)
		return ast.Level{ID: ownerID, Float: float, Args: args, Body: body}, peeled + consumed, nil

	case token.PropImage:
		attrs, peeled := peelHasArgs(rest, ownerID)
		if peeled >= len(rest) {
			return nil, 0, diagnostics.New(diagnostics.KindStatementParserError,
				"unexpected EOF inside IMAGE body")
		}
		ctorStmt := rest[peeled]
		if ctorStmt.ActionType != token.VerbIs || ctorStmt.Subject.Kind != token.NounIdentifier ||
			ctorStmt.Subject.ID != ownerID || ctorStmt.ActionTarget == nil ||
			!ctorStmt.ActionTarget.IsProperty || ctorStmt.ActionTarget.Property != token.PropLevel {
			return nil, 0, diagnostics.New(diagnostics.KindInstructionValidationError,
				"IMAGE body must contain exactly one nested LEVEL as its constructor")
		}
		ctorInstr, ctorConsumed, err := buildNamedScope(rest[peeled+1:], ownerID, token.PropLevel, false)
		if err != nil {
			return nil, 0, err
		}
		ctorLevel := ctorInstr.(ast.Level)
		// buildNamedScope was called with ownerID as the constructor's own id (the program names
		// the nested LEVEL after its owning IMAGE), so its implicit-return trailer already
		// unwinds to ownerID — exactly the scope Power's Image call needs.
		if len(ctorLevel.Args) < 1 {
			return nil, 0, diagnostics.New(diagnostics.KindInstructionValidationError,
				"IMAGE constructor must take at least one argument (self)")
		}
		afterCtor := peeled + 1 + ctorConsumed
		body, consumed, err := buildScope(rest[afterCtor:], &ownerID)
		if err != nil {
			return nil, 0, err
		}
		if len(body) != 0 {
			return nil, 0, diagnostics.New(diagnostics.KindInstructionValidationError,
				"IMAGE body may only contain attributes and its constructor")
		}
		return ast.Image{ID: ownerID, Float: float, Attributes: attrs, Constructor: &ctorLevel}, afterCtor + consumed, nil

	default:
		return nil, 0, diagnostics.New(diagnostics.KindRuntimeError, "unreachable scope kind")
	}
}

// appendImplicitReturn appends the synthetic trailing "ownerID MAKE args[0]" instruction every
// Level (and Image constructor) body carries, so that falling off its end behaves as an implicit
// return of its first argument's current value (spec.md §4.7). A Level may legally declare zero
// arguments (only an Image constructor requires args[0]); it then has no argument to return, so
// the trailer targets the reserved EMPTY identifier instead, matching the original interpreter's
// own literal-0 MakeValue target for the non-constructor case.
func appendImplicitReturn(body []ast.Instruction, ownerID ident.ID, args []ident.ID) []ast.Instruction {
	target := ident.Empty
	if len(args) > 0 {
		target = args[0]
	}
	trailer := ast.Simple{Op: ast.Op{Kind: ast.OpMake, ID: ownerID, ID2: target}}
	return append(body, trailer)
}

// peelHasArgs consumes leading "ownerID HAS target" statements, returning their target
// identifiers and how many statements were consumed.
func peelHasArgs(stmts []*statement.Statement, ownerID ident.ID) ([]ident.ID, int) {
	var args []ident.ID
	i := 0
	for i < len(stmts) {
		st := stmts[i]
		if st.ActionType != token.VerbHas || st.Subject.Kind != token.NounIdentifier || st.Subject.ID != ownerID {
			break
		}
		if st.ActionTarget == nil || st.ActionTarget.IsProperty {
			break
		}
		args = append(args, st.ActionTarget.Noun.ID)
		i++
	}
	return args, i
}
