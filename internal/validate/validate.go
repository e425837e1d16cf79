// ==============================================================================================
// FILE: internal/validate/validate.go
// ==============================================================================================
// PACKAGE: validate
// PURPOSE: Converts a single Statement into an ast.Instruction (spec.md §4.4). Grounded on
//          _examples/original_source/src/instruction.rs's validate/merge/conditions three-
//          function shape, generalized from that file's four implemented cases (InitYou,
//          YouMove, Text, YouFall — an early snapshot) to the full catalogue in spec.md §4.5.
// ==============================================================================================

package validate

import (
	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/statement"
	"babalang/internal/token"
)

// Validate dispatches a statement (one that is not a scope directive — those are intercepted
// directly by the AST builder per spec.md §4.3) to the matching generic_* helper and returns
// the resulting Instruction, gated by any condition/prefix via merge.
func Validate(st *statement.Statement) (ast.Instruction, error) {
	conds, prefix, err := conditionsOf(st)
	if err != nil {
		return nil, err
	}

	switch st.ActionType {
	case token.VerbIs:
		return validateIs(st, conds, prefix)
	case token.VerbHas:
		return genericVerb(st, conds, prefix, ast.OpHas)
	case token.VerbMake:
		return validateMake(st, conds, prefix)
	case token.VerbFollow:
		return genericVerb(st, conds, prefix, ast.OpFollow)
	case token.VerbEat:
		return genericVerb(st, conds, prefix, ast.OpEat)
	case token.VerbMimic:
		return genericVerb(st, conds, prefix, ast.OpMimicReference)
	case token.VerbFear:
		return genericVerb(st, conds, prefix, ast.OpFearTele)
	case token.VerbPlay:
		return genericVerb(st, conds, prefix, ast.OpPower)
	default:
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"unrecognized verb in statement for subject %v", st.Subject)
	}
}

func validateIs(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix) (ast.Instruction, error) {
	if st.IsSum() {
		return validateIsSum(st, conds, prefix)
	}

	target := st.ActionTarget
	if target == nil {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"IS statement missing a target")
	}

	if target.IsProperty {
		return validateIsProperty(st, target.Property, conds, prefix)
	}
	return validateIsValue(st, conds, prefix)
}

// validateIsProperty handles "SUBJECT IS <property>" for every property the validator (as
// opposed to the AST builder, which intercepts TELE/LEVEL/IMAGE/DONE/FLOAT) is responsible for.
func validateIsProperty(st *statement.Statement, prop token.Property, conds *ast.Conditions, prefix *ast.Prefix) (ast.Instruction, error) {
	switch prop {
	case token.PropYou:
		return genericInit(st, ast.OpInitYou)
	case token.PropYou2:
		return genericInit(st, ast.OpInitYou2)
	case token.PropGroup:
		return genericInit(st, ast.OpInitGroup)
	case token.PropText:
		return genericAny(st, conds, prefix, ast.OpText)
	case token.PropWord:
		return genericAny(st, conds, prefix, ast.OpWord)
	case token.PropWin:
		return genericAny(st, conds, prefix, ast.OpWin)
	case token.PropDefeat:
		return genericAny(st, conds, prefix, ast.OpDefeat)
	case token.PropMove:
		return genericNot(st, conds, prefix, ast.OpMove, ast.OpAllMove)
	case token.PropTurn:
		return genericNot(st, conds, prefix, ast.OpTurn, ast.OpAllTurn)
	case token.PropFall:
		return genericNot(st, conds, prefix, ast.OpFall, ast.OpAllFall)
	case token.PropMore:
		return genericNot(st, conds, prefix, ast.OpMore, ast.OpAllMore)
	case token.PropRight:
		return genericNot(st, conds, prefix, ast.OpRight, ast.OpAllRight)
	case token.PropUp:
		return genericNot(st, conds, prefix, ast.OpUp, ast.OpAllUp)
	case token.PropLeft:
		return genericNot(st, conds, prefix, ast.OpLeft, ast.OpAllLeft)
	case token.PropDown:
		return genericNot(st, conds, prefix, ast.OpDown, ast.OpAllDown)
	case token.PropShift:
		return genericAny(st, conds, prefix, ast.OpShift)
	case token.PropSink:
		return genericAny(st, conds, prefix, ast.OpSink)
	case token.PropSwap:
		return genericAny(st, conds, prefix, ast.OpSwap)
	case token.PropPower:
		return genericAny(st, conds, prefix, ast.OpPower)
	default:
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"property %v cannot appear as an IS target here", prop)
	}
}

func validateIsValue(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix) (ast.Instruction, error) {
	subjectID, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"IS-VALUE requires an identifier subject")
	}

	// "SUBJECT IS EMPTY" is the one noun-target IS-form that isn't a value copy: EMPTY is a
	// keyword, not a binding to dereference, so it gets its own op (spec.md §4.5 IsEmpty).
	if st.ActionTarget.Noun.Kind == token.NounEmpty {
		return merge(ast.Op{Kind: ast.OpIsEmpty, ID: subjectID, Sign: st.ActionSign}, conds, prefix), nil
	}

	targetID, ok := identifierOf(st.ActionTarget.Noun)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"IS-VALUE requires an identifier target")
	}
	op := ast.Op{Kind: ast.OpIsValue, ID: subjectID, ID2: targetID, Sign: st.ActionSign}
	return merge(op, conds, prefix), nil
}

func validateIsSum(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix) (ast.Instruction, error) {
	subjectID, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"IS-SUM requires an identifier destination")
	}
	sum := make([]ast.SumTarget, 0, len(st.ActionTargets))
	for i, t := range st.ActionTargets {
		if t.IsProperty {
			return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
				"IS-SUM targets must be nouns, got a property")
		}
		if t.Noun.Kind == token.NounAll {
			sum = append(sum, ast.SumTarget{All: true, Sign: st.ActionSigns[i]})
			continue
		}
		id, ok := identifierOf(t.Noun)
		if !ok {
			return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
				"IS-SUM target must be an identifier or ALL")
		}
		sum = append(sum, ast.SumTarget{ID: id, Sign: st.ActionSigns[i]})
	}
	op := ast.Op{Kind: ast.OpIsSum, ID: subjectID, Sum: sum}
	return merge(op, conds, prefix), nil
}

// genericInit requires an identifier subject and no conditions; NOT yields NoOp; otherwise
// emits the initializer (spec.md §4.4 generic_init).
func genericInit(st *statement.Statement, kind ast.OpKind) (ast.Instruction, error) {
	id, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"initializer requires an identifier subject")
	}
	if st.CondType != nil || st.Prefix != nil {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"initializer cannot be defined conditionally")
	}
	if st.ActionSign {
		return ast.NoOp{}, nil
	}
	return ast.Simple{Op: ast.Op{Kind: kind, ID: id, Float: st.Float}}, nil
}

// genericAny: NOT -> NoOp; conditions pass through untouched (spec.md §4.4 generic_any).
func genericAny(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix, kind ast.OpKind) (ast.Instruction, error) {
	id, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"operation requires an identifier subject")
	}
	if st.ActionSign {
		return ast.NoOp{}, nil
	}
	return merge(ast.Op{Kind: kind, ID: id}, conds, prefix), nil
}

// genericNot: like genericAny but passes sign through, allowing both polarities, and dispatches
// to the ALL-variant op when the subject is the ALL noun (spec.md §4.4 generic_not / generic_you).
func genericNot(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix, kind, allKind ast.OpKind) (ast.Instruction, error) {
	if st.Subject.Kind == token.NounAll {
		return merge(ast.Op{Kind: allKind, Sign: st.ActionSign}, conds, prefix), nil
	}
	id, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"operation requires an identifier or ALL subject")
	}
	return merge(ast.Op{Kind: kind, ID: id, Sign: st.ActionSign}, conds, prefix), nil
}

// validateMake handles "SUBJECT MAKE target": unlike Has/Follow/Eat, the subject is the
// destination and the target names the source container/callable/attribute holder (spec.md §4.7
// Make semantics read as an assignment into the subject, the reverse of generic_verb's
// container-as-subject convention the other three verbs use).
func validateMake(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix) (ast.Instruction, error) {
	destID, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"MAKE requires an identifier subject")
	}
	if st.ActionTarget == nil || st.ActionTarget.IsProperty {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"MAKE requires a noun target")
	}
	srcID, ok := identifierOf(st.ActionTarget.Noun)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"MAKE target must be an identifier, EMPTY, or LEVEL")
	}
	return merge(ast.Op{Kind: ast.OpMake, ID: srcID, ID2: destID, Sign: st.ActionSign}, conds, prefix), nil
}

// genericVerb: identifier subject + noun target, with Empty -> id 0 and Level -> id 1
// (spec.md §4.4 generic_verb).
func genericVerb(st *statement.Statement, conds *ast.Conditions, prefix *ast.Prefix, kind ast.OpKind) (ast.Instruction, error) {
	subjectID, ok := identifierOf(st.Subject)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"operation requires an identifier subject")
	}
	if st.ActionTarget == nil || st.ActionTarget.IsProperty {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"operation requires a noun target")
	}
	targetID, ok := identifierOf(st.ActionTarget.Noun)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindInstructionValidationError,
			"operation target must be an identifier, EMPTY, or LEVEL")
	}
	return merge(ast.Op{Kind: kind, ID: subjectID, ID2: targetID, Sign: st.ActionSign}, conds, prefix), nil
}

// identifierOf resolves a Noun to an identifier ID, mapping the Empty/Level keyword nouns to
// their reserved IDs per spec.md §4.4 ("Empty -> target id 0, Level -> target id 1").
func identifierOf(n statement.Noun) (ident.ID, bool) {
	switch n.Kind {
	case token.NounIdentifier:
		return n.ID, true
	case token.NounEmpty:
		return ident.Empty, true
	case token.NounLevel:
		return ident.Level, true
	case token.NounImage:
		return ident.Image, true
	default:
		return 0, false
	}
}

// merge attaches conditions/prefix to a Simple op, producing Complex only if either is present
// (spec.md §4.4 "merge").
func merge(op ast.Op, conds *ast.Conditions, prefix *ast.Prefix) ast.Instruction {
	if conds == nil && prefix == nil {
		return ast.Simple{Op: op}
	}
	return ast.Complex{Conditions: conds, Prefix: prefix, Op: op}
}

// conditionsOf retrieves the Conditional and Prefix conditions of a statement, per
// _examples/original_source/src/instruction.rs's `conditions` helper. A conditional subject of
// ALL/LEVEL/IMAGE is rejected with a ConditionError (spec.md §4.6, §8 boundary properties).
func conditionsOf(st *statement.Statement) (*ast.Conditions, *ast.Prefix, error) {
	var conds *ast.Conditions
	var prefix *ast.Prefix

	if st.CondType != nil {
		if st.Subject.Kind != token.NounIdentifier {
			return nil, nil, diagnostics.New(diagnostics.KindConditionError,
				"conditional subject must be a single identifier, not ALL/LEVEL/IMAGE")
		}
		conds = &ast.Conditions{Type: *st.CondType, Sign: st.CondSign, Targets: st.CondTargets}
	}
	if st.Prefix != nil {
		prefix = &ast.Prefix{Prefix: *st.Prefix, Sign: st.PrefixSign}
	}
	return conds, prefix, nil
}
