// ==============================================================================================
// FILE: internal/evaluator/conditions.go
// ==============================================================================================
// PURPOSE: gate evaluates a Complex instruction's condition and prefix predicates against the
//          store (spec.md §4.6) before its Simple op is allowed to run. Both predicates test the
//          statement's original subject, carried through as the wrapped Op's own ID field since
//          neither ast.Conditions nor ast.Prefix repeats it.
// ==============================================================================================

package evaluator

import (
	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/object"
	"babalang/internal/statement"
	"babalang/internal/token"
)

func gate(ctx *Context, conds *ast.Conditions, prefix *ast.Prefix, subjectID ident.ID, store *object.Store) (bool, error) {
	if conds != nil {
		ok, err := evalConditions(store, subjectID, conds)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if prefix != nil {
		ok, err := evalPrefix(store, subjectID, prefix)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evalConditions(store *object.Store, subjectID ident.ID, c *ast.Conditions) (bool, error) {
	subj, _, ok := store.Deref(subjectID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", subjectID)
	}

	for _, target := range c.Targets {
		raw, err := evalOneCondition(store, c.Type, subj, target)
		if err != nil {
			return false, err
		}
		if raw == c.Sign {
			return false, nil
		}
	}
	return true, nil
}

// evalOneCondition reports the unsigned (pre-XOR) truth value of one target check.
func evalOneCondition(store *object.Store, kind token.Conditional, subj object.Object, target statement.Target) (bool, error) {
	switch kind {
	case token.CondOn:
		return evalOn(store, subj, target)
	case token.CondNear:
		return evalNear(store, subj, target)
	case token.CondFacing:
		return evalFacing(store, subj, target)
	case token.CondWithout:
		return evalWithout(store, subj, target)
	default:
		return false, diagnostics.New(diagnostics.KindRuntimeError, "unrecognized conditional kind %v", kind)
	}
}

func evalOn(store *object.Store, subj object.Object, target statement.Target) (bool, error) {
	if !target.IsProperty && target.Noun.Kind == token.NounAll {
		you, isYou := subj.(*object.You)
		if !isYou {
			return false, nil
		}
		for _, other := range allYous(store) {
			if other.X != you.X || other.Y != you.Y {
				return false, nil
			}
		}
		return true, nil
	}
	otherID, ok := nounIdentifier(target)
	if !ok {
		return false, diagnostics.New(diagnostics.KindConditionError, "ON requires an identifier or ALL target")
	}
	other, _, ok := store.Deref(otherID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", otherID)
	}
	return subj.Type() == other.Type(), nil
}

func evalNear(store *object.Store, subj object.Object, target statement.Target) (bool, error) {
	if target.IsProperty {
		return false, diagnostics.New(diagnostics.KindConditionError, "NEAR does not accept a property target")
	}
	switch target.Noun.Kind {
	case token.NounAll:
		for _, o := range collectAll(store) {
			if o.Type() != subj.Type() {
				return false, nil
			}
		}
		return true, nil
	case token.NounEmpty:
		_, isEmpty := subj.(*object.Empty)
		return isEmpty, nil
	case token.NounLevel:
		_, isLevel := subj.(*object.Level)
		return isLevel, nil
	case token.NounImage:
		return isImageLike(subj), nil
	}
	otherID, _ := nounIdentifier(target)
	other, _, ok := store.Deref(otherID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", otherID)
	}
	return subj.Type() == other.Type(), nil
}

func collectAll(store *object.Store) []object.Object {
	out := make([]object.Object, 0, len(store.Locals)+len(store.Globals))
	for _, o := range store.Locals {
		out = append(out, o)
	}
	for _, o := range store.Globals {
		out = append(out, o)
	}
	return out
}

func isImageLike(obj object.Object) bool {
	switch obj.(type) {
	case *object.Image, *object.ImageInstance:
		return true
	default:
		return false
	}
}

func evalFacing(store *object.Store, subj object.Object, target statement.Target) (bool, error) {
	if target.IsProperty {
		if !target.Property.IsDirection() {
			return false, diagnostics.New(diagnostics.KindConditionError, "FACING property target must be a direction")
		}
		you, ok := subj.(*object.You)
		if !ok {
			return false, diagnostics.New(diagnostics.KindTypeError, "FACING <direction> requires a You subject")
		}
		return you.Dir == directionOf(target.Property), nil
	}

	// Identifier target: S FACING T holds when S and T are both Yous (ordered via You.Less) or
	// both Groups (ordered by length), and S < T under that ordering (spec.md §4.2/§4.6).
	otherID, ok := nounIdentifier(target)
	if !ok {
		return false, diagnostics.New(diagnostics.KindConditionError, "FACING requires a direction property or identifier target")
	}
	other, _, ok := store.Deref(otherID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", otherID)
	}
	switch s := subj.(type) {
	case *object.You:
		t, ok := other.(*object.You)
		if !ok {
			return false, diagnostics.New(diagnostics.KindTypeError, "FACING <identifier> requires both sides to be the same type (You or Group)")
		}
		return s.Less(t), nil
	case *object.Group:
		t, ok := other.(*object.Group)
		if !ok {
			return false, diagnostics.New(diagnostics.KindTypeError, "FACING <identifier> requires both sides to be the same type (You or Group)")
		}
		return len(s.Data) < len(t.Data), nil
	default:
		return false, diagnostics.New(diagnostics.KindTypeError, "FACING <identifier> requires a You or Group subject")
	}
}

func directionOf(p token.Property) object.Direction {
	switch p {
	case token.PropRight:
		return object.DirRight
	case token.PropUp:
		return object.DirUp
	case token.PropLeft:
		return object.DirLeft
	default:
		return object.DirDown
	}
}

func evalWithout(store *object.Store, subj object.Object, target statement.Target) (bool, error) {
	group, ok := subj.(*object.Group)
	if !ok {
		return false, diagnostics.New(diagnostics.KindTypeError, "WITHOUT requires a Group subject")
	}
	if !target.IsProperty && target.Noun.Kind == token.NounAll {
		for _, el := range group.Data {
			for _, other := range collectAll(store) {
				if el.Type() == other.Type() {
					return false, nil
				}
			}
		}
		return true, nil
	}
	otherID, ok := nounIdentifier(target)
	if !ok {
		return false, diagnostics.New(diagnostics.KindConditionError, "WITHOUT requires an identifier or ALL target")
	}
	other, _, ok := store.Deref(otherID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", otherID)
	}
	for _, el := range group.Data {
		if el.Type() == other.Type() {
			return false, nil
		}
	}
	return true, nil
}

func nounIdentifier(t statement.Target) (ident.ID, bool) {
	if t.IsProperty || t.Noun.Kind != token.NounIdentifier {
		return 0, false
	}
	return t.Noun.ID, true
}

func evalPrefix(store *object.Store, subjectID ident.ID, p *ast.Prefix) (bool, error) {
	subj, _, ok := store.Deref(subjectID)
	if !ok {
		return false, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", subjectID)
	}
	var result bool
	switch p.Prefix {
	case token.PrefixLonely:
		result = isLonely(subj)
	case token.PrefixIdle:
		result = isIdle(subj)
	default:
		return false, diagnostics.New(diagnostics.KindRuntimeError, "unrecognized prefix kind %v", p.Prefix)
	}
	return result != p.Sign, nil
}

func isLonely(obj object.Object) bool {
	switch o := obj.(type) {
	case *object.You:
		return o.X == 0 && o.Y == 0
	case *object.Group:
		return len(o.Data) == 0
	case *object.Empty:
		return true
	case *object.Level:
		return false
	case *object.Image:
		return object.AllAttributesUnbound(o.Attributes)
	case *object.ImageInstance:
		return object.AllAttributesUnbound(o.Attributes)
	default:
		return false
	}
}

func isIdle(obj object.Object) bool {
	switch o := obj.(type) {
	case *object.Level:
		return o.Ready()
	case *object.Image:
		return len(o.Constructor.Args)-1 == len(o.Constructor.Params)
	default:
		return false
	}
}
