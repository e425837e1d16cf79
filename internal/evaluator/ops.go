// ==============================================================================================
// FILE: internal/evaluator/ops.go
// ==============================================================================================
// PURPOSE: execSimple dispatches one leaf Op (spec.md §4.5) against the current store. Expressed
//          as a single switch over ast.OpKind — tagged-union dispatch rather than subtype
//          dispatch, per spec.md §9's design note, so every unsupported variant/op pairing
//          reports a uniform TypeError.
// ==============================================================================================

package evaluator

import (
	"bufio"

	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/object"
	"github.com/samber/lo"
)

func execSimple(ctx *Context, op ast.Op, store *object.Store) (ident.ID, object.Object, error) {
	switch op.Kind {
	case ast.OpInitYou:
		store.Initialize(op.ID, &object.You{}, op.Float)
		return noBreak, nil, nil
	case ast.OpInitYou2:
		store.Initialize(op.ID, &object.You{}, op.Float)
		return noBreak, nil, nil
	case ast.OpInitGroup:
		store.Initialize(op.ID, &object.Group{}, op.Float)
		return noBreak, nil, nil

	case ast.OpText:
		return noBreak, nil, execText(ctx, store, op.ID)
	case ast.OpWord:
		return noBreak, nil, execWord(ctx, store, op.ID)
	case ast.OpWin:
		if err := requireYou(store, op.ID); err != nil {
			return noBreak, nil, err
		}
		return noBreak, nil, &ExitSignal{Code: 0}
	case ast.OpDefeat:
		if err := requireYou(store, op.ID); err != nil {
			return noBreak, nil, err
		}
		return noBreak, nil, &ExitSignal{Code: 1}

	case ast.OpIsValue:
		return noBreak, nil, execIsValue(store, op.ID, op.ID2, op.Sign)
	case ast.OpIsEmpty:
		return noBreak, nil, execIsEmpty(store, op.ID, op.Sign)
	case ast.OpMimicReference:
		store.Set(op.ID, &object.Reference{Pointer: op.ID2})
		return noBreak, nil, nil

	case ast.OpMove, ast.OpTurn, ast.OpFall, ast.OpMore, ast.OpRight, ast.OpUp, ast.OpLeft, ast.OpDown:
		return noBreak, nil, applyYouOp(store, op.Kind, op.ID, op.Sign)

	case ast.OpAllMove, ast.OpAllTurn, ast.OpAllFall, ast.OpAllMore, ast.OpAllRight, ast.OpAllUp, ast.OpAllLeft, ast.OpAllDown:
		return noBreak, nil, applyAllYouOp(store, allToSingle(op.Kind), op.Sign)

	case ast.OpShift:
		return noBreak, nil, execShift(store, op.ID, op.Sign)
	case ast.OpSink:
		return noBreak, nil, execSink(store, op.ID)
	case ast.OpSwap:
		return noBreak, nil, execSwap(store, op.ID)

	case ast.OpHas:
		return noBreak, nil, execHas(store, op.ID, op.ID2)
	case ast.OpFollow:
		return noBreak, nil, execFollow(store, op.ID, op.ID2)
	case ast.OpEat:
		return noBreak, nil, execEat(store, op.ID, op.ID2)
	case ast.OpMake:
		return execMake(store, op.ID, op.ID2)
	case ast.OpPower:
		return execPower(ctx, store, op.ID)
	case ast.OpFearTele:
		return op.ID2, nil, nil

	case ast.OpIsSum:
		return noBreak, nil, execIsSum(store, op.ID, op.Sum)

	default:
		return noBreak, nil, diagnostics.New(diagnostics.KindRuntimeError, "unhandled op kind %v", op.Kind)
	}
}

// execIsEmpty asserts that id's current binding is (or, if negated, is not) the Empty singleton.
func execIsEmpty(store *object.Store, id ident.ID, not bool) error {
	obj, _, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	_, isEmpty := obj.(*object.Empty)
	if isEmpty == not {
		return diagnostics.New(diagnostics.KindTypeError, "IS EMPTY assertion failed for identifier %d", id)
	}
	return nil
}

func requireYou(store *object.Store, id ident.ID) error {
	obj, _, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	if _, isYou := obj.(*object.You); !isYou {
		return diagnostics.New(diagnostics.KindTypeError, "expected You, got %s", obj.Type())
	}
	return nil
}

func execText(ctx *Context, store *object.Store, id ident.ID) error {
	obj, _, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	switch o := obj.(type) {
	case *object.You:
		_, err := ctx.Out.Write([]byte{*o.Active()})
		return err
	case *object.Group:
		for _, el := range o.Data {
			you, ok := el.(*object.You)
			if !ok {
				return diagnostics.New(diagnostics.KindTypeError, "TEXT on a Group requires every element to be a You")
			}
			if _, err := ctx.Out.Write([]byte{*you.Active()}); err != nil {
				return err
			}
		}
		return nil
	default:
		return diagnostics.New(diagnostics.KindTypeError, "TEXT is not supported on %s", o.Type())
	}
}

func execWord(ctx *Context, store *object.Store, id ident.ID) error {
	obj, finalID, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	switch o := obj.(type) {
	case *object.You:
		buf := make([]byte, 1)
		if _, err := ctx.In.Read(buf); err != nil {
			return err
		}
		*o.Active() = buf[0]
		store.Set(finalID, o)
		return nil
	case *object.Group:
		r := bufio.NewReader(ctx.In)
		line, _ := r.ReadString('\n')
		for _, b := range []byte(line) {
			o.Data = append(o.Data, &object.You{X: b})
			o.Index++
		}
		store.Set(finalID, o)
		return nil
	default:
		return diagnostics.New(diagnostics.KindTypeError, "WORD is not supported on %s", o.Type())
	}
}

// execIsValue implements spec.md §4.5/§8's IsValue. It is type-polymorphic on the target: for a
// You target it preserves the documented quirk literally (not=true sets y from 255-b.x, not
// 255-b.y); for any other variant, not=false copies the binding outright (used e.g. to bind an
// Image's returned ImageInstance to a new name) and not=true is unsupported.
func execIsValue(store *object.Store, aID, bID ident.ID, not bool) error {
	bObj, _, ok := store.Deref(bID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", bID)
	}
	if bYou, isYou := bObj.(*object.You); isYou {
		if !not {
			store.Set(aID, &object.You{X: bYou.X, Y: bYou.Y, Dir: bYou.Dir})
			return nil
		}
		// Documented quirk (spec.md §9): y = 255 - b.x, not 255 - b.y.
		store.Set(aID, &object.You{X: 255 - bYou.X, Y: 255 - bYou.X, Dir: bYou.Dir})
		return nil
	}
	if not {
		return diagnostics.New(diagnostics.KindTypeError, "IS-VALUE negated form requires a You target")
	}
	store.Set(aID, bObj)
	return nil
}

func applyYouOp(store *object.Store, kind ast.OpKind, id ident.ID, sign bool) error {
	obj, finalID, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	you, ok := obj.(*object.You)
	if !ok {
		return diagnostics.New(diagnostics.KindTypeError, "expected You, got %s", obj.Type())
	}
	if err := mutateYou(you, kind, sign); err != nil {
		return err
	}
	store.Set(finalID, you)
	return nil
}

func mutateYou(you *object.You, kind ast.OpKind, sign bool) error {
	switch kind {
	case ast.OpMove:
		delta := uint8(1)
		if sign {
			delta = 255
		}
		*you.Active() += delta
	case ast.OpTurn:
		if sign {
			you.Dir = (you.Dir + 3) % 4
		} else {
			you.Dir = (you.Dir + 1) % 4
		}
	case ast.OpFall:
		if sign {
			*you.Active() = 0
		} else {
			*you.Active() = 255
		}
	case ast.OpMore:
		if sign {
			*you.Active() /= 2
		} else {
			*you.Active() *= 2
		}
	case ast.OpRight:
		you.Dir = pickDir(sign, object.DirRight, object.DirLeft)
	case ast.OpUp:
		you.Dir = pickDir(sign, object.DirUp, object.DirDown)
	case ast.OpLeft:
		you.Dir = pickDir(sign, object.DirLeft, object.DirRight)
	case ast.OpDown:
		you.Dir = pickDir(sign, object.DirDown, object.DirUp)
	default:
		return diagnostics.New(diagnostics.KindRuntimeError, "mutateYou called with non-motion op %v", kind)
	}
	return nil
}

func pickDir(negated bool, normal, negatedDir object.Direction) object.Direction {
	if negated {
		return negatedDir
	}
	return normal
}

func allToSingle(kind ast.OpKind) ast.OpKind {
	switch kind {
	case ast.OpAllMove:
		return ast.OpMove
	case ast.OpAllTurn:
		return ast.OpTurn
	case ast.OpAllFall:
		return ast.OpFall
	case ast.OpAllMore:
		return ast.OpMore
	case ast.OpAllRight:
		return ast.OpRight
	case ast.OpAllUp:
		return ast.OpUp
	case ast.OpAllLeft:
		return ast.OpLeft
	default:
		return ast.OpDown
	}
}

// applyAllYouOp applies a motion op to every You in locals then globals (spec.md §4.5), using
// samber/lo's Keys to list each scope's bindings and mutating the You-typed ones in place.
func applyAllYouOp(store *object.Store, kind ast.OpKind, sign bool) error {
	for _, scope := range []map[ident.ID]object.Object{store.Locals, store.Globals} {
		ids := lo.Keys(scope)
		for _, id := range ids {
			you, ok := scope[id].(*object.You)
			if !ok {
				continue
			}
			if err := mutateYou(you, kind, sign); err != nil {
				return err
			}
		}
	}
	return nil
}

func execShift(store *object.Store, id ident.ID, not bool) error {
	obj, finalID, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	g, ok := obj.(*object.Group)
	if !ok {
		return diagnostics.New(diagnostics.KindTypeError, "SHIFT requires a Group, got %s", obj.Type())
	}
	n := len(g.Data)
	if n == 0 {
		// Underflow on an empty Group is acceptable per spec.md §9's documented quirk.
		panic("SHIFT on an empty Group underflowed its cursor")
	}
	if not {
		g.Index = (g.Index - 1 + n) % n
	} else {
		g.Index = (g.Index + 1) % n
	}
	store.Set(finalID, g)
	return nil
}

func execSink(store *object.Store, id ident.ID) error {
	obj, finalID, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	g, ok := obj.(*object.Group)
	if !ok {
		return diagnostics.New(diagnostics.KindTypeError, "SINK requires a Group, got %s", obj.Type())
	}
	if len(g.Data) > 0 {
		g.Data = g.Data[:len(g.Data)-1]
	}
	store.Set(finalID, g)
	return nil
}

func execSwap(store *object.Store, id ident.ID) error {
	obj, finalID, ok := store.Deref(id)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", id)
	}
	g, ok := obj.(*object.Group)
	if !ok {
		return diagnostics.New(diagnostics.KindTypeError, "SWAP requires a Group, got %s", obj.Type())
	}
	if len(g.Data) == 0 {
		panic("SWAP on an empty Group underflowed its cursor")
	}
	last := len(g.Data) - 1
	g.Data[g.Index], g.Data[last] = g.Data[last], g.Data[g.Index]
	store.Set(finalID, g)
	return nil
}
