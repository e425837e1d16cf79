// ==============================================================================================
// FILE: internal/evaluator/calls.go
// ==============================================================================================
// PURPOSE: Has/Make/Follow/Eat/Power — the collection, attribute, and call operators
//          (spec.md §4.7). These are the only ops whose effect depends on the target's runtime
//          variant beyond a simple type check, so they get their own file out of ops.go.
// ==============================================================================================

package evaluator

import (
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/object"
)

func execHas(store *object.Store, srcID, vID ident.ID) error {
	src, finalID, ok := store.Deref(srcID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", srcID)
	}
	value, _, ok := store.Deref(vID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", vID)
	}

	switch s := src.(type) {
	case *object.Group:
		s.Data = append(s.Data, value)
		store.Set(finalID, s)
		return nil
	case *object.Level:
		s.Params = append(s.Params, value)
		store.Set(finalID, s)
		return nil
	case *object.Image:
		if s.NextAttr < len(s.AttrOrder) {
			s.Attributes[s.AttrOrder[s.NextAttr]] = value
			s.NextAttr++
		} else {
			s.Constructor.Params = append(s.Constructor.Params, value)
		}
		store.Set(finalID, s)
		return nil
	default:
		return diagnostics.New(diagnostics.KindTypeError, "HAS is not supported on %s", s.Type())
	}
}

// execMake implements spec.md §4.7's three Make shapes. Only the Level case yields a non-noBreak
// return, unwinding execWith toward src's scope.
func execMake(store *object.Store, srcID, destID ident.ID) (ident.ID, object.Object, error) {
	src, finalID, ok := store.Deref(srcID)
	if !ok {
		return noBreak, nil, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", srcID)
	}

	switch s := src.(type) {
	case *object.Group:
		if len(s.Data) == 0 {
			return noBreak, nil, diagnostics.New(diagnostics.KindRuntimeError, "MAKE popped from an empty Group")
		}
		last := len(s.Data) - 1
		popped := s.Data[last]
		s.Data = s.Data[:last]
		store.Set(finalID, s)
		store.Locals[destID] = popped
		return noBreak, nil, nil

	case *object.Level:
		rv, _, ok := store.Deref(destID)
		if !ok {
			return noBreak, nil, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", destID)
		}
		return finalID, rv, nil

	case *object.Image, *object.ImageInstance:
		attrs, ptr := attributesOf(s)
		val, ok := attrs[ptr]
		if !ok || val == nil {
			return noBreak, nil, diagnostics.New(diagnostics.KindObjectNotDefinedError,
				"attribute %d has not been bound", ptr)
		}
		store.Locals[destID] = val
		return noBreak, nil, nil

	default:
		return noBreak, nil, diagnostics.New(diagnostics.KindTypeError, "MAKE is not supported on %s", s.Type())
	}
}

func execFollow(store *object.Store, srcID, attrID ident.ID) error {
	src, finalID, ok := store.Deref(srcID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", srcID)
	}
	switch s := src.(type) {
	case *object.Image:
		s.AttrPointer = attrID
		store.Set(finalID, s)
		return nil
	case *object.ImageInstance:
		s.AttrPointer = attrID
		store.Set(finalID, s)
		return nil
	default:
		return diagnostics.New(diagnostics.KindTypeError, "FOLLOW is not supported on %s", s.Type())
	}
}

func execEat(store *object.Store, srcID, vID ident.ID) error {
	// "self eat self" is a literal no-op: without this guard it would clobber whatever value HAS
	// already seeded at the current attribute pointer with a self-reference to the container.
	if srcID == vID {
		return nil
	}
	src, finalID, ok := store.Deref(srcID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", srcID)
	}
	value, _, ok := store.Deref(vID)
	if !ok {
		return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", vID)
	}
	switch s := src.(type) {
	case *object.Image:
		s.Attributes[s.AttrPointer] = value
		store.Set(finalID, s)
		return nil
	case *object.ImageInstance:
		s.Attributes[s.AttrPointer] = value
		store.Set(finalID, s)
		return nil
	default:
		return diagnostics.New(diagnostics.KindTypeError, "EAT is not supported on %s", s.Type())
	}
}

func attributesOf(obj object.Object) (map[ident.ID]object.Object, ident.ID) {
	switch s := obj.(type) {
	case *object.Image:
		return s.Attributes, s.AttrPointer
	case *object.ImageInstance:
		return s.Attributes, s.AttrPointer
	default:
		return nil, 0
	}
}

// execPower calls the Level or Image the subject resolves to (spec.md §4.7 "Call semantics").
func execPower(ctx *Context, store *object.Store, subjectID ident.ID) (ident.ID, object.Object, error) {
	obj, finalID, ok := store.Deref(subjectID)
	if !ok {
		return noBreak, nil, diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", subjectID)
	}

	_, global := store.Globals[finalID]

	switch callee := obj.(type) {
	case *object.Level:
		return callLevel(ctx, store, finalID, callee, global)
	case *object.Image:
		return callImage(ctx, store, finalID, callee, global)
	default:
		return noBreak, nil, diagnostics.New(diagnostics.KindTypeError, "POWER requires a Level or Image, got %s", callee.Type())
	}
}

func callLevel(ctx *Context, store *object.Store, calleeID ident.ID, lvl *object.Level, wasGlobal bool) (ident.ID, object.Object, error) {
	if len(lvl.Args) != len(lvl.Params) {
		return noBreak, nil, diagnostics.New(diagnostics.KindArgumentError,
			"POWER called with %d arguments, expected %d", len(lvl.Params), len(lvl.Args))
	}

	frame := store.Clone()
	for i, argID := range lvl.Args {
		frame.Locals[argID] = lvl.Params[i]
	}
	frame.Locals[lvl.ID] = lvl // self-reference, supports recursive calls within the body.

	bt, rv, err := execWith(ctx, lvl.Body, frame, lvl.ID)
	if err != nil {
		return noBreak, nil, err
	}
	if bt != lvl.ID {
		return noBreak, nil, diagnostics.New(diagnostics.KindRuntimeError, "LEVEL body fell through without returning")
	}

	lvl.Params = nil
	placeReturn(store, calleeID, rv, wasGlobal)
	return noBreak, nil, nil
}

func callImage(ctx *Context, store *object.Store, calleeID ident.ID, img *object.Image, wasGlobal bool) (ident.ID, object.Object, error) {
	ctor := img.Constructor
	// ctor.Args[0] is the implicit self argument: callImage binds it straight from the freshly
	// built instance below, never from Params, so only the remaining args need a matching Param.
	if len(ctor.Args)-1 != len(ctor.Params) {
		return noBreak, nil, diagnostics.New(diagnostics.KindArgumentError,
			"POWER called with %d arguments, expected %d", len(ctor.Params), len(ctor.Args)-1)
	}

	// The instance starts from the template's current attribute values (those HAS already seeded
	// on the Image), not from scratch, so a constructor that sets no further attributes still
	// returns a populated instance.
	instAttrs := make(map[ident.ID]object.Object, len(img.Attributes))
	for id, v := range img.Attributes {
		instAttrs[id] = v
	}
	inst := &object.ImageInstance{ClassID: img.ID, Attributes: instAttrs}

	frame := store.Clone()
	selfID := ctor.Args[0]
	frame.Locals[selfID] = inst
	frame.Locals[ctor.ID] = ctor // so the constructor's implicit-return trailer can resolve it.
	for i := 1; i < len(ctor.Args); i++ {
		frame.Locals[ctor.Args[i]] = ctor.Params[i-1]
	}

	bt, rv, err := execWith(ctx, ctor.Body, frame, ctor.ID)
	if err != nil {
		return noBreak, nil, err
	}
	if bt != ctor.ID {
		return noBreak, nil, diagnostics.New(diagnostics.KindRuntimeError, "IMAGE constructor fell through without returning")
	}

	ctor.Params = nil
	placeReturn(store, calleeID, rv, wasGlobal)
	return noBreak, nil, nil
}

func placeReturn(store *object.Store, calleeID ident.ID, rv object.Object, wasGlobal bool) {
	if wasGlobal {
		delete(store.Locals, calleeID)
		store.Globals[calleeID] = rv
		return
	}
	delete(store.Globals, calleeID)
	store.Locals[calleeID] = rv
}
