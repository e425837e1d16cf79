// ==============================================================================================
// FILE: internal/evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The tree-walking evaluator (spec.md §4.7). Runs an Instruction tree against a pair of
//          stores (locals, globals), implementing loops, function calls, class instantiation,
//          conditional gating, and non-local exits.
// ==============================================================================================

package evaluator

import (
	"fmt"
	"io"

	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/object"
)

// Sentinels for the (return_scope, return_value) unwinding pair (spec.md §4.7).
const (
	noBreak  = ident.Level // NO_BREAK (=1): continue normally.
	prgScope = ident.Empty // PRG_SCOPE (=0): program-scope label.
)

// ExitSignal is returned directly as the error value (not wrapped) when WIN or DEFEAT terminates
// the program. cmd/babalang's main maps it to the corresponding process exit code.
type ExitSignal struct {
	Code int
}

func (e *ExitSignal) Error() string { return fmt.Sprintf("exit %d", e.Code) }

// Context carries the ambient resources a running program needs: the identifier table it was
// lexed against (for diagnostics) and its I/O streams (spec.md §6 "I/O during execution").
type Context struct {
	Idents *ident.Table
	In     io.Reader
	Out    io.Writer
}

// Run executes a complete program from a fresh top-level store (spec.md §4.7 "exec").
func Run(ctx *Context, program []ast.Instruction) error {
	store := object.NewProgramStore()
	_, _, err := execWith(ctx, program, store, prgScope)
	return err
}

// execWith iterates instructions and returns the (return_scope, return_value) pair described in
// spec.md §4.7.
func execWith(ctx *Context, body []ast.Instruction, store *object.Store, scope ident.ID) (ident.ID, object.Object, error) {
	for _, instr := range body {
		bt, rv, err := execOne(ctx, instr, store, scope)
		if err != nil {
			return noBreak, nil, err
		}
		if bt != noBreak {
			return bt, rv, nil
		}
	}
	return noBreak, nil, nil
}

func execOne(ctx *Context, instr ast.Instruction, store *object.Store, scope ident.ID) (ident.ID, object.Object, error) {
	switch v := instr.(type) {
	case ast.NoOp:
		return noBreak, nil, nil

	case ast.Simple:
		return execSimple(ctx, v.Op, store)

	case ast.Complex:
		ok, err := gate(ctx, v.Conditions, v.Prefix, v.Op.ID, store)
		if err != nil {
			return noBreak, nil, err
		}
		if !ok {
			return noBreak, nil, nil
		}
		return execSimple(ctx, v.Op, store)

	case ast.Tele:
		for {
			bt, rv, err := execWith(ctx, v.Body, store, v.ID)
			if err != nil {
				return noBreak, nil, err
			}
			if bt == noBreak {
				continue
			}
			if bt == v.ID {
				return noBreak, nil, nil
			}
			return bt, rv, nil
		}

	case ast.Level:
		lvl := &object.Level{ID: v.ID, Args: append([]ident.ID(nil), v.Args...), Body: v.Body}
		store.Initialize(v.ID, lvl, v.Float)
		return noBreak, nil, nil

	case ast.Image:
		ctorLvl := &object.Level{ID: v.Constructor.ID, Args: append([]ident.ID(nil), v.Constructor.Args...), Body: v.Constructor.Body}
		img := &object.Image{
			ID:          v.ID,
			Constructor: ctorLvl,
			Attributes:  make(map[ident.ID]object.Object, len(v.Attributes)),
			AttrOrder:   append([]ident.ID(nil), v.Attributes...),
		}
		for _, a := range v.Attributes {
			img.Attributes[a] = nil
		}
		store.Initialize(v.ID, img, v.Float)
		return noBreak, nil, nil

	default:
		return noBreak, nil, diagnostics.New(diagnostics.KindRuntimeError, "reached impossible evaluator branch for %T", instr)
	}
}
