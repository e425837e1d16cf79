// ==============================================================================================
// FILE: internal/evaluator/sum.go
// ==============================================================================================
// PURPOSE: IsSum — folds a list of You-valued targets (plus the optional ALL pseudo-target) into
//          a destination You with wrapping arithmetic (spec.md §4.5). Uses samber/lo to collect
//          the candidate You bindings for an ALL target, matching the teacher pack's use of lo
//          for small functional collection transforms.
// ==============================================================================================

package evaluator

import (
	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/object"
	"github.com/samber/lo"
)

func execIsSum(store *object.Store, destID ident.ID, targets []ast.SumTarget) error {
	var sumX, sumY uint8

	for _, t := range targets {
		if t.All {
			for _, you := range allYous(store) {
				// ALL's contribution is sign-inverted, a documented quirk (spec.md §9).
				addSigned(&sumX, &sumY, you, !t.Sign)
			}
			continue
		}
		obj, _, ok := store.Deref(t.ID)
		if !ok {
			return diagnostics.New(diagnostics.KindObjectNotDefinedError, "identifier %d is not defined", t.ID)
		}
		you, ok := obj.(*object.You)
		if !ok {
			return diagnostics.New(diagnostics.KindTypeError, "IS-SUM target must be a You, got %s", obj.Type())
		}
		addSigned(&sumX, &sumY, you, t.Sign)
	}

	dest, finalID, ok := store.Deref(destID)
	if ok {
		if you, isYou := dest.(*object.You); isYou {
			store.Set(finalID, &object.You{X: sumX, Y: sumY, Dir: you.Dir})
			return nil
		}
	}
	store.Initialize(destID, &object.You{X: sumX, Y: sumY}, false)
	return nil
}

func addSigned(sumX, sumY *uint8, you *object.You, sign bool) {
	if sign {
		*sumX -= you.X
		*sumY -= you.Y
		return
	}
	*sumX += you.X
	*sumY += you.Y
}

func allYous(store *object.Store) []*object.You {
	var collected []*object.You
	for _, scope := range []map[ident.ID]object.Object{store.Locals, store.Globals} {
		yous := lo.FilterMap(lo.Values(scope), func(o object.Object, _ int) (*object.You, bool) {
			you, ok := o.(*object.You)
			return you, ok
		})
		collected = append(collected, yous...)
	}
	return collected
}
