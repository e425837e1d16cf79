// ==============================================================================================
// FILE: internal/ast/op.go
// ==============================================================================================
// PURPOSE: The Simple operation catalogue (spec.md §4.5) — the evaluator's opcodes. Expressed as
//          a tagged struct rather than one Go type per opcode: every opcode needs at most an ID,
//          a secondary ID, a sign, a float flag, or a target list, so a closed OpKind enum plus
//          a handful of shared fields keeps dispatch a single switch in the evaluator instead of
//          forty near-identical marker types.
// ==============================================================================================

package ast

import "babalang/internal/ident"

// OpKind enumerates every leaf operation the evaluator can execute.
type OpKind int

const (
	OpInitYou OpKind = iota
	OpInitYou2
	OpInitGroup

	OpText
	OpWord
	OpWin
	OpDefeat
	OpIsValue
	OpIsEmpty
	OpMimicReference

	OpMove
	OpTurn
	OpFall
	OpMore
	OpRight
	OpUp
	OpLeft
	OpDown

	OpShift
	OpSink
	OpSwap

	OpAllMove
	OpAllTurn
	OpAllFall
	OpAllMore
	OpAllRight
	OpAllUp
	OpAllLeft
	OpAllDown

	OpHas
	OpMake
	OpFollow
	OpEat

	OpPower
	OpFearTele

	OpIsSum
)

// SumTarget is one contributor to an IsSum op — either a concrete identifier or the ALL noun,
// which per spec.md §4.5 sums over every You in both scopes with its sign inverted (a documented
// quirk, preserved literally: see internal/evaluator/sum.go).
type SumTarget struct {
	All  bool
	ID   ident.ID
	Sign bool
}

// Op is one leaf instruction. Only the fields relevant to Kind are populated:
//   - Initializers (OpInitYou/You2/Group): ID, Float.
//   - Unary subject ops (OpText..OpSwap except IsValue/MimicReference, plus the OpAll* group):
//     ID, Sign (where applicable), and for motion ops the wrap/negate sense is Sign.
//   - Two-identifier ops (OpIsValue, OpMimicReference, OpMake, OpFollow, OpEat, OpFearTele,
//     OpPower): ID (the primary/source/dest identifier) and ID2 (the secondary).
//   - OpHas: ID is the container, ID2 the identifier whose current value is pushed.
//   - OpIsSum: ID is the destination, Sum lists the contributing targets.
type Op struct {
	Kind  OpKind
	ID    ident.ID
	ID2   ident.ID
	Sign  bool
	Float bool
	Sum   []SumTarget
}
