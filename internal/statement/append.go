// ==============================================================================================
// FILE: internal/statement/append.go
// ==============================================================================================
// PURPOSE: Splits a parsed target run into one or more Statement records. For IS, a run of two
//          or more contiguous Noun targets collapses into a single IS-SUM statement, a lone Noun
//          becomes a single-target IS-VALUE statement, and each Property target becomes its own
//          statement, in encounter order. For every other verb, each target is always its own
//          statement.
// ==============================================================================================

package statement

import "babalang/internal/token"

// PrefixCond carries a parsed prefix (IDLE/LONELY) and its accumulated NOT sign.
type PrefixCond struct {
	Prefix token.Prefix
	Sign   bool
}

// ConditionalCond carries a parsed conditional (ON/NEAR/FACING/WITHOUT), its sign, and targets.
type ConditionalCond struct {
	Type    token.Conditional
	Sign    bool
	Targets []Target
}

func applyContext(st *Statement, prefix *PrefixCond, cond *ConditionalCond) {
	if prefix != nil {
		p := prefix.Prefix
		st.Prefix = &p
		st.PrefixSign = prefix.Sign
	}
	if cond != nil {
		c := cond.Type
		st.CondType = &c
		st.CondSign = cond.Sign
		st.CondTargets = cond.Targets
	}
}

// AppendIs splits the verb-IS target run onto out, per the rule documented in SPEC_FULL.md §6.2:
// walk targets left to right, accumulating contiguous Noun targets into one action_targets
// statement (or a single action_target statement when the run holds one Noun), and emitting
// each Property target immediately as its own action_target statement.
func AppendIs(
	out *[]*Statement,
	subject Noun,
	prefix *PrefixCond,
	cond *ConditionalCond,
	actionTargets []Target,
	actionSigns []bool,
) {
	base := func() *Statement {
		st := &Statement{Subject: subject, ActionType: token.VerbIs}
		applyContext(st, prefix, cond)
		return st
	}

	flushNouns := func(from, to int) {
		st := base()
		if to-from == 1 {
			target := actionTargets[from]
			st.ActionTarget = &target
			st.ActionSign = actionSigns[from]
		} else {
			st.ActionTargets = append([]Target(nil), actionTargets[from:to]...)
			st.ActionSigns = append([]bool(nil), actionSigns[from:to]...)
		}
		*out = append(*out, st)
	}

	start := 0
	n := len(actionTargets)
	for i, t := range actionTargets {
		if t.IsProperty {
			if i > start {
				flushNouns(start, i)
			}
			st := base()
			target := t
			st.ActionTarget = &target
			st.ActionSign = actionSigns[i]
			*out = append(*out, st)
			start = i + 1
		}
	}
	if start < n {
		flushNouns(start, n)
	}
}

// AppendOther splits a non-IS verb's target run: every target is its own statement, per
// spec.md §4.2 ("For verbs other than IS, each AND X produces its own statement").
func AppendOther(
	out *[]*Statement,
	subject Noun,
	prefix *PrefixCond,
	cond *ConditionalCond,
	actionType token.Verb,
	actionTargets []Target,
	actionSigns []bool,
) {
	for i, t := range actionTargets {
		st := &Statement{Subject: subject, ActionType: actionType}
		applyContext(st, prefix, cond)
		target := t
		st.ActionTarget = &target
		st.ActionSign = actionSigns[i]
		*out = append(*out, st)
	}
}
