// ==============================================================================================
// FILE: internal/statement/append_test.go
// ==============================================================================================
// PURPOSE: Exercises the testable properties from spec.md §8 for statement splitting.
// ==============================================================================================

package statement

import (
	"testing"

	"babalang/internal/ident"
	"babalang/internal/token"
	"github.com/stretchr/testify/require"
)

func identTarget(id ident.ID) Target {
	return NounTarget(Noun{Kind: token.NounIdentifier, ID: id})
}

func propTarget(p token.Property) Target {
	return PropertyTarget(p)
}

// TestIsSplitting exercises spec.md §8: "A IS B AND C AND D" where B,D are properties and C a
// noun emits three statements for B, C, D in order.
func TestIsSplitting(t *testing.T) {
	subject := Noun{Kind: token.NounIdentifier, ID: 10}
	b := propTarget(token.PropYou)
	c := identTarget(20)
	d := propTarget(token.PropText)

	var out []*Statement
	AppendIs(&out, subject, nil, nil, []Target{b, c, d}, []bool{false, false, false})

	require.Len(t, out, 3)
	require.Equal(t, b, *out[0].ActionTarget)
	require.Equal(t, c, *out[1].ActionTarget)
	require.Equal(t, d, *out[2].ActionTarget)
	for _, st := range out {
		require.Equal(t, subject, st.Subject)
		require.False(t, st.IsSum())
	}
}

// TestIsSplittingContiguousNouns verifies contiguous noun runs collapse into one IS-SUM
// statement instead of splitting per-target.
func TestIsSplittingContiguousNouns(t *testing.T) {
	subject := Noun{Kind: token.NounIdentifier, ID: 1}
	x := identTarget(2)
	y := identTarget(3)
	z := identTarget(4)

	var out []*Statement
	AppendIs(&out, subject, nil, nil, []Target{x, y, z}, []bool{false, true, false})

	require.Len(t, out, 1)
	require.True(t, out[0].IsSum())
	require.Equal(t, []Target{x, y, z}, out[0].ActionTargets)
	require.Equal(t, []bool{false, true, false}, out[0].ActionSigns)
}

// TestAppendOtherSplitsEveryTarget exercises spec.md §8: AND-joining n noun targets under a
// non-IS verb yields exactly n statements with identical subject/conditions.
func TestAppendOtherSplitsEveryTarget(t *testing.T) {
	subject := Noun{Kind: token.NounIdentifier, ID: 5}
	targets := []Target{identTarget(6), identTarget(7), identTarget(8)}
	signs := []bool{false, false, true}

	var out []*Statement
	AppendOther(&out, subject, nil, nil, token.VerbHas, targets, signs)

	require.Len(t, out, 3)
	for i, st := range out {
		require.Equal(t, subject, st.Subject)
		require.Equal(t, targets[i], *st.ActionTarget)
		require.Equal(t, signs[i], st.ActionSign)
	}
}
