// ==============================================================================================
// FILE: internal/token/token_unit_test.go
// ==============================================================================================
// PURPOSE: Validates keyword classification and the FACING direction-property carve-out.
// ==============================================================================================

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKeywords(t *testing.T) {
	tok, ok := Lookup("is")
	require.True(t, ok)
	require.Equal(t, KindVerb, tok.Kind)
	require.Equal(t, VerbIs, tok.Verb)

	tok, ok = Lookup("FEAR")
	require.False(t, ok, "Lookup expects an already-lowercased word")

	tok, ok = Lookup("near")
	require.True(t, ok)
	require.Equal(t, KindConditional, tok.Kind)
	require.Equal(t, CondNear, tok.Conditional)
}

func TestLookupNotKeyword(t *testing.T) {
	_, ok := Lookup("baba")
	require.False(t, ok)
}

func TestPropertyIsDirection(t *testing.T) {
	for _, p := range []Property{PropUp, PropDown, PropLeft, PropRight} {
		require.True(t, p.IsDirection())
	}
	for _, p := range []Property{PropYou, PropMove, PropText} {
		require.False(t, p.IsDirection())
	}
}
