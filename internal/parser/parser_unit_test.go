// ==============================================================================================
// FILE: internal/parser/parser_unit_test.go
// ==============================================================================================
// PURPOSE: Exercises the statement parser and AST builder against the literal programs from
//          spec.md §8's end-to-end scenarios and its boundary properties.
// ==============================================================================================

package parser

import (
	"testing"

	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) []ast.Instruction {
	t.Helper()
	toks, _, err := lexer.Tokens(src)
	require.NoError(t, err)
	instrs, err := Parse(toks)
	require.NoError(t, err)
	return instrs
}

func TestHelloH(t *testing.T) {
	instrs := parseSource(t, "baba is you  baba is text")
	require.Len(t, instrs, 2)
	require.Equal(t, ast.OpInitYou, instrs[0].(ast.Simple).Op.Kind)
	require.Equal(t, ast.OpText, instrs[1].(ast.Simple).Op.Kind)
}

func TestLoopBreak(t *testing.T) {
	instrs := parseSource(t, "x is tele  baba is you  baba fear x  x is done  all is done")
	require.Len(t, instrs, 1)
	tele, ok := instrs[0].(ast.Tele)
	require.True(t, ok)
	require.Len(t, tele.Body, 2)
}

func TestFunctionDefinitionCollectsArgs(t *testing.T) {
	instrs := parseSource(t, "fn is level  fn has x  fn is move  fn is done  all is done")
	require.Len(t, instrs, 1)
	lvl, ok := instrs[0].(ast.Level)
	require.True(t, ok)
	require.Len(t, lvl.Args, 1)
	require.Len(t, lvl.Body, 1)
}

func TestClassWithConstructor(t *testing.T) {
	src := "cls is image  cls has v  cls is level  cls has self  self follow v  self eat self  cls is done  cls is done  all is done"
	instrs := parseSource(t, src)
	require.Len(t, instrs, 1)
	img, ok := instrs[0].(ast.Image)
	require.True(t, ok)
	require.Len(t, img.Attributes, 1)
	require.NotNil(t, img.Constructor)
	require.Len(t, img.Constructor.Args, 1)
	require.Len(t, img.Constructor.Body, 2)
}

func TestUnterminatedScopeIsStatementParserError(t *testing.T) {
	toks, _, err := lexer.Tokens("x is tele  baba is you")
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
	diag, ok := err.(*diagnostics.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diagnostics.KindStatementParserError, diag.Kind)
}

func TestNotNotCancelsInTargetList(t *testing.T) {
	withNotNot := parseSource(t, "baba is not not move")
	plain := parseSource(t, "baba is move")
	require.Equal(t, plain[0].(ast.Simple).Op.Sign, withNotNot[0].(ast.Simple).Op.Sign)
}

// TestDoubleNotIsStructurallyIdenticalToPlain checks the whole instruction tree, not just the
// one Sign field TestNotNotCancelsInTargetList already covers, catching any stray divergence a
// field-by-field assertion would miss.
func TestDoubleNotIsStructurallyIdenticalToPlain(t *testing.T) {
	withNotNot := parseSource(t, "baba is not not move")
	plain := parseSource(t, "baba is move")
	if diff := cmp.Diff(plain, withNotNot); diff != "" {
		t.Errorf("double-not program diverged from its plain equivalent (-plain +not-not):\n%s", diff)
	}
}

func TestAndJoinedNounTargetsUnderNonIsVerbSplit(t *testing.T) {
	instrs := parseSource(t, "baba has x and y and z")
	require.Len(t, instrs, 3)
	for _, instr := range instrs {
		require.Equal(t, ast.OpHas, instr.(ast.Simple).Op.Kind)
	}
}
