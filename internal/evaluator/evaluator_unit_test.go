// ==============================================================================================
// FILE: internal/evaluator/evaluator_unit_test.go
// ==============================================================================================

package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"babalang/internal/lexer"
	"babalang/internal/parser"
	"github.com/stretchr/testify/require"
)

func mustRun(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	toks, idents, err := lexer.Tokens(src)
	require.NoError(t, err)
	instrs, err := parser.Parse(toks)
	require.NoError(t, err)

	var out bytes.Buffer
	ctx := &Context{Idents: idents, In: strings.NewReader(stdin), Out: &out}
	err = Run(ctx, instrs)
	return out.String(), err
}

func TestHelloH(t *testing.T) {
	out, err := mustRun(t, "baba is you  baba is text", "")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}

func TestLoopBreak(t *testing.T) {
	_, err := mustRun(t, "x is tele  baba is you  baba fear x  x is done  all is done", "")
	require.NoError(t, err)
}

func TestCounter(t *testing.T) {
	out, err := mustRun(t, "baba is you  baba is move  baba is move  baba is text  all is done", "")
	require.NoError(t, err)
	require.Equal(t, "\x02", out)
}

func TestEcho(t *testing.T) {
	out, err := mustRun(t, "baba is you  baba is word  baba is text  all is done", "Q")
	require.NoError(t, err)
	require.Equal(t, "Q", out)
}

func TestFunctionCall(t *testing.T) {
	src := "fn is level  fn has x  fn is move  fn is done  " +
		"baba is you  fn has baba  fn is power  baba is text  all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x01", out)
}

func TestClassWithConstructor(t *testing.T) {
	src := "cls is image  cls has v  cls is level  cls has self  self follow v  self eat self  cls is done  cls is done  " +
		"baba is you  cls has baba  cls is power  inst is cls  inst follow v  keke make inst  keke is text  all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}

func TestMoveWrapsModulo256(t *testing.T) {
	var b strings.Builder
	b.WriteString("baba is you ")
	for i := 0; i < 256; i++ {
		b.WriteString(" baba is move")
	}
	b.WriteString(" baba is text all is done")
	out, err := mustRun(t, b.String(), "")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}

func TestTurnFourTimesIsIdentity(t *testing.T) {
	src := "baba is you baba is turn baba is turn baba is turn baba is turn baba is move baba is right baba is text all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x01", out) // back to dir 0, so MOVE advanced x, which TEXT prints
}

func TestWinExitsZero(t *testing.T) {
	_, err := mustRun(t, "baba is you baba is win all is done", "")
	require.Error(t, err)
	exit, ok := err.(*ExitSignal)
	require.True(t, ok)
	require.Equal(t, 0, exit.Code)
}

func TestDefeatExitsOne(t *testing.T) {
	_, err := mustRun(t, "baba is you baba is defeat all is done", "")
	require.Error(t, err)
	exit, ok := err.(*ExitSignal)
	require.True(t, ok)
	require.Equal(t, 1, exit.Code)
}

func TestIsValueQuirkPreserved(t *testing.T) {
	src := "baba is you baba is move keke is you keke is not baba keke is text all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\xfe", out) // 255 - baba.x(=1) on keke's active axis (x, dir 0)
}

func TestZeroArgLevelReturnsWithoutCrashing(t *testing.T) {
	src := "fn is level fn is done baba is you fn is power baba is text all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}

func TestFacingIdentifierComparesOrdering(t *testing.T) {
	src := "baba is you keke is you keke is move baba facing keke is move baba is text all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x01", out) // baba(x=0) facing keke(x=1): 0 < 1, so the gated MOVE runs
}

func TestWithoutAllComparesAgainstStoreNotSelf(t *testing.T) {
	// The group's sole element is a You that no longer has a live same-typed binding elsewhere
	// in scope (item is reassigned to a Group right after being pushed), so WITHOUT ALL should
	// hold and let the gated TEXT run.
	src := "item is you g is group g has item item is group g without all is text all is done"
	out, err := mustRun(t, src, "")
	require.NoError(t, err)
	require.Equal(t, "\x00", out)
}
