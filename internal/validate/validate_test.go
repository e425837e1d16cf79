// ==============================================================================================
// FILE: internal/validate/validate_test.go
// ==============================================================================================
// PURPOSE: Exercises the generic_* helper dispatch and the boundary properties from spec.md §8:
//          a conditional subject of ALL is a ConditionError, and NOT on an initializer yields
//          NoOp.
// ==============================================================================================

package validate

import (
	"testing"

	"babalang/internal/ast"
	"babalang/internal/diagnostics"
	"babalang/internal/ident"
	"babalang/internal/statement"
	"babalang/internal/token"
	"github.com/stretchr/testify/require"
)

func identSubject(id int) statement.Noun {
	return statement.Noun{Kind: token.NounIdentifier, ID: ident.ID(id)}
}

func TestGenericInitYou(t *testing.T) {
	st := &statement.Statement{
		Subject:    identSubject(1),
		ActionType: token.VerbIs,
		ActionTarget: &statement.Target{IsProperty: true, Property: token.PropYou},
	}
	instr, err := Validate(st)
	require.NoError(t, err)
	simple, ok := instr.(ast.Simple)
	require.True(t, ok)
	require.Equal(t, ast.OpInitYou, simple.Op.Kind)
}

func TestGenericInitRejectsNotAsNoOp(t *testing.T) {
	st := &statement.Statement{
		Subject:      identSubject(1),
		ActionType:   token.VerbIs,
		ActionTarget: &statement.Target{IsProperty: true, Property: token.PropYou},
		ActionSign:   true,
	}
	instr, err := Validate(st)
	require.NoError(t, err)
	require.IsType(t, ast.NoOp{}, instr)
}

func TestConditionalSubjectAllIsError(t *testing.T) {
	condType := token.CondOn
	st := &statement.Statement{
		Subject:      statement.Noun{Kind: token.NounAll},
		CondType:     &condType,
		ActionType:   token.VerbIs,
		ActionTarget: &statement.Target{Property: token.PropText},
	}
	_, err := Validate(st)
	require.Error(t, err)
	diag, ok := err.(*diagnostics.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diagnostics.KindConditionError, diag.Kind)
}

func TestIsValueDispatch(t *testing.T) {
	st := &statement.Statement{
		Subject:      identSubject(1),
		ActionType:   token.VerbIs,
		ActionTarget: &statement.Target{Noun: identSubject(2)},
		ActionSign:   true,
	}
	instr, err := Validate(st)
	require.NoError(t, err)
	simple := instr.(ast.Simple)
	require.Equal(t, ast.OpIsValue, simple.Op.Kind)
	require.True(t, simple.Op.Sign)
}
