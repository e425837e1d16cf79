// ==============================================================================================
// FILE: internal/trace/trace.go
// ==============================================================================================
// PACKAGE: trace
// PURPOSE: Debug/trace dump helpers for the --trace and --debug CLI flags. Adapted from the
//          teacher's repl.go color-coded dump boxes (printTokens/printAST), retargeted at the
//          statement/instruction stream this pipeline actually produces, plus a slog handler
//          for --debug evaluator tracing.
// ==============================================================================================

package trace

import (
	"fmt"
	"io"
	"log/slog"

	"babalang/internal/ast"
	"babalang/internal/ident"
	"babalang/internal/statement"
	"babalang/internal/token"
)

// ANSI color codes, lifted from the teacher's repl.go palette.
const (
	Reset = "\033[0m"
	Gray  = "\033[37m"
	Cyan  = "\033[36m"
)

// NewLogger builds the slog.Logger used for --debug evaluator tracing. Text-handler, not JSON:
// this is a human-facing side channel, never part of the language's observable I/O.
func NewLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// DumpTokens prints the lexed token stream inside a dump box, mirroring repl.go's printTokens.
func DumpTokens(out io.Writer, idents *ident.Table, toks []token.Token) {
	fmt.Fprintln(out, Gray+"┌── [ TOKENS ] ──────────────────────────────────────────┐"+Reset)
	for _, tok := range toks {
		fmt.Fprintf(out, "│ line %-4d %s\n", tok.Line, describe(idents, tok))
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

// DumpStatements prints the flat statements the DFA produced, mirroring repl.go's AST box but
// at the statement-record layer this pipeline's builder actually consumes.
func DumpStatements(out io.Writer, idents *ident.Table, stmts []*statement.Statement) {
	fmt.Fprintln(out, Gray+"┌── [ STATEMENTS ] ──────────────────────────────────────┐"+Reset)
	for i, st := range stmts {
		fmt.Fprintf(out, "│ %3d: subject=%s verb=%v\n", i, idents.Name(nounID(st.Subject)), st.ActionType)
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

// DumpInstructions prints the built instruction tree's top-level shape.
func DumpInstructions(out io.Writer, instrs []ast.Instruction) {
	fmt.Fprintln(out, Cyan+"┌── [ INSTRUCTIONS ] ────────────────────────────────────┐"+Reset)
	for i, instr := range instrs {
		fmt.Fprintf(out, "│ %3d: %T\n", i, instr)
	}
	fmt.Fprintln(out, Cyan+"└────────────────────────────────────────────────────────┘"+Reset)
}

func nounID(n statement.Noun) ident.ID {
	if n.Kind == token.NounIdentifier {
		return n.ID
	}
	return ident.Empty
}

func describe(idents *ident.Table, tok token.Token) string {
	switch tok.Kind {
	case token.KindNoun:
		if tok.Noun == token.NounIdentifier {
			return fmt.Sprintf("ident %q", idents.Name(tok.Identifier))
		}
		return fmt.Sprintf("noun %d", tok.Noun)
	case token.KindVerb:
		return fmt.Sprintf("verb %d", tok.Verb)
	case token.KindProperty:
		return fmt.Sprintf("property %d", tok.Property)
	case token.KindPrefix:
		return fmt.Sprintf("prefix %d", tok.Prefix)
	case token.KindConditional:
		return fmt.Sprintf("conditional %d", tok.Conditional)
	case token.KindAnd:
		return "and"
	case token.KindNot:
		return "not"
	default:
		return "eof"
	}
}
