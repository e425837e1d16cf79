// ==============================================================================================
// FILE: internal/parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Package-level entry point chaining the statement-parser DFA and the AST builder over
//          an already-lexed token stream, mirroring the teacher's New/ParseProgram shape.
// ==============================================================================================

package parser

import (
	"babalang/internal/ast"
	"babalang/internal/token"
)

// Parse runs the statement parser and then the AST builder over toks (which must include a
// trailing EOF token, as produced by lexer.Tokens), returning the program-scope instruction
// list.
func Parse(toks []token.Token) ([]ast.Instruction, error) {
	stmts, err := ParseStatements(toks)
	if err != nil {
		return nil, err
	}
	return BuildAST(stmts)
}
