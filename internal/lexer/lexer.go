// ==============================================================================================
// FILE: internal/lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Scans a byte buffer into a stream of Babalang tokens. A four-state scanner
//          (Separator, Word, MaybeComment, Comment) splits the input on any non-word byte,
//          classifies words against the keyword table, and interns unmatched words as
//          identifiers.
// ==============================================================================================

package lexer

import (
	"unicode"
	"unicode/utf8"

	"babalang/internal/ident"
	"babalang/internal/token"
)

// Lexer converts source bytes to tokens, using ident.Table to intern identifier words.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	Idents *ident.Table
}

// New initializes a Lexer over input, creating a fresh identifier table with the reserved IDs.
func New(input string) *Lexer {
	return NewWithTable(input, ident.NewTable())
}

// NewWithTable initializes a Lexer sharing an existing identifier table — used so a whole
// program lexes against one consistent ID space.
func NewWithTable(input string, idents *ident.Table) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0, Idents: idents}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.readPosition += size
	}
	l.position = l.readPosition - runeLen(l.ch)
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func runeLen(r rune) int {
	if r == 0 {
		return 0
	}
	return utf8.RuneLen(r)
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// NextToken scans and returns the next token, skipping separators and comments and flushing
// any pending word at EOF.
func (l *Lexer) NextToken() token.Token {
	for {
		if l.ch == 0 {
			return token.Token{Kind: token.KindEOF, Line: l.line, Column: l.column}
		}

		if l.ch == '/' {
			if l.peekChar() == '/' {
				l.skipLineComment()
				continue
			}
			// Lone '/' is a separator: discard it and continue scanning.
			l.readChar()
			continue
		}

		if !isWordChar(l.ch) {
			l.readChar()
			continue
		}

		return l.readWord()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readWord() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.position]
	lower := toLower(word)

	if tok, ok := token.Lookup(lower); ok {
		tok.Line, tok.Column = line, col
		return tok
	}

	id := l.Idents.Intern(lower)
	return token.Token{
		Kind:       token.KindNoun,
		Noun:       token.NounIdentifier,
		Identifier: id,
		Line:       line,
		Column:     col,
	}
}

func toLower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// Tokens lexes the entire input to completion, returning every token including the trailing EOF.
// Used by the statement parser and by --trace dumps. A LexerError is never actually raised by
// this implementation (every word classifies, per spec) but the signature carries an error to
// keep the door open for the defensive case spec.md §4.1 calls out.
func Tokens(input string) ([]token.Token, *ident.Table, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.KindEOF {
			break
		}
	}
	return toks, l.Idents, nil
}
