// ==============================================================================================
// FILE: internal/parser/statement_parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Groups a token stream into Statement records (spec.md §4.2). Grounded on the state
//          transitions of _examples/original_source/src/statement_parser.rs's ParserState DFA,
//          re-expressed as recursive-descent over an explicit token cursor (idiomatic Go for a
//          hand-rolled grammar of this shape; the teacher's own parser.go uses the analogous
//          curToken/peekToken/expectPeek cursor idiom for its Pratt parser) rather than a
//          literal state-enum switch.
// ==============================================================================================

package parser

import (
	"babalang/internal/diagnostics"
	"babalang/internal/statement"
	"babalang/internal/token"
)

// cursor walks a token slice, never past EOF.
type cursor struct {
	toks []token.Token
	pos  int
}

func (c *cursor) peek() token.Token  { return c.toks[c.pos] }
func (c *cursor) atEOF() bool        { return c.peek().Kind == token.KindEOF }
func (c *cursor) advance() token.Token {
	t := c.toks[c.pos]
	if t.Kind != token.KindEOF {
		c.pos++
	}
	return t
}

// ParseStatements runs the statement-parser DFA over a complete token stream (including its
// trailing EOF token) and returns the flat Statement sequence.
func ParseStatements(toks []token.Token) ([]*statement.Statement, error) {
	c := &cursor{toks: toks}
	var out []*statement.Statement

	for !c.atEOF() {
		if err := parseClause(c, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseNotRun consumes zero or more NOT tokens, returning the accumulated sign (true = negated;
// paired NOT cancels, per spec.md §4.2).
func parseNotRun(c *cursor) bool {
	sign := false
	for c.peek().Kind == token.KindNot {
		c.advance()
		sign = !sign
	}
	return sign
}

func parseClause(c *cursor, out *[]*statement.Statement) error {
	var prefix *statement.PrefixCond

	// [NOT* PREFIX]?
	startSign := parseNotRun(c)
	if c.peek().Kind == token.KindPrefix {
		pfx := c.advance()
		prefix = &statement.PrefixCond{Prefix: pfx.Prefix, Sign: startSign}
		startSign = false
	}
	if startSign {
		return diagnostics.New(diagnostics.KindStatementParserError,
			"NOT not followed by a prefix or consumed component at line %d", c.peek().Line)
	}

	// SUBJECT
	if c.peek().Kind != token.KindNoun {
		return diagnostics.New(diagnostics.KindStatementParserError,
			"expected a subject noun at line %d", c.peek().Line)
	}
	subjTok := c.advance()
	subject := statement.Noun{Kind: subjTok.Noun, ID: subjTok.Identifier}

	// (COND_SPEC)?
	var cond *statement.ConditionalCond
	sign := parseNotRun(c)
	if c.peek().Kind == token.KindConditional {
		condTok := c.advance()
		targets, _, err := parseTargetRun(c, targetContext{conditional: &condTok.Conditional})
		if err != nil {
			return err
		}
		cond = &statement.ConditionalCond{Type: condTok.Conditional, Sign: sign, Targets: targets}
	} else if sign {
		return diagnostics.New(diagnostics.KindStatementParserError,
			"NOT not followed by a conditional at line %d", c.peek().Line)
	}

	// VERB
	if c.peek().Kind != token.KindVerb {
		return diagnostics.New(diagnostics.KindStatementParserError,
			"expected a verb at line %d", c.peek().Line)
	}
	verbTok := c.advance()

	// TARGET_LIST
	ctx := targetContext{}
	if verbTok.Verb == token.VerbIs {
		ctx.allowAnyProperty = true
	}
	targets, signs, err := parseTargetRun(c, ctx)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return diagnostics.New(diagnostics.KindStatementParserError,
			"verb with no targets at line %d", c.peek().Line)
	}

	if verbTok.Verb == token.VerbIs {
		statement.AppendIs(out, subject, prefix, cond, targets, signs)
	} else {
		statement.AppendOther(out, subject, prefix, cond, verbTok.Verb, targets, signs)
	}

	// (AND VERB TARGET)? — a trailing minor action.
	if c.peek().Kind == token.KindAnd {
		save := c.pos
		c.advance()
		if c.peek().Kind == token.KindVerb {
			minorVerb := c.advance()
			minorCtx := targetContext{allowAnyProperty: minorVerb.Verb == token.VerbIs}
			minorSign := parseNotRun(c)
			minorTarget, err := parseTargetAtom(c, minorCtx)
			if err != nil {
				return err
			}
			if minorVerb.Verb == token.VerbIs {
				statement.AppendIs(out, subject, prefix, cond, []statement.Target{minorTarget}, []bool{minorSign})
			} else {
				statement.AppendOther(out, subject, prefix, cond, minorVerb.Verb, []statement.Target{minorTarget}, []bool{minorSign})
			}
		} else {
			// Not a minor action: an AND followed by neither a target nor a verb is a parse
			// error. Rewind to the AND so the reported line is the AND's own.
			c.pos = save
			return diagnostics.New(diagnostics.KindStatementParserError,
				"trailing AND not followed by a verb or target at line %d", c.peek().Line)
		}
	}

	return nil
}

// targetContext controls which tokens parseTargetAtom accepts.
type targetContext struct {
	// allowAnyProperty is true for IS target lists: both Noun and Property targets are valid.
	allowAnyProperty bool
	// conditional, when non-nil, is the enclosing conditional keyword; only FACING accepts
	// direction properties as targets (spec.md §4.2).
	conditional *token.Conditional
}

func (ctx targetContext) propertyAllowed(p token.Property) bool {
	if ctx.allowAnyProperty {
		return true
	}
	if ctx.conditional != nil && *ctx.conditional == token.CondFacing && p.IsDirection() {
		return true
	}
	return false
}

// parseTargetRun consumes [NOT* TARGET] (AND [NOT* TARGET])*, stopping before any trailing
// "AND VERB" (a minor action) or any token that isn't a valid target start.
func parseTargetRun(c *cursor, ctx targetContext) ([]statement.Target, []bool, error) {
	var targets []statement.Target
	var signs []bool

	for {
		sign := parseNotRun(c)
		if !isTargetStart(c.peek(), ctx) {
			if sign {
				return nil, nil, diagnostics.New(diagnostics.KindStatementParserError,
					"NOT not followed by a target at line %d", c.peek().Line)
			}
			break
		}
		target, err := parseTargetAtom(c, ctx)
		if err != nil {
			return nil, nil, err
		}
		targets = append(targets, target)
		signs = append(signs, sign)

		if c.peek().Kind != token.KindAnd {
			break
		}
		// Peek past AND: if what follows is a verb, this AND starts a minor action, not
		// another target — leave it for the caller.
		save := c.pos
		c.advance()
		parseNotRun(c) // tentative, rewound below if it doesn't lead to a target
		nextIsTarget := isTargetStart(c.peek(), ctx)
		c.pos = save
		if !nextIsTarget {
			break
		}
		c.advance() // consume the AND for real
	}
	return targets, signs, nil
}

func isTargetStart(t token.Token, ctx targetContext) bool {
	switch t.Kind {
	case token.KindNoun:
		return true
	case token.KindProperty:
		return ctx.propertyAllowed(t.Property)
	default:
		return false
	}
}

func parseTargetAtom(c *cursor, ctx targetContext) (statement.Target, error) {
	t := c.advance()
	switch t.Kind {
	case token.KindNoun:
		return statement.NounTarget(statement.Noun{Kind: t.Noun, ID: t.Identifier}), nil
	case token.KindProperty:
		if !ctx.propertyAllowed(t.Property) {
			return statement.Target{}, diagnostics.New(diagnostics.KindStatementParserError,
				"property target not valid in this position at line %d", t.Line)
		}
		return statement.PropertyTarget(t.Property), nil
	default:
		return statement.Target{}, diagnostics.New(diagnostics.KindStatementParserError,
			"expected a target at line %d", t.Line)
	}
}
