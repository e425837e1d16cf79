// ==============================================================================================
// FILE: internal/token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: Defines the Babalang token taxonomy (Noun/Verb/Property/Prefix/Conditional plus the
//          atomic AND/NOT tokens) and the keyword table the lexer matches lowercased words
//          against.
// ==============================================================================================

package token

import "babalang/internal/ident"

// Kind tags which variant of the token sum type a Token carries.
type Kind int

const (
	KindNoun Kind = iota
	KindVerb
	KindProperty
	KindPrefix
	KindConditional
	KindAnd
	KindNot
	KindEOF
)

// Noun variants. All, Empty, Level and Image are keywords; Identifier carries an interned ID.
type Noun int

const (
	NounAll Noun = iota
	NounEmpty
	NounLevel
	NounImage
	NounIdentifier
)

// Verb variants.
type Verb int

const (
	VerbIs Verb = iota
	VerbHas
	VerbMake
	VerbFollow
	VerbMimic
	VerbFear
	VerbEat
	VerbPlay
)

// Property variants — keywords following IS.
type Property int

const (
	PropYou Property = iota
	PropYou2
	PropGroup
	PropTele
	PropFloat
	PropDone
	PropText
	PropWord
	PropWin
	PropDefeat
	PropSleep
	PropMove
	PropTurn
	PropFall
	PropMore
	PropUp
	PropDown
	PropLeft
	PropRight
	PropShift
	PropSink
	PropSwap
	PropPower
)

// Prefix variants — unary predicates attached to a subject.
type Prefix int

const (
	PrefixIdle Prefix = iota
	PrefixLonely
)

// Conditional variants — targeted predicates.
type Conditional int

const (
	CondOn Conditional = iota
	CondNear
	CondFacing
	CondWithout
)

// Token is the sum type the lexer emits. Only the field matching Kind is meaningful.
type Token struct {
	Kind        Kind
	Noun        Noun
	Verb        Verb
	Property    Property
	Prefix      Prefix
	Conditional Conditional
	Identifier  ident.ID
	Line        int
	Column      int
}

var keywords = map[string]Token{
	"all":   {Kind: KindNoun, Noun: NounAll},
	"empty": {Kind: KindNoun, Noun: NounEmpty},
	"level": {Kind: KindNoun, Noun: NounLevel},
	"image": {Kind: KindNoun, Noun: NounImage},

	"is":     {Kind: KindVerb, Verb: VerbIs},
	"has":    {Kind: KindVerb, Verb: VerbHas},
	"make":   {Kind: KindVerb, Verb: VerbMake},
	"follow": {Kind: KindVerb, Verb: VerbFollow},
	"mimic":  {Kind: KindVerb, Verb: VerbMimic},
	"fear":   {Kind: KindVerb, Verb: VerbFear},
	"eat":    {Kind: KindVerb, Verb: VerbEat},
	"play":   {Kind: KindVerb, Verb: VerbPlay},

	"you":    {Kind: KindProperty, Property: PropYou},
	"you2":   {Kind: KindProperty, Property: PropYou2},
	"group":  {Kind: KindProperty, Property: PropGroup},
	"tele":   {Kind: KindProperty, Property: PropTele},
	"float":  {Kind: KindProperty, Property: PropFloat},
	"done":   {Kind: KindProperty, Property: PropDone},
	"text":   {Kind: KindProperty, Property: PropText},
	"word":   {Kind: KindProperty, Property: PropWord},
	"win":    {Kind: KindProperty, Property: PropWin},
	"defeat": {Kind: KindProperty, Property: PropDefeat},
	"sleep":  {Kind: KindProperty, Property: PropSleep},
	"move":   {Kind: KindProperty, Property: PropMove},
	"turn":   {Kind: KindProperty, Property: PropTurn},
	"fall":   {Kind: KindProperty, Property: PropFall},
	"more":   {Kind: KindProperty, Property: PropMore},
	"up":     {Kind: KindProperty, Property: PropUp},
	"down":   {Kind: KindProperty, Property: PropDown},
	"left":   {Kind: KindProperty, Property: PropLeft},
	"right":  {Kind: KindProperty, Property: PropRight},
	"shift":  {Kind: KindProperty, Property: PropShift},
	"sink":   {Kind: KindProperty, Property: PropSink},
	"swap":   {Kind: KindProperty, Property: PropSwap},
	"power":  {Kind: KindProperty, Property: PropPower},

	"idle":   {Kind: KindPrefix, Prefix: PrefixIdle},
	"lonely": {Kind: KindPrefix, Prefix: PrefixLonely},

	"on":      {Kind: KindConditional, Conditional: CondOn},
	"near":    {Kind: KindConditional, Conditional: CondNear},
	"facing":  {Kind: KindConditional, Conditional: CondFacing},
	"without": {Kind: KindConditional, Conditional: CondWithout},

	"and": {Kind: KindAnd},
	"not": {Kind: KindNot},
}

// Lookup classifies a lowercased word as a keyword token, or reports it is not one.
func Lookup(word string) (Token, bool) {
	tok, ok := keywords[word]
	return tok, ok
}

// IsDirection reports whether a Property names one of the four cardinal directions, the only
// properties FACING may target in addition to nouns.
func (p Property) IsDirection() bool {
	switch p {
	case PropUp, PropDown, PropLeft, PropRight:
		return true
	default:
		return false
	}
}
