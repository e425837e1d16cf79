// ==============================================================================================
// FILE: internal/diagnostics/diagnostics.go
// ==============================================================================================
// PACKAGE: diagnostics
// PURPOSE: The Babalang error taxonomy. Every error raised anywhere in the pipeline is fatal —
//          there is no recovery — so a single Diagnostic type carries a Kind plus the
//          identifiers relevant to the failure, and formats itself per the CLI's diagnostic
//          contract.
// ==============================================================================================

package diagnostics

import (
	"fmt"
	"strings"

	"babalang/internal/ident"
)

// Kind enumerates the fatal error categories.
type Kind string

const (
	KindFileError                  Kind = "FileError"
	KindLexerError                 Kind = "LexerError"
	KindStatementParserError       Kind = "StatementParserError"
	KindInstructionParserError     Kind = "InstructionParserError"
	KindInstructionValidationError Kind = "InstructionValidationError"
	KindRuntimeError                Kind = "RuntimeError"
	KindObjectNotDefinedError      Kind = "ObjectNotDefinedError"
	KindObjectAlreadyDefinedError  Kind = "ObjectAlreadyDefinedError"
	KindTypeError                  Kind = "TypeError"
	KindArgumentError              Kind = "ArgumentError"
	KindConditionError             Kind = "ConditionError"
)

// Diagnostic is the single error type the interpreter raises. It implements error.
type Diagnostic struct {
	Kind    Kind
	Message string
	Idents  []ident.ID
	table   *ident.Table
}

// New constructs a Diagnostic of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithIdentifiers attaches the identifiers relevant to the failure, resolved against table
// when the diagnostic is formatted, so the CLI's "[Identifiers: id = "name", ...]" trailer can
// be produced without dumping the whole identifier table.
func (d *Diagnostic) WithIdentifiers(table *ident.Table, ids ...ident.ID) *Diagnostic {
	d.table = table
	d.Idents = append(d.Idents, ids...)
	return d
}

// Error implements the error interface, formatting per spec:
// "<ErrorKind>: <message>\n[Identifiers: id = "name", ...]"
func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Kind, d.Message)
	if len(d.Idents) > 0 && d.table != nil {
		b.WriteString("\n[Identifiers: ")
		for i, id := range d.Idents {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d = %q", id, d.table.Name(id))
		}
		b.WriteString("]")
	}
	return b.String()
}
