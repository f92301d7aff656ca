// Package diag defines the classified diagnostics produced by the lexer and
// the internal-compiler-error panics raised by HLIR invariant violations.
package diag

import (
	"fmt"
	"strings"

	"github.com/kr/text"
	"github.com/pkg/errors"

	"github.com/lumen-lang/lumen/internal/location"
)

// Severity classifies a Diagnostic.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Bug     Severity = "bug"
)

// Code is the closed set of diagnostic codes the lexer can emit.
type Code string

const (
	InvalidDocComment           Code = "InvalidDocComment"
	InvalidRestrictedIdentifier Code = "InvalidRestrictedIdentifier"
	InvalidHexString            Code = "InvalidHexString"
	InvalidByteString           Code = "InvalidByteString"
	InvalidCharacter            Code = "InvalidCharacter"
)

// Diagnostic is a single classified, located error or warning.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  location.Loc
	Message  string
	Notes    []string
}

// Error implements the error interface so a Diagnostic can be returned
// directly from fatal lexer operations.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%s]: %s", d.Severity, d.Code, d.Message)
	fmt.Fprintf(&sb, "\n  at %s", d.Primary)
	for _, note := range d.Notes {
		wrapped := text.Indent(text.Wrap(note, 76), "    ")
		sb.WriteString("\n")
		sb.WriteString(wrapped)
	}
	return sb.String()
}

// New builds a Diagnostic.
func New(severity Severity, code Code, primary location.Loc, message string, notes ...string) *Diagnostic {
	return &Diagnostic{Severity: severity, Code: code, Primary: primary, Message: message, Notes: notes}
}

// Sink accumulates diagnostics produced over the lifetime of a lex or lower
// pass. It does not itself print or exit; embedding tools decide that.
type Sink struct {
	diagnostics []*Diagnostic
}

// NewSink builds an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add records a diagnostic.
func (s *Sink) Add(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Diagnostics returns all diagnostics recorded so far, in recording order.
func (s *Sink) Diagnostics() []*Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any recorded diagnostic is at Error or Bug
// severity.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Error || d.Severity == Bug {
			return true
		}
	}
	return false
}

// ICE raises an internal-compiler-error panic: a programmer-error invariant
// violation rather than a user-facing diagnostic. ICE never returns; the
// panic value is a stack-annotated error wrapping the formatted message.
func ICE(format string, args ...interface{}) {
	panic(errors.Wrap(fmt.Errorf(format, args...), "internal compiler error"))
}
