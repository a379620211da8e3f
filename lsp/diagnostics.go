package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/goparse/golang/parser"
	"github.com/dhamidi/goparse/golang/token"
)

// Diagnostics converts syntax errors into protocol diagnostics. Parser
// positions are one-based; protocol positions are zero-based.
func Diagnostics(errs parser.ErrorList, source string) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))
	for _, err := range errs {
		pos := toPosition(err.Pos)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: &severity,
			Source:   &source,
			Message:  err.Message,
		})
	}
	return diagnostics
}

func toPosition(p token.Position) protocol.Position {
	var pos protocol.Position
	if p.Line > 0 {
		pos.Line = protocol.UInteger(p.Line - 1)
	}
	if p.Column > 0 {
		pos.Character = protocol.UInteger(p.Column - 1)
	}
	return pos
}

func toRange(s token.Span) protocol.Range {
	return protocol.Range{Start: toPosition(s.Start), End: toPosition(s.End)}
}
