package format

import (
	"encoding"

	"github.com/dhamidi/goparse/golang/parser"
)

// Encoder writes a syntax tree to an underlying writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(root *parser.Node) error
}
