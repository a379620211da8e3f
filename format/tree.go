package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/goparse/golang/parser"
	"github.com/dhamidi/goparse/golang/token"
)

// TreeEncoder writes a tree as an indented outline, one node per line.
type TreeEncoder struct {
	w         io.Writer
	root      *parser.Node
	styles    Styles
	positions bool
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w, styles: NewStyles(w, false)}
}

// WithPositions adds the span of every node to its line.
func (e *TreeEncoder) WithPositions(on bool) *TreeEncoder {
	e.positions = on
	return e
}

func (e *TreeEncoder) WithStyles(s Styles) *TreeEncoder {
	e.styles = s
	return e
}

func (e *TreeEncoder) Encode(root *parser.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.root != nil {
		e.writeNode(&sb, e.root, 0)
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, n *parser.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	switch {
	case n.Token != nil:
		sb.WriteString(e.styles.Token.Render(n.Token.Kind.String()))
		if lit := n.Token.Literal; lit != "" && n.Token.Kind != token.SyntheticSemicolon {
			sb.WriteString(" ")
			sb.WriteString(e.styles.Literal.Render(strconv.Quote(lit)))
		}
	case n.IsError():
		sb.WriteString(e.styles.Error.Render(n.Kind.String()))
	default:
		sb.WriteString(e.styles.Kind.Render(n.Kind.String()))
	}

	if e.positions {
		sb.WriteString(" ")
		sb.WriteString(e.styles.Position.Render(spanString(n.Span)))
	}
	if n.Error != nil {
		sb.WriteString(" ")
		sb.WriteString(e.styles.Error.Render(n.Error.Message))
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		e.writeNode(sb, child, depth+1)
	}
}

func spanString(s token.Span) string {
	return "[" + strconv.Itoa(s.Start.Line) + ":" + strconv.Itoa(s.Start.Column) +
		"-" + strconv.Itoa(s.End.Line) + ":" + strconv.Itoa(s.End.Column) + "]"
}
