package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/goparse/golang/parser"
)

type CSTJSONEncoder struct {
	w    io.Writer
	root *parser.Node
}

func NewCSTJSONEncoder(w io.Writer) *CSTJSONEncoder {
	return &CSTJSONEncoder{w: w}
}

func (e *CSTJSONEncoder) Encode(root *parser.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *CSTJSONEncoder) MarshalText() ([]byte, error) {
	if e.root == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(nodeToJSON(e.root), "", "  ")
}

type cstJSONNode struct {
	Kind      string         `json:"kind"`
	Span      *cstJSONSpan   `json:"span,omitempty"`
	TokenKind string         `json:"tokenKind,omitempty"`
	Token     *string        `json:"token,omitempty"`
	Error     *cstJSONError  `json:"error,omitempty"`
	Children  []*cstJSONNode `json:"children,omitempty"`
}

type cstJSONSpan struct {
	Start cstJSONPosition `json:"start"`
	End   cstJSONPosition `json:"end"`
}

type cstJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type cstJSONError struct {
	Message  string   `json:"message"`
	Expected []string `json:"expected,omitempty"`
	Got      string   `json:"got,omitempty"`
}

func nodeToJSON(n *parser.Node) *cstJSONNode {
	jn := &cstJSONNode{
		Kind: n.Kind.String(),
	}

	if n.Span.Start.IsValid() || n.Span.End.IsValid() {
		jn.Span = &cstJSONSpan{
			Start: cstJSONPosition{Offset: n.Span.Start.Offset, Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   cstJSONPosition{Offset: n.Span.End.Offset, Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
	}

	// Zero-width separators have an empty literal that still has to show up.
	if n.Token != nil {
		lit := n.Token.Literal
		jn.TokenKind = n.Token.Kind.String()
		jn.Token = &lit
	}

	if n.Error != nil {
		jn.Error = &cstJSONError{
			Message: n.Error.Message,
		}
		for _, exp := range n.Error.Expected {
			jn.Error.Expected = append(jn.Error.Expected, exp.String())
		}
		if n.Error.Got != nil {
			jn.Error.Got = n.Error.Got.Text()
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*cstJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
