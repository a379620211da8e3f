package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/goparse/golang/parser"
)

// DiagnosticsEncoder writes one "file:line:col: message" line per error.
type DiagnosticsEncoder struct {
	w      io.Writer
	errors parser.ErrorList
	styles Styles
}

func NewDiagnosticsEncoder(w io.Writer) *DiagnosticsEncoder {
	return &DiagnosticsEncoder{w: w, styles: NewStyles(w, false)}
}

func (e *DiagnosticsEncoder) WithStyles(s Styles) *DiagnosticsEncoder {
	e.styles = s
	return e
}

func (e *DiagnosticsEncoder) Encode(errs parser.ErrorList) error {
	e.errors = errs
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DiagnosticsEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, err := range e.errors {
		fmt.Fprintf(&sb, "%s: %s\n",
			e.styles.Position.Render(err.Pos.String()),
			e.styles.Error.Render(err.Message),
		)
	}
	return []byte(sb.String()), nil
}
