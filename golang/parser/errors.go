package parser

import (
	"fmt"
	"sort"

	"github.com/dhamidi/goparse/golang/token"
)

// SyntaxError is one diagnostic produced by a parse.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Message
}

// ErrorList is the ordered list of diagnostics of a parse. It is data, not a
// failure: a parse always returns a tree.
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Err returns nil for an empty list and the list otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Sort orders the list by source offset, keeping the relative order of
// errors at the same offset.
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Pos.Offset < l[j].Pos.Offset
	})
}
