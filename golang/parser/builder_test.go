package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/token"
)

func lex(src string) []token.Token {
	tokens, _ := lexer.Tokenize([]byte(src), "test.go")
	return tokens
}

func TestBuilderNode(t *testing.T) {
	b := NewBuilder(lex("a"))
	m := b.Open()
	b.Advance()
	b.Done(m, KindOperandName)
	b.Advance()

	root, errs := b.Finish()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.Kind != KindFragment {
		t.Fatalf("root = %v, want Fragment", root.Kind)
	}
	name := root.Children[0]
	if name.Kind != KindOperandName {
		t.Fatalf("first child = %v, want OperandName", name.Kind)
	}
	if name.Children[0].TokenLiteral() != "a" {
		t.Errorf("token = %q, want %q", name.Children[0].TokenLiteral(), "a")
	}
}

func TestBuilderPrecede(t *testing.T) {
	tokens := lex("a + b")
	b := NewBuilder(tokens)

	m := b.Open()
	b.Advance()
	left := b.Done(m, KindOperandName)

	outer := b.Precede(left)
	b.Advance()
	r := b.Open()
	b.Advance()
	b.Done(r, KindOperandName)
	b.Done(outer, KindAddExpr)

	root, _ := b.Finish()
	add := root
	if add.Kind != KindAddExpr {
		t.Fatalf("root = %v, want AddExpr", add.Kind)
	}
	if got := shape(add); got != "AddExpr(OperandName OperandName)" {
		t.Errorf("shape = %s", got)
	}
	if add.Span.Start != tokens[0].Span.Start || add.Span.End != tokens[2].Span.End {
		t.Errorf("span = %v-%v, want %v-%v", add.Span.Start, add.Span.End, tokens[0].Span.Start, tokens[2].Span.End)
	}
}

func TestBuilderPrecedeChain(t *testing.T) {
	b := NewBuilder(lex("a - b - c"))
	m := b.Open()
	b.Advance()
	left := b.Done(m, KindOperandName)
	for i := 0; i < 2; i++ {
		outer := b.Precede(left)
		b.Advance()
		r := b.Open()
		b.Advance()
		b.Done(r, KindOperandName)
		left = b.Done(outer, KindAddExpr)
	}
	root, _ := b.Finish()
	if got := shape(root); got != "AddExpr(AddExpr(OperandName OperandName) OperandName)" {
		t.Errorf("shape = %s", got)
	}
}

func TestBuilderDrop(t *testing.T) {
	b := NewBuilder(lex("a b"))
	m := b.Open()
	b.Advance()
	b.Advance()
	b.ReportError("lost")
	b.Drop(m)

	if b.Pos() != 0 {
		t.Errorf("Pos = %d after Drop, want 0", b.Pos())
	}
	if _, ok := b.LastDone(); ok {
		t.Errorf("LastDone reports a node after Drop")
	}
	root, errs := b.Finish()
	if len(root.Children) != 0 {
		t.Errorf("root has %d children after Drop, want 0", len(root.Children))
	}
	if len(errs) != 0 {
		t.Errorf("errors survived Drop: %v", errs)
	}
}

func TestBuilderDropPreceded(t *testing.T) {
	b := NewBuilder(lex("a +"))
	m := b.Open()
	b.Advance()
	left := b.Done(m, KindOperandName)

	outer := b.Precede(left)
	b.Advance()
	b.Drop(outer)

	if b.Pos() != 1 {
		t.Errorf("Pos = %d, want 1", b.Pos())
	}
	// The node may be wrapped again once the first wrapper is gone.
	again := b.Precede(left)
	b.Done(again, KindParenthesizedExpr)
	root, _ := b.Finish()
	if got := shape(root); got != "ParenthesizedExpr(OperandName)" {
		t.Errorf("shape = %s", got)
	}
}

func TestBuilderFold(t *testing.T) {
	t.Run("single node", func(t *testing.T) {
		b := NewBuilder(lex("a"))
		m := b.Open()
		inner := b.Open()
		b.Advance()
		b.Done(inner, KindOperandName)
		b.Fold(m, KindSimpleStatement)
		root, _ := b.Finish()
		if root.Kind != KindOperandName {
			t.Errorf("root = %v, want OperandName", root.Kind)
		}
	})

	t.Run("node and token", func(t *testing.T) {
		b := NewBuilder(lex("a++"))
		m := b.Open()
		inner := b.Open()
		b.Advance()
		b.Done(inner, KindOperandName)
		b.Advance()
		b.Fold(m, KindSimpleStatement)
		root, _ := b.Finish()
		if root.Kind != KindSimpleStatement {
			t.Errorf("root = %v, want SimpleStatement", root.Kind)
		}
	})
}

func TestBuilderCollapseOpenChildren(t *testing.T) {
	b := NewBuilder(lex("{ x }"))
	m := b.Open()
	b.Advance()
	b.Open() // never closed
	b.Advance()
	b.Advance()
	b.Done(m, KindBlock)
	root, _ := b.Finish()
	if root.Kind != KindBlock {
		t.Fatalf("root = %v, want Block", root.Kind)
	}
	if len(root.Children) != 3 {
		t.Errorf("Block has %d children, want 3 tokens", len(root.Children))
	}
}

func TestBuilderReportError(t *testing.T) {
	b := NewBuilder(lex("a b"))
	if !b.ReportError("first") {
		t.Fatal("first error at a position was not recorded")
	}
	if b.ReportError("second") {
		t.Error("second error at the same position was recorded")
	}
	b.Advance()
	if !b.ReportError("third") {
		t.Error("error at a new position was not recorded")
	}
	_, errs := b.Finish()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Message != "first" || errs[1].Message != "third" {
		t.Errorf("errors = %v", errs)
	}
}

func TestBuilderClose(t *testing.T) {
	tests := []struct {
		name     string
		ok       bool
		pinned   bool
		want     bool
		wantPos  int
		wantErrs int
	}{
		{"success", true, false, true, 1, 0},
		{"unpinned failure", false, false, false, 0, 0},
		{"pinned failure", false, true, true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(lex("if x"))
			m := b.Open()
			b.Advance()
			if got := b.Close(m, KindIfStatement, tt.ok, tt.pinned); got != tt.want {
				t.Errorf("Close = %v, want %v", got, tt.want)
			}
			if b.Pos() != tt.wantPos {
				t.Errorf("Pos = %d, want %d", b.Pos(), tt.wantPos)
			}
			_, errs := b.Finish()
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestBuilderError(t *testing.T) {
	b := NewBuilder(lex(") x"))
	m := b.Open()
	b.Advance()
	b.Error(m, "junk")
	root, errs := b.Finish()
	bad := root.Children[0]
	if !bad.IsError() {
		t.Fatalf("first child = %v, want Error", bad.Kind)
	}
	if len(bad.Children) != 1 || bad.Children[0].Token.Kind != token.RParen {
		t.Errorf("error node does not keep the skipped token")
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "junk") {
		t.Errorf("errors = %v", errs)
	}
}

func TestBuilderEOF(t *testing.T) {
	b := NewBuilder(lex("x"))
	b.Advance()
	b.Advance()
	if !b.EOF() {
		t.Fatal("EOF = false after consuming all tokens")
	}
	b.Advance()
	if b.Kind() != token.EOF {
		t.Errorf("Kind at end = %v, want EOF", b.Kind())
	}
	if b.Expect(token.EOF) {
		t.Error("Expect consumed the end of input")
	}
}
