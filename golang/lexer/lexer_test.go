package lexer

import (
	"testing"

	"github.com/dhamidi/goparse/golang/token"
)

func kinds(input string) []token.Kind {
	tokens, _ := Tokenize([]byte(input), "test.go")
	var got []token.Kind
	for _, tok := range tokens {
		got = append(got, tok.Kind)
	}
	return got
}

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("package main"), "main.go")
	pos := lexer.Position()

	if pos.File != "main.go" {
		t.Errorf("File = %q, want %q", pos.File, "main.go")
	}
	if pos.Line != 1 || pos.Column != 1 || pos.Offset != 0 {
		t.Errorf("Position = %+v, want line 1 column 1 offset 0", pos)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"", []token.Kind{token.EOF}},
		{"package main", []token.Kind{token.Package, token.Ident, token.SyntheticSemicolon, token.EOF}},
		{"x := 1", []token.Kind{token.Ident, token.Define, token.Int, token.SyntheticSemicolon, token.EOF}},
		{"a &^= b", []token.Kind{token.Ident, token.AndNotAssign, token.Ident, token.SyntheticSemicolon, token.EOF}},
		{"a &^ b", []token.Kind{token.Ident, token.AndNot, token.Ident, token.SyntheticSemicolon, token.EOF}},
		{"ch <- v", []token.Kind{token.Ident, token.Arrow, token.Ident, token.SyntheticSemicolon, token.EOF}},
		{"x <<= 2", []token.Kind{token.Ident, token.ShlAssign, token.Int, token.SyntheticSemicolon, token.EOF}},
		{"f(a...)", []token.Kind{token.Ident, token.LParen, token.Ident, token.Ellipsis, token.RParen, token.SyntheticSemicolon, token.EOF}},
		{"3.14", []token.Kind{token.Float, token.SyntheticSemicolon, token.EOF}},
		{".5", []token.Kind{token.Float, token.SyntheticSemicolon, token.EOF}},
		{"1e10", []token.Kind{token.Float, token.SyntheticSemicolon, token.EOF}},
		{"0x1Fp-2", []token.Kind{token.Float, token.SyntheticSemicolon, token.EOF}},
		{"0xFF", []token.Kind{token.Int, token.SyntheticSemicolon, token.EOF}},
		{"0b1010", []token.Kind{token.Int, token.SyntheticSemicolon, token.EOF}},
		{"0o17", []token.Kind{token.Int, token.SyntheticSemicolon, token.EOF}},
		{"1_000_000", []token.Kind{token.Int, token.SyntheticSemicolon, token.EOF}},
		{"2i", []token.Kind{token.Imag, token.SyntheticSemicolon, token.EOF}},
		{"'a'", []token.Kind{token.Rune, token.SyntheticSemicolon, token.EOF}},
		{`'\n'`, []token.Kind{token.Rune, token.SyntheticSemicolon, token.EOF}},
		{`"hello\"world"`, []token.Kind{token.String, token.SyntheticSemicolon, token.EOF}},
		{"`raw\nstring`", []token.Kind{token.String, token.SyntheticSemicolon, token.EOF}},
		{"// comment\nfunc", []token.Kind{token.Func, token.EOF}},
		{"/* block */ func", []token.Kind{token.Func, token.EOF}},
		{"#", []token.Kind{token.Illegal, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerSemicolonInsertion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{
			"after identifier",
			"x\ny",
			[]token.Kind{token.Ident, token.SyntheticSemicolon, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
		{
			"not after operator",
			"x +\ny",
			[]token.Kind{token.Ident, token.Add, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
		{
			"not after open brace",
			"{\n}",
			[]token.Kind{token.LBrace, token.RBrace, token.SyntheticSemicolon, token.EOF},
		},
		{
			"after return",
			"return\n",
			[]token.Kind{token.Return, token.SyntheticSemicolon, token.EOF},
		},
		{
			"after closing paren",
			"f()\ng()",
			[]token.Kind{token.Ident, token.LParen, token.RParen, token.SyntheticSemicolon, token.Ident, token.LParen, token.RParen, token.SyntheticSemicolon, token.EOF},
		},
		{
			"after increment",
			"i++\n",
			[]token.Kind{token.Ident, token.Inc, token.SyntheticSemicolon, token.EOF},
		},
		{
			"before line comment",
			"x // trailing\ny",
			[]token.Kind{token.Ident, token.SyntheticSemicolon, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
		{
			"multi-line general comment",
			"x /* a\nb */ y",
			[]token.Kind{token.Ident, token.SyntheticSemicolon, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
		{
			"inline general comment",
			"x /* a */ + y",
			[]token.Kind{token.Ident, token.Add, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
		{
			"explicit semicolon",
			"x; y",
			[]token.Kind{token.Ident, token.Semicolon, token.Ident, token.SyntheticSemicolon, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerComments(t *testing.T) {
	tokens, comments := Tokenize([]byte("// a\nx /* b */\n"), "test.go")
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Literal != "// a" || comments[1].Literal != "/* b */" {
		t.Errorf("comments = %q, %q", comments[0].Literal, comments[1].Literal)
	}
	for _, tok := range tokens {
		if tok.Kind == token.Comment {
			t.Errorf("comment %q in token stream", tok.Literal)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, _ := Tokenize([]byte("package p\n\nvar  x"), "p.go")
	tests := []struct {
		index  int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 9},
		{3, 3, 1},
		{4, 3, 6},
	}
	for _, tt := range tests {
		pos := tokens[tt.index].Span.Start
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("token %d (%q) at %d:%d, want %d:%d", tt.index, tokens[tt.index].Literal, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}

func TestLexerUnicodeIdentifiers(t *testing.T) {
	tokens, _ := Tokenize([]byte("héllo 世界"), "u.go")
	if tokens[0].Kind != token.Ident || tokens[0].Literal != "héllo" {
		t.Errorf("token 0 = %v %q", tokens[0].Kind, tokens[0].Literal)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Literal != "世界" {
		t.Errorf("token 1 = %v %q", tokens[1].Kind, tokens[1].Literal)
	}
	if tokens[1].Span.Start.Column != 7 {
		t.Errorf("column = %d, want 7", tokens[1].Span.Start.Column)
	}
}

func TestLexerUnterminated(t *testing.T) {
	inputs := []string{`"abc`, "'a", "`raw", "/* open"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, _ := Tokenize([]byte(input), "bad.go")
			if tokens[len(tokens)-1].Kind != token.EOF {
				t.Errorf("stream does not end in EOF: %v", tokens)
			}
		})
	}
}
