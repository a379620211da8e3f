package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/goparse/golang/token"
)

type Lexer struct {
	input      []byte
	file       string
	pos        int
	line       int
	column     int
	insertSemi bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input. The first result is the token stream for
// the parser, terminated by EOF; comments are returned separately.
func Tokenize(input []byte, file string) (tokens []token.Token, comments []token.Token) {
	l := NewLexer(input, file)
	for {
		tok := l.NextToken()
		if tok.Kind == token.Comment {
			comments = append(comments, tok)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, comments
		}
	}
}

func (l *Lexer) Position() token.Position {
	return token.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.input) {
		return 0, 0
	}
	if ch := l.input[l.pos]; ch < utf8.RuneSelf {
		return rune(ch), 1
	}
	return utf8.DecodeRune(l.input[l.pos:])
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// advanceRune consumes one UTF-8 encoded rune and counts it as one column.
func (l *Lexer) advanceRune() {
	_, size := l.peekRune()
	if size <= 1 {
		l.advance()
		return
	}
	l.pos += size
	l.column++
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token including comments. Whitespace is
// skipped; a newline or end of input after a token that may end a
// statement produces a SyntheticSemicolon.
func (l *Lexer) NextToken() token.Token {
	for {
		ch := l.peek()
		if ch == '\n' && l.insertSemi {
			start := l.Position()
			l.advance()
			l.insertSemi = false
			return token.Token{
				Kind:    token.SyntheticSemicolon,
				Span:    token.Span{Start: start, End: l.Position()},
				Literal: "\n",
			}
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		break
	}

	startPos := l.Position()

	if l.atEOF() {
		if l.insertSemi {
			l.insertSemi = false
			return token.Token{Kind: token.SyntheticSemicolon, Span: token.Span{Start: startPos, End: startPos}}
		}
		return token.Token{Kind: token.EOF, Span: token.Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && (l.peekN(1) == '/' || l.peekN(1) == '*') {
		if l.insertSemi && l.commentEndsLine() {
			l.insertSemi = false
			return token.Token{
				Kind:    token.SyntheticSemicolon,
				Span:    token.Span{Start: startPos, End: startPos},
				Literal: "\n",
			}
		}
		if l.peekN(1) == '/' {
			return l.scanLineComment(startPos)
		}
		return l.scanBlockComment(startPos)
	}

	tok := l.scan(startPos)
	l.insertSemi = endsStatement(tok.Kind)
	return tok
}

func (l *Lexer) scan(start token.Position) token.Token {
	ch := l.peek()

	if r, _ := l.peekRune(); isLetter(r) {
		return l.scanIdentOrKeyword(start)
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(start)
	}

	switch ch {
	case '\'':
		return l.scanRune(start)
	case '"':
		return l.scanString(start)
	case '`':
		return l.scanRawString(start)
	}

	return l.scanOperator(start)
}

func endsStatement(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.Int, token.Float, token.Imag, token.Rune, token.String,
		token.Break, token.Continue, token.Fallthrough, token.Return,
		token.Inc, token.Dec, token.RParen, token.RBrack, token.RBrace:
		return true
	}
	return false
}

// commentEndsLine reports whether the comment at the cursor is followed by
// a newline (or end of input) before any other token.
func (l *Lexer) commentEndsLine() bool {
	i := l.pos
	for i < len(l.input) {
		if l.input[i] != '/' || i+1 >= len(l.input) {
			break
		}
		switch l.input[i+1] {
		case '/':
			return true
		case '*':
			j := i + 2
			for ; j+1 < len(l.input); j++ {
				if l.input[j] == '\n' {
					return true
				}
				if l.input[j] == '*' && l.input[j+1] == '/' {
					break
				}
			}
			if j+1 >= len(l.input) {
				return true
			}
			i = j + 2
			for i < len(l.input) && (l.input[i] == ' ' || l.input[i] == '\t' || l.input[i] == '\r') {
				i++
			}
			if i >= len(l.input) || l.input[i] == '\n' {
				return true
			}
			continue
		default:
			return false
		}
	}
	return false
}

func (l *Lexer) scanLineComment(start token.Position) token.Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(token.Comment, start)
}

func (l *Lexer) scanBlockComment(start token.Position) token.Token {
	l.advanceN(2)
	for {
		if l.atEOF() {
			break
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(token.Comment, start)
}

func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	for {
		r, _ := l.peekRune()
		if !isLetter(r) && !isDigitRune(r) {
			break
		}
		l.advanceRune()
	}
	literal := string(l.input[start.Offset:l.pos])
	return token.Token{
		Kind:    token.Lookup(literal),
		Span:    token.Span{Start: start, End: l.Position()},
		Literal: literal,
	}
}

func (l *Lexer) scanNumber(start token.Position) token.Token {
	kind := token.Int
	if l.peek() == '0' {
		switch l.peekN(1) {
		case 'x', 'X':
			l.advanceN(2)
			kind = l.scanMantissa(isHexDigit, 'p', 'P')
			return l.finishNumber(kind, start)
		case 'o', 'O':
			l.advanceN(2)
			l.skipDigits(isOctalDigit)
			return l.finishNumber(token.Int, start)
		case 'b', 'B':
			l.advanceN(2)
			l.skipDigits(func(ch byte) bool { return ch == '0' || ch == '1' })
			return l.finishNumber(token.Int, start)
		}
	}
	kind = l.scanMantissa(isDigit, 'e', 'E')
	return l.finishNumber(kind, start)
}

// scanMantissa consumes digits, an optional fraction and an optional
// exponent introduced by one of exp.
func (l *Lexer) scanMantissa(digit func(byte) bool, exp ...byte) token.Kind {
	kind := token.Int
	l.skipDigits(digit)
	if l.peek() == '.' {
		kind = token.Float
		l.advance()
		l.skipDigits(digit)
	}
	if ch := l.peek(); ch == exp[0] || ch == exp[1] {
		kind = token.Float
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.skipDigits(isDigit)
	}
	return kind
}

func (l *Lexer) skipDigits(digit func(byte) bool) {
	for digit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) finishNumber(kind token.Kind, start token.Position) token.Token {
	if l.peek() == 'i' {
		l.advance()
		kind = token.Imag
	}
	return l.token(kind, start)
}

func (l *Lexer) scanRune(start token.Position) token.Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
			if l.peek() == '\n' {
				break
			}
		}
		l.advance()
	}
	if l.peek() == '\'' {
		l.advance()
	}
	return l.token(token.Rune, start)
}

func (l *Lexer) scanString(start token.Position) token.Token {
	l.advance()
	for !l.atEOF() && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
			if l.peek() == '\n' {
				break
			}
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(token.String, start)
}

func (l *Lexer) scanRawString(start token.Position) token.Token {
	l.advance()
	for !l.atEOF() && l.peek() != '`' {
		l.advance()
	}
	if l.peek() == '`' {
		l.advance()
	}
	return l.token(token.String, start)
}

func (l *Lexer) scanOperator(start token.Position) token.Token {
	ch := l.peek()

	// two- and three-character operators, longest first
	type op struct {
		text string
		kind token.Kind
	}
	var candidates []op
	switch ch {
	case '+':
		candidates = []op{{"++", token.Inc}, {"+=", token.AddAssign}, {"+", token.Add}}
	case '-':
		candidates = []op{{"--", token.Dec}, {"-=", token.SubAssign}, {"-", token.Sub}}
	case '*':
		candidates = []op{{"*=", token.MulAssign}, {"*", token.Mul}}
	case '/':
		candidates = []op{{"/=", token.QuoAssign}, {"/", token.Quo}}
	case '%':
		candidates = []op{{"%=", token.RemAssign}, {"%", token.Rem}}
	case '&':
		candidates = []op{{"&^=", token.AndNotAssign}, {"&^", token.AndNot}, {"&&", token.LAnd}, {"&=", token.AndAssign}, {"&", token.And}}
	case '|':
		candidates = []op{{"||", token.LOr}, {"|=", token.OrAssign}, {"|", token.Or}}
	case '^':
		candidates = []op{{"^=", token.XorAssign}, {"^", token.Xor}}
	case '<':
		candidates = []op{{"<<=", token.ShlAssign}, {"<<", token.Shl}, {"<=", token.Leq}, {"<-", token.Arrow}, {"<", token.Lss}}
	case '>':
		candidates = []op{{">>=", token.ShrAssign}, {">>", token.Shr}, {">=", token.Geq}, {">", token.Gtr}}
	case '=':
		candidates = []op{{"==", token.Eql}, {"=", token.Assign}}
	case '!':
		candidates = []op{{"!=", token.Neq}, {"!", token.Not}}
	case ':':
		candidates = []op{{":=", token.Define}, {":", token.Colon}}
	case '.':
		candidates = []op{{"...", token.Ellipsis}, {".", token.Period}}
	case '(':
		candidates = []op{{"(", token.LParen}}
	case ')':
		candidates = []op{{")", token.RParen}}
	case '[':
		candidates = []op{{"[", token.LBrack}}
	case ']':
		candidates = []op{{"]", token.RBrack}}
	case '{':
		candidates = []op{{"{", token.LBrace}}
	case '}':
		candidates = []op{{"}", token.RBrace}}
	case ',':
		candidates = []op{{",", token.Comma}}
	case ';':
		candidates = []op{{";", token.Semicolon}}
	}

	for _, c := range candidates {
		if l.hasPrefix(c.text) {
			l.advanceN(len(c.text))
			return l.token(c.kind, start)
		}
	}

	l.advanceRune()
	return l.token(token.Illegal, start)
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	return string(l.input[l.pos:l.pos+len(s)]) == s
}

func (l *Lexer) token(kind token.Kind, start token.Position) token.Token {
	end := l.Position()
	return token.Token{
		Kind:    kind,
		Span:    token.Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctalDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
	}
	return unicode.IsLetter(r)
}

func isDigitRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isDigit(byte(r))
	}
	return unicode.IsDigit(r)
}
