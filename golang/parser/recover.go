package parser

import "github.com/dhamidi/goparse/golang/token"

// recoverySet holds the tokens a statement list resynchronizes on. A
// token outside of it ends the list instead.
var recoverySet = map[token.Kind]bool{}

func init() {
	for k := token.Add; k <= token.Colon; k++ {
		if k != token.Define {
			recoverySet[k] = true
		}
	}
	for _, k := range []token.Kind{
		token.Semicolon, token.SyntheticSemicolon,
		token.Ident, token.Int, token.Float, token.Imag, token.Rune, token.String,
		token.Break, token.Case, token.Chan, token.Const, token.Continue,
		token.Default, token.Defer, token.Else, token.Fallthrough, token.For,
		token.Func, token.Go, token.Goto, token.If, token.Interface, token.Map,
		token.Return, token.Select, token.Struct, token.Switch, token.Type,
		token.Var,
	} {
		recoverySet[k] = true
	}
}

var declKeywords = map[token.Kind]bool{
	token.Func:   true,
	token.Var:    true,
	token.Const:  true,
	token.Type:   true,
	token.Import: true,
}

// statementList parses statements separated by ';' or newlines up to a
// closing brace, a case or default label, or end of input.
func (p *parser) statementList(level int) {
	for {
		if p.b.EOF() || p.atAny(token.RBrace, token.Case, token.Default) {
			return
		}
		if p.b.AtSeparator() {
			p.b.Advance()
			continue
		}
		pos := p.b.Pos()
		if p.call(RuleStatement, level) && p.b.Pos() > pos {
			if !p.semi() && !p.atAny(token.Case, token.Default) {
				p.need(false, "';' or newline")
			}
			continue
		}
		if !recoverySet[p.b.Kind()] {
			p.debugf("statement list ends at %s", describe(p.b.Current()))
			return
		}
		p.skipStatement()
	}
}

// skipStatement wraps the tokens up to the end of the broken statement in
// an error node. At least one token is consumed.
func (p *parser) skipStatement() {
	m := p.b.Open()
	message := "statement expected, got " + describe(p.b.Current())
	start := p.b.Pos()
	depth := 0
	for !p.b.EOF() {
		if depth == 0 && p.b.Pos() > start &&
			(p.b.AtSeparator() || p.atAny(token.RBrace, token.Case, token.Default)) {
			break
		}
		p.track(&depth)
		p.b.Advance()
	}
	p.b.Error(m, message)
	if p.b.AtSeparator() {
		p.b.Advance()
	}
	p.recovered(start)
}

// skipToDeclaration wraps tokens in an error node until a declaration
// keyword starts a new line at the outermost level.
func (p *parser) skipToDeclaration(message string) {
	m := p.b.Open()
	start := p.b.Pos()
	depth := 0
	for !p.b.EOF() {
		if depth == 0 && p.b.Pos() > start && declKeywords[p.b.Kind()] && p.b.Peek(-1).IsSeparator() {
			break
		}
		p.track(&depth)
		p.b.Advance()
	}
	p.b.Error(m, message)
	p.recovered(start)
}

// skipInList wraps tokens in an error node up to the next separator or
// closer at the outermost level.
func (p *parser) skipInList(message string, closers ...token.Kind) {
	m := p.b.Open()
	start := p.b.Pos()
	depth := 0
	for !p.b.EOF() {
		if depth == 0 && p.b.Pos() > start && (p.b.AtSeparator() || p.atAny(closers...)) {
			break
		}
		p.track(&depth)
		p.b.Advance()
	}
	p.b.Error(m, message)
	p.recovered(start)
}

func (p *parser) track(depth *int) {
	switch p.b.Kind() {
	case token.LParen, token.LBrack, token.LBrace:
		*depth++
	case token.RParen, token.RBrack, token.RBrace:
		if *depth > 0 {
			*depth--
		}
	}
}

func (p *parser) recovered(start int) {
	p.guard.stats.Recoveries++
	p.debugf("recovered at token %d, skipped %d tokens", start, p.b.Pos()-start)
}
