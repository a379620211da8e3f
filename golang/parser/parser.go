package parser

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/token"
)

type Option func(*options)

type options struct {
	stats *Stats
	log   commonlog.Logger
}

// WithStats makes the parse record its rule invocation counts into s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// WithLogger logs recovery events and guard refusals at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

type parser struct {
	b     *Builder
	guard *guard
	log   commonlog.Logger

	// noCompositeLit is set while parsing the header of an if, for or
	// switch statement, where T{ starts the block and not a literal.
	noCompositeLit bool
}

func newParser(tokens []token.Token, opts []Option) *parser {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &parser{
		b:     NewBuilder(tokens),
		guard: newGuard(o.stats),
		log:   o.log,
	}
}

// Parse parses tokens starting at rule. It always returns a tree: syntax
// errors are reported in the error list and as error nodes in the tree.
// Every token appears in the tree exactly once, in order.
//
// The root node has kind KindSourceFile for RuleSourceFile and
// KindFragment for every other rule.
func Parse(rule Rule, tokens []token.Token, opts ...Option) (*Node, ErrorList) {
	p := newParser(tokens, opts)
	root := p.b.Open()
	if !p.call(rule, 0) {
		p.b.ReportError(fmt.Sprintf("%s expected, got %s", rule, describe(p.b.Current())))
	}
	for p.b.AtSeparator() {
		p.b.Advance()
	}
	if !p.b.EOF() {
		m := p.b.Open()
		tok := p.b.Current()
		for !p.b.EOF() {
			p.b.Advance()
		}
		p.b.Error(m, fmt.Sprintf("%s unexpected", describe(tok)))
	}
	kind := KindFragment
	if rule == RuleSourceFile {
		kind = KindSourceFile
	}
	p.b.Done(root, kind)
	return p.b.Finish()
}

// ParseFile parses a whole source file.
func ParseFile(tokens []token.Token, opts ...Option) (*Node, ErrorList) {
	return Parse(RuleSourceFile, tokens, opts...)
}

// ParseSource lexes src and parses it as a source file.
func ParseSource(src []byte, file string, opts ...Option) (*Node, ErrorList) {
	tokens, _ := lexer.Tokenize(src, file)
	return ParseFile(tokens, opts...)
}

func (p *parser) debugf(format string, args ...any) {
	if p.log != nil {
		p.log.Debugf(format, args...)
	}
}

func (p *parser) at(kind token.Kind) bool {
	return p.b.At(kind)
}

func (p *parser) atAny(kinds ...token.Kind) bool {
	cur := p.b.Kind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *parser) tok(kind token.Kind) bool {
	return p.b.Expect(kind)
}

// need reports "<what> expected" at the cursor when ok is false. It returns
// ok so that pinned sequences read as a chain of needs.
func (p *parser) need(ok bool, what string) bool {
	if !ok {
		p.b.ReportError(fmt.Sprintf("%s expected, got %s", what, describe(p.b.Current())))
	}
	return ok
}

// expect consumes a token of kind or reports it missing.
func (p *parser) expect(kind token.Kind) bool {
	if p.tok(kind) {
		return true
	}
	p.b.ReportError(fmt.Sprintf("%s expected, got %s", quote(kind), describe(p.b.Current())), kind)
	return false
}

func quote(kind token.Kind) string {
	switch kind {
	case token.Ident:
		return "identifier"
	case token.String:
		return "string literal"
	case token.SyntheticSemicolon, token.Semicolon:
		return "';' or newline"
	}
	return "'" + kind.String() + "'"
}

// semi consumes a statement separator. A missing separator is accepted
// before a closing bracket or at end of input.
func (p *parser) semi() bool {
	if p.b.AtSeparator() {
		p.b.Advance()
		return true
	}
	return p.atAny(token.RParen, token.RBrace, token.EOF)
}

// repeat invokes fn until it fails or stops making progress.
func (p *parser) repeat(fn func() bool) {
	for {
		pos := p.b.Pos()
		if !fn() || p.b.Pos() == pos {
			return
		}
	}
}

// withCompositeLits runs fn with composite literals allowed or not and
// restores the previous setting.
func (p *parser) withCompositeLits(allowed bool, fn func() bool) bool {
	saved := p.noCompositeLit
	p.noCompositeLit = !allowed
	ok := fn()
	p.noCompositeLit = saved
	return ok
}

// commaList parses elem (',' elem)*. A trailing comma is left in place
// when the next token is one of closers. A strict list fails as a whole
// when an element is missing after a comma; otherwise the missing element
// is reported and the list succeeds.
func (p *parser) commaList(elem func() bool, what string, strict bool, closers ...token.Kind) bool {
	m := p.b.Open()
	if !elem() {
		p.b.Drop(m)
		return false
	}
	for p.at(token.Comma) {
		if next := p.b.Peek(1); containsKind(closers, next) {
			break
		}
		p.b.Advance()
		if elem() {
			continue
		}
		if strict {
			p.b.Drop(m)
			return false
		}
		p.need(false, what)
		break
	}
	p.b.Collapse(m)
	return true
}

func containsKind(kinds []token.Kind, k token.Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
