package parser

import "github.com/dhamidi/goparse/golang/token"

// Binding priorities. A binary operator is taken while the caller's priority
// is lower than the operator's; postfix operators bind tighter than any
// binary or unary operator.
const (
	lowestPriority  = -1
	unaryPriority   = 5
	postfixPriority = 8
)

type binaryOp struct {
	prio int
	kind NodeKind
}

var binaryOps = map[token.Kind]binaryOp{
	token.LOr: {0, KindOrExpr},

	token.LAnd: {1, KindAndExpr},

	token.Eql: {2, KindConditionalExpr},
	token.Neq: {2, KindConditionalExpr},
	token.Lss: {2, KindConditionalExpr},
	token.Leq: {2, KindConditionalExpr},
	token.Gtr: {2, KindConditionalExpr},
	token.Geq: {2, KindConditionalExpr},

	token.Add: {3, KindAddExpr},
	token.Sub: {3, KindAddExpr},
	token.Or:  {3, KindAddExpr},
	token.Xor: {3, KindAddExpr},

	token.Mul:    {4, KindMulExpr},
	token.Quo:    {4, KindMulExpr},
	token.Rem:    {4, KindMulExpr},
	token.Shl:    {4, KindMulExpr},
	token.Shr:    {4, KindMulExpr},
	token.And:    {4, KindMulExpr},
	token.AndNot: {4, KindMulExpr},
}

var unaryOps = map[token.Kind]bool{
	token.Add:   true,
	token.Sub:   true,
	token.Not:   true,
	token.Xor:   true,
	token.Mul:   true,
	token.And:   true,
	token.Arrow: true,
}

var builtins = map[string]bool{
	"append": true, "cap": true, "clear": true, "close": true,
	"complex": true, "copy": true, "delete": true, "imag": true,
	"len": true, "make": true, "max": true, "min": true,
	"new": true, "panic": true, "print": true, "println": true,
	"real": true, "recover": true,
}

// expr enters the expression engine through the recursion guard.
func (p *parser) expr(level, prio int) bool {
	if !p.guard.enter(RuleExpression, p.b.Pos(), level) {
		p.debugf("recursion guard refused %s at token %d", RuleExpression, p.b.Pos())
		return false
	}
	ok := p.expression(level+1, prio)
	p.guard.leave()
	return ok
}

// expression parses a primary operand and then folds every binary and
// postfix operator that binds tighter than prio onto it:
//
//	a + b * c   =>  AddExpr(a, MulExpr(b, c))
//	a - b - c   =>  AddExpr(AddExpr(a, b), c)
//
// The left operand is wrapped after the fact with Precede, so no operand is
// ever parsed twice.
func (p *parser) expression(level, prio int) bool {
	start := p.b.Pos()
	if !p.primary(level) {
		return false
	}
	left, ok := p.b.LastDone()
	if !ok || p.b.StartPos(left) != start {
		return true
	}
	for {
		if op, ok := binaryOps[p.b.Kind()]; ok && prio < op.prio {
			m := p.b.Precede(left)
			p.b.Advance()
			p.need(p.expr(level, op.prio), "operand")
			left = p.b.Done(m, op.kind)
			continue
		}
		if prio < postfixPriority {
			if next, ok := p.postfix(level, left); ok {
				left = next
				continue
			}
		}
		return true
	}
}

func (p *parser) primary(level int) bool {
	return p.call(RuleUnaryExpr, level) ||
		p.call(RuleBuiltinCallExpr, level) ||
		p.call(RuleMethodExpr, level) ||
		p.call(RuleLiteral, level) ||
		p.call(RuleOperandName, level) ||
		p.call(RuleConversionExpr, level) ||
		p.call(RuleParenthesizedExpr, level)
}

// postfix wraps left in a selector, type assertion, index, slice or call
// expression. It reports false when no postfix operator follows; x.(type)
// is left for the type switch guard.
func (p *parser) postfix(level int, left CompletedMarker) (CompletedMarker, bool) {
	switch p.b.Kind() {
	case token.Period:
		switch p.b.Peek(1) {
		case token.LParen:
			if p.b.Peek(2) == token.Type {
				return left, false
			}
			m := p.b.Precede(left)
			p.b.Advance()
			p.b.Advance()
			ok := p.need(p.call(RuleType, level), "type")
			if ok {
				p.expect(token.RParen)
			}
			return p.b.Done(m, KindTypeAssertionExpr), true
		default:
			m := p.b.Precede(left)
			p.b.Advance()
			p.expect(token.Ident)
			return p.b.Done(m, KindSelectorExpr), true
		}
	case token.LBrack:
		return p.indexOrSlice(level, left), true
	case token.LParen:
		m := p.b.Precede(left)
		p.call(RuleArgumentList, level)
		return p.b.Done(m, KindCallExpr), true
	}
	return left, false
}

// indexOrSlice parses '[' Expression ']' or '[' [lo] ':' [hi] [':' max] ']'
// in a single pass.
func (p *parser) indexOrSlice(level int, left CompletedMarker) CompletedMarker {
	m := p.b.Precede(left)
	p.b.Advance()
	slice := false
	p.withCompositeLits(true, func() bool {
		if !p.at(token.Colon) {
			p.need(p.call(RuleExpression, level), "index")
		}
		if p.tok(token.Colon) {
			slice = true
			if !p.atAny(token.Colon, token.RBrack) {
				p.need(p.call(RuleExpression, level), "index")
			}
			if p.tok(token.Colon) {
				p.need(p.call(RuleExpression, level), "maximum index")
			}
		}
		return true
	})
	p.expect(token.RBrack)
	if slice {
		return p.b.Done(m, KindSliceExpr)
	}
	return p.b.Done(m, KindIndexExpr)
}

func (p *parser) expressionList(level int) bool {
	return p.commaList(func() bool {
		return p.call(RuleExpression, level)
	}, "expression", false, token.RParen, token.RBrack, token.RBrace)
}

func (p *parser) unaryExpr(level int) bool {
	if !unaryOps[p.b.Kind()] {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.need(p.expr(level, unaryPriority), "operand")
	return p.b.Close(m, KindUnaryExpr, ok, true)
}

// builtinCallExpr parses a call of a predeclared function. make and new take
// a type as their first argument.
func (p *parser) builtinCallExpr(level int) bool {
	if !p.at(token.Ident) || p.b.Peek(1) != token.LParen || !builtins[p.b.Current().Literal] {
		return false
	}
	name := p.b.Current().Literal
	m := p.b.Open()
	p.b.Advance()
	p.b.Advance()
	p.withCompositeLits(true, func() bool {
		return p.builtinArgs(level, name == "make" || name == "new")
	})
	ok := p.expect(token.RParen)
	return p.b.Close(m, KindBuiltinCallExpr, ok, true)
}

func (p *parser) builtinArgs(level int, typeFirst bool) bool {
	m := p.b.Open()
	switch {
	case typeFirst && p.call(RuleType, level):
		if p.at(token.Comma) && p.b.Peek(1) != token.RParen {
			p.b.Advance()
			p.need(p.call(RuleExpressionList, level), "expression")
		}
	case p.call(RuleExpressionList, level):
		p.tok(token.Ellipsis)
	default:
		p.b.Drop(m)
		return false
	}
	p.tok(token.Comma)
	p.b.Done(m, KindBuiltinArgs)
	return true
}

// methodExpr parses ReceiverType '.' ident, with a parenthesized receiver
// type such as (*T).Method.
func (p *parser) methodExpr(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	if !p.call(RuleReceiverType, level) || !p.at(token.Period) || p.b.Peek(1) != token.Ident {
		p.b.Drop(m)
		return false
	}
	p.b.Advance()
	p.b.Advance()
	p.b.Done(m, KindMethodExpr)
	return true
}

func (p *parser) receiverType(level int) bool {
	m := p.b.Open()
	if !p.tok(token.LParen) {
		p.b.Drop(m)
		return false
	}
	p.tok(token.Mul)
	if !p.call(RuleTypeName, level) || !p.tok(token.RParen) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindReceiverType)
	return true
}

// conversionExpr parses Type '(' Expression [','] ')'. Nothing is kept
// unless the whole conversion matches.
func (p *parser) conversionExpr(level int) bool {
	m := p.b.Open()
	if !p.call(RuleType, level) || !p.tok(token.LParen) {
		p.b.Drop(m)
		return false
	}
	ok := p.withCompositeLits(true, func() bool {
		return p.call(RuleExpression, level)
	})
	if ok {
		p.tok(token.Comma)
		ok = p.tok(token.RParen)
	}
	if !ok {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindConversionExpr)
	return true
}

func (p *parser) parenthesizedExpr(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.withCompositeLits(true, func() bool {
		return p.need(p.call(RuleExpression, level), "expression")
	})
	ok = ok && p.expect(token.RParen)
	return p.b.Close(m, KindParenthesizedExpr, ok, true)
}

func (p *parser) operandName(level int) bool {
	if !p.at(token.Ident) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.b.Done(m, KindOperandName)
	return true
}

func (p *parser) literal(level int) bool {
	return p.call(RuleBasicLit, level) ||
		p.call(RuleFunctionLit, level) ||
		p.call(RuleCompositeLit, level)
}

func (p *parser) basicLit(level int) bool {
	switch p.b.Kind() {
	case token.Int, token.Float, token.Imag, token.Rune, token.String:
		m := p.b.Open()
		p.b.Advance()
		p.b.Done(m, KindLiteral)
		return true
	}
	return false
}

// functionLit parses 'func' Signature Block. It is pinned on the opening
// brace; without one, func(...) is a function type.
func (p *parser) functionLit(level int) bool {
	if !p.at(token.Func) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	if !p.call(RuleSignature, level) || !p.at(token.LBrace) {
		p.b.Drop(m)
		return false
	}
	ok := p.call(RuleBlock, level)
	return p.b.Close(m, KindFunctionLit, ok, true)
}

// compositeLit parses LiteralType LiteralValue. Inside the header of a
// control statement a bare type name followed by '{' is not a literal.
func (p *parser) compositeLit(level int) bool {
	bare := p.at(token.Ident)
	if bare && p.noCompositeLit {
		return false
	}
	m := p.b.Open()
	if !p.call(RuleLiteralType, level) || !p.at(token.LBrace) {
		p.b.Drop(m)
		return false
	}
	ok := p.call(RuleLiteralValue, level)
	return p.b.Close(m, KindCompositeLit, ok, true)
}

func (p *parser) literalType(level int) bool {
	switch p.b.Kind() {
	case token.Struct:
		return p.call(RuleStructType, level)
	case token.LBrack:
		return p.call(RuleArrayOrSliceType, level)
	case token.Map:
		return p.call(RuleMapType, level)
	case token.Ident:
		return p.call(RuleTypeName, level)
	}
	return false
}

func (p *parser) literalValue(level int) bool {
	if !p.at(token.LBrace) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.withCompositeLits(true, func() bool {
		if p.call(RuleElementList, level) {
			p.tok(token.Comma)
		}
		return true
	})
	ok := p.expect(token.RBrace)
	return p.b.Close(m, KindLiteralValue, ok, true)
}

func (p *parser) elementList(level int) bool {
	return p.commaList(func() bool {
		return p.call(RuleElement, level)
	}, "element", false, token.RBrace)
}

// element parses [Key ':'] Value. The first item is parsed once and
// becomes the key only when a colon follows it.
func (p *parser) element(level int) bool {
	m := p.b.Open()
	item := p.b.Open()
	if !p.elementItem(level) {
		p.b.Drop(m)
		return false
	}
	if p.at(token.Colon) {
		p.b.Done(item, KindKey)
		p.b.Advance()
		p.need(p.call(RuleValue, level), "value")
	} else {
		p.b.Done(item, KindValue)
	}
	p.b.Done(m, KindElement)
	return true
}

func (p *parser) elementItem(level int) bool {
	if p.at(token.LBrace) {
		return p.call(RuleLiteralValue, level)
	}
	return p.call(RuleExpression, level)
}

func (p *parser) key(level int) bool {
	return p.wrapItem(level, KindKey)
}

func (p *parser) value(level int) bool {
	return p.wrapItem(level, KindValue)
}

func (p *parser) wrapItem(level int, kind NodeKind) bool {
	m := p.b.Open()
	if !p.elementItem(level) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, kind)
	return true
}

func (p *parser) argumentList(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.withCompositeLits(true, func() bool {
		if p.call(RuleExpressionList, level) {
			p.tok(token.Ellipsis)
			p.tok(token.Comma)
		}
		return true
	})
	ok := p.expect(token.RParen)
	return p.b.Close(m, KindArgumentList, ok, true)
}
