package parser

import "github.com/dhamidi/goparse/golang/token"

// typ parses TypeName | TypeLit | '(' Type ')'.
func (p *parser) typ(level int) bool {
	if p.at(token.LParen) {
		m := p.b.Open()
		p.b.Advance()
		if !p.call(RuleType, level) || !p.tok(token.RParen) {
			p.b.Drop(m)
			return false
		}
		p.b.Done(m, KindType)
		return true
	}
	return p.call(RuleTypeName, level) || p.call(RuleTypeLit, level)
}

// typeName parses ident ['.' ident]. The qualifier is only taken when an
// identifier follows the dot, so x.(T) and x.y{} keep their own meaning.
func (p *parser) typeName(level int) bool {
	if !p.at(token.Ident) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	if p.at(token.Period) && p.b.Peek(1) == token.Ident {
		p.b.Advance()
		p.b.Advance()
	}
	p.b.Done(m, KindTypeName)
	return true
}

func (p *parser) typeLit(level int) bool {
	switch p.b.Kind() {
	case token.LBrack:
		return p.call(RuleArrayOrSliceType, level)
	case token.Struct:
		return p.call(RuleStructType, level)
	case token.Mul:
		return p.call(RulePointerType, level)
	case token.Func:
		return p.call(RuleFunctionType, level)
	case token.Interface:
		return p.call(RuleInterfaceType, level)
	case token.Map:
		return p.call(RuleMapType, level)
	case token.Chan, token.Arrow:
		return p.call(RuleChannelType, level)
	}
	return false
}

// arrayOrSliceType parses '[' ['...' | Expression] ']' Type.
func (p *parser) arrayOrSliceType(level int) bool {
	if !p.at(token.LBrack) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	if !p.tok(token.Ellipsis) && !p.at(token.RBrack) {
		p.withCompositeLits(true, func() bool {
			return p.need(p.call(RuleExpression, level), "array length")
		})
	}
	ok := p.expect(token.RBrack)
	ok = ok && p.need(p.call(RuleType, level), "element type")
	return p.b.Close(m, KindArrayOrSliceType, ok, true)
}

func (p *parser) structType(level int) bool {
	if !p.at(token.Struct) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.expect(token.LBrace)
	if ok {
		p.specList(level, RuleFieldDecl, "field declaration", token.RBrace)
		ok = p.expect(token.RBrace)
	}
	return p.b.Close(m, KindStructType, ok, true)
}

// fieldDecl parses (IdentifierList Type | AnonymousField) [Tag].
func (p *parser) fieldDecl(level int) bool {
	m := p.b.Open()
	named := p.b.Open()
	if p.call(RuleIdentifierList, level) && p.call(RuleType, level) {
		p.b.Collapse(named)
	} else {
		p.b.Drop(named)
		if !p.call(RuleAnonymousField, level) {
			p.b.Drop(m)
			return false
		}
	}
	p.call(RuleTag, level)
	p.b.Done(m, KindFieldDecl)
	return true
}

func (p *parser) anonymousField(level int) bool {
	m := p.b.Open()
	p.tok(token.Mul)
	if !p.call(RuleTypeName, level) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindAnonymousField)
	return true
}

func (p *parser) tag(level int) bool {
	if !p.at(token.String) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.b.Done(m, KindTag)
	return true
}

func (p *parser) pointerType(level int) bool {
	if !p.at(token.Mul) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.need(p.call(RuleType, level), "type")
	return p.b.Close(m, KindPointerType, ok, true)
}

func (p *parser) functionType(level int) bool {
	if !p.at(token.Func) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.need(p.call(RuleSignature, level), "signature")
	return p.b.Close(m, KindFunctionType, ok, true)
}

func (p *parser) interfaceType(level int) bool {
	if !p.at(token.Interface) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.expect(token.LBrace)
	if ok {
		p.specList(level, RuleMethodSpec, "method specification", token.RBrace)
		ok = p.expect(token.RBrace)
	}
	return p.b.Close(m, KindInterfaceType, ok, true)
}

// methodSpec parses ident Signature | TypeName.
func (p *parser) methodSpec(level int) bool {
	if !p.at(token.Ident) {
		return false
	}
	m := p.b.Open()
	if p.b.Peek(1) == token.LParen {
		p.b.Advance()
		p.call(RuleSignature, level)
	} else {
		p.call(RuleTypeName, level)
	}
	p.b.Done(m, KindMethodSpec)
	return true
}

func (p *parser) mapType(level int) bool {
	if !p.at(token.Map) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.expect(token.LBrack)
	ok = ok && p.need(p.call(RuleType, level), "key type")
	ok = ok && p.expect(token.RBrack)
	ok = ok && p.need(p.call(RuleType, level), "element type")
	return p.b.Close(m, KindMapType, ok, true)
}

// channelType parses 'chan' ['<-'] Type | '<-' 'chan' Type. A receive-only
// channel is pinned only once 'chan' follows the arrow.
func (p *parser) channelType(level int) bool {
	m := p.b.Open()
	switch {
	case p.tok(token.Chan):
		p.tok(token.Arrow)
	case p.at(token.Arrow) && p.b.Peek(1) == token.Chan:
		p.b.Advance()
		p.b.Advance()
	default:
		p.b.Drop(m)
		return false
	}
	ok := p.need(p.call(RuleType, level), "element type")
	return p.b.Close(m, KindChannelType, ok, true)
}

func (p *parser) typeList(level int) bool {
	m := p.b.Open()
	ok := p.commaList(func() bool {
		return p.call(RuleType, level)
	}, "type", false, token.Colon)
	if !ok {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindTypeList)
	return true
}
