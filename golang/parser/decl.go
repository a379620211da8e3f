package parser

import (
	"github.com/dhamidi/goparse/golang/token"
)

// sourceFile has no node of its own: the root marker opened by Parse
// becomes the SourceFile node.
func (p *parser) sourceFile(level int) bool {
	if p.need(p.call(RulePackageClause, level), "package clause") {
		p.separator()
	}
	for {
		for p.b.AtSeparator() {
			p.b.Advance()
		}
		if !p.at(token.Import) {
			break
		}
		p.call(RuleImportDecl, level)
		p.separator()
	}

	for !p.b.EOF() {
		if p.b.AtSeparator() {
			p.b.Advance()
			continue
		}
		if p.at(token.Import) {
			p.b.ReportError("imports must appear before other declarations")
			p.call(RuleImportDecl, level)
			p.separator()
			continue
		}
		pos := p.b.Pos()
		if p.call(RuleTopLevelDecl, level) && p.b.Pos() > pos {
			p.separator()
			continue
		}
		p.skipToDeclaration("declaration expected, got " + describe(p.b.Current()))
	}
	return true
}

// separator consumes the separator after a declaration or reports it
// missing.
func (p *parser) separator() {
	if !p.semi() {
		p.need(false, "';' or newline")
	}
}

func (p *parser) packageClause(level int) bool {
	if !p.at(token.Package) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.expect(token.Ident)
	return p.b.Close(m, KindPackageClause, ok, true)
}

// groupedSpecs parses '(' (spec semi)* ')' after a declaration keyword.
func (p *parser) groupedSpecs(level int, spec Rule, what string) bool {
	p.b.Advance()
	p.specList(level, spec, what)
	return p.expect(token.RParen)
}

// specList parses (spec semi)* up to the closer. Tokens that do not start a
// spec are wrapped in an error node up to the next separator.
func (p *parser) specList(level int, spec Rule, what string, closers ...token.Kind) {
	if len(closers) == 0 {
		closers = []token.Kind{token.RParen}
	}
	for !p.b.EOF() && !p.atAny(closers...) {
		if p.b.AtSeparator() {
			p.b.Advance()
			continue
		}
		pos := p.b.Pos()
		if p.call(spec, level) && p.b.Pos() > pos {
			if !p.semi() {
				p.need(false, "';' or newline")
			}
			continue
		}
		p.skipInList(what+" expected, got "+describe(p.b.Current()), closers...)
	}
}

func (p *parser) importDecl(level int) bool {
	if !p.at(token.Import) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	var ok bool
	if p.at(token.LParen) {
		ok = p.groupedSpecs(level, RuleImportSpec, "import spec")
	} else {
		ok = p.need(p.call(RuleImportSpec, level), "import spec")
	}
	return p.b.Close(m, KindImportDecl, ok, true)
}

func (p *parser) importSpec(level int) bool {
	m := p.b.Open()
	if !p.tok(token.Period) {
		p.tok(token.Ident)
	}
	if !p.tok(token.String) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindImportSpec)
	return true
}

func (p *parser) topLevelDecl(level int) bool {
	return p.call(RuleDeclarationStatement, level) ||
		p.call(RuleFunctionDecl, level) ||
		p.call(RuleMethodDecl, level)
}

func (p *parser) declarationStatement(level int) bool {
	switch p.b.Kind() {
	case token.Const:
		return p.call(RuleConstDecl, level)
	case token.Type:
		return p.call(RuleTypeDecl, level)
	case token.Var:
		return p.call(RuleVarDecl, level)
	}
	return false
}

func (p *parser) constDecl(level int) bool {
	return p.declaration(level, token.Const, RuleConstSpec, KindConstDecl, "constant spec")
}

func (p *parser) varDecl(level int) bool {
	return p.declaration(level, token.Var, RuleVarSpec, KindVarDecl, "variable spec")
}

func (p *parser) typeDecl(level int) bool {
	return p.declaration(level, token.Type, RuleTypeSpec, KindTypeDecl, "type spec")
}

// declaration parses keyword (spec | '(' (spec semi)* ')'), pinned on the
// keyword.
func (p *parser) declaration(level int, keyword token.Kind, spec Rule, kind NodeKind, what string) bool {
	if !p.at(keyword) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	var ok bool
	if p.at(token.LParen) {
		ok = p.groupedSpecs(level, spec, what)
	} else {
		ok = p.need(p.call(spec, level), what)
	}
	return p.b.Close(m, kind, ok, true)
}

func (p *parser) constSpec(level int) bool {
	m := p.b.Open()
	if !p.call(RuleIdentifierList, level) {
		p.b.Drop(m)
		return false
	}
	ok := true
	if !p.b.AtSeparator() && !p.atAny(token.RParen, token.EOF) {
		if !p.at(token.Assign) {
			p.call(RuleType, level)
		}
		ok = p.expect(token.Assign)
		ok = p.need(p.call(RuleExpressionList, level), "expression") && ok
	}
	return p.b.Close(m, KindConstSpec, ok, true)
}

func (p *parser) varSpec(level int) bool {
	m := p.b.Open()
	if !p.call(RuleIdentifierList, level) {
		p.b.Drop(m)
		return false
	}
	var ok bool
	if p.tok(token.Assign) {
		ok = p.need(p.call(RuleExpressionList, level), "expression")
	} else {
		ok = p.need(p.call(RuleType, level), "type or '='")
		if ok && p.tok(token.Assign) {
			ok = p.need(p.call(RuleExpressionList, level), "expression")
		}
	}
	return p.b.Close(m, KindVarSpec, ok, true)
}

func (p *parser) typeSpec(level int) bool {
	if !p.at(token.Ident) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.tok(token.Assign)
	ok := p.need(p.call(RuleType, level), "type")
	return p.b.Close(m, KindTypeSpec, ok, true)
}

func (p *parser) functionDecl(level int) bool {
	if !p.at(token.Func) || p.b.Peek(1) != token.Ident {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.b.Advance()
	ok := p.need(p.call(RuleSignature, level), "signature")
	if p.at(token.LBrace) {
		ok = p.call(RuleBlock, level) && ok
	}
	return p.b.Close(m, KindFunctionDecl, ok, true)
}

func (p *parser) methodDecl(level int) bool {
	if !p.at(token.Func) || p.b.Peek(1) != token.LParen {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	if !p.call(RuleReceiver, level) {
		p.b.Drop(m)
		return false
	}
	ok := p.expect(token.Ident)
	ok = p.need(p.call(RuleSignature, level), "signature") && ok
	if p.at(token.LBrace) {
		ok = p.call(RuleBlock, level) && ok
	}
	return p.b.Close(m, KindMethodDecl, ok, true)
}

// receiver parses '(' [ident] ['*'] ident ')'.
func (p *parser) receiver(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	if p.at(token.Ident) && (p.b.Peek(1) == token.Ident || p.b.Peek(1) == token.Mul) {
		p.b.Advance()
	}
	p.tok(token.Mul)
	if !p.tok(token.Ident) {
		p.b.Drop(m)
		return false
	}
	ok := p.expect(token.RParen)
	return p.b.Close(m, KindReceiver, ok, true)
}

func (p *parser) signature(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	ok := p.call(RuleParameters, level)
	p.call(RuleResult, level)
	return p.b.Close(m, KindSignature, ok, true)
}

func (p *parser) result(level int) bool {
	m := p.b.Open()
	if p.call(RuleParameters, level) || p.call(RuleType, level) {
		p.b.Done(m, KindResult)
		return true
	}
	p.b.Drop(m)
	return false
}

func (p *parser) parameters(level int) bool {
	if !p.at(token.LParen) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.withCompositeLits(true, func() bool {
		if p.call(RuleParameterList, level) {
			p.tok(token.Comma)
		}
		return true
	})
	ok := p.expect(token.RParen)
	return p.b.Close(m, KindParameters, ok, true)
}

func (p *parser) parameterList(level int) bool {
	return p.commaList(func() bool {
		return p.call(RuleParameterDecl, level)
	}, "parameter", false, token.RParen)
}

// parameterDecl parses [IdentifierList] ['...'] Type. The named form is
// tried first; "a, b" without a type falls back to a list of types.
func (p *parser) parameterDecl(level int) bool {
	m := p.b.Open()
	if p.call(RuleIdentifierList, level) {
		p.tok(token.Ellipsis)
		if p.call(RuleType, level) {
			p.b.Done(m, KindParameterDecl)
			return true
		}
		p.b.Drop(m)
		m = p.b.Open()
	}
	p.tok(token.Ellipsis)
	if !p.call(RuleType, level) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindParameterDecl)
	return true
}

func (p *parser) identifierList(level int) bool {
	return p.commaList(func() bool {
		return p.tok(token.Ident)
	}, "identifier", true)
}
