package parser

import "github.com/dhamidi/goparse/golang/token"

var assignOps = map[token.Kind]bool{
	token.Assign:       true,
	token.AddAssign:    true,
	token.SubAssign:    true,
	token.MulAssign:    true,
	token.QuoAssign:    true,
	token.RemAssign:    true,
	token.AndAssign:    true,
	token.OrAssign:     true,
	token.XorAssign:    true,
	token.ShlAssign:    true,
	token.ShrAssign:    true,
	token.AndNotAssign: true,
}

var branchKeywords = map[NodeKind]token.Kind{
	KindBreakStatement:       token.Break,
	KindContinueStatement:    token.Continue,
	KindGotoStatement:        token.Goto,
	KindFallthroughStatement: token.Fallthrough,
	KindGoStatement:          token.Go,
	KindDeferStatement:       token.Defer,
}

func (p *parser) block(level int) bool {
	if !p.at(token.LBrace) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.withCompositeLits(true, func() bool {
		p.statementList(level)
		return true
	})
	ok := p.expect(token.RBrace)
	return p.b.Close(m, KindBlock, ok, true)
}

// statement is an ordered choice; every alternative rejects on its first
// token without consuming anything.
func (p *parser) statement(level int) bool {
	return p.call(RuleDeclarationStatement, level) ||
		p.call(RuleLabeledStatement, level) ||
		p.call(RuleSimpleStatement, level) ||
		p.call(RuleGoStatement, level) ||
		p.call(RuleReturnStatement, level) ||
		p.call(RuleBreakStatement, level) ||
		p.call(RuleContinueStatement, level) ||
		p.call(RuleGotoStatement, level) ||
		p.call(RuleFallthroughStatement, level) ||
		p.call(RuleBlock, level) ||
		p.call(RuleIfStatement, level) ||
		p.call(RuleSwitchStatement, level) ||
		p.call(RuleSelectStatement, level) ||
		p.call(RuleForStatement, level) ||
		p.call(RuleDeferStatement, level)
}

// simpleStatement parses the expression list once and decides between an
// assignment, a send, an increment and an expression statement from the
// token that follows it.
func (p *parser) simpleStatement(level int) bool {
	if p.shortVarDeclAhead() {
		return p.call(RuleShortVarDecl, level)
	}
	m := p.b.Open()
	if !p.call(RuleExpression, level) {
		p.b.Drop(m)
		return false
	}
	multi := false
	if p.at(token.Comma) {
		multi = true
		p.b.Advance()
		p.need(p.call(RuleExpressionList, level), "expression")
	}

	switch kind := p.b.Kind(); {
	case assignOps[kind]:
		p.b.Advance()
		ok := p.need(p.call(RuleExpressionList, level), "expression")
		return p.b.Close(m, KindAssignmentStatement, ok, true)
	case multi:
		p.need(false, "'=' or ':='")
		p.b.Done(m, KindSimpleStatement)
	case kind == token.Arrow:
		p.b.Advance()
		ok := p.need(p.call(RuleExpression, level), "expression")
		return p.b.Close(m, KindSendStatement, ok, true)
	case kind == token.Inc || kind == token.Dec:
		p.b.Advance()
		p.b.Done(m, KindSimpleStatement)
	default:
		p.b.Fold(m, KindSimpleStatement)
	}
	return true
}

// shortVarDeclAhead reports whether the tokens at the cursor read
// ident {',' ident} ':='.
func (p *parser) shortVarDeclAhead() bool {
	for i := 0; ; i += 2 {
		if p.b.Peek(i) != token.Ident {
			return false
		}
		switch p.b.Peek(i + 1) {
		case token.Define:
			return true
		case token.Comma:
			continue
		}
		return false
	}
}

func (p *parser) assignmentStatement(level int) bool {
	m := p.b.Open()
	if !p.call(RuleExpressionList, level) || !assignOps[p.b.Kind()] {
		p.b.Drop(m)
		return false
	}
	p.b.Advance()
	ok := p.need(p.call(RuleExpressionList, level), "expression")
	return p.b.Close(m, KindAssignmentStatement, ok, true)
}

func (p *parser) sendStatement(level int) bool {
	m := p.b.Open()
	if !p.call(RuleExpression, level) || !p.tok(token.Arrow) {
		p.b.Drop(m)
		return false
	}
	ok := p.need(p.call(RuleExpression, level), "expression")
	return p.b.Close(m, KindSendStatement, ok, true)
}

func (p *parser) shortVarDecl(level int) bool {
	m := p.b.Open()
	if !p.call(RuleIdentifierList, level) || !p.tok(token.Define) {
		p.b.Drop(m)
		return false
	}
	ok := p.need(p.call(RuleExpressionList, level), "expression")
	return p.b.Close(m, KindShortVarDecl, ok, true)
}

// labeledStatement parses ident ':' [Statement]. The statement may be
// missing before a closing brace.
func (p *parser) labeledStatement(level int) bool {
	if !p.at(token.Ident) || p.b.Peek(1) != token.Colon {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.b.Advance()
	if !p.b.AtSeparator() && !p.at(token.RBrace) {
		p.call(RuleStatement, level)
	}
	p.b.Done(m, KindLabeledStatement)
	return true
}

// keywordExprStatement parses go and defer statements.
func (p *parser) keywordExprStatement(level int, kind NodeKind) bool {
	if !p.at(branchKeywords[kind]) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.need(p.call(RuleExpression, level), "expression")
	return p.b.Close(m, kind, ok, true)
}

func (p *parser) returnStatement(level int) bool {
	if !p.at(token.Return) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.call(RuleExpressionList, level)
	p.b.Done(m, KindReturnStatement)
	return true
}

func (p *parser) branchStatement(level int, kind NodeKind) bool {
	if !p.at(branchKeywords[kind]) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := true
	switch kind {
	case KindBreakStatement, KindContinueStatement:
		p.tok(token.Ident)
	case KindGotoStatement:
		ok = p.expect(token.Ident)
	}
	return p.b.Close(m, kind, ok, true)
}

// initStatement consumes SimpleStatement ';' in the header of an if or
// switch statement, or nothing.
func (p *parser) initStatement(level int) {
	m := p.b.Open()
	if p.call(RuleSimpleStatement, level) && p.b.AtSeparator() {
		p.b.Advance()
		p.b.Collapse(m)
		return
	}
	p.b.Drop(m)
}

func (p *parser) ifStatement(level int) bool {
	if !p.at(token.If) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.withCompositeLits(false, func() bool {
		p.initStatement(level)
		return p.need(p.call(RuleExpression, level), "condition")
	})
	ok = p.need(p.call(RuleBlock, level), "'{'") && ok
	if p.tok(token.Else) {
		ok = p.need(p.call(RuleIfStatement, level) || p.call(RuleBlock, level), "if statement or block") && ok
	}
	return p.b.Close(m, KindIfStatement, ok, true)
}

func (p *parser) switchStatement(level int) bool {
	if !p.at(token.Switch) {
		return false
	}
	return p.call(RuleTypeSwitchStatement, level) || p.call(RuleExprSwitchStatement, level)
}

func (p *parser) exprSwitchStatement(level int) bool {
	if !p.at(token.Switch) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	p.withCompositeLits(false, func() bool {
		if p.at(token.LBrace) {
			return true
		}
		p.initStatement(level)
		if p.at(token.LBrace) {
			return true
		}
		return p.need(p.call(RuleExpression, level), "expression")
	})
	ok := p.clauses(level, RuleExprCaseClause, "case clause")
	return p.b.Close(m, KindExprSwitchStatement, ok, true)
}

// clauses parses '{' clause* '}' for switch and select statements.
func (p *parser) clauses(level int, clause Rule, what string) bool {
	if !p.expect(token.LBrace) {
		return false
	}
	p.repeat(func() bool {
		for p.b.AtSeparator() {
			p.b.Advance()
		}
		if p.b.EOF() || p.at(token.RBrace) {
			return false
		}
		if !p.call(clause, level) {
			p.skipInList(what+" expected, got "+describe(p.b.Current()), token.RBrace)
		}
		return true
	})
	return p.expect(token.RBrace)
}

func (p *parser) exprCaseClause(level int) bool {
	return p.caseClause(level, RuleExpressionList, KindExprCaseClause, "expression")
}

func (p *parser) typeCaseClause(level int) bool {
	return p.caseClause(level, RuleTypeList, KindTypeCaseClause, "type")
}

// caseClause parses ('case' list | 'default') ':' StatementList.
func (p *parser) caseClause(level int, list Rule, kind NodeKind, what string) bool {
	m := p.b.Open()
	ok := true
	switch {
	case p.tok(token.Case):
		ok = p.need(p.call(list, level), what)
	case p.tok(token.Default):
	default:
		p.b.Drop(m)
		return false
	}
	ok = p.expect(token.Colon) && ok
	p.statementList(level)
	return p.b.Close(m, kind, ok, true)
}

// typeSwitchStatement stays unpinned until its guard x.(type) has been
// seen, so an expression switch can be tried next.
func (p *parser) typeSwitchStatement(level int) bool {
	if !p.at(token.Switch) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	guarded := p.withCompositeLits(false, func() bool {
		p.initStatement(level)
		return p.call(RuleTypeSwitchGuard, level)
	})
	if !guarded {
		p.b.Drop(m)
		return false
	}
	ok := p.clauses(level, RuleTypeCaseClause, "case clause")
	return p.b.Close(m, KindTypeSwitchStatement, ok, true)
}

// typeSwitchGuard parses [ident ':='] PrimaryExpr '.' '(' 'type' ')'.
func (p *parser) typeSwitchGuard(level int) bool {
	m := p.b.Open()
	if p.at(token.Ident) && p.b.Peek(1) == token.Define {
		p.b.Advance()
		p.b.Advance()
	}
	if !p.call(RuleExpression, level) ||
		!p.at(token.Period) || p.b.Peek(1) != token.LParen || p.b.Peek(2) != token.Type {
		p.b.Drop(m)
		return false
	}
	p.b.Advance()
	p.b.Advance()
	p.b.Advance()
	ok := p.expect(token.RParen)
	return p.b.Close(m, KindTypeSwitchGuard, ok, true)
}

func (p *parser) selectStatement(level int) bool {
	if !p.at(token.Select) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.clauses(level, RuleCommClause, "communication clause")
	return p.b.Close(m, KindSelectStatement, ok, true)
}

func (p *parser) commClause(level int) bool {
	m := p.b.Open()
	if !p.call(RuleCommCase, level) {
		p.b.Drop(m)
		return false
	}
	ok := p.expect(token.Colon)
	p.statementList(level)
	return p.b.Close(m, KindCommClause, ok, true)
}

func (p *parser) commCase(level int) bool {
	m := p.b.Open()
	ok := true
	switch {
	case p.tok(token.Case):
		ok = p.need(p.call(RuleSendStatement, level) || p.call(RuleRecvStatement, level), "send or receive")
	case p.tok(token.Default):
	default:
		p.b.Drop(m)
		return false
	}
	return p.b.Close(m, KindCommCase, ok, true)
}

// recvStatement parses [ExpressionList '=' | IdentifierList ':='] Expression.
func (p *parser) recvStatement(level int) bool {
	m := p.b.Open()
	p.assignPrefix(level)
	if !p.call(RuleExpression, level) {
		p.b.Drop(m)
		return false
	}
	p.b.Done(m, KindRecvStatement)
	return true
}

// assignPrefix consumes ExpressionList '=' or IdentifierList ':=' when one
// is present.
func (p *parser) assignPrefix(level int) {
	m := p.b.Open()
	if p.call(RuleExpressionList, level) && p.tok(token.Assign) {
		p.b.Collapse(m)
		return
	}
	p.b.Drop(m)
	m = p.b.Open()
	if p.call(RuleIdentifierList, level) && p.tok(token.Define) {
		p.b.Collapse(m)
		return
	}
	p.b.Drop(m)
}

func (p *parser) forStatement(level int) bool {
	if !p.at(token.For) {
		return false
	}
	m := p.b.Open()
	p.b.Advance()
	ok := p.withCompositeLits(false, func() bool {
		if p.at(token.LBrace) {
			return true
		}
		return p.need(p.call(RuleRangeClause, level) ||
			p.call(RuleForClause, level) ||
			p.call(RuleExpression, level), "for clause")
	})
	ok = p.need(p.call(RuleBlock, level), "'{'") && ok
	return p.b.Close(m, KindForStatement, ok, true)
}

// forClause parses [init] ';' [cond] ';' [post]. It commits once the first
// separator has been seen.
func (p *parser) forClause(level int) bool {
	m := p.b.Open()
	if !p.b.AtSeparator() {
		p.call(RuleSimpleStatement, level)
	}
	if !p.b.AtSeparator() {
		p.b.Drop(m)
		return false
	}
	p.b.Advance()
	if !p.b.AtSeparator() {
		p.need(p.call(RuleExpression, level), "condition")
	}
	ok := p.b.AtSeparator()
	if ok {
		p.b.Advance()
		if !p.at(token.LBrace) {
			p.call(RuleSimpleStatement, level)
		}
	} else {
		p.need(false, "';'")
	}
	return p.b.Close(m, KindForClause, ok, true)
}

func (p *parser) rangeClause(level int) bool {
	m := p.b.Open()
	p.assignPrefix(level)
	if !p.tok(token.Range) {
		p.b.Drop(m)
		return false
	}
	ok := p.need(p.call(RuleExpression, level), "expression")
	return p.b.Close(m, KindRangeClause, ok, true)
}
