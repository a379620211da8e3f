package parser

import "sort"

// Rule identifies a grammar nonterminal. Every rule can be used as the entry
// point of a parse.
type Rule int

const (
	RuleSourceFile Rule = iota
	RulePackageClause
	RuleImportDecl
	RuleImportSpec
	RuleTopLevelDecl
	RuleDeclarationStatement
	RuleConstDecl
	RuleConstSpec
	RuleVarDecl
	RuleVarSpec
	RuleTypeDecl
	RuleTypeSpec
	RuleFunctionDecl
	RuleMethodDecl
	RuleReceiver
	RuleSignature
	RuleResult
	RuleParameters
	RuleParameterList
	RuleParameterDecl
	RuleIdentifierList

	RuleBlock
	RuleStatement
	RuleSimpleStatement
	RuleAssignmentStatement
	RuleSendStatement
	RuleShortVarDecl
	RuleLabeledStatement
	RuleGoStatement
	RuleReturnStatement
	RuleBreakStatement
	RuleContinueStatement
	RuleGotoStatement
	RuleFallthroughStatement
	RuleIfStatement
	RuleSwitchStatement
	RuleExprSwitchStatement
	RuleExprCaseClause
	RuleTypeSwitchStatement
	RuleTypeSwitchGuard
	RuleTypeCaseClause
	RuleSelectStatement
	RuleCommClause
	RuleCommCase
	RuleRecvStatement
	RuleForStatement
	RuleForClause
	RuleRangeClause
	RuleDeferStatement

	RuleType
	RuleTypeName
	RuleTypeLit
	RuleArrayOrSliceType
	RuleStructType
	RuleFieldDecl
	RuleAnonymousField
	RuleTag
	RulePointerType
	RuleFunctionType
	RuleInterfaceType
	RuleMethodSpec
	RuleMapType
	RuleChannelType
	RuleTypeList

	RuleExpression
	RuleExpressionList
	RulePrimaryExpr
	RuleUnaryExpr
	RuleBuiltinCallExpr
	RuleBuiltinArgs
	RuleMethodExpr
	RuleReceiverType
	RuleConversionExpr
	RuleParenthesizedExpr
	RuleOperandName
	RuleLiteral
	RuleBasicLit
	RuleFunctionLit
	RuleCompositeLit
	RuleLiteralType
	RuleLiteralValue
	RuleElementList
	RuleElement
	RuleKey
	RuleValue
	RuleArgumentList

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleSourceFile:           "SourceFile",
	RulePackageClause:        "PackageClause",
	RuleImportDecl:           "ImportDecl",
	RuleImportSpec:           "ImportSpec",
	RuleTopLevelDecl:         "TopLevelDecl",
	RuleDeclarationStatement: "DeclarationStatement",
	RuleConstDecl:            "ConstDecl",
	RuleConstSpec:            "ConstSpec",
	RuleVarDecl:              "VarDecl",
	RuleVarSpec:              "VarSpec",
	RuleTypeDecl:             "TypeDecl",
	RuleTypeSpec:             "TypeSpec",
	RuleFunctionDecl:         "FunctionDecl",
	RuleMethodDecl:           "MethodDecl",
	RuleReceiver:             "Receiver",
	RuleSignature:            "Signature",
	RuleResult:               "Result",
	RuleParameters:           "Parameters",
	RuleParameterList:        "ParameterList",
	RuleParameterDecl:        "ParameterDecl",
	RuleIdentifierList:       "IdentifierList",

	RuleBlock:                "Block",
	RuleStatement:            "Statement",
	RuleSimpleStatement:      "SimpleStatement",
	RuleAssignmentStatement:  "AssignmentStatement",
	RuleSendStatement:        "SendStatement",
	RuleShortVarDecl:         "ShortVarDecl",
	RuleLabeledStatement:     "LabeledStatement",
	RuleGoStatement:          "GoStatement",
	RuleReturnStatement:      "ReturnStatement",
	RuleBreakStatement:       "BreakStatement",
	RuleContinueStatement:    "ContinueStatement",
	RuleGotoStatement:        "GotoStatement",
	RuleFallthroughStatement: "FallthroughStatement",
	RuleIfStatement:          "IfStatement",
	RuleSwitchStatement:      "SwitchStatement",
	RuleExprSwitchStatement:  "ExprSwitchStatement",
	RuleExprCaseClause:       "ExprCaseClause",
	RuleTypeSwitchStatement:  "TypeSwitchStatement",
	RuleTypeSwitchGuard:      "TypeSwitchGuard",
	RuleTypeCaseClause:       "TypeCaseClause",
	RuleSelectStatement:      "SelectStatement",
	RuleCommClause:           "CommClause",
	RuleCommCase:             "CommCase",
	RuleRecvStatement:        "RecvStatement",
	RuleForStatement:         "ForStatement",
	RuleForClause:            "ForClause",
	RuleRangeClause:          "RangeClause",
	RuleDeferStatement:       "DeferStatement",

	RuleType:             "Type",
	RuleTypeName:         "TypeName",
	RuleTypeLit:          "TypeLit",
	RuleArrayOrSliceType: "ArrayOrSliceType",
	RuleStructType:       "StructType",
	RuleFieldDecl:        "FieldDecl",
	RuleAnonymousField:   "AnonymousField",
	RuleTag:              "Tag",
	RulePointerType:      "PointerType",
	RuleFunctionType:     "FunctionType",
	RuleInterfaceType:    "InterfaceType",
	RuleMethodSpec:       "MethodSpec",
	RuleMapType:          "MapType",
	RuleChannelType:      "ChannelType",
	RuleTypeList:         "TypeList",

	RuleExpression:        "Expression",
	RuleExpressionList:    "ExpressionList",
	RulePrimaryExpr:       "PrimaryExpr",
	RuleUnaryExpr:         "UnaryExpr",
	RuleBuiltinCallExpr:   "BuiltinCallExpr",
	RuleBuiltinArgs:       "BuiltinArgs",
	RuleMethodExpr:        "MethodExpr",
	RuleReceiverType:      "ReceiverType",
	RuleConversionExpr:    "ConversionExpr",
	RuleParenthesizedExpr: "ParenthesizedExpr",
	RuleOperandName:       "OperandName",
	RuleLiteral:           "Literal",
	RuleBasicLit:          "BasicLit",
	RuleFunctionLit:       "FunctionLit",
	RuleCompositeLit:      "CompositeLit",
	RuleLiteralType:       "LiteralType",
	RuleLiteralValue:      "LiteralValue",
	RuleElementList:       "ElementList",
	RuleElement:           "Element",
	RuleKey:               "Key",
	RuleValue:             "Value",
	RuleArgumentList:      "ArgumentList",
}

func (r Rule) String() string {
	if r >= 0 && r < ruleCount {
		return ruleNames[r]
	}
	return "Unknown"
}

var rulesByName map[string]Rule

func init() {
	rulesByName = make(map[string]Rule, ruleCount)
	for r := Rule(0); r < ruleCount; r++ {
		rulesByName[ruleNames[r]] = r
	}
}

// LookupRule maps a rule name such as "Expression" to its rule.
func LookupRule(name string) (Rule, bool) {
	r, ok := rulesByName[name]
	return r, ok
}

// Rules returns the names of all rules in alphabetical order.
func Rules() []string {
	names := make([]string, 0, ruleCount)
	for r := Rule(0); r < ruleCount; r++ {
		names = append(names, ruleNames[r])
	}
	sort.Strings(names)
	return names
}

// call enters rule through the recursion guard.
func (p *parser) call(rule Rule, level int) bool {
	if !p.guard.enter(rule, p.b.Pos(), level) {
		p.debugf("recursion guard refused %s at token %d", rule, p.b.Pos())
		return false
	}
	ok := p.dispatch(rule, level+1)
	p.guard.leave()
	return ok
}

func (p *parser) dispatch(rule Rule, level int) bool {
	switch rule {
	case RuleSourceFile:
		return p.sourceFile(level)
	case RulePackageClause:
		return p.packageClause(level)
	case RuleImportDecl:
		return p.importDecl(level)
	case RuleImportSpec:
		return p.importSpec(level)
	case RuleTopLevelDecl:
		return p.topLevelDecl(level)
	case RuleDeclarationStatement:
		return p.declarationStatement(level)
	case RuleConstDecl:
		return p.constDecl(level)
	case RuleConstSpec:
		return p.constSpec(level)
	case RuleVarDecl:
		return p.varDecl(level)
	case RuleVarSpec:
		return p.varSpec(level)
	case RuleTypeDecl:
		return p.typeDecl(level)
	case RuleTypeSpec:
		return p.typeSpec(level)
	case RuleFunctionDecl:
		return p.functionDecl(level)
	case RuleMethodDecl:
		return p.methodDecl(level)
	case RuleReceiver:
		return p.receiver(level)
	case RuleSignature:
		return p.signature(level)
	case RuleResult:
		return p.result(level)
	case RuleParameters:
		return p.parameters(level)
	case RuleParameterList:
		return p.parameterList(level)
	case RuleParameterDecl:
		return p.parameterDecl(level)
	case RuleIdentifierList:
		return p.identifierList(level)

	case RuleBlock:
		return p.block(level)
	case RuleStatement:
		return p.statement(level)
	case RuleSimpleStatement:
		return p.simpleStatement(level)
	case RuleAssignmentStatement:
		return p.assignmentStatement(level)
	case RuleSendStatement:
		return p.sendStatement(level)
	case RuleShortVarDecl:
		return p.shortVarDecl(level)
	case RuleLabeledStatement:
		return p.labeledStatement(level)
	case RuleGoStatement:
		return p.keywordExprStatement(level, KindGoStatement)
	case RuleReturnStatement:
		return p.returnStatement(level)
	case RuleBreakStatement:
		return p.branchStatement(level, KindBreakStatement)
	case RuleContinueStatement:
		return p.branchStatement(level, KindContinueStatement)
	case RuleGotoStatement:
		return p.branchStatement(level, KindGotoStatement)
	case RuleFallthroughStatement:
		return p.branchStatement(level, KindFallthroughStatement)
	case RuleIfStatement:
		return p.ifStatement(level)
	case RuleSwitchStatement:
		return p.switchStatement(level)
	case RuleExprSwitchStatement:
		return p.exprSwitchStatement(level)
	case RuleExprCaseClause:
		return p.exprCaseClause(level)
	case RuleTypeSwitchStatement:
		return p.typeSwitchStatement(level)
	case RuleTypeSwitchGuard:
		return p.typeSwitchGuard(level)
	case RuleTypeCaseClause:
		return p.typeCaseClause(level)
	case RuleSelectStatement:
		return p.selectStatement(level)
	case RuleCommClause:
		return p.commClause(level)
	case RuleCommCase:
		return p.commCase(level)
	case RuleRecvStatement:
		return p.recvStatement(level)
	case RuleForStatement:
		return p.forStatement(level)
	case RuleForClause:
		return p.forClause(level)
	case RuleRangeClause:
		return p.rangeClause(level)
	case RuleDeferStatement:
		return p.keywordExprStatement(level, KindDeferStatement)

	case RuleType:
		return p.typ(level)
	case RuleTypeName:
		return p.typeName(level)
	case RuleTypeLit:
		return p.typeLit(level)
	case RuleArrayOrSliceType:
		return p.arrayOrSliceType(level)
	case RuleStructType:
		return p.structType(level)
	case RuleFieldDecl:
		return p.fieldDecl(level)
	case RuleAnonymousField:
		return p.anonymousField(level)
	case RuleTag:
		return p.tag(level)
	case RulePointerType:
		return p.pointerType(level)
	case RuleFunctionType:
		return p.functionType(level)
	case RuleInterfaceType:
		return p.interfaceType(level)
	case RuleMethodSpec:
		return p.methodSpec(level)
	case RuleMapType:
		return p.mapType(level)
	case RuleChannelType:
		return p.channelType(level)
	case RuleTypeList:
		return p.typeList(level)

	case RuleExpression:
		return p.expression(level, lowestPriority)
	case RuleExpressionList:
		return p.expressionList(level)
	case RulePrimaryExpr:
		return p.expression(level, unaryPriority)
	case RuleUnaryExpr:
		return p.unaryExpr(level)
	case RuleBuiltinCallExpr:
		return p.builtinCallExpr(level)
	case RuleBuiltinArgs:
		return p.builtinArgs(level, false)
	case RuleMethodExpr:
		return p.methodExpr(level)
	case RuleReceiverType:
		return p.receiverType(level)
	case RuleConversionExpr:
		return p.conversionExpr(level)
	case RuleParenthesizedExpr:
		return p.parenthesizedExpr(level)
	case RuleOperandName:
		return p.operandName(level)
	case RuleLiteral:
		return p.literal(level)
	case RuleBasicLit:
		return p.basicLit(level)
	case RuleFunctionLit:
		return p.functionLit(level)
	case RuleCompositeLit:
		return p.compositeLit(level)
	case RuleLiteralType:
		return p.literalType(level)
	case RuleLiteralValue:
		return p.literalValue(level)
	case RuleElementList:
		return p.elementList(level)
	case RuleElement:
		return p.element(level)
	case RuleKey:
		return p.key(level)
	case RuleValue:
		return p.value(level)
	case RuleArgumentList:
		return p.argumentList(level)
	}
	return false
}
