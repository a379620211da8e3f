package parser

import (
	"strings"

	"github.com/dhamidi/goparse/golang/token"
)

type NodeKind int

// Transparent is passed to Close or Done to merge a marker's children into
// its parent without emitting a node.
const Transparent NodeKind = -1

const (
	KindError NodeKind = iota
	KindToken
	KindFragment

	// Source file and declarations
	KindSourceFile
	KindPackageClause
	KindImportDecl
	KindImportSpec
	KindConstDecl
	KindConstSpec
	KindVarDecl
	KindVarSpec
	KindTypeDecl
	KindTypeSpec
	KindFunctionDecl
	KindMethodDecl
	KindReceiver
	KindSignature
	KindParameters
	KindParameterDecl
	KindResult
	KindBlock

	// Types
	KindType
	KindTypeName
	KindArrayOrSliceType
	KindStructType
	KindFieldDecl
	KindAnonymousField
	KindTag
	KindPointerType
	KindFunctionType
	KindInterfaceType
	KindMethodSpec
	KindMapType
	KindChannelType
	KindTypeList

	// Statements
	KindLabeledStatement
	KindSimpleStatement
	KindAssignmentStatement
	KindSendStatement
	KindShortVarDecl
	KindGoStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindGotoStatement
	KindFallthroughStatement
	KindIfStatement
	KindExprSwitchStatement
	KindExprCaseClause
	KindTypeSwitchStatement
	KindTypeSwitchGuard
	KindTypeCaseClause
	KindSelectStatement
	KindCommClause
	KindCommCase
	KindRecvStatement
	KindForStatement
	KindForClause
	KindRangeClause
	KindDeferStatement

	// Expressions
	KindOrExpr
	KindAndExpr
	KindConditionalExpr
	KindAddExpr
	KindMulExpr
	KindUnaryExpr
	KindBuiltinCallExpr
	KindBuiltinArgs
	KindMethodExpr
	KindReceiverType
	KindConversionExpr
	KindSelectorExpr
	KindIndexExpr
	KindSliceExpr
	KindTypeAssertionExpr
	KindCallExpr
	KindArgumentList
	KindParenthesizedExpr
	KindLiteral
	KindOperandName
	KindFunctionLit
	KindCompositeLit
	KindLiteralValue
	KindElement
	KindKey
	KindValue
)

var nodeKindNames = map[NodeKind]string{
	KindError:    "Error",
	KindToken:    "Token",
	KindFragment: "Fragment",

	KindSourceFile:    "SourceFile",
	KindPackageClause: "PackageClause",
	KindImportDecl:    "ImportDecl",
	KindImportSpec:    "ImportSpec",
	KindConstDecl:     "ConstDecl",
	KindConstSpec:     "ConstSpec",
	KindVarDecl:       "VarDecl",
	KindVarSpec:       "VarSpec",
	KindTypeDecl:      "TypeDecl",
	KindTypeSpec:      "TypeSpec",
	KindFunctionDecl:  "FunctionDecl",
	KindMethodDecl:    "MethodDecl",
	KindReceiver:      "Receiver",
	KindSignature:     "Signature",
	KindParameters:    "Parameters",
	KindParameterDecl: "ParameterDecl",
	KindResult:        "Result",
	KindBlock:         "Block",

	KindType:             "Type",
	KindTypeName:         "TypeName",
	KindArrayOrSliceType: "ArrayOrSliceType",
	KindStructType:       "StructType",
	KindFieldDecl:        "FieldDecl",
	KindAnonymousField:   "AnonymousField",
	KindTag:              "Tag",
	KindPointerType:      "PointerType",
	KindFunctionType:     "FunctionType",
	KindInterfaceType:    "InterfaceType",
	KindMethodSpec:       "MethodSpec",
	KindMapType:          "MapType",
	KindChannelType:      "ChannelType",
	KindTypeList:         "TypeList",

	KindLabeledStatement:     "LabeledStatement",
	KindSimpleStatement:      "SimpleStatement",
	KindAssignmentStatement:  "AssignmentStatement",
	KindSendStatement:        "SendStatement",
	KindShortVarDecl:         "ShortVarDecl",
	KindGoStatement:          "GoStatement",
	KindReturnStatement:      "ReturnStatement",
	KindBreakStatement:       "BreakStatement",
	KindContinueStatement:    "ContinueStatement",
	KindGotoStatement:        "GotoStatement",
	KindFallthroughStatement: "FallthroughStatement",
	KindIfStatement:          "IfStatement",
	KindExprSwitchStatement:  "ExprSwitchStatement",
	KindExprCaseClause:       "ExprCaseClause",
	KindTypeSwitchStatement:  "TypeSwitchStatement",
	KindTypeSwitchGuard:      "TypeSwitchGuard",
	KindTypeCaseClause:       "TypeCaseClause",
	KindSelectStatement:      "SelectStatement",
	KindCommClause:           "CommClause",
	KindCommCase:             "CommCase",
	KindRecvStatement:        "RecvStatement",
	KindForStatement:         "ForStatement",
	KindForClause:            "ForClause",
	KindRangeClause:          "RangeClause",
	KindDeferStatement:       "DeferStatement",

	KindOrExpr:            "OrExpr",
	KindAndExpr:           "AndExpr",
	KindConditionalExpr:   "ConditionalExpr",
	KindAddExpr:           "AddExpr",
	KindMulExpr:           "MulExpr",
	KindUnaryExpr:         "UnaryExpr",
	KindBuiltinCallExpr:   "BuiltinCallExpr",
	KindBuiltinArgs:       "BuiltinArgs",
	KindMethodExpr:        "MethodExpr",
	KindReceiverType:      "ReceiverType",
	KindConversionExpr:    "ConversionExpr",
	KindSelectorExpr:      "SelectorExpr",
	KindIndexExpr:         "IndexExpr",
	KindSliceExpr:         "SliceExpr",
	KindTypeAssertionExpr: "TypeAssertionExpr",
	KindCallExpr:          "CallExpr",
	KindArgumentList:      "ArgumentList",
	KindParenthesizedExpr: "ParenthesizedExpr",
	KindLiteral:           "Literal",
	KindOperandName:       "OperandName",
	KindFunctionLit:       "FunctionLit",
	KindCompositeLit:      "CompositeLit",
	KindLiteralValue:      "LiteralValue",
	KindElement:           "Element",
	KindKey:               "Key",
	KindValue:             "Value",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	if k == Transparent {
		return "Transparent"
	}
	return "Unknown"
}

// Error is attached to error nodes. Expected and Got are set when the error
// was caused by a missing token.
type Error struct {
	Message  string
	Expected []token.Kind
	Got      *token.Token
}

type Node struct {
	Kind     NodeKind
	Span     token.Span
	Children []*Node
	Token    *token.Token
	Error    *Error
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

func (n *Node) IsToken() bool {
	return n.Kind == KindToken
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Nodes returns the children that are not token leaves.
func (n *Node) Nodes() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind != KindToken {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Tokens returns the token leaves under n in order.
func (n *Node) Tokens() []token.Token {
	var tokens []token.Token
	n.Walk(func(c *Node) bool {
		if c.Token != nil {
			tokens = append(tokens, *c.Token)
		}
		return true
	})
	return tokens
}

// Text concatenates the literals of the token leaves under n, separated by
// single spaces. Synthetic separators are skipped.
func (n *Node) Text() string {
	var parts []string
	for _, tok := range n.Tokens() {
		if tok.Kind == token.SyntheticSemicolon {
			continue
		}
		parts = append(parts, tok.Text())
	}
	return strings.Join(parts, " ")
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Token != nil {
		sb.WriteString(n.Token.Kind.String())
	} else {
		sb.WriteString(n.Kind.String())
	}
	if showPositions {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil && n.Token.Literal != "" && n.Token.Kind != token.SyntheticSemicolon {
		sb.WriteString(" " + n.Token.Literal)
	}
	if n.Error != nil {
		sb.WriteString(" ERROR: " + n.Error.Message)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}
