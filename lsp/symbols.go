package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/goparse/golang/parser"
	"github.com/dhamidi/goparse/golang/token"
)

// Symbols returns the outline of a source file: its functions, methods,
// types, constants and variables.
func Symbols(root *parser.Node) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if root == nil {
		return symbols
	}
	for _, decl := range root.Nodes() {
		switch decl.Kind {
		case parser.KindFunctionDecl:
			if name := firstIdent(decl); name != nil {
				symbols = append(symbols, symbol(decl, name, protocol.SymbolKindFunction, nil))
			}
		case parser.KindMethodDecl:
			if name := firstIdent(decl); name != nil {
				var detail *string
				if recv := decl.FirstChildOfKind(parser.KindReceiver); recv != nil {
					text := recv.Text()
					detail = &text
				}
				symbols = append(symbols, symbol(decl, name, protocol.SymbolKindMethod, detail))
			}
		case parser.KindTypeDecl:
			for _, spec := range decl.ChildrenOfKind(parser.KindTypeSpec) {
				if name := firstIdent(spec); name != nil {
					symbols = append(symbols, symbol(spec, name, typeSymbolKind(spec), nil))
				}
			}
		case parser.KindConstDecl:
			symbols = appendSpecs(symbols, decl.ChildrenOfKind(parser.KindConstSpec), protocol.SymbolKindConstant)
		case parser.KindVarDecl:
			symbols = appendSpecs(symbols, decl.ChildrenOfKind(parser.KindVarSpec), protocol.SymbolKindVariable)
		}
	}
	return symbols
}

func appendSpecs(symbols []protocol.DocumentSymbol, specs []*parser.Node, kind protocol.SymbolKind) []protocol.DocumentSymbol {
	for _, spec := range specs {
		for _, child := range spec.Children {
			if child.Token == nil {
				break
			}
			if child.Token.Kind == token.Ident {
				symbols = append(symbols, symbol(spec, child, kind, nil))
			} else if child.Token.Kind != token.Comma {
				break
			}
		}
	}
	return symbols
}

func symbol(n, name *parser.Node, kind protocol.SymbolKind, detail *string) protocol.DocumentSymbol {
	return protocol.DocumentSymbol{
		Name:           name.Token.Literal,
		Detail:         detail,
		Kind:           kind,
		Range:          toRange(n.Span),
		SelectionRange: toRange(name.Span),
	}
}

func firstIdent(n *parser.Node) *parser.Node {
	for _, child := range n.Children {
		if child.Token != nil && child.Token.Kind == token.Ident {
			return child
		}
	}
	return nil
}

func typeSymbolKind(spec *parser.Node) protocol.SymbolKind {
	for _, n := range spec.Nodes() {
		switch n.Kind {
		case parser.KindStructType:
			return protocol.SymbolKindStruct
		case parser.KindInterfaceType:
			return protocol.SymbolKindInterface
		}
	}
	return protocol.SymbolKindClass
}
