// Package parser provides an error-tolerant recursive-descent parser for Go
// source code that produces a concrete syntax tree (CST).
//
// # Overview
//
// The parser consumes the token slice produced by the lexer and returns a
// tree in which every token appears exactly once, in source order. Syntax
// errors never abort a parse: they are recorded as error nodes in the tree
// and returned as an ErrorList.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Lexer     │────▶│   Rules     │────▶│   Builder   │
//	│  (tokens)   │     │  (grammar)  │     │  (events)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │   Guard     │     │  Node tree  │
//	                    │ (rule,pos)  │     │  + errors   │
//	                    └─────────────┘     └─────────────┘
//
// Rules never build nodes directly. They open markers on the Builder,
// consume tokens and close each marker as a node, as an error, or drop it
// to backtrack. A closed node can later be wrapped by a new parent with
// Precede, which is how binary and postfix expressions grow to the left
// without reparsing their left operand.
//
// # Pins
//
// A rule is committed ("pinned") once it has seen its distinguishing
// token, for example 'if' or the '(' of an argument list. A pinned rule
// that fails later keeps its partial node, reports what was missing and
// still succeeds, so the enclosing rule does not backtrack over it.
//
// # Expressions
//
// Binary operators are parsed by precedence climbing:
//
//	priority  operators                  node
//	0         ||                         OrExpr
//	1         &&                         AndExpr
//	2         == != < <= > >=            ConditionalExpr
//	3         + - | ^                    AddExpr
//	4         * / % << >> & &^           MulExpr
//	5         unary + - ! ^ * & <-       UnaryExpr
//	8         . [ ] ( ) .(T)             Selector, Index, Slice, Call, ...
//
// # Recovery
//
// A statement that cannot be parsed is wrapped, together with the tokens
// up to the next separator or closing brace, in an error node, and the
// statement list continues. Top-level garbage is skipped up to the next
// line that starts a declaration.
//
// # Recursion guard
//
// Every rule is entered through a guard that refuses to enter a rule at a
// token position where the same rule is already active. Together with the
// progress checks in the list loops this bounds the work of a parse.
package parser
