package token

import "strconv"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.File != "" {
		return p.File + ":" + s
	}
	return s
}

// IsValid reports whether the position carries line information.
func (p Position) IsValid() bool {
	return p.Line > 0
}

type Span struct {
	Start Position
	End   Position
}

type Kind int

const (
	EOF Kind = iota
	Illegal
	Comment

	// Literals
	Ident
	Int
	Float
	Imag
	Rune
	String

	// Keywords
	Break
	Case
	Chan
	Const
	Continue
	Default
	Defer
	Else
	Fallthrough
	For
	Func
	Go
	Goto
	If
	Import
	Interface
	Map
	Package
	Range
	Return
	Select
	Struct
	Switch
	Type
	Var

	// Operators and punctuation
	Add    // +
	Sub    // -
	Mul    // *
	Quo    // /
	Rem    // %
	And    // &
	Or     // |
	Xor    // ^
	Shl    // <<
	Shr    // >>
	AndNot // &^

	AddAssign    // +=
	SubAssign    // -=
	MulAssign    // *=
	QuoAssign    // /=
	RemAssign    // %=
	AndAssign    // &=
	OrAssign     // |=
	XorAssign    // ^=
	ShlAssign    // <<=
	ShrAssign    // >>=
	AndNotAssign // &^=

	LAnd  // &&
	LOr   // ||
	Arrow // <-
	Inc   // ++
	Dec   // --

	Eql    // ==
	Lss    // <
	Gtr    // >
	Assign // =
	Not    // !
	Neq    // !=
	Leq    // <=
	Geq    // >=
	Define // :=

	Ellipsis  // ...
	LParen    // (
	LBrack    // [
	LBrace    // {
	Comma     // ,
	Period    // .
	RParen    // )
	RBrack    // ]
	RBrace    // }
	Semicolon // ;
	Colon     // :

	// SyntheticSemicolon is the statement separator inserted by the lexer
	// at the end of a line. It is consumed exactly like Semicolon.
	SyntheticSemicolon
)

const (
	keywordBeg  = Break
	keywordEnd  = Var
	operatorBeg = Add
	operatorEnd = Colon
)

var kindNames = map[Kind]string{
	EOF:     "EOF",
	Illegal: "Illegal",
	Comment: "Comment",

	Ident:  "identifier",
	Int:    "int",
	Float:  "float",
	Imag:   "imaginary",
	Rune:   "rune",
	String: "string",

	Break:       "break",
	Case:        "case",
	Chan:        "chan",
	Const:       "const",
	Continue:    "continue",
	Default:     "default",
	Defer:       "defer",
	Else:        "else",
	Fallthrough: "fallthrough",
	For:         "for",
	Func:        "func",
	Go:          "go",
	Goto:        "goto",
	If:          "if",
	Import:      "import",
	Interface:   "interface",
	Map:         "map",
	Package:     "package",
	Range:       "range",
	Return:      "return",
	Select:      "select",
	Struct:      "struct",
	Switch:      "switch",
	Type:        "type",
	Var:         "var",

	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Quo:    "/",
	Rem:    "%",
	And:    "&",
	Or:     "|",
	Xor:    "^",
	Shl:    "<<",
	Shr:    ">>",
	AndNot: "&^",

	AddAssign:    "+=",
	SubAssign:    "-=",
	MulAssign:    "*=",
	QuoAssign:    "/=",
	RemAssign:    "%=",
	AndAssign:    "&=",
	OrAssign:     "|=",
	XorAssign:    "^=",
	ShlAssign:    "<<=",
	ShrAssign:    ">>=",
	AndNotAssign: "&^=",

	LAnd:  "&&",
	LOr:   "||",
	Arrow: "<-",
	Inc:   "++",
	Dec:   "--",

	Eql:    "==",
	Lss:    "<",
	Gtr:    ">",
	Assign: "=",
	Not:    "!",
	Neq:    "!=",
	Leq:    "<=",
	Geq:    ">=",
	Define: ":=",

	Ellipsis:  "...",
	LParen:    "(",
	LBrack:    "[",
	LBrace:    "{",
	Comma:     ",",
	Period:    ".",
	RParen:    ")",
	RBrack:    "]",
	RBrace:    "}",
	Semicolon: ";",
	Colon:     ":",

	SyntheticSemicolon: "<NL>",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsKeyword() bool {
	return k >= keywordBeg && k <= keywordEnd
}

func (k Kind) IsLiteral() bool {
	return k >= Ident && k <= String
}

func (k Kind) IsOperator() bool {
	return k >= operatorBeg && k <= operatorEnd
}

// IsSeparator reports whether k terminates a statement.
func (k Kind) IsSeparator() bool {
	return k == Semicolon || k == SyntheticSemicolon
}

type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

func (t Token) Pos() Position {
	return t.Span.Start
}

// Text returns the source text of the token. Fixed tokens that were built
// without a literal fall back to their spelling.
func (t Token) Text() string {
	if t.Literal != "" || t.Kind == SyntheticSemicolon || t.Kind == EOF {
		return t.Literal
	}
	return t.Kind.String()
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, keywordEnd-keywordBeg+1)
	for k := keywordBeg; k <= keywordEnd; k++ {
		keywords[kindNames[k]] = k
	}
}

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
