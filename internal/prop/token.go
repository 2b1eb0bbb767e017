package prop

// Op is one of the six fixed connectives.
type Op byte

const (
	OpNot     Op = '~'
	OpAnd     Op = '&'
	OpOr      Op = '|'
	OpXor     Op = '^'
	OpImplies Op = '>'
	OpIff     Op = '<'
)

// precedence of each operator; higher binds tighter. OR and XOR share
// a level: mixing them unparenthesized in one scope drains left to
// right, same as any other equal-precedence pair.
var precedence = map[Op]int{
	OpNot:     5,
	OpAnd:     4,
	OpOr:      3,
	OpXor:     3,
	OpImplies: 2,
	OpIff:     1,
}

// glyphs maps each operator to its display connective. Input stays
// ASCII; tables render the Unicode form.
var glyphs = map[Op]string{
	OpNot:     "¬", // ¬
	OpAnd:     "∧", // ∧
	OpOr:      "∨", // ∨
	OpXor:     "⊕", // ⊕
	OpImplies: "→", // →
	OpIff:     "↔", // ↔
}

func isOp(r rune) bool {
	if r < 0 || r > 127 {
		return false
	}
	_, ok := precedence[Op(r)]
	return ok
}

// Precedence returns the operator's binding strength.
func (o Op) Precedence() int { return precedence[o] }

// Unary reports whether the operator takes a single operand.
func (o Op) Unary() bool { return o == OpNot }

// Glyph returns the display connective for the operator.
func (o Op) Glyph() string { return glyphs[o] }

func (o Op) String() string { return string(byte(o)) }

// VarID is a 1-based variable identifier, assigned in first-occurrence
// order during one compilation.
type VarID int

type tokenKind int

const (
	tokVar tokenKind = iota
	tokOp
)

// Token is one element of a postfix program: either a variable
// reference or an operator.
type Token struct {
	kind tokenKind
	op   Op
	v    VarID
}

func varToken(id VarID) Token { return Token{kind: tokVar, v: id} }
func opToken(op Op) Token     { return Token{kind: tokOp, op: op} }

// IsOp reports whether the token is an operator.
func (t Token) IsOp() bool { return t.kind == tokOp }

// Op returns the operator for an operator token.
func (t Token) Op() Op { return t.op }

// Var returns the variable identifier for a variable token.
func (t Token) Var() VarID { return t.v }
