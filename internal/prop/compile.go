package prop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports unmatched parentheses, an operator with missing
// operands, or an empty/operator-only proposition. Compilation fails
// fast with no partial program.
var ErrMalformed = errors.New("malformed expression")

// Program is a compiled proposition: the postfix token sequence plus
// the variable mappings for one compilation. Programs are immutable
// once returned and safe to share across goroutines.
type Program struct {
	Tokens []Token

	// Vars holds the variable symbols in first-occurrence order;
	// Vars[i] is the symbol for identifier i+1.
	Vars []rune

	ids  map[rune]VarID
	syms map[VarID]rune
}

// NumVars returns the number of distinct variables.
func (p *Program) NumVars() int { return len(p.Vars) }

// ID returns the identifier assigned to a variable symbol.
func (p *Program) ID(sym rune) (VarID, bool) {
	id, ok := p.ids[sym]
	return id, ok
}

// Symbol returns the variable symbol for an identifier.
func (p *Program) Symbol(id VarID) (rune, bool) {
	sym, ok := p.syms[id]
	return sym, ok
}

// String renders the postfix program with space-separated tokens,
// variables by symbol.
func (p *Program) String() string {
	var sb strings.Builder
	for i, t := range p.Tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if t.IsOp() {
			sb.WriteByte(byte(t.Op()))
		} else {
			sb.WriteRune(p.syms[t.Var()])
		}
	}
	return sb.String()
}

// Option configures compilation.
type Option func(*compiler)

// Strict rejects whitespace and digits as variable symbols. The
// default keeps the permissive policy where any character that is not
// an operator or parenthesis names a variable.
func Strict() Option {
	return func(c *compiler) { c.strict = true }
}

type compiler struct {
	strict bool

	// pending holds one not-yet-emitted operator stack per open
	// parenthesis nesting level; pending[level] is the active one.
	pending [][]Op

	prog Program
}

// Compile translates a proposition into a postfix program with a
// shunting-yard scan using per-parenthesis-level operator stacks.
// The whole input is trimmed of surrounding whitespace first; nothing
// inside is skipped.
func Compile(proposition string, opts ...Option) (*Program, error) {
	c := &compiler{
		pending: [][]Op{nil},
		prog: Program{
			ids:  make(map[rune]VarID),
			syms: make(map[VarID]rune),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	src := strings.TrimSpace(proposition)
	level := 0
	for i, ch := range src {
		switch {
		case ch == '(':
			level++
			if level == len(c.pending) {
				c.pending = append(c.pending, nil)
			}
		case ch == ')':
			if level == 0 {
				return nil, fmt.Errorf("%w: unmatched ) at position %d", ErrMalformed, i)
			}
			c.drain(level)
			level--
		case isOp(ch):
			c.pushOp(level, Op(ch))
		default:
			if c.strict && (ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || (ch >= '0' && ch <= '9')) {
				return nil, fmt.Errorf("%w: invalid variable symbol %q at position %d", ErrMalformed, ch, i)
			}
			c.emitVar(ch)
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("%w: %d unclosed (", ErrMalformed, level)
	}
	c.drain(0)

	if err := checkWellFormed(c.prog.Tokens); err != nil {
		return nil, err
	}
	return &c.prog, nil
}

// pushOp pops-and-emits while the stack top binds strictly tighter
// than op, then pushes op. Equal precedence never pops: consecutive
// same-precedence operators accumulate and drain in reverse.
func (c *compiler) pushOp(level int, op Op) {
	stack := c.pending[level]
	for len(stack) > 0 && stack[len(stack)-1].Precedence() > op.Precedence() {
		c.prog.Tokens = append(c.prog.Tokens, opToken(stack[len(stack)-1]))
		stack = stack[:len(stack)-1]
	}
	c.pending[level] = append(stack, op)
}

// drain emits every pending operator at the given level, LIFO.
func (c *compiler) drain(level int) {
	stack := c.pending[level]
	for i := len(stack) - 1; i >= 0; i-- {
		c.prog.Tokens = append(c.prog.Tokens, opToken(stack[i]))
	}
	c.pending[level] = stack[:0]
}

func (c *compiler) emitVar(sym rune) {
	id, ok := c.prog.ids[sym]
	if !ok {
		id = VarID(len(c.prog.Vars) + 1)
		c.prog.ids[sym] = id
		c.prog.syms[id] = sym
		c.prog.Vars = append(c.prog.Vars, sym)
	}
	c.prog.Tokens = append(c.prog.Tokens, varToken(id))
}

// checkWellFormed simulates stack depth over the program: every
// operator must find its operands and exactly one value must remain.
func checkWellFormed(tokens []Token) error {
	depth := 0
	for _, t := range tokens {
		if t.IsOp() {
			need := 2
			if t.Op().Unary() {
				need = 1
			}
			if depth < need {
				return fmt.Errorf("%w: operator %s is missing operands", ErrMalformed, t.Op())
			}
			depth -= need - 1
		} else {
			depth++
		}
	}
	if depth != 1 {
		return fmt.Errorf("%w: expected a single result, have %d", ErrMalformed, depth)
	}
	return nil
}
