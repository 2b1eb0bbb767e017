// Package truth replays a compiled postfix program to produce a full
// truth table: one symbolic pass to synthesize sub-expression column
// labels, then one numeric pass per variable assignment.
package truth

import (
	"errors"
	"fmt"

	"github.com/proptab/proptab/internal/prop"
)

// ErrTooManyVariables guards the 2^N enumeration. The limit is the
// only practically dangerous scaling dimension here, so Build fails
// fast instead of grinding.
var ErrTooManyVariables = errors.New("too many variables")

// DefaultMaxVars bounds the enumeration unless overridden.
const DefaultMaxVars = 16

// Row is one variable assignment together with the computed value of
// every sub-expression, in header order. The last value is the
// proposition's truth value for this assignment.
type Row struct {
	Assignment []bool
	Values     []bool
}

// Result returns the final column, the whole proposition's value.
func (r Row) Result() bool { return r.Values[len(r.Values)-1] }

// Table is the complete truth table for one compiled proposition.
type Table struct {
	// Vars holds the variable display symbols in identifier order.
	Vars []string

	// Headers holds one composite label per operator step of the
	// program, in emission order; the last is the whole proposition.
	Headers []string

	// Rows holds all 2^N assignments, first row all true, last row
	// all false.
	Rows []Row
}

// Option configures table construction.
type Option func(*builder)

// MaxVars overrides the enumeration guard.
func MaxVars(n int) Option {
	return func(b *builder) { b.maxVars = n }
}

type builder struct {
	maxVars int
}

// Build evaluates the program over every assignment of its variables.
func Build(p *prop.Program, opts ...Option) (*Table, error) {
	b := builder{maxVars: DefaultMaxVars}
	for _, opt := range opts {
		opt(&b)
	}
	n := p.NumVars()
	if n > b.maxVars {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyVariables, n, b.maxVars)
	}

	t := &Table{
		Vars:    make([]string, n),
		Headers: headers(p),
	}
	for i, sym := range p.Vars {
		t.Vars[i] = string(sym)
	}
	if len(t.Headers) == 0 {
		// Bare variable: no operator steps, so the lone variable is
		// its own final column.
		t.Headers = []string{t.Vars[0]}
	}

	rows := 1 << n
	t.Rows = make([]Row, 0, rows)
	for r := 0; r < rows; r++ {
		assignment := assign(r, n)
		t.Rows = append(t.Rows, Row{
			Assignment: assignment,
			Values:     eval(p, assignment),
		})
	}
	return t, nil
}

// headers replays the program symbolically. Variables push their
// display symbol; NOT wraps its operand with the negation glyph;
// binary operators pop right then left and join them, parenthesized.
// Every composite produced becomes a column header, in the same order
// the numeric pass records values.
func headers(p *prop.Program) []string {
	var out []string
	var stack []string
	for _, tok := range p.Tokens {
		if !tok.IsOp() {
			sym, _ := p.Symbol(tok.Var())
			stack = append(stack, string(sym))
			continue
		}
		op := tok.Op()
		var label string
		if op.Unary() {
			label = op.Glyph() + stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else {
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			label = "(" + left + op.Glyph() + right + ")"
		}
		out = append(out, label)
		stack = append(stack, label)
	}
	return out
}

// assign produces run r's assignment: variable i receives the
// complement of bit n-i-1 of r. Run 0 is all true; runs descend in
// binary order of the displayed row.
func assign(r, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = (r>>(n-i-1))&1 == 0
	}
	return out
}

// eval runs the numeric replay for one assignment, recording every
// operator step's value in header order.
func eval(p *prop.Program, assignment []bool) []bool {
	var out []bool
	var stack []bool
	for _, tok := range p.Tokens {
		if !tok.IsOp() {
			stack = append(stack, assignment[tok.Var()-1])
			continue
		}
		op := tok.Op()
		var v bool
		if op.Unary() {
			v = !stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else {
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v = apply(op, left, right)
		}
		out = append(out, v)
		stack = append(stack, v)
	}
	if len(out) == 0 {
		out = append(out, stack[0])
	}
	return out
}

func apply(op prop.Op, left, right bool) bool {
	switch op {
	case prop.OpAnd:
		return left && right
	case prop.OpOr:
		return left || right
	case prop.OpXor:
		return left != right
	case prop.OpImplies:
		return !left || right
	case prop.OpIff:
		return left == right
	}
	panic(fmt.Sprintf("unknown operator %s", op))
}

// Kind classifies a proposition by its final column.
type Kind int

const (
	Contingent Kind = iota
	Tautology
	Contradiction
)

func (k Kind) String() string {
	switch k {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// Classify reports whether the proposition is a tautology,
// a contradiction, or contingent.
func (t *Table) Classify() Kind {
	trues := 0
	for _, row := range t.Rows {
		if row.Result() {
			trues++
		}
	}
	switch trues {
	case len(t.Rows):
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingent
	}
}
