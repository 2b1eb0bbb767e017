package truth

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/proptab/proptab/internal/prop"
)

func mustCompile(t *testing.T, input string) *prop.Program {
	t.Helper()
	prog, err := prop.Compile(input)
	if err != nil {
		t.Fatalf("compile %q: %v", input, err)
	}
	return prog
}

func mustBuild(t *testing.T, input string, opts ...Option) *Table {
	t.Helper()
	table, err := Build(mustCompile(t, input), opts...)
	if err != nil {
		t.Fatalf("build %q: %v", input, err)
	}
	return table
}

func TestHeaders(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{input: "p", want: []string{"p"}},
		{input: "~p", want: []string{"¬p"}},
		{input: "p&q", want: []string{"(p∧q)"}},
		{input: "p|q", want: []string{"(p∨q)"}},
		{input: "p^q", want: []string{"(p⊕q)"}},
		{input: "p>q", want: []string{"(p→q)"}},
		{input: "p<q", want: []string{"(p↔q)"}},
		{
			input: "p&q|~r",
			want:  []string{"(p∧q)", "¬r", "((p∧q)∨¬r)"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			table := mustBuild(t, tc.input)
			if diff := cmp.Diff(tc.want, table.Headers); diff != "" {
				t.Errorf("headers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowEnumeration(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d vars", n), func(t *testing.T) {
			// a&b&c... over the first n letters.
			vars := "abcdef"[:n]
			table := mustBuild(t, strings.Join(strings.Split(vars, ""), "&"))

			if len(table.Rows) != 1<<n {
				t.Fatalf("row count: got %d, want %d", len(table.Rows), 1<<n)
			}

			seen := make(map[int]bool)
			for r, row := range table.Rows {
				// Row r's assignment is the bitwise complement of the
				// n-bit binary form of r, MSB first.
				key := 0
				for _, v := range row.Assignment {
					key <<= 1
					if v {
						key |= 1
					}
				}
				if want := (1<<n - 1) ^ r; key != want {
					t.Errorf("row %d: assignment %0*b, want %0*b", r, n, key, n, want)
				}
				if seen[key] {
					t.Errorf("row %d: assignment %0*b repeated", r, n, key)
				}
				seen[key] = true
			}

			for _, v := range table.Rows[0].Assignment {
				if !v {
					t.Error("first row should be all true")
				}
			}
			for _, v := range table.Rows[len(table.Rows)-1].Assignment {
				if v {
					t.Error("last row should be all false")
				}
			}
		})
	}
}

func TestOperatorTables(t *testing.T) {
	// One case per connective truth-table entry.
	cases := []struct {
		input string
		row   int // run index
		want  bool
	}{
		{input: "~p", row: 0, want: false},  // NOT(T)
		{input: "~p", row: 1, want: true},   // NOT(F)
		{input: "p&q", row: 1, want: false}, // AND(T,F)
		{input: "p|q", row: 3, want: false}, // OR(F,F)
		{input: "p|q", row: 2, want: true},  // OR(F,T)
		{input: "p^q", row: 0, want: false}, // XOR(T,T)
		{input: "p^q", row: 1, want: true},  // XOR(T,F)
		{input: "p>q", row: 1, want: false}, // IMPLIES(T,F)
		{input: "p>q", row: 2, want: true},  // IMPLIES(F,T)
		{input: "p>q", row: 3, want: true},  // IMPLIES(F,F)
		{input: "p<q", row: 0, want: true},  // IFF(T,T)
		{input: "p<q", row: 1, want: false}, // IFF(T,F)
		{input: "p<q", row: 3, want: true},  // IFF(F,F)
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s row %d", tc.input, tc.row), func(t *testing.T) {
			table := mustBuild(t, tc.input)
			if got := table.Rows[tc.row].Result(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConjunctionScenario(t *testing.T) {
	table := mustBuild(t, "p&q")
	want := []bool{true, false, false, false}
	for r, row := range table.Rows {
		if row.Result() != want[r] {
			t.Errorf("row %d: got %v, want %v", r, row.Result(), want[r])
		}
	}
}

func TestWorkedExample(t *testing.T) {
	table := mustBuild(t, "p&q|~(r>s)<t|(~q^~s)")

	if len(table.Rows) != 32 {
		t.Fatalf("row count: got %d, want 32", len(table.Rows))
	}
	// p=T q=F r=T s=F t=T is run 0b01010 = 10 (complemented bits,
	// MSB = p).
	row := table.Rows[10]
	wantAssign := []bool{true, false, true, false, true}
	if diff := cmp.Diff(wantAssign, row.Assignment); diff != "" {
		t.Fatalf("assignment mismatch (-want +got):\n%s", diff)
	}
	if !row.Result() {
		t.Error("proposition should hold for this assignment")
	}
}

func TestIntermediateColumns(t *testing.T) {
	// Every operator step is a column; values line up with headers.
	table := mustBuild(t, "p&q|~r")
	// Run 4 = 0b100 complemented -> p=F q=T r=T.
	row := table.Rows[4]
	want := []bool{false, false, false} // (p∧q), ¬r, ((p∧q)∨¬r)
	if diff := cmp.Diff(want, row.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if len(row.Values) != len(table.Headers) {
		t.Errorf("value count %d != header count %d", len(row.Values), len(table.Headers))
	}
}

func TestMaxVarsGuard(t *testing.T) {
	prog := mustCompile(t, "a&b&c")
	if _, err := Build(prog, MaxVars(2)); !errors.Is(err, ErrTooManyVariables) {
		t.Fatalf("got %v, want ErrTooManyVariables", err)
	}
	if _, err := Build(prog, MaxVars(3)); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{input: "p|~p", want: Tautology},
		{input: "p&~p", want: Contradiction},
		{input: "p&q", want: Contingent},
		{input: "p>p", want: Tautology},
		{input: "p<~p", want: Contradiction},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := mustBuild(t, tc.input).Classify(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
