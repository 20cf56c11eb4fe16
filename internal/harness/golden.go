package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/pythag/ptuples/internal/tuple"
)

// RunWithGolden executes a scenario and compares its canonical text output
// against testdata/{scenario.Name}.golden.
//
// The rendered form is exactly what the generator programs print: one
// "(a_1,...,a_{n-1},b)" line per tuple, canonical order, trailing newline
// per line. Engines are deterministic, so the comparison is byte-exact.
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	table, err := s.Run()
	if err != nil {
		t.Fatalf("scenario %s: %v", s.Name, err)
	}

	g := goldie.New(t)
	g.Assert(t, s.Name, Render(table))
}

// Render produces the canonical text form of a table.
func Render(t *tuple.Table) []byte {
	var buf bytes.Buffer
	for i := 0; i < t.Len(); i++ {
		buf.WriteString(t.At(i).String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
