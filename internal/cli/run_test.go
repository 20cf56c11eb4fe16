package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythag/ptuples/internal/store"
)

// execute runs a generator command with the given CLI arguments and
// returns its exit code plus captured stdout/stderr.
func execute(cmd *cobra.Command, args ...string) (int, string, string) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	code := Run(cmd)
	return code, out.String(), errOut.String()
}

func TestPTuples_Triples_1_25(t *testing.T) {
	code, out, _ := execute(NewPTuplesCommand(), "3", "1", "25")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "(3,4,5)\n"+
		"(6,8,10)\n"+
		"(5,12,13)\n"+
		"(9,12,15)\n"+
		"(8,15,17)\n"+
		"(12,16,20)\n"+
		"(7,24,25)\n"+
		"(15,20,25)\n", out)
}

func TestPTuples_PrimitiveFlag(t *testing.T) {
	code, out, _ := execute(NewPTuplesCommand(), "-p", "3", "1", "25")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "(3,4,5)\n(5,12,13)\n(8,15,17)\n(7,24,25)\n", out)
}

func TestQKPTuples_Quadruples_1_25(t *testing.T) {
	code, out, _ := execute(NewQKPTuplesCommand(), "4", "1", "25")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "(3,4,12,13)\n(8,9,12,17)\n(9,12,20,25)\n(12,15,16,25)\n", out)
}

func TestGenerators_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tuple size too small", []string{"2", "1", "10"}, "tuple size must be >= 3"},
		{"tuple size not a number", []string{"four", "1", "10"}, "tuple size must be >= 3"},
		{"b_min below one", []string{"3", "0", "10"}, "b_min must be >= 1"},
		{"inverted range", []string{"3", "10", "5"}, "b_min must be <= b_max"},
		{"b_min not a number", []string{"3", "ten", "20"}, "b_min must be a decimal integer"},
		{"b_max not a number", []string{"3", "10", "x"}, "b_max must be a decimal integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(NewPTuplesCommand(), tt.args...)
			assert.Equal(t, ExitFailure, code)
			// Reported on stdout, nothing else printed, no results.
			assert.Equal(t, tt.want+"\n", out)
			assert.Empty(t, errOut)
		})
	}
}

func TestPTuples_CeilingRejected(t *testing.T) {
	code, out, _ := execute(NewPTuplesCommand(), "3", "1", "4294967295")
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "b_max must be <= 4294967294\n", out)
}

func TestQKPTuples_NoCeiling(t *testing.T) {
	// The growth program has no b_max ceiling. 4294967295 is above the
	// exhaustive limit; it is 3 mod 4, so no primitive triple has it as
	// hypotenuse and the run is quick and empty.
	code, out, _ := execute(NewQKPTuplesCommand(), "-p", "3", "4294967295", "4294967295")
	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, out)
}

func TestGenerators_WrongArgumentCount(t *testing.T) {
	code, out, errOut := execute(NewPTuplesCommand(), "3", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "accepts 3 arg(s)")
	assert.Contains(t, out, "Usage:")
	assert.Empty(t, errOut)
}

func TestGenerators_ArchiveRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	code, out, _ := execute(NewPTuplesCommand(), "--db", path, "3", "1", "25")
	require.Equal(t, ExitSuccess, code)
	require.NotEmpty(t, out)

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ids, err := st.ListRunIDs(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)

	run, tupleLines, err := st.ReadRun(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", run.Engine)
	assert.Equal(t, 3, run.TupleSize)
	assert.Equal(t, "1", run.BMin)
	assert.Equal(t, "25", run.BMax)
	assert.False(t, run.PrimitivesOnly)

	// The archive reproduces the printed output byte for byte.
	assert.Equal(t, out, strings.Join(tupleLines, "\n")+"\n")
}
