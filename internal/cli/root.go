package cli

import (
	"github.com/spf13/cobra"

	"github.com/pythag/ptuples/internal/engine"
	"github.com/pythag/ptuples/internal/tuple"
)

// GeneratorOptions holds the flags shared by both generator programs.
type GeneratorOptions struct {
	Primitive bool
	Verbose   bool
	Database  string
}

// searchFunc runs one engine over validated parameters.
type searchFunc func(engine.Params) (*tuple.Table, error)

// NewPTuplesCommand creates the exhaustive generator command.
func NewPTuplesCommand() *cobra.Command {
	return newGeneratorCommand("ptuples", "exhaustive",
		`Generate Pythagorean tuples by exhaustive search.

For a_1^2 + a_2^2 + ... = b^2, enumerates every solution with b in
[b_min, b_max]. tuple_size is the total number of terms and must be >= 3;
b_max must be <= 4294967294. Complete but slow; for tuple_size 3 the
qkptuples program is much faster.

Example:
  ptuples -p 4 100 500`,
		engine.Exhaustive)
}

// NewQKPTuplesCommand creates the approximate (substitution growth)
// generator command.
func NewQKPTuplesCommand() *cobra.Command {
	return newGeneratorCommand("qkptuples", "growth",
		`Quickly generate SOME Pythagorean tuples by substitution growth.

For a_1^2 + a_2^2 + ... = b^2, grows tuples from triples by splitting one
a-value into the two legs of a triple sharing it as hypotenuse. Much
faster than ptuples but incomplete: solutions with no split-chain
decomposition are never produced.

Example:
  qkptuples -p 4 100 500`,
		engine.Growth)
}

func newGeneratorCommand(name, engineName, long string, search searchFunc) *cobra.Command {
	opts := &GeneratorOptions{}

	cmd := &cobra.Command{
		Use:           name + " [-p] tuple_size b_min b_max",
		Short:         "For a_1^2 + a_2^2 + ... = b^2",
		Long:          long,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerator(cmd, opts, engineName, args, search)
		},
	}

	cmd.Flags().BoolVarP(&opts.Primitive, "primitive", "p", false, "primitive tuples only")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "verbose diagnostics on stderr")
	cmd.Flags().StringVar(&opts.Database, "db", "", "optional SQLite archive to record this run in")

	return cmd
}
