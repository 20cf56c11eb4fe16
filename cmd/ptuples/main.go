// Command ptuples generates Pythagorean tuples by exhaustive search.
//
// Usage: ptuples [-p] tuple_size b_min b_max
package main

import (
	"os"

	"github.com/pythag/ptuples/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewPTuplesCommand()))
}
