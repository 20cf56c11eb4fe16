// Command qkptuples quickly generates some Pythagorean tuples by
// substitution growth. Faster than ptuples but incomplete.
//
// Usage: qkptuples [-p] tuple_size b_min b_max
package main

import (
	"os"

	"github.com/pythag/ptuples/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewQKPTuplesCommand()))
}
