package dbg

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts vertex indexes into random readable names. Names are
// generated lazily and memoized, so the same index keeps its name for the
// life of the process. This is helpful when eyeballing a drawn hull or a
// march trace: "ProudWalrus follows DearSkink" reads better than "vertex 7
// follows vertex 6".

var memo []string

func init() {
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same vertex between runs.
	petname.NonDeterministicMode()
}

// NameFor returns the memoized readable name for a vertex index.
func NameFor(i int) string {
	for len(memo) <= i {
		memo = append(memo, strings.Title(petname.Adjective())+strings.Title(petname.Name()))
	}
	return memo[i]
}
