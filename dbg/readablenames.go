package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/delaunay/advanced"
)

// This converts points into random readable names, which are much easier to
// tell apart in a triangle listing than pairs of long floats. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it.

var (
	memo   map[[2]float64]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[[2]float64]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same point between runs.
	petname.NonDeterministicMode()
}

// Name for a point. Points that are Equal (same X and Y) share a name.
func Name(p advanced.Point) string {
	key := [2]float64{p.X, p.Y}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Readable form of a triangle, by vertex names.
func TriangleName(t advanced.Triangle) string {
	return fmt.Sprintf("%s-%s-%s", Name(t.P0), Name(t.P1), Name(t.P2))
}
