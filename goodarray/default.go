package goodarray

import (
	"sync"

	"github.com/sp301415/modcomb/combin"
)

// defaultCounter builds the shared Counter on first use.
var defaultCounter = sync.OnceValue(func() *Counter {
	return NewCounter(combin.ParamsN100000P1000000007.Compile())
})

// Default returns the package-wide Counter over ParamsN100000P1000000007.
// Its tables are built exactly once, on the first call, and shared by all
// callers afterwards.
func Default() *Counter {
	return defaultCounter()
}

// Count counts good arrays using the default Counter.
// See [Counter.Count] for the exact semantics.
func Count(n, m, k int) (uint64, error) {
	return Default().Count(n, m, k)
}
