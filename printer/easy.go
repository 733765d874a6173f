package printer

import (
	"fmt"

	"github.com/O33ero/qfactor/factor"
)

// EasyPrinter emits a pipe-separated line per attempt plus a final
// summary line, easy to parse from scripts.
func EasyPrinter(res *factor.Result) {
	for _, a := range res.Attempts {
		fmt.Printf("%d|%d|%d|%s|%d\n", a.Index, a.Base, a.Order, a.Outcome, a.Factor)
	}
	fmt.Printf("%d|%t|%d|%d|%s|%.5f\n",
		res.N, res.Found, res.Factor, res.Cofactor, res.Method, res.Duration.Seconds())
}
