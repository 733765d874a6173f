package runlog

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/O33ero/qfactor/factor"
)

// AttemptLogger returns an attempt callback that appends every attempt
// to the given file while echoing it to stdout. Wire it into
// factor.Config.OnAttempt for long unattended runs.
func AttemptLogger(path string) func(factor.Attempt) {
	return func(a factor.Attempt) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Print(err)
			}
		}()

		w := io.MultiWriter(os.Stdout, f)
		line := fmt.Sprintf("#%-3d x=%-10d r=%-10d %-14s", a.Index, a.Base, a.Order, a.Outcome)
		if a.Factor != 0 {
			line += fmt.Sprintf(" factor=%d", a.Factor)
		}
		fmt.Fprintln(w, line)
	}
}

// ResultLogger appends the final search outcome to the same file.
func ResultLogger(path string, res *factor.Result) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Print(err)
		}
	}()

	if res.Found {
		fmt.Fprintf(f, "n=%d p=%d q=%d method=%s attempts=%d duration=%s\n",
			res.N, res.Factor, res.Cofactor, res.Method, len(res.Attempts), res.Duration)
		return
	}
	fmt.Fprintf(f, "n=%d found=false prime=%t method=%s attempts=%d duration=%s\n",
		res.N, res.Prime, res.Method, len(res.Attempts), res.Duration)
}
