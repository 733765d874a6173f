package printer

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/O33ero/qfactor/config"
	"github.com/O33ero/qfactor/factor"
)

var version = config.Version
var buildDate = config.BuildDate
var commitID = config.CommitID

func Version() {
	fmt.Fprintf(color.Output, "%s %s %s %s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("%s", "qfactor"),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", version),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", buildDate),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", commitID),
	)
}

// RealtimeAttemptPrinter writes one line per finished attempt, wired
// into factor.Config.OnAttempt.
func RealtimeAttemptPrinter(a factor.Attempt) {
	idx := color.New(color.FgYellow).Sprintf("#%-3d", a.Index)
	base := fmt.Sprintf("x=%-10d", a.Base)
	order := "r=*"
	if a.Order != 0 {
		order = fmt.Sprintf("r=%d", a.Order)
	}
	outcome := outcomeSprint(a.Outcome)
	line := fmt.Sprintf("%s %s %-12s %s", idx, base, order, outcome)
	if a.Factor != 0 {
		line += color.New(color.FgGreen, color.Bold).Sprintf("  -> %d", a.Factor)
	}
	fmt.Fprintln(color.Output, line)
}

func outcomeSprint(o factor.Outcome) string {
	switch o {
	case factor.OutcomeFactor, factor.OutcomeSharedFactor:
		return color.New(color.FgGreen).Sprint(string(o))
	default:
		return color.New(color.FgHiBlack).Sprint(string(o))
	}
}

// ResultPrinter reports the search outcome the way the CLI ends a run:
// p, q, the p*q == n check and the elapsed time.
func ResultPrinter(res *factor.Result) {
	if res.Prime {
		fmt.Fprintf(color.Output, "%s\n",
			color.New(color.FgYellow, color.Bold).Sprintf("n = %d is prime, no non-trivial factor exists", res.N))
		return
	}
	if !res.Found {
		fmt.Fprintf(color.Output, "%s\n",
			color.New(color.FgRed, color.Bold).Sprintf("no non-trivial factor of %d found in %d attempts", res.N, len(res.Attempts)))
		return
	}

	if res.Shortcut != "" {
		fmt.Fprintf(color.Output, "%s\n",
			color.New(color.FgHiBlack).Sprintf("shortcut: %s", res.Shortcut))
	}
	ok := res.Factor*res.Cofactor == res.N
	fmt.Fprintf(color.Output, "%s\n%s\n%s\n%s\n%s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("n = p * q = %d", res.N),
		color.New(color.FgCyan, color.Bold).Sprintf("p = %d", res.Factor),
		color.New(color.FgCyan, color.Bold).Sprintf("q = %d", res.Cofactor),
		color.New(color.FgWhite).Sprintf("p * q == n: %t", ok),
		color.New(color.FgHiBlack).Sprintf("finished in %.5fs (%s order finder, %d attempts)",
			res.Duration.Seconds(), res.Method, len(res.Attempts)),
	)
}
