package reporter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/O33ero/qfactor/factor"
)

type Reporter interface {
	Print()
}

// New builds a complete-factorization reporter for n. The config is
// reused for every split, so method, sampler and attempt budget apply
// per composite component.
func New(n int64, cfg factor.Config) Reporter {
	return &reporter{n: n, cfg: cfg}
}

type reporter struct {
	n   int64
	cfg factor.Config
}

func (r *reporter) Print() {
	primes, err := Factorize(context.Background(), r.n, r.cfg)
	if err != nil {
		fmt.Fprintf(color.Output, "%s\n", color.New(color.FgRed).Sprintf("factorization report failed: %v", err))
		return
	}
	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = fmt.Sprint(p)
	}
	fmt.Fprintf(color.Output, "%s %s %s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("%d =", r.n),
		color.New(color.FgCyan, color.Bold).Sprint(strings.Join(parts, " * ")),
		color.New(color.FgHiBlack).Sprintf("(%d prime factors)", len(primes)),
	)
}

// Factorize splits n into its complete prime factorization, ascending,
// by running the factor search on every composite component. A
// component that exhausts its attempt budget fails the whole report;
// the caller can retry with a larger budget.
func Factorize(ctx context.Context, n int64, cfg factor.Config) ([]int64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", factor.ErrBadInput, n)
	}

	isPrime := cfg.IsPrime
	if isPrime == nil {
		isPrime = factor.IsPrime
	}

	var primes []int64
	pending := []int64{n}
	for len(pending) > 0 {
		m := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if isPrime(m) {
			primes = append(primes, m)
			continue
		}

		res, err := factor.FindFactor(ctx, m, cfg)
		if err != nil {
			return nil, err
		}
		if !res.Found {
			return nil, fmt.Errorf("gave up on composite %d after %d attempts", m, len(res.Attempts))
		}
		pending = append(pending, res.Factor, res.Cofactor)
	}

	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes, nil
}
