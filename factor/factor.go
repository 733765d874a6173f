package factor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/O33ero/qfactor/quantum"
)

var (
	ErrBadInput       = errors.New("cannot factor")
	ErrOrderInvariant = errors.New("order invariant violated")
)

// DefaultMaxAttempts bounds the retry loop when the config leaves it
// unset.
const DefaultMaxAttempts = 5

// Outcome classifies how a single attempt ended.
type Outcome string

const (
	// OutcomeSharedFactor: the random base itself shared a factor with n.
	OutcomeSharedFactor Outcome = "shared-factor"
	// OutcomeNoOrder: the order finder produced no usable information.
	OutcomeNoOrder Outcome = "no-order"
	// OutcomeOddOrder: the order was odd, so the gcd derivation does not apply.
	OutcomeOddOrder Outcome = "odd-order"
	// OutcomeTrivialGCD: gcd(x^(r/2)-1, n) came out trivial.
	OutcomeTrivialGCD Outcome = "trivial-gcd"
	// OutcomeFactor: the attempt produced a non-trivial factor.
	OutcomeFactor Outcome = "factor"
)

// Shortcut names the terminal check that resolved n before any attempt
// ran.
type Shortcut string

const (
	ShortcutPrime      Shortcut = "prime"
	ShortcutEven       Shortcut = "even"
	ShortcutPrimePower Shortcut = "prime-power"
)

// Attempt records one pass of the retry loop.
type Attempt struct {
	Index   int     `json:"index"`
	Base    int64   `json:"base"`
	Order   int64   `json:"order,omitempty"`
	Outcome Outcome `json:"outcome"`
	Factor  int64   `json:"factor,omitempty"`
}

// Result is the full outcome of a factor search.
type Result struct {
	N        int64         `json:"n"`
	Found    bool          `json:"found"`
	Factor   int64         `json:"factor,omitempty"`
	Cofactor int64         `json:"cofactor,omitempty"`
	Prime    bool          `json:"prime"`
	Shortcut Shortcut      `json:"shortcut,omitempty"`
	Method   Method        `json:"method"`
	Attempts []Attempt     `json:"attempts,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Config carries the knobs of a factor search. The zero value means:
// quantum method on a fresh simulated sampler, 5 attempts, one worker,
// time-seeded randomness, exact primality oracle.
type Config struct {
	Method      Method
	MaxAttempts int
	// Workers > 1 runs attempts concurrently. Attempts are independent
	// and side-effect free apart from RNG consumption, so this does not
	// change which answers are valid, only which one comes back first.
	Workers int
	Rand    *rand.Rand
	Sampler quantum.Sampler
	// Finder overrides Method/Sampler with a caller-supplied order
	// finder. FindFactor only depends on the OrderFinder capability.
	Finder OrderFinder
	// IsPrime is the primality oracle, exact for the integer sizes used.
	IsPrime func(int64) bool
	// OnAttempt is invoked after every finished attempt, e.g. for
	// realtime printing or streaming.
	OnAttempt func(Attempt)
}

// FindFactor returns a non-trivial factor of n, or a Result with
// Found=false when n is prime or every attempt was exhausted.
// Exhaustion is a normal outcome, not an error; the caller decides
// whether to retry with a larger budget.
//
// Terminal shortcuts run first: primes have no non-trivial factor, even
// numbers yield 2, prime powers yield their root. Otherwise up to
// MaxAttempts random bases are tried, each converted into a factor
// candidate via order finding and gcd extraction. The context is
// honored between attempts.
func FindFactor(ctx context.Context, n int64, cfg Config) (*Result, error) {
	start := time.Now()
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadInput, n)
	}

	method := cfg.Method
	if method == "" {
		method = QuantumMethod
	}
	res := &Result{N: n, Method: method}
	finish := func() *Result {
		res.Duration = time.Since(start)
		return res
	}

	isPrime := cfg.IsPrime
	if isPrime == nil {
		isPrime = IsPrime
	}
	if isPrime(n) {
		res.Prime = true
		res.Shortcut = ShortcutPrime
		return finish(), nil
	}
	if n%2 == 0 {
		res.Found, res.Factor, res.Cofactor = true, 2, n/2
		res.Shortcut = ShortcutEven
		return finish(), nil
	}
	if p, ok := PrimePowerFactor(n); ok {
		res.Found, res.Factor, res.Cofactor = true, p, n/p
		res.Shortcut = ShortcutPrimePower
		return finish(), nil
	}

	finder := cfg.Finder
	if finder == nil {
		sampler := cfg.Sampler
		if sampler == nil && method == QuantumMethod {
			sampler = quantum.NewSimulator(0)
		}
		var err error
		finder, err = NewOrderFinder(method, sampler)
		if err != nil {
			return nil, err
		}
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Base draws stay on the caller goroutine so a seeded RNG consumes
	// identically whether or not attempts run concurrently.
	bases := make([]int64, maxAttempts)
	for i := range bases {
		bases[i] = 2 + rng.Int63n(n-2)
	}

	var attempts []Attempt
	var c int64
	var err error
	if cfg.Workers > 1 {
		attempts, c, err = runAttemptsParallel(ctx, n, bases, finder, cfg.Workers, cfg.OnAttempt)
	} else {
		attempts, c, err = runAttempts(ctx, n, bases, finder, cfg.OnAttempt)
	}
	res.Attempts = attempts
	if err != nil {
		return finish(), err
	}
	if c != 0 {
		res.Found, res.Factor, res.Cofactor = true, c, n/c
	}
	return finish(), nil
}

func runAttempts(ctx context.Context, n int64, bases []int64, finder OrderFinder, onAttempt func(Attempt)) ([]Attempt, int64, error) {
	attempts := make([]Attempt, 0, len(bases))
	for i, x := range bases {
		if err := ctx.Err(); err != nil {
			return attempts, 0, err
		}
		att, c, err := runAttempt(i+1, n, x, finder)
		if err != nil {
			return attempts, 0, err
		}
		attempts = append(attempts, att)
		if onAttempt != nil {
			onAttempt(att)
		}
		if c != 0 {
			return attempts, c, nil
		}
	}
	return attempts, 0, nil
}

func runAttemptsParallel(ctx context.Context, n int64, bases []int64, finder OrderFinder, workers int, onAttempt func(Attempt)) ([]Attempt, int64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	attempts := make([]Attempt, 0, len(bases))
	var factor int64
	var firstErr error

	for i, x := range bases {
		if sem.Acquire(ctx, 1) != nil {
			break
		}
		wg.Add(1)
		go func(index int, x int64) {
			defer wg.Done()
			defer sem.Release(1)
			att, c, err := runAttempt(index, n, x, finder)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				return
			}
			attempts = append(attempts, att)
			if onAttempt != nil {
				onAttempt(att)
			}
			if c != 0 && factor == 0 {
				factor = c
				cancel()
			}
		}(i+1, x)
	}
	wg.Wait()

	if firstErr != nil {
		return attempts, 0, firstErr
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].Index < attempts[j].Index })
	return attempts, factor, nil
}

// runAttempt performs one linear pass: lucky gcd, order finding, parity
// check, gcd extraction. A zero factor with a nil error means "keep
// trying".
func runAttempt(index int, n, x int64, finder OrderFinder) (Attempt, int64, error) {
	att := Attempt{Index: index, Base: x}

	if g := GCD(x, n); 1 < g && g < n {
		att.Outcome = OutcomeSharedFactor
		att.Factor = g
		return att, g, nil
	}

	r, ok, err := finder.Order(x, n)
	if err != nil {
		return att, 0, err
	}
	if !ok {
		att.Outcome = OutcomeNoOrder
		return att, 0, nil
	}
	att.Order = r
	if r%2 != 0 {
		att.Outcome = OutcomeOddOrder
		return att, 0, nil
	}

	y := ModPow(x, r/2, n)
	if y <= 1 || y >= n {
		// A verified even order cannot put x^(r/2) outside (1, n); if it
		// does, decoding and verification disagree and retrying would
		// hide a logic error.
		return att, 0, fmt.Errorf("%w: x=%d r=%d y=%d n=%d", ErrOrderInvariant, x, r, y, n)
	}
	if c := GCD(y-1, n); 1 < c && c < n {
		att.Outcome = OutcomeFactor
		att.Factor = c
		return att, c, nil
	}
	att.Outcome = OutcomeTrivialGCD
	return att, 0, nil
}
