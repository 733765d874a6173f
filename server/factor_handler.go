package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/O33ero/qfactor/config"
	"github.com/O33ero/qfactor/factor"
	"github.com/O33ero/qfactor/quantum"
)

const (
	defaultTimeoutMs = 30_000
	maxTimeoutMs     = 300_000
	maxAttemptsCap   = 10_000
	maxWorkersCap    = 64
)

type factorRequest struct {
	N         int64  `json:"n"`
	Method    string `json:"method"`
	Attempts  int    `json:"attempts"`
	Workers   int    `json:"workers"`
	Seed      int64  `json:"seed"`
	TimeoutMs int    `json:"timeout_ms"`
}

// normalize validates the request and fills defaults in place.
func (r *factorRequest) normalize() error {
	if r.N < 2 {
		return fmt.Errorf("n must be an integer greater than 1, got %d", r.N)
	}
	if r.Method == "" {
		r.Method = string(factor.QuantumMethod)
	}
	switch factor.Method(r.Method) {
	case factor.QuantumMethod, factor.ClassicalMethod:
	default:
		return fmt.Errorf("unknown method %q", r.Method)
	}
	if r.Attempts <= 0 {
		r.Attempts = factor.DefaultMaxAttempts
	}
	if r.Attempts > maxAttemptsCap {
		return fmt.Errorf("attempts %d exceeds cap %d", r.Attempts, maxAttemptsCap)
	}
	if r.Workers <= 0 {
		r.Workers = 1
	}
	if r.Workers > maxWorkersCap {
		return fmt.Errorf("workers %d exceeds cap %d", r.Workers, maxWorkersCap)
	}
	if r.TimeoutMs <= 0 {
		r.TimeoutMs = defaultTimeoutMs
	}
	if r.TimeoutMs > maxTimeoutMs {
		return fmt.Errorf("timeout_ms %d exceeds cap %d", r.TimeoutMs, maxTimeoutMs)
	}
	return nil
}

func (r *factorRequest) searchConfig() factor.Config {
	sim := quantum.NewSimulator(r.Seed)
	if q := config.SimulatorQubits(); q > 0 {
		sim.MaxQubits = q
	}
	seed := r.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return factor.Config{
		Method:      factor.Method(r.Method),
		MaxAttempts: r.Attempts,
		Workers:     r.Workers,
		Rand:        rand.New(rand.NewSource(seed)),
		Sampler:     sim,
	}
}

func factorHandler(c *gin.Context) {
	var req factorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(req.TimeoutMs)*time.Millisecond)
	defer cancel()

	res, err := factor.FindFactor(ctx, req.N, req.searchConfig())
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, quantum.ErrTooManyQubits):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, context.DeadlineExceeded):
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
