package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/O33ero/qfactor/factor"
)

var defaults = map[string]any{
	"method":     "quantum",
	"attempts":   factor.DefaultMaxAttempts,
	"workers":    1,
	"timeout_ms": defaultTimeoutMs,
}

func optionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"methods":        factor.Methods(),
		"defaultOptions": defaults,
		"limits": gin.H{
			"max_attempts":   maxAttemptsCap,
			"max_timeout_ms": maxTimeoutMs,
		},
	})
}
