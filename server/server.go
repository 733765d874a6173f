package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/O33ero/qfactor/config"
	"github.com/O33ero/qfactor/util"
)

const defaultListenAddr = ":1080"

// ginMode keeps gin's verbose request logging when dev mode is on.
func ginMode() string {
	if util.EnvDevMode {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "qfactor",
			"version": config.Version,
		})
	})

	router.GET("/api/options", optionsHandler)
	router.POST("/api/factor", factorHandler)
	router.GET("/api/factor/ws", factorWSHandler)

	return router
}

// Run starts the Gin HTTP server that exposes the factorization APIs.
func Run(listenAddr string) error {
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	gin.SetMode(ginMode())
	srv := &http.Server{Addr: listenAddr, Handler: newRouter()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		if strings.Contains(err.Error(), "address already in use") {
			return fmt.Errorf("listen %s: %w", listenAddr, err)
		}
		return err
	}

	return nil
}
