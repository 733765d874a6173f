package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/O33ero/qfactor/factor"
)

var factorUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	wsSendQueueSize = 256
	wsWriteTimeout  = 5 * time.Second
)

type wsEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// factorWSHandler streams attempt events while a factorization runs,
// followed by a final result or error envelope. The client sends one
// factorRequest JSON message after the upgrade.
func factorWSHandler(c *gin.Context) {
	conn, err := factorUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req factorRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.normalize(); err != nil {
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: err.Error()})
		return
	}

	sendCh := make(chan wsEnvelope, wsSendQueueSize)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for env := range sendCh {
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(env); err != nil {
				return
			}
		}
	}()
	send := func(env wsEnvelope) {
		select {
		case sendCh <- env:
		case <-writerDone:
		}
	}

	cfg := req.searchConfig()
	cfg.OnAttempt = func(a factor.Attempt) {
		// Attempt events are best effort; a slow consumer loses
		// intermediate ones but still gets the final envelope.
		select {
		case sendCh <- wsEnvelope{Type: "attempt", Data: a}:
		default:
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(req.TimeoutMs)*time.Millisecond)
	defer cancel()

	res, err := factor.FindFactor(ctx, req.N, cfg)
	if err != nil {
		send(wsEnvelope{Type: "error", Error: err.Error()})
	} else {
		send(wsEnvelope{Type: "result", Data: res})
	}
	close(sendCh)
	<-writerDone
}
