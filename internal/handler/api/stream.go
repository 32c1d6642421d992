package api

import (
	"context"
	"net/http"
	"time"

	xlogger "TradePulse/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// StreamConfig controls the live price WebSocket.
type StreamConfig struct {
	Enabled      bool
	PushInterval time.Duration
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// StreamPrices upgrades the connection and pushes the snapshot set for all
// supported symbols on a fixed interval until the client goes away. Client
// frames are read only to notice the close.
func (h *Handler) StreamPrices(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()
	closed := make(chan struct{})

	go func() {
		defer close(closed)
		conn.SetReadLimit(1 << 16)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := time.NewTicker(h.stream.PushInterval)
	defer push.Stop()
	ping := time.NewTicker(15 * time.Second)
	defer ping.Stop()

	// Send the first frame right away.
	if err := h.writeSnapshots(ctx, conn); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-push.C:
			if err := h.writeSnapshots(ctx, conn); err != nil {
				h.logger.Debug("price stream write failed", xlogger.Error(err))
				return nil
			}
		}
	}
}

func (h *Handler) writeSnapshots(ctx context.Context, conn *websocket.Conn) error {
	// The cache absorbs the per-tick cost: within the freshness window this
	// is four map reads, no upstream calls.
	snaps := h.prices.AllPrices(ctx)
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteJSON(snaps)
}
