package controller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sharetube/syncroom/internal/repository/connection"
)

const writeWait = 10 * time.Second

// wsConn is the outbound side of a websocket session. Send only queues;
// writeLoop is the single writer of the underlying connection.
type wsConn struct {
	ws           *websocket.Conn
	out          chan []byte
	done         chan struct{}
	open         atomic.Bool
	closeOnce    sync.Once
	pingInterval time.Duration
}

func newWSConn(ws *websocket.Conn, buffer int, pingInterval time.Duration) *wsConn {
	c := &wsConn{
		ws:           ws,
		out:          make(chan []byte, buffer),
		done:         make(chan struct{}),
		pingInterval: pingInterval,
	}
	c.open.Store(true)

	return c
}

func (c *wsConn) IsOpen() bool {
	return c.open.Load()
}

func (c *wsConn) Send(msg []byte) error {
	if !c.IsOpen() {
		return connection.ErrSinkClosed
	}

	select {
	case c.out <- msg:
		return nil
	default:
		return connection.ErrSinkOverflown
	}
}

func (c *wsConn) close() {
	c.closeOnce.Do(func() {
		c.open.Store(false)
		close(c.done)
	})
}

func (c *wsConn) writeLoop(ctx context.Context, logger *slog.Logger) {
	var pings <-chan time.Time
	if c.pingInterval > 0 {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		pings = ticker.C
	}

	defer c.ws.Close()

	for {
		select {
		case <-c.done:
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		case msg := <-c.out:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.DebugContext(ctx, "failed to write message", "error", err)
				c.close()
				return
			}
		case <-pings:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.DebugContext(ctx, "failed to write ping", "error", err)
				c.close()
				return
			}
		}
	}
}
