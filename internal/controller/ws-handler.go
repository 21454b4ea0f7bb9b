package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sharetube/syncroom/internal/metrics"
	"github.com/sharetube/syncroom/internal/protocol"
	"github.com/sharetube/syncroom/internal/service/room"
	"github.com/sharetube/syncroom/pkg/ctxlogger"
)

func (c controller) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.InfoContext(r.Context(), "failed to upgrade connection", "error", err)
		return
	}

	conn := newWSConn(ws, c.sendBuffer, c.pingInterval)
	// the request context ends once the handler returns, so the session
	// keeps only its logging attributes
	ctx := context.WithoutCancel(r.Context())

	connId := c.roomService.Connect(ctx, conn)
	ctx = context.WithValue(ctx, connIdCtxKey, connId)
	ctx = ctxlogger.AppendCtx(ctx, slog.String("conn_id", string(connId)))

	go conn.writeLoop(ctx, c.logger)
	defer func() {
		conn.close()
		if err := c.roomService.Disconnect(ctx, connId); err != nil {
			c.logger.WarnContext(ctx, "failed to disconnect", "error", err)
		}
	}()

	c.logger.InfoContext(ctx, "websocket connected")

	if err := c.wsRouter.ServeConn(ctx, ws); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
			c.logger.InfoContext(ctx, "websocket closed unexpectedly", "error", err)
		} else {
			c.logger.DebugContext(ctx, "websocket closed", "error", err)
		}
	}
}

func (c controller) handleFrame(ctx context.Context, frame []byte) error {
	env, err := c.decoder.Decode(frame)
	if err != nil {
		switch {
		case errors.Is(err, protocol.ErrMissingRoomID):
			metrics.FramesDropped.WithLabelValues(metrics.ReasonMissingRoomID).Inc()
		case errors.Is(err, protocol.ErrUnknownAction):
			metrics.FramesDropped.WithLabelValues(metrics.ReasonUnknownAction).Inc()
		default:
			metrics.FramesDropped.WithLabelValues(metrics.ReasonMalformed).Inc()
		}

		c.logger.DebugContext(ctx, "frame dropped", "error", err)
		return err
	}

	metrics.FramesReceived.WithLabelValues(env.Action.Tag()).Inc()
	ctx = ctxlogger.AppendCtx(ctx,
		slog.String("room_id", env.RoomID),
		slog.String("action", env.Action.Tag()),
	)

	if err := c.roomService.Dispatch(ctx, c.getConnIdFromCtx(ctx), env); err != nil {
		if errors.Is(err, room.ErrDebounced) {
			metrics.FramesDropped.WithLabelValues(metrics.ReasonDebounced).Inc()
			c.logger.DebugContext(ctx, "frame debounced")
			return err
		}

		metrics.FramesDropped.WithLabelValues(metrics.ReasonRejected).Inc()
		c.logger.WarnContext(ctx, "failed to dispatch", "error", err)
		return err
	}

	return nil
}
