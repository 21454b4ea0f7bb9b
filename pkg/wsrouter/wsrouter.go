package wsrouter

import (
	"context"
)

type HandlerFunc func(ctx context.Context, frame []byte) error

type Middleware func(next HandlerFunc) HandlerFunc

// Reader is the inbound side of a websocket connection.
type Reader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

type WSRouter struct {
	handler     HandlerFunc
	middlewares []Middleware
	typeOf      func(frame []byte) string
}

// New builds a router passing every frame to handler. typeOf extracts the
// message type that GetMessageTypeFromCtx reports to middlewares.
func New(handler HandlerFunc, typeOf func(frame []byte) string) *WSRouter {
	return &WSRouter{
		handler: handler,
		typeOf:  typeOf,
	}
}

// Use appends middlewares. The first one added is the outermost.
func (r *WSRouter) Use(mws ...Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

func (r *WSRouter) chain() HandlerFunc {
	h := r.handler
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	return h
}

// ServeConn reads frames until the connection fails and returns that error.
// Handler errors never stop the loop.
func (r *WSRouter) ServeConn(ctx context.Context, conn Reader) error {
	h := r.chain()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		frameCtx := ctx
		if r.typeOf != nil {
			frameCtx = context.WithValue(ctx, messageTypeKey, r.typeOf(frame))
		}

		_ = h(frameCtx, frame)
	}
}
