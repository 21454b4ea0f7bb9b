package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sharetube/syncroom/internal/metrics"
	"github.com/sharetube/syncroom/internal/protocol"
	"github.com/sharetube/syncroom/pkg/wsrouter"
)

func (c controller) GetMux() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(c.requestIdMw)
	r.Use(c.requestLoggingMw)
	r.Use(cors.AllowAll().Handler)

	// clients open the websocket on the same path the page is served from
	r.Get("/", c.index)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		r.Get("/search", c.search)
		r.Get("/ws", c.serveWS)
	})

	return r
}

func (c controller) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New(c.handleFrame, protocol.PeekAction)
	mux.Use(c.wsRequestIdWSMw(), c.loggerWSMw())

	return mux
}
