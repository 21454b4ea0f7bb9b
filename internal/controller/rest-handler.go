package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

func (c controller) index(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		c.serveWS(w, r)
		return
	}

	http.ServeFile(w, r, c.indexPath)
}

func (c controller) search(w http.ResponseWriter, r *http.Request) {
	videos := c.searchService.Search(r.Context(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(videos); err != nil {
		c.logger.WarnContext(r.Context(), "failed to write search response", "error", err)
	}
}
