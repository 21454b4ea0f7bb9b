package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
	"github.com/sharetube/syncroom/internal/repository/connection"
	"github.com/sharetube/syncroom/pkg/wsrouter"
	"github.com/sharetube/syncroom/pkg/ytsearch"
)

type iRoomService interface {
	Connect(context.Context, connection.Sink) domain.ConnID
	Disconnect(context.Context, domain.ConnID) error
	Dispatch(context.Context, domain.ConnID, protocol.Envelope) error
}

type iSearchService interface {
	Search(ctx context.Context, query string) []ytsearch.Video
}

type Config struct {
	IndexPath    string
	SendBuffer   int
	PingInterval time.Duration
}

type controller struct {
	roomService   iRoomService
	searchService iSearchService
	upgrader      websocket.Upgrader
	decoder       *protocol.Decoder
	wsRouter      *wsrouter.WSRouter
	indexPath     string
	sendBuffer    int
	pingInterval  time.Duration
	logger        *slog.Logger
}

func NewController(roomService iRoomService, searchService iSearchService, cfg *Config, logger *slog.Logger) *controller {
	c := &controller{
		roomService:   roomService,
		searchService: searchService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		decoder:      protocol.NewDecoder(),
		indexPath:    cfg.IndexPath,
		sendBuffer:   cfg.SendBuffer,
		pingInterval: cfg.PingInterval,
		logger:       logger,
	}
	c.wsRouter = c.getWSRouter()

	return c
}

func (c controller) generateTimeBasedId() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
