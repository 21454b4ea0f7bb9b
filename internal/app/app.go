package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sharetube/syncroom/internal/controller"
	connrepo "github.com/sharetube/syncroom/internal/repository/connection/inmemory"
	eventsredis "github.com/sharetube/syncroom/internal/repository/events/redis"
	roomrepo "github.com/sharetube/syncroom/internal/repository/room/inmemory"
	searchredis "github.com/sharetube/syncroom/internal/repository/search/redis"
	"github.com/sharetube/syncroom/internal/service/room"
	"github.com/sharetube/syncroom/internal/service/search"
	"github.com/sharetube/syncroom/pkg/ctxlogger"
	"github.com/sharetube/syncroom/pkg/redisclient"
	"github.com/sharetube/syncroom/pkg/ytsearch"
)

const (
	eventQueueSize = 1024
	searchTimeout  = 10 * time.Second
)

type AppConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	LogLevel       string        `json:"log_level"`
	SeekDebounce   time.Duration `json:"seek_debounce"`
	SendBuffer     int           `json:"send_buffer"`
	PingInterval   time.Duration `json:"ping_interval"`
	IndexPath      string        `json:"index_path"`
	SearchBaseURL  string        `json:"search_base_url"`
	SearchCacheTTL time.Duration `json:"search_cache_ttl"`
	RedisHost      string        `json:"redis_host"`
	RedisPort      int           `json:"redis_port"`
	RedisPassword  string        `json:"-"`
}

func (cfg *AppConfig) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if cfg.SeekDebounce < 0 {
		return fmt.Errorf("seek debounce must not be negative")
	}
	if cfg.SendBuffer < 1 {
		return fmt.Errorf("send buffer must be greater than 0")
	}
	if cfg.PingInterval < 0 {
		return fmt.Errorf("ping interval must not be negative")
	}
	if cfg.IndexPath == "" {
		return fmt.Errorf("index path must not be empty")
	}
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, err
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	return slog.New(&h), nil
}

// newHandler wires repositories, services and the controller. rc may be nil,
// in which case search results are not cached and no event feed is published.
func newHandler(ctx context.Context, cfg *AppConfig, rc *redis.Client, logger *slog.Logger) http.Handler {
	roomConfig := &room.Config{SeekDebounce: cfg.SeekDebounce}

	var searchCache search.CacheRepo

	if rc != nil {
		publisher := eventsredis.NewPublisher(rc, eventQueueSize, logger)
		go publisher.Run(ctx)
		roomConfig.Feed = publisher

		searchCache = searchredis.NewRepo(rc, cfg.SearchCacheTTL)
	}

	searcher := ytsearch.New(&http.Client{Timeout: searchTimeout}, cfg.SearchBaseURL)
	searchService := search.NewService(searcher, searchCache, logger)
	roomService := room.NewService(roomrepo.NewRepo(logger), connrepo.NewRepo(logger), roomConfig, logger)

	return controller.NewController(roomService, searchService, &controller.Config{
		IndexPath:    cfg.IndexPath,
		SendBuffer:   cfg.SendBuffer,
		PingInterval: cfg.PingInterval,
	}, logger).GetMux()
}

func Run(ctx context.Context, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	var rc *redis.Client
	if cfg.RedisHost != "" {
		rc, err = redisclient.NewRedisClient(ctx, &redisclient.Config{
			Port:     cfg.RedisPort,
			Host:     cfg.RedisHost,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer rc.Close()
	}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)
	defer serverStopCtx()

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: newHandler(serverCtx, cfg, rc, logger),
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	logger.InfoContext(serverCtx, "starting server", "address", server.Addr, "redis", rc != nil)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-serverCtx.Done()

	return nil
}
