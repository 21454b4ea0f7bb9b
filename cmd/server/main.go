package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sharetube/syncroom/internal/app"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
}

var (
	port = configVar[int]{
		envKey:       "SERVER_PORT",
		flagKey:      "port",
		defaultValue: 8080,
	}
	host = configVar[string]{
		envKey:       "SERVER_HOST",
		flagKey:      "host",
		defaultValue: "0.0.0.0",
	}
	logLevel = configVar[string]{
		envKey:       "SERVER_LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "INFO",
	}
	seekDebounce = configVar[time.Duration]{
		envKey:       "SERVER_SEEK_DEBOUNCE",
		flagKey:      "seek-debounce",
		defaultValue: 300 * time.Millisecond,
	}
	sendBuffer = configVar[int]{
		envKey:       "SERVER_SEND_BUFFER",
		flagKey:      "send-buffer",
		defaultValue: 64,
	}
	pingInterval = configVar[time.Duration]{
		envKey:       "SERVER_PING_INTERVAL",
		flagKey:      "ping-interval",
		defaultValue: 30 * time.Second,
	}
	indexPath = configVar[string]{
		envKey:       "SERVER_INDEX_PATH",
		flagKey:      "index-path",
		defaultValue: "web/index.html",
	}
	searchCacheTTL = configVar[time.Duration]{
		envKey:       "SERVER_SEARCH_CACHE_TTL",
		flagKey:      "search-cache-ttl",
		defaultValue: 10 * time.Minute,
	}
	redisPort = configVar[int]{
		envKey:       "REDIS_PORT",
		flagKey:      "redis-port",
		defaultValue: 6379,
	}
	redisHost = configVar[string]{
		envKey:       "REDIS_HOST",
		flagKey:      "redis-host",
		defaultValue: "",
	}
	redisPassword = configVar[string]{
		envKey:       "REDIS_PASSWORD",
		flagKey:      "redis-password",
		defaultValue: "",
	}
)

func loadAppConfig() *app.AppConfig {
	pflag.Int(port.flagKey, port.defaultValue, "Server port")
	pflag.String(host.flagKey, host.defaultValue, "Server host")
	pflag.String(logLevel.flagKey, logLevel.defaultValue, "Logging level")
	pflag.Duration(seekDebounce.flagKey, seekDebounce.defaultValue, "Minimum interval between accepted seeks in a room")
	pflag.Int(sendBuffer.flagKey, sendBuffer.defaultValue, "Outbound events buffered per connection")
	pflag.Duration(pingInterval.flagKey, pingInterval.defaultValue, "Websocket ping interval, 0 disables pings")
	pflag.String(indexPath.flagKey, indexPath.defaultValue, "Path of the client document served at /")
	pflag.Duration(searchCacheTTL.flagKey, searchCacheTTL.defaultValue, "How long search results stay cached")
	pflag.Int(redisPort.flagKey, redisPort.defaultValue, "Redis port")
	pflag.String(redisHost.flagKey, redisHost.defaultValue, "Redis host, empty disables redis")
	pflag.String(redisPassword.flagKey, redisPassword.defaultValue, "Redis password")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	viper.BindEnv(port.flagKey, port.envKey)
	viper.BindEnv(host.flagKey, host.envKey)
	viper.BindEnv(logLevel.flagKey, logLevel.envKey)
	viper.BindEnv(seekDebounce.flagKey, seekDebounce.envKey)
	viper.BindEnv(sendBuffer.flagKey, sendBuffer.envKey)
	viper.BindEnv(pingInterval.flagKey, pingInterval.envKey)
	viper.BindEnv(indexPath.flagKey, indexPath.envKey)
	viper.BindEnv(searchCacheTTL.flagKey, searchCacheTTL.envKey)
	viper.BindEnv(redisPort.flagKey, redisPort.envKey)
	viper.BindEnv(redisHost.flagKey, redisHost.envKey)
	viper.BindEnv(redisPassword.flagKey, redisPassword.envKey)

	viper.SetDefault(port.flagKey, port.defaultValue)
	viper.SetDefault(host.flagKey, host.defaultValue)
	viper.SetDefault(logLevel.flagKey, logLevel.defaultValue)
	viper.SetDefault(seekDebounce.flagKey, seekDebounce.defaultValue)
	viper.SetDefault(sendBuffer.flagKey, sendBuffer.defaultValue)
	viper.SetDefault(pingInterval.flagKey, pingInterval.defaultValue)
	viper.SetDefault(indexPath.flagKey, indexPath.defaultValue)
	viper.SetDefault(searchCacheTTL.flagKey, searchCacheTTL.defaultValue)
	viper.SetDefault(redisPort.flagKey, redisPort.defaultValue)
	viper.SetDefault(redisHost.flagKey, redisHost.defaultValue)
	viper.SetDefault(redisPassword.flagKey, redisPassword.defaultValue)

	config := &app.AppConfig{
		Host:           viper.GetString(host.flagKey),
		Port:           viper.GetInt(port.flagKey),
		LogLevel:       viper.GetString(logLevel.flagKey),
		SeekDebounce:   viper.GetDuration(seekDebounce.flagKey),
		SendBuffer:     viper.GetInt(sendBuffer.flagKey),
		PingInterval:   viper.GetDuration(pingInterval.flagKey),
		IndexPath:      viper.GetString(indexPath.flagKey),
		SearchCacheTTL: viper.GetDuration(searchCacheTTL.flagKey),
		RedisPort:      viper.GetInt(redisPort.flagKey),
		RedisHost:      viper.GetString(redisHost.flagKey),
		RedisPassword:  viper.GetString(redisPassword.flagKey),
	}

	return config
}

func main() {
	ctx := context.Background()

	appConfig := loadAppConfig()

	jsonConfig, _ := json.MarshalIndent(appConfig, "", "  ")
	fmt.Printf("starting app with config: %s\n", jsonConfig)

	log.Fatal(app.Run(ctx, appConfig))
}
