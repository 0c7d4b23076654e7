package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"mytargets/adapters"
	"mytargets/adapters/myredis"
	"mytargets/domain"
	"mytargets/handlers"
	"mytargets/interfaces"
	"mytargets/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	snapshotPrefix  = "mytargets"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting mytargets service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	levelOpt, _ := levelOption(config.LogLevel)
	logger = level.NewFilter(logger, levelOpt)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"registry_url", config.RegistryURL,
		"targets_file", config.TargetsFile,
		"poll_interval", config.PollInterval,
		"fetch_timeout", config.FetchTimeout,
		"internal_host_alias", config.InternalHostAlias,
		"allow_overlap", config.AllowOverlap,
		"service_port_http", config.HTTPPort,
		"redis_enabled", config.RedisAddr != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(registry)

	var publisher interfaces.Cache[domain.Snapshot]
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(s domain.Snapshot) ([]byte, error) { return json.Marshal(s) }
		publisher = myredis.NewCache[domain.Snapshot](redisClient, snapshotPrefix, marshal)
	}

	poller := service.NewPoller(
		adapters.RegistryHTTP(config.RegistryURL, &http.Client{Timeout: config.FetchTimeout}, config.FetchTimeout),
		adapters.ManifestFile(config.TargetsFile),
		publisher,
		metrics,
		service.UTCClock(),
		logger,
		service.PollerConfig{
			Interval:     config.PollInterval,
			HostAlias:    config.InternalHostAlias,
			AllowOverlap: config.AllowOverlap,
			SnapshotKey:  filepath.Base(config.TargetsFile),
			SnapshotTTL:  3 * config.PollInterval,
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})

	if config.HTTPPort != 0 {
		e, err := newEcho(poller, registry, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create HTTP server", "err", err)
			os.Exit(1)
		}
		g.Go(func() error {
			addr := fmt.Sprintf(":%d", config.HTTPPort)
			level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})
	}

	runErr := g.Wait()
	level.Info(logger).Log("msg", "Shutting down...")

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := poller.Close(closeCtx); err != nil {
		level.Warn(logger).Log("msg", "Failed to withdraw published snapshot", "err", err)
	}

	if runErr != nil {
		level.Error(logger).Log("msg", "Service stopped with error", "err", runErr)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Service stopped")
}

// newEcho builds the status API.
func newEcho(poller *service.Poller, gatherer prometheus.Gatherer, logger log.Logger) (*echo.Echo, error) {
	doc, err := handlers.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := handlers.OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(poller, logger), validator)
	handlers.RegisterMetrics(e, gatherer)
	return e, nil
}
