// Package handlers contains the status API handlers for mytargets.
package handlers

import (
	"net/http"

	"mytargets/helpers"
	"mytargets/interfaces"
	"mytargets/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer implements ServerInterface on top of the poller's snapshot.
type HTTPServer struct {
	provider interfaces.SnapshotProvider
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil provider or logger.
func NewHTTPServer(provider interfaces.SnapshotProvider, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		provider: helpers.NilPanic(provider, "handlers.http.go: snapshot provider is required"),
		logger:   logger,
	}
}

// GetTargets (GET /v1/targets) returns the manifest currently on disk, optionally filtered by server_id.
// 404 before the first cycle has finished.
func (h *HTTPServer) GetTargets(ectx echo.Context, params GetTargetsParams) error {
	snapshot, ok := h.provider.Snapshot()
	if !ok {
		return service.NewEntityNotFoundError("no poll cycle has completed yet", nil)
	}
	return ectx.JSON(http.StatusOK, toScrapeTargets(snapshot.Targets, params.ServerId))
}

// GetStatus (GET /v1/status) reports the last cycle. 404 before the first cycle has finished.
func (h *HTTPServer) GetStatus(ectx echo.Context) error {
	snapshot, ok := h.provider.Snapshot()
	if !ok {
		return service.NewEntityNotFoundError("no poll cycle has completed yet", nil)
	}
	return ectx.JSON(http.StatusOK, toStatusResponse(snapshot))
}

// GetHealth (GET /healthz) reports that the process is up.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.NoContent(http.StatusOK)
}

// RegisterMetrics serves gatherer on GET /metrics.
func RegisterMetrics(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
