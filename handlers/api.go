package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ScrapeTarget is one element of the file_sd manifest.
type ScrapeTarget struct {
	Targets []string     `json:"targets"`
	Labels  TargetLabels `json:"labels"`
}

// TargetLabels are the labels attached to a ScrapeTarget.
type TargetLabels struct {
	Job        string `json:"job"`
	ServerId   string `json:"server_id"`
	ServerName string `json:"server_name"`
	Instance   string `json:"instance"`
}

// StatusResponse is the body of GET /v1/status.
type StatusResponse struct {
	Healthy             bool       `json:"healthy"`
	Fingerprint         string     `json:"fingerprint"`
	TargetCount         int        `json:"target_count"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
	LastCycle           string     `json:"last_cycle"`
	LastCycleAt         time.Time  `json:"last_cycle_at"`
	LastCycleDurationMs int64      `json:"last_cycle_duration_ms"`
	LastError           *string    `json:"last_error,omitempty"`
}

// GetTargetsParams defines parameters for GetTargets.
type GetTargetsParams struct {
	ServerId *string `query:"server_id"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v1/targets)
	GetTargets(ctx echo.Context, params GetTargetsParams) error
	// (GET /v1/status)
	GetStatus(ctx echo.Context) error
	// (GET /healthz)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetTargets converts echo context to params.
func (w *ServerInterfaceWrapper) GetTargets(ctx echo.Context) error {
	var params GetTargetsParams
	if v, ok := ctx.QueryParams()["server_id"]; ok && len(v) > 0 {
		params.ServerId = &v[0]
	}
	return w.Handler.GetTargets(ctx, params)
}

// GetStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatus(ctx echo.Context) error {
	return w.Handler.GetStatus(ctx)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// RegisterHandlers adds each server route to the router. middlewares apply to the /v1 routes only.
func RegisterHandlers(router *echo.Echo, si ServerInterface, middlewares ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	v1 := router.Group("/v1", middlewares...)
	v1.GET("/targets", wrapper.GetTargets)
	v1.GET("/status", wrapper.GetStatus)
	router.GET("/healthz", wrapper.GetHealth)
}
