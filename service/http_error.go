package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the status API error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps maps error codes to the status API's HTTP status codes.
// Registry failures surface as 502 when a handler forwards them; nothing else leaks upstream codes.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:            http.StatusBadRequest,
		ErrEntityNotFound:          http.StatusNotFound,
		ErrInternalServerError:     http.StatusInternalServerError,
		ErrFilesystem:              http.StatusInternalServerError,
		ErrNetwork:                 http.StatusBadGateway,
		ErrTimeout:                 http.StatusBadGateway,
		ErrHTTPStatus:              http.StatusBadGateway,
		ErrDecode:                  http.StatusBadGateway,
		ErrRegistryReportedFailure: http.StatusBadGateway,
	}
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		codeStr := ErrInternalServerError
		switch {
		case he.Code == http.StatusNotFound:
			codeStr = ErrEntityNotFound
		case he.Code == http.StatusBadRequest:
			codeStr = ErrBadParameter
		}
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrBadParameter
			}
		}

		m, _ := he.Message.(string)
		myErr = NewMyError(codeStr, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(myErr.Code)
	}

	logger := level.Error(h.logger)
	if statusCode < http.StatusInternalServerError {
		logger = level.Debug(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: myErr})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
