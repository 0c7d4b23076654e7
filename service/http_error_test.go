package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	require.NotNil(t, m)
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
	assert.Equal(t, http.StatusInternalServerError, m[ErrFilesystem])
	assert.Equal(t, http.StatusBadGateway, m[ErrHTTPStatus])
}

func newErrorContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/targets", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) *MyError {
	t.Helper()
	var body ErrResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "my_error_bad_parameter",
			err:        NewBadParameterError("invalid server_id", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrBadParameter,
		},
		{
			name:       "my_error_not_found",
			err:        NewEntityNotFoundError("no manifest written yet", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrEntityNotFound,
		},
		{
			name:       "non_my_error_returns_500",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrInternalServerError,
		},
		{
			name:       "echo_not_found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   ErrEntityNotFound,
		},
		{
			name: "echo_http_error_with_request_error",
			err: func() error {
				he := echo.NewHTTPError(http.StatusBadRequest, "request has an error")
				he.Internal = &openapi3filter.RequestError{Err: assert.AnError}
				return he
			}(),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrBadParameter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext(http.MethodGet)
			handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
			handler.Handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decodeErrResponse(t, rec)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestHTTPErrorHandler_Handler_HeadHasNoBody(t *testing.T) {
	c, rec := newErrorContext(http.MethodHead)
	handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	handler.Handler(NewEntityNotFoundError("missing", nil), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
