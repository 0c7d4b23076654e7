package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.Equal(t, "bad_parameter invalid input: underlying", e.Error())
}

func TestNewHTTPStatusError(t *testing.T) {
	e := NewHTTPStatusError(http.StatusInternalServerError, "Internal Server Error")
	require.NotNil(t, e)
	assert.Equal(t, ErrHTTPStatus, e.Code)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "HTTP 500: Internal Server Error", e.Message)
	assert.True(t, IsHTTPStatusError(e))
}

func TestConstructors_KeepInnerMyError(t *testing.T) {
	inner := NewTimeoutError("registry request timed out", nil)
	wrapped := NewNetworkError("registry request failed", inner)
	assert.Same(t, inner, wrapped)
	assert.True(t, IsTimeoutError(wrapped))
	assert.False(t, IsNetworkError(wrapped))
}

func TestErrorCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "internal", err: NewInternalServerError("x", nil), check: IsInternalServerError},
		{name: "not_found", err: NewEntityNotFoundError("x", nil), check: IsEntityNotFoundError},
		{name: "bad_parameter", err: NewBadParameterError("x", nil), check: IsBadParameterError},
		{name: "network", err: NewNetworkError("x", nil), check: IsNetworkError},
		{name: "timeout", err: NewTimeoutError("x", nil), check: IsTimeoutError},
		{name: "decode", err: NewDecodeError("x", nil), check: IsDecodeError},
		{name: "registry_failure", err: NewRegistryReportedFailure("x"), check: IsRegistryReportedFailure},
		{name: "filesystem", err: NewFilesystemError("x", nil), check: IsFilesystemError},
		{name: "wrapped_with_fmt", err: fmt.Errorf("cycle: %w", NewDecodeError("x", nil)), check: IsDecodeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	assert.Nil(t, ToMyError(e))
	assert.Equal(t, "", ToMyErrorCode(e))
	assert.False(t, IsFilesystemError(e))
}

func TestMyError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	e := NewFilesystemError("write targets file", inner)
	assert.ErrorIs(t, e, inner)
	assert.Equal(t, ErrFilesystem, ToMyErrorCode(e))
}
