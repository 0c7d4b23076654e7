package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested entity does not exist (yet).
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrNetwork means that the registry could not be reached (dial, reset, DNS).
	ErrNetwork = "network_error"
	// ErrTimeout means that the registry did not answer within the fetch timeout.
	ErrTimeout = "timeout_error"
	// ErrHTTPStatus means that the registry answered with a non-200 status.
	ErrHTTPStatus = "http_status_error"
	// ErrDecode means that the registry body is not the expected JSON.
	ErrDecode = "decode_error"
	// ErrRegistryReportedFailure means that the registry answered success:false.
	ErrRegistryReportedFailure = "registry_reported_failure"
	// ErrFilesystem means that the targets directory or file could not be written.
	ErrFilesystem = "filesystem_error"
)

// MyError represents an error within the context of mytargets services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Status is the upstream HTTP status for http_status_error, 0 otherwise.
	Status int `json:"-"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	return newOrKeep(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return newOrKeep(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return newOrKeep(ErrBadParameter, message, inner)
}

func NewNetworkError(message string, inner error) *MyError {
	return newOrKeep(ErrNetwork, message, inner)
}

func NewTimeoutError(message string, inner error) *MyError {
	return newOrKeep(ErrTimeout, message, inner)
}

// NewHTTPStatusError reports a non-200 answer from the registry.
func NewHTTPStatusError(status int, statusText string) *MyError {
	e := NewMyError(ErrHTTPStatus, fmt.Sprintf("HTTP %d: %s", status, statusText), nil)
	e.Status = status
	return e
}

func NewDecodeError(message string, inner error) *MyError {
	return newOrKeep(ErrDecode, message, inner)
}

func NewRegistryReportedFailure(message string) *MyError {
	return NewMyError(ErrRegistryReportedFailure, message, nil)
}

func NewFilesystemError(message string, inner error) *MyError {
	return newOrKeep(ErrFilesystem, message, inner)
}

// newOrKeep returns inner unchanged when it already is a MyError, so the first classification wins.
func newOrKeep(code string, message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(code, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a mytargets error, or nil if it is not a mytargets error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsNetworkError(err error) bool {
	return IsMyError(err, ErrNetwork)
}

func IsTimeoutError(err error) bool {
	return IsMyError(err, ErrTimeout)
}

func IsHTTPStatusError(err error) bool {
	return IsMyError(err, ErrHTTPStatus)
}

func IsDecodeError(err error) bool {
	return IsMyError(err, ErrDecode)
}

func IsRegistryReportedFailure(err error) bool {
	return IsMyError(err, ErrRegistryReportedFailure)
}

func IsFilesystemError(err error) bool {
	return IsMyError(err, ErrFilesystem)
}
