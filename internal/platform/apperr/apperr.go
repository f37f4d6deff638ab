// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the proxy.

It provides a rich error type that bridges the gap between registry/upstream
errors and the HTTP envelopes the category endpoints emit.

Taxonomy:

  - MissingParameter: a required query parameter is absent (soft error, 200).
  - UnknownSource: the requested source key is not enabled (404).
  - EmptyResult: the upstream answered with nothing (404).
  - UpstreamFailure: anything thrown while talking to the registry or upstream (500).

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking upstream URLs or credentials.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "UNKNOWN_SOURCE").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Proxy Errors

// Machine-readable codes of the proxy taxonomy.
const (
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeUnknownSource    = "UNKNOWN_SOURCE"
	CodeEmptyResult      = "EMPTY_RESULT"
	CodeUpstreamFailure  = "UPSTREAM_FAILURE"
)

// MissingParameter creates the soft error returned when a required query
// parameter is absent. It is reported with status 200 so that it stays
// cacheable alongside successful answers.
func MissingParameter(message string) *AppError {
	return &AppError{
		Code:       CodeMissingParameter,
		Message:    message,
		HTTPStatus: http.StatusOK,
	}
}

// UnknownSource creates a 404 [AppError] naming the source key that is not
// present among enabled sources.
func UnknownSource(message, key string) *AppError {
	return &AppError{
		Code:       CodeUnknownSource,
		Message:    message + key,
		HTTPStatus: http.StatusNotFound,
	}
}

// EmptyResult creates a 404 [AppError] for an upstream that returned no items.
func EmptyResult(message string) *AppError {
	return &AppError{
		Code:       CodeEmptyResult,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// UpstreamFailure creates a 500 [AppError] wrapping a registry or upstream
// failure behind a generic client message.
func UpstreamFailure(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeUpstreamFailure,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Route") // Returns "Route not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// Is reports whether err carries an [*AppError] with the given code.
func Is(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
