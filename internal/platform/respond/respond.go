// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// The category endpoints speak a fixed wire contract consumed by existing
// front-ends: successes are `{"results": [...]}` and failures are
// `{"error": "...", "result": null}`. Every handler goes through these
// helpers so the envelopes never drift.
package respond

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taibuivan/vodbrowse/internal/platform/apperr"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	"github.com/taibuivan/vodbrowse/internal/platform/ctxutil"
)

// ResultsEnvelope is the JSON envelope for successful list responses.
type ResultsEnvelope struct {
	Results any `json:"results"`
}

// ErrorEnvelope is the JSON envelope for error responses.
//
// Result is serialised even when nil so clients can rely on the key.
type ErrorEnvelope struct {
	Error  string `json:"error"`
	Result any    `json:"result"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the raw payload.
func OK(writer http.ResponseWriter, payload any) {
	JSON(writer, http.StatusOK, payload)
}

// Results writes a 200 OK response wrapping results in the standard envelope.
func Results(writer http.ResponseWriter, results any) {
	JSON(writer, http.StatusOK, ResultsEnvelope{Results: results})
}

// CacheFor decorates the response with the public cache headers shared by
// browsers and CDNs. It must be called before the body is written.
func CacheFor(writer http.ResponseWriter, seconds int) {
	header := writer.Header()
	header.Set(constants.HeaderCacheControl, fmt.Sprintf("public, max-age=%d, s-maxage=%d", seconds, seconds))
	header.Set(constants.HeaderCDNCache, fmt.Sprintf("public, s-maxage=%d", seconds))
	header.Set(constants.HeaderVercelCDNCache, fmt.Sprintf("public, s-maxage=%d", seconds))
}

// Error converts any Go error into the error envelope with a null result.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ErrorWithResult(writer, request, err, nil)
}

// ErrorWithResult converts err into the error envelope carrying result.
//
// Errors that are not [*apperr.AppError] are treated as internal failures and
// their details are only logged.
func ErrorWithResult(writer http.ResponseWriter, request *http.Request, err error, result any) {
	logger := ctxutil.GetLogger(request.Context())

	appError := apperr.As(err)
	if appError == nil {
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side or upstream issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:  appError.Message,
		Result: result,
	})
}
