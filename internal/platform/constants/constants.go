// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, header names and the fixed wire
strings of the category proxy so that they are never repeated as literals.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Inbound bucket sizes and IP tracking TTLs.
  - Proxy Contract: Query parameter names, cache header names and messages.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vodbrowse"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Upstream listing APIs are slow, so this is larger than GlobalRequestTimeout.
	DefaultWriteTimeout = 35 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderCacheControl   = "Cache-Control"
	HeaderCDNCache       = "CDN-Cache-Control"
	HeaderVercelCDNCache = "Vercel-CDN-Cache-Control"
)

// # Proxy Contract

const (
	// ParamResourceID selects the upstream source on both category endpoints.
	ParamResourceID = "resourceId"

	// ParamQuery is the category type id forwarded to the detail endpoint.
	ParamQuery = "q"

	// ParamPage is the 1-based listing page forwarded to the detail endpoint.
	ParamPage = "page"

	// ParamCategoryID is used by the browser route only.
	ParamCategoryID = "categoryId"

	// CategoryPath is the browser route that hosts the category page.
	CategoryPath = "/category"
)

const (
	MsgMissingResourceID = "缺少必要参数: resourceId"
	MsgUnknownSource     = "未找到指定的视频源: "
	MsgNoResults         = "未找到结果"
	MsgSearchFailed      = "搜索失败"
)

// # JSON Field Identifiers

const (
	FieldResults = "results"
	FieldResult  = "result"
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Keys

const (
	// RedisKeyAdminConfig is the key holding the admin configuration document
	// (JSON) from which the Redis source store reads the source list.
	RedisKeyAdminConfig = "admin:config"
)
