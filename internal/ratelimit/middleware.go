/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/restapi"
)

// unknownClientKey buckets all clients that carry no identifying headers.
// This is acceptable only behind a trusted reverse proxy that always sets
// X-Forwarded-For or X-Real-IP.
const unknownClientKey = "unknown"

// logFieldClientKey is the name of the logged field that contains the admission key.
const logFieldClientKey = "rate_limit_key"

// ClientKey derives the admission-control identity key from the request.
// The first entry of the X-Forwarded-For chain is trusted as the client
// address, falling back to X-Real-IP, falling back to "unknown".
func ClientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return unknownClientKey
}

// MiddlewareOpts represents options for the admission-control middleware.
type MiddlewareOpts struct {
	// KeyPrefix scopes counter entries per endpoint, so the same client
	// address is budgeted independently under different policies.
	KeyPrefix string
	// GetKey overrides the identity key derivation. Defaults to ClientKey.
	GetKey func(r *http.Request) string
	// OnReject is called after a request has been rejected (e.g. to collect metrics).
	OnReject func(r *http.Request, d Decision)
	// RespondReject overrides the rejection response body.
	// The rate-limit headers are already set when it is called.
	RespondReject func(rw http.ResponseWriter, r *http.Request, d Decision, logger log.FieldLogger)
}

// Middleware returns an HTTP middleware that admits or rejects requests
// using the given limiter and policy. Every response carries
// X-RateLimit-Limit/Remaining/Reset headers; rejections are answered with
// 429 and Retry-After before the request reaches any handler.
func Middleware(limiter *Limiter, policy Policy) func(next http.Handler) http.Handler {
	return MiddlewareWithOpts(limiter, policy, MiddlewareOpts{})
}

// MiddlewareWithOpts is a configurable version of Middleware.
func MiddlewareWithOpts(limiter *Limiter, policy Policy, opts MiddlewareOpts) func(next http.Handler) http.Handler {
	getKey := opts.GetKey
	if getKey == nil {
		getKey = ClientKey
	}
	if opts.KeyPrefix != "" {
		inner := getKey
		getKey = func(r *http.Request) string { return opts.KeyPrefix + ":" + inner(r) }
	}
	respondReject := opts.RespondReject
	if respondReject == nil {
		respondReject = DefaultRespondReject
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			key := getKey(r)
			d := limiter.Check(key, policy)

			rw.Header().Set("X-RateLimit-Limit", strconv.Itoa(policy.MaxRequests))
			rw.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			rw.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetTime.Unix(), 10))

			if !d.Allowed {
				retryAfter := math.Ceil(time.Until(d.ResetTime).Seconds())
				if retryAfter < 0 {
					retryAfter = 0
				}
				rw.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)))

				logger := middleware.GetLoggerFromContext(r.Context())
				if logger != nil {
					logger.Warn("request rejected by rate limiter",
						log.String(logFieldClientKey, key),
						log.Time("reset_time", d.ResetTime),
					)
				}
				if opts.OnReject != nil {
					opts.OnReject(r, d)
				}
				respondReject(rw, r, d, logger)
				return
			}

			next.ServeHTTP(rw, r)
		})
	}
}

// DefaultRespondReject writes the form-API rejection envelope.
func DefaultRespondReject(rw http.ResponseWriter, _ *http.Request, _ Decision, logger log.FieldLogger) {
	respData := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}{
		Success: false,
		Message: "Too many requests",
		Error:   "Rate limit exceeded. Please try again later.",
	}
	restapi.RespondCodeAndJSON(rw, http.StatusTooManyRequests, respData, logger)
}
