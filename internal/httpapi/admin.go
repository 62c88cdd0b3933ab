/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"net/http"
	"sort"

	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/restapi"
	"github.com/go-chi/chi/v5"

	"github.com/dumppro/leadsvc/internal/ratelimit"
)

// rateLimitStatsResponse is the maintenance view of the admission counters.
type rateLimitStatsResponse struct {
	TotalEntries int                   `json:"totalEntries"`
	Entries      []ratelimit.EntryStat `json:"entries"`
}

type rateLimitResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newRateLimitStatsHandler(limiter *ratelimit.Limiter) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		entries := limiter.Snapshot()
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
		restapi.RespondJSON(rw, rateLimitStatsResponse{TotalEntries: len(entries), Entries: entries}, logger)
	}
}

func newRateLimitResetHandler(limiter *ratelimit.Limiter) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		key := chi.URLParam(r, "key")
		limiter.Reset(key)
		if logger != nil {
			logger.Info("rate limit entry reset", log.String("rate_limit_key", key))
		}
		restapi.RespondJSON(rw, rateLimitResetResponse{Success: true, Message: "Rate limit reset for " + key}, logger)
	}
}

func newRateLimitClearHandler(limiter *ratelimit.Limiter) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		limiter.Clear()
		if logger != nil {
			logger.Info("all rate limit entries cleared")
		}
		restapi.RespondJSON(rw, rateLimitResetResponse{Success: true, Message: "All rate limits cleared"}, logger)
	}
}
