/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/acronis/go-appkit/log/logtest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/dumppro/leadsvc/internal/location"
	"github.com/dumppro/leadsvc/internal/mail"
	"github.com/dumppro/leadsvc/internal/ratelimit"
	"github.com/dumppro/leadsvc/internal/storage"
	"github.com/dumppro/leadsvc/internal/submission"
)

func TestMetricsCollector(t *testing.T) {
	mc := NewMetricsCollector("test_leadsvc")
	mc.MustRegister()
	defer mc.Unregister()

	mc.observeSubmission(metricsFormContact, metricsResultAccepted)
	mc.observeSubmission(metricsFormContact, metricsResultAccepted)
	mc.observeSubmission(metricsFormQuote, metricsResultValidationError)
	mc.observeRateLimitReject("contact")

	require.Equal(t, 2,
		int(testutil.ToFloat64(mc.Submissions.WithLabelValues(metricsFormContact, metricsResultAccepted))))
	require.Equal(t, 1,
		int(testutil.ToFloat64(mc.Submissions.WithLabelValues(metricsFormQuote, metricsResultValidationError))))
	require.Equal(t, 1, int(testutil.ToFloat64(mc.RateLimitRejects.WithLabelValues("contact"))))
}

func TestSubmissionMetricsObserved(t *testing.T) {
	logRecorder := logtest.NewRecorder()
	locations, err := location.NewDirectory()
	require.NoError(t, err)
	store := storage.NewMemory()
	pipeline := submission.NewPipelineWithOpts(
		store, &mail.DisabledMailer{Logger: logRecorder}, locations, logRecorder, submission.Opts{SyncNotify: true})

	mc := NewMetricsCollector("")
	router := NewRouter(RouterParams{
		Logger:             logRecorder,
		ErrorDomain:        "LeadService",
		Pipeline:           pipeline,
		Store:              store,
		Locations:          locations,
		Limiter:            ratelimit.NewLimiter(),
		ContactPolicy:      ratelimit.Policy{MaxRequests: 1, Window: time.Hour},
		QuotePolicy:        ratelimit.Policy{MaxRequests: 10, Window: time.Hour},
		APIPolicy:          ratelimit.Policy{MaxRequests: 30, Window: time.Minute},
		CORSAllowedOrigins: []string{"https://www.dumppro.com"},
		Metrics:            mc,
	})

	resp := doRequest(router, http.MethodPost, "/api/contact", validContactBody, "203.0.113.7")
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doRequest(router, http.MethodPost, "/api/contact", validContactBody, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, resp.Code)

	badBody := `{"name":"Jane Smith","email":"jane@example.com","phone":"(614) 555-0123","message":"short"}`
	resp = doRequest(router, http.MethodPost, "/api/contact", badBody, "198.51.100.2")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	require.Equal(t, 1,
		int(testutil.ToFloat64(mc.Submissions.WithLabelValues(metricsFormContact, metricsResultAccepted))))
	require.Equal(t, 1,
		int(testutil.ToFloat64(mc.Submissions.WithLabelValues(metricsFormContact, metricsResultValidationError))))
	require.Equal(t, 1, int(testutil.ToFloat64(mc.RateLimitRejects.WithLabelValues("contact"))))
}
