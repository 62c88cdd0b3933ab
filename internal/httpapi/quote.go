/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"errors"
	"net/http"

	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/restapi"

	"github.com/dumppro/leadsvc/internal/submission"
)

const metricsFormQuote = "quote"

// The quote widget treats every failure the same way, so the handler
// collapses validation, persistence and decode errors into one 500 envelope.
// The distinction still reaches the logs and the metrics.
func newQuoteHandler(pipeline *submission.Pipeline, metrics *MetricsCollector) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())

		var form submission.QuoteForm
		if err := restapi.DecodeRequestJSON(r, &form); err != nil {
			respondQuoteError(rw, err, metricsResultValidationError, metrics, logger)
			return
		}

		accepted, err := pipeline.SubmitQuote(r.Context(), form)
		if err != nil {
			result := metricsResultInternalError
			var validationErr *submission.ValidationError
			var storageErr *submission.StorageError
			switch {
			case errors.As(err, &validationErr):
				result = metricsResultValidationError
			case errors.As(err, &storageErr):
				result = metricsResultStorageError
			}
			respondQuoteError(rw, err, result, metrics, logger)
			return
		}

		metrics.observeSubmission(metricsFormQuote, metricsResultAccepted)
		restapi.RespondCodeAndJSON(rw, http.StatusCreated, quoteAcceptedResponse{
			Success: true,
			QuoteID: accepted.ID,
		}, logger)
	}
}

func respondQuoteError(
	rw http.ResponseWriter, err error, result string, metrics *MetricsCollector, logger log.FieldLogger,
) {
	if logger != nil {
		logger.Error("quote request failed", log.Error(err))
	}
	metrics.observeSubmission(metricsFormQuote, result)
	restapi.RespondCodeAndJSON(rw, http.StatusInternalServerError, quoteErrorResponse{
		Error: quoteFailedErrorResponse,
	}, logger)
}
