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

const metricsFormContact = "contact"

func newContactHandler(pipeline *submission.Pipeline, metrics *MetricsCollector) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())

		var form submission.ContactForm
		if err := restapi.DecodeRequestJSON(r, &form); err != nil {
			var reqErr *restapi.MalformedRequestError
			if errors.As(err, &reqErr) {
				metrics.observeSubmission(metricsFormContact, metricsResultValidationError)
				restapi.RespondCodeAndJSON(rw, http.StatusBadRequest, formResponse{
					Success: false,
					Message: validationErrorMessage,
					Error:   reqErr.Message,
				}, logger)
				return
			}
			metrics.observeSubmission(metricsFormContact, metricsResultInternalError)
			respondContactServerError(rw, logger)
			return
		}

		if _, err := pipeline.SubmitContact(r.Context(), form); err != nil {
			respondContactError(rw, err, metrics, logger)
			return
		}

		metrics.observeSubmission(metricsFormContact, metricsResultAccepted)
		restapi.RespondCodeAndJSON(rw, http.StatusCreated, formResponse{
			Success: true,
			Message: contactAcceptedMessage,
		}, logger)
	}
}

func respondContactError(rw http.ResponseWriter, err error, metrics *MetricsCollector, logger log.FieldLogger) {
	var validationErr *submission.ValidationError
	if errors.As(err, &validationErr) {
		metrics.observeSubmission(metricsFormContact, metricsResultValidationError)
		restapi.RespondCodeAndJSON(rw, http.StatusBadRequest, formResponse{
			Success: false,
			Message: validationErrorMessage,
			Error:   validationErr.Joined(),
		}, logger)
		return
	}

	var storageErr *submission.StorageError
	if errors.As(err, &storageErr) {
		if logger != nil {
			logger.Error("contact message persistence failed", log.Error(err))
		}
		metrics.observeSubmission(metricsFormContact, metricsResultStorageError)
		restapi.RespondCodeAndJSON(rw, http.StatusServiceUnavailable, formResponse{
			Success: false,
			Message: databaseErrorMessage,
			Error:   databaseErrorDetail,
		}, logger)
		return
	}

	if logger != nil {
		logger.Error("contact submission failed", log.Error(err))
	}
	metrics.observeSubmission(metricsFormContact, metricsResultInternalError)
	respondContactServerError(rw, logger)
}

func respondContactServerError(rw http.ResponseWriter, logger log.FieldLogger) {
	restapi.RespondCodeAndJSON(rw, http.StatusInternalServerError, formResponse{
		Success: false,
		Message: serverErrorMessage,
		Error:   serverErrorDetail,
	}, logger)
}
