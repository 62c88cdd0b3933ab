/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"net/http"

	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/restapi"
	"github.com/go-chi/chi/v5"

	"github.com/dumppro/leadsvc/internal/catalog"
	"github.com/dumppro/leadsvc/internal/location"
)

func newStatesHandler(locations *location.Directory) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		restapi.RespondJSON(rw, locations.States(), logger)
	}
}

func newStateCitiesHandler(locations *location.Directory) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		stateSlug := chi.URLParam(r, "state")
		if _, ok := locations.StateBySlug(stateSlug); !ok {
			restapi.RespondCodeAndJSON(rw, http.StatusNotFound, quoteErrorResponse{Error: "State not found"}, logger)
			return
		}
		cities := locations.CitiesByState(stateSlug)
		if cities == nil {
			cities = []location.City{}
		}
		restapi.RespondJSON(rw, cities, logger)
	}
}

func newSizesHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		restapi.RespondJSON(rw, catalog.Sizes(), logger)
	}
}
