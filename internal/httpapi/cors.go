/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import "net/http"

// CORSMiddleware returns a middleware implementing the cross-origin contract
// of the public contact form. A request from an allowed origin gets that
// origin echoed back; any other request gets the first configured origin, so
// the browser blocks it on its side while the response headers stay
// deterministic. allowedOrigins must not be empty.
func CORSMiddleware(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	fallbackOrigin := allowedOrigins[0]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; !ok {
				origin = fallbackOrigin
			}
			rw.Header().Set("Access-Control-Allow-Origin", origin)
			rw.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			rw.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				rw.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(rw, r)
		})
	}
}
