package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, " +
		"Cache-Control, X-Request-Id"
	corsAllowMethods = "POST, OPTIONS, GET, PUT, PATCH, DELETE"
)

// NewCORS returns a middleware that sets CORS headers on every response and
// short-circuits OPTIONS preflight requests with 204 No Content.
//
// With an empty allowedOrigins any origin is accepted ("*"). Otherwise the
// request Origin is echoed back only when it is listed, and no CORS headers are
// written for other origins.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowOrigin := "*"
			if len(allowedOrigins) > 0 {
				w.Header().Add("Vary", "Origin")
				allowOrigin = ""
				if origin := r.Header.Get("Origin"); slices.Contains(allowedOrigins, origin) {
					allowOrigin = origin
				}
			}

			if allowOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			}

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithCORS is NewCORS accepting any origin.
func WithCORS(next http.Handler) http.Handler {
	return NewCORS(nil)(next)
}
